package validators

import (
	"time"

	"labourlink/internal/models"
)

type BookingCreateRequest struct {
	Date        string                 `json:"date" validate:"required"`
	TimeSlot    models.TimeSlot        `json:"time_slot" validate:"required"`
	Location    models.BookingLocation `json:"location" validate:"required"`
	Description string                 `json:"description" validate:"omitempty,max=1000"`
	Notes       string                 `json:"notes" validate:"omitempty,max=1000"`
	Duration    float64                `json:"duration" validate:"required,gt=0"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingListRequest struct {
	Status string `json:"status" form:"status" validate:"omitempty"`
}

// ValidateBookingCreate checks the request body of a booking creation.
// Validation is rejected before any persistence write.
func ValidateBookingCreate(req *BookingCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Date != "" {
		if _, err := time.Parse(time.RFC3339, req.Date); err != nil {
			if _, err := time.Parse("2006-01-02", req.Date); err != nil {
				errors = append(errors, ValidationError{
					Field:   "date",
					Tag:     "date",
					Message: "date must be an ISO 8601 calendar date",
				})
			}
		}
	}

	if req.TimeSlot.StartTime == "" {
		errors = append(errors, ValidationError{
			Field:   "time_slot.start_time",
			Tag:     "required",
			Message: "start time is required",
		})
	}
	if req.TimeSlot.EndTime == "" {
		errors = append(errors, ValidationError{
			Field:   "time_slot.end_time",
			Tag:     "required",
			Message: "end time is required",
		})
	}
	if req.Location.Address == "" {
		errors = append(errors, ValidationError{
			Field:   "location.address",
			Tag:     "required",
			Message: "address is required",
		})
	}

	return errors
}

// ParseBookingDate resolves the validated date string. Call only after
// ValidateBookingCreate has passed.
func ParseBookingDate(date string) time.Time {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", date)
	return t
}

func ValidateBookingStatus(req *BookingStatusRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Status != "" && !models.IsValidBookingStatus(models.BookingStatus(req.Status)) {
		errors = append(errors, ValidationError{
			Field:   "status",
			Tag:     "booking_status",
			Message: "status must be one of pending, confirmed, ongoing, completed, cancelled",
		})
	}

	return errors
}

func ValidateBookingStatusFilter(status string) ValidationErrors {
	if status == "" {
		return nil
	}
	if !models.IsValidBookingStatus(models.BookingStatus(status)) {
		return ValidationErrors{{
			Field:   "status",
			Tag:     "booking_status",
			Message: "status must be one of pending, confirmed, ongoing, completed, cancelled",
		}}
	}
	return nil
}
