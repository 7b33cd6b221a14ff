package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string
type PaymentStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusOngoing   BookingStatus = "ongoing"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusOngoing,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type TimeSlot struct {
	StartTime string `json:"start_time" bson:"start_time" validate:"required,time_of_day"`
	EndTime   string `json:"end_time" bson:"end_time" validate:"required,time_of_day"`
}

type BookingLocation struct {
	Address string `json:"address" bson:"address" validate:"required"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// Booking reserves one labourer for one employer on a date and time slot.
// TotalAmount is fixed at creation from the labourer's rate at that moment
// and is never recomputed.
type Booking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployerID    primitive.ObjectID `json:"employer_id" bson:"employer"`
	LabourerID    primitive.ObjectID `json:"labourer_id" bson:"labourer"`
	Date          time.Time          `json:"date" bson:"date"`
	TimeSlot      TimeSlot           `json:"time_slot" bson:"time_slot"`
	Location      BookingLocation    `json:"location" bson:"location"`
	Description   string             `json:"description" bson:"description"`
	Duration      float64            `json:"duration" bson:"duration"`
	TotalAmount   float64            `json:"total_amount" bson:"total_amount"`
	Status        BookingStatus      `json:"status" bson:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status" bson:"payment_status"`
	Notes         string             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsParty reports whether the given user is the booking's employer or
// labourer. Only parties may move the booking through its lifecycle.
func (b *Booking) IsParty(userID primitive.ObjectID) bool {
	return b.EmployerID == userID || b.LabourerID == userID
}

// BookingDetail is a booking with its user references resolved for display.
type BookingDetail struct {
	*Booking
	Employer *PublicUser `json:"employer"`
	Labourer *PublicUser `json:"labourer"`
}
