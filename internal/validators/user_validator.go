package validators

import (
	"labourlink/internal/models"
	"labourlink/internal/utils"
)

type RegisterRequest struct {
	Name       string               `json:"name" validate:"required,min=2,max=100"`
	Email      string               `json:"email" validate:"required,email"`
	Password   string               `json:"password" validate:"required,min=6,max=128"`
	Role       string               `json:"role" validate:"required,user_role"`
	Phone      string               `json:"phone" validate:"omitempty"`
	Address    string               `json:"address" validate:"omitempty,max=500"`
	Category   string               `json:"category" validate:"omitempty,labour_category"`
	HourlyRate float64              `json:"hourly_rate" validate:"omitempty,gt=0"`
	Experience int                  `json:"experience" validate:"omitempty,min=0"`
	Location   *models.UserLocation `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name        string               `json:"name" validate:"omitempty,min=2,max=100"`
	Phone       string               `json:"phone" validate:"omitempty"`
	Address     string               `json:"address" validate:"omitempty,max=500"`
	Category    string               `json:"category" validate:"omitempty,labour_category"`
	HourlyRate  *float64             `json:"hourly_rate" validate:"omitempty,gt=0"`
	Experience  *int                 `json:"experience" validate:"omitempty,min=0"`
	IsAvailable *bool                `json:"is_available"`
	Location    *models.UserLocation `json:"location"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// ValidateRegister applies the role-conditional rules: category and hourly
// rate are required exactly when the role is labourer.
func ValidateRegister(req *RegisterRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if models.UserRole(req.Role) == models.UserRoleLabourer {
		if req.Category == "" {
			errors = append(errors, ValidationError{
				Field:   "category",
				Tag:     "required",
				Message: "category is required for labourers",
			})
		}
		if req.HourlyRate <= 0 {
			errors = append(errors, ValidationError{
				Field:   "hourly_rate",
				Tag:     "required",
				Message: "hourly_rate is required for labourers",
			})
		}
	}

	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		errors = append(errors, ValidationError{
			Field:   "phone",
			Tag:     "phone",
			Message: "Invalid phone number format",
		})
	}

	return errors
}

func ValidateLogin(req *LoginRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdateUserRole(req *UpdateUserRoleRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdateProfile(req *UpdateProfileRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		errors = append(errors, ValidationError{
			Field:   "phone",
			Tag:     "phone",
			Message: "Invalid phone number format",
		})
	}

	return errors
}
