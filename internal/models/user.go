package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string
type LabourCategory string

const (
	UserRoleEmployer UserRole = "employer"
	UserRoleLabourer UserRole = "labourer"
	UserRoleAdmin    UserRole = "admin"
)

const (
	CategoryGeneralHelper     LabourCategory = "General Helper"
	CategoryConstruction      LabourCategory = "Construction Labour"
	CategoryFactoryWorker     LabourCategory = "Factory Worker"
	CategoryLoaderUnloader    LabourCategory = "Loader/Unloader"
	CategoryCleaningStaff     LabourCategory = "Cleaning Staff"
	CategoryPainter           LabourCategory = "Painter"
	CategoryElectricianHelper LabourCategory = "Electrician Helper"
	CategoryPlumberHelper     LabourCategory = "Plumber Helper"
	CategoryGardening         LabourCategory = "Gardening"
	CategoryCarpenter         LabourCategory = "Carpenter"
	CategoryWelder            LabourCategory = "Welder"
	CategoryMason             LabourCategory = "Mason"
	CategoryTileFitter        LabourCategory = "Tile Fitter"
	CategoryScaffolder        LabourCategory = "Scaffolder"
	CategorySecurityGuard     LabourCategory = "Security Guard"
	CategoryWarehouseWorker   LabourCategory = "Warehouse Worker"
	CategoryDriver            LabourCategory = "Driver"
	CategoryHousekeeping      LabourCategory = "Housekeeping"
	CategoryCook              LabourCategory = "Cook"
	CategoryOther             LabourCategory = "Other"
)

// LabourCategories lists every bookable trade, in display order.
var LabourCategories = []LabourCategory{
	CategoryGeneralHelper, CategoryConstruction, CategoryFactoryWorker,
	CategoryLoaderUnloader, CategoryCleaningStaff, CategoryPainter,
	CategoryElectricianHelper, CategoryPlumberHelper, CategoryGardening,
	CategoryCarpenter, CategoryWelder, CategoryMason, CategoryTileFitter,
	CategoryScaffolder, CategorySecurityGuard, CategoryWarehouseWorker,
	CategoryDriver, CategoryHousekeeping, CategoryCook, CategoryOther,
}

type UserLocation struct {
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// User is a person on the platform. Labourer-specific fields (Category,
// HourlyRate, availability, rating aggregate) are only meaningful when
// Role == labourer.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email    string             `json:"email" bson:"email" validate:"required,email"`
	Password string             `json:"-" bson:"password"`
	Role     UserRole           `json:"role" bson:"role" validate:"required"`
	Phone    string             `json:"phone" bson:"phone"`
	Address  string             `json:"address" bson:"address"`

	Category     LabourCategory `json:"category,omitempty" bson:"category,omitempty"`
	HourlyRate   float64        `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"`
	Experience   int            `json:"experience" bson:"experience"`
	IsAvailable  bool           `json:"is_available" bson:"is_available"`
	Rating       float64        `json:"rating" bson:"rating"`
	TotalReviews int            `json:"total_reviews" bson:"total_reviews"`
	Location     *UserLocation  `json:"location,omitempty" bson:"location,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// IsLabourer reports whether the user offers work for hire.
func (u *User) IsLabourer() bool {
	return u.Role == UserRoleLabourer
}

// PublicUser is the reference data exposed when a user is embedded in a
// booking or review response. Dangling references render as "Unknown".
type PublicUser struct {
	ID       primitive.ObjectID `json:"id,omitempty"`
	Name     string             `json:"name"`
	Email    string             `json:"email,omitempty"`
	Phone    string             `json:"phone,omitempty"`
	Category LabourCategory     `json:"category,omitempty"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Category: u.Category,
	}
}

// UnknownUser is the placeholder returned when a referenced user no longer
// exists.
func UnknownUser() *PublicUser {
	return &PublicUser{Name: "Unknown"}
}

func IsValidCategory(c LabourCategory) bool {
	for _, valid := range LabourCategories {
		if c == valid {
			return true
		}
	}
	return false
}
