package interfaces

import (
	"context"

	"labourlink/internal/models"
	"labourlink/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingFilter scopes a booking listing. A nil EmployerID/LabourerID leaves
// that side unrestricted; admins list with both unset.
type BookingFilter struct {
	EmployerID *primitive.ObjectID
	LabourerID *primitive.ObjectID
	Status     models.BookingStatus
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, filter *BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	GetByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]*models.Booking, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Booking, error)

	// Statistics
	GetTotalCount(ctx context.Context) (int64, error)
	GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
}
