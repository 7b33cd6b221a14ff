package interfaces

import (
	"context"

	"labourlink/internal/models"
	"labourlink/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	// Create fails with utils.ErrConflict when a review already exists for
	// the booking (unique index on the booking reference).
	Create(ctx context.Context, review *models.Review) error
	GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Review, error)

	GetByLabourer(ctx context.Context, labourerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Review, int64, error)
	GetAllByLabourer(ctx context.Context, labourerID primitive.ObjectID) ([]*models.Review, error)

	// Statistics
	GetTotalCount(ctx context.Context) (int64, error)
}
