package interfaces

import (
	"context"

	"labourlink/internal/models"
	"labourlink/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LabourerFilter struct {
	Category string
	City     string
}

type UserRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Authentication operations
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Labourer lookups
	GetLabourerByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SearchLabourers(ctx context.Context, filter *LabourerFilter) ([]*models.User, int64, error)

	// Rating aggregate write-back
	UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64, totalReviews int) error

	// Listing
	List(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, int64, error)

	// Statistics
	GetTotalCount(ctx context.Context) (int64, error)
	GetCountByRole(ctx context.Context, role models.UserRole) (int64, error)
	GetLabourerCountByCategory(ctx context.Context) (map[string]int64, error)
}
