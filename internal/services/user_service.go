package services

import (
	"context"

	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *validators.UpdateProfileRequest) (*models.User, error)
	SearchLabourers(ctx context.Context, filter *interfaces.LabourerFilter) ([]*models.User, int64, error)
	GetLabourer(ctx context.Context, labourerID primitive.ObjectID) (*models.User, error)
}

type userService struct {
	userRepo interfaces.UserRepository
	logger   *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, log *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *validators.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != "" {
		updates["name"] = validators.SanitizeInput(req.Name)
	}
	if req.Phone != "" {
		updates["phone"] = utils.NormalizePhone(req.Phone)
	}
	if req.Address != "" {
		updates["address"] = validators.SanitizeInput(req.Address)
	}
	if req.Location != nil {
		updates["location"] = req.Location
	}

	// Labourer-only fields are silently ignored for employers rather than
	// rejected, matching partial-update semantics.
	if user.IsLabourer() {
		if req.Category != "" {
			updates["category"] = models.LabourCategory(req.Category)
		}
		if req.HourlyRate != nil {
			updates["hourly_rate"] = *req.HourlyRate
		}
		if req.Experience != nil {
			updates["experience"] = *req.Experience
		}
		if req.IsAvailable != nil {
			updates["is_available"] = *req.IsAvailable
		}
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) SearchLabourers(ctx context.Context, filter *interfaces.LabourerFilter) ([]*models.User, int64, error) {
	return s.userRepo.SearchLabourers(ctx, filter)
}

func (s *userService) GetLabourer(ctx context.Context, labourerID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetLabourerByID(ctx, labourerID)
}
