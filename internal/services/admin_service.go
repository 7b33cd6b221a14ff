package services

import (
	"context"
	"fmt"

	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"
	"labourlink/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardStats is the admin overview: platform-wide counts, the labourer
// supply broken down by trade, and the most recent bookings.
type DashboardStats struct {
	TotalUsers          int64                   `json:"total_users"`
	TotalEmployers      int64                   `json:"total_employers"`
	TotalLabourers      int64                   `json:"total_labourers"`
	TotalBookings       int64                   `json:"total_bookings"`
	PendingBookings     int64                   `json:"pending_bookings"`
	CompletedBookings   int64                   `json:"completed_bookings"`
	TotalReviews        int64                   `json:"total_reviews"`
	LabourersByCategory map[string]int64        `json:"labourers_by_category"`
	RecentBookings      []*models.BookingDetail `json:"recent_bookings"`
}

type AdminService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, *utils.PaginationMeta, error)
	UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role models.UserRole) (*models.User, error)
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
	DeleteBooking(ctx context.Context, bookingID primitive.ObjectID) error
}

type adminService struct {
	userRepo    interfaces.UserRepository
	bookingRepo interfaces.BookingRepository
	reviewRepo  interfaces.ReviewRepository
	logger      *logger.Logger
}

func NewAdminService(
	userRepo interfaces.UserRepository,
	bookingRepo interfaces.BookingRepository,
	reviewRepo interfaces.ReviewRepository,
	log *logger.Logger,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		logger:      log,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.GetTotalCount(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalEmployers, err = s.userRepo.GetCountByRole(ctx, models.UserRoleEmployer); err != nil {
		return nil, fmt.Errorf("failed to count employers: %w", err)
	}
	if stats.TotalLabourers, err = s.userRepo.GetCountByRole(ctx, models.UserRoleLabourer); err != nil {
		return nil, fmt.Errorf("failed to count labourers: %w", err)
	}
	if stats.TotalBookings, err = s.bookingRepo.GetTotalCount(ctx); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if stats.PendingBookings, err = s.bookingRepo.GetCountByStatus(ctx, models.BookingStatusPending); err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	if stats.CompletedBookings, err = s.bookingRepo.GetCountByStatus(ctx, models.BookingStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to count completed bookings: %w", err)
	}
	if stats.TotalReviews, err = s.reviewRepo.GetTotalCount(ctx); err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}
	if stats.LabourersByCategory, err = s.userRepo.GetLabourerCountByCategory(ctx); err != nil {
		return nil, fmt.Errorf("failed to aggregate labourer categories: %w", err)
	}

	recent, err := s.bookingRepo.GetRecent(ctx, utils.RecentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}
	for _, booking := range recent {
		stats.RecentBookings = append(stats.RecentBookings, &models.BookingDetail{
			Booking:  booking,
			Employer: s.resolveUserRef(ctx, booking.EmployerID),
			Labourer: s.resolveUserRef(ctx, booking.LabourerID),
		})
	}

	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, *utils.PaginationMeta, error) {
	users, total, err := s.userRepo.List(ctx, role, params)
	if err != nil {
		return nil, nil, err
	}
	return users, utils.CreatePaginationMeta(params, total), nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role models.UserRole) (*models.User, error) {
	if err := s.userRepo.Update(ctx, userID, map[string]interface{}{"role": role}); err != nil {
		return nil, err
	}

	s.logger.WithUserID(userID).WithField("role", string(role)).Info("User role changed by admin")

	return s.userRepo.GetByID(ctx, userID)
}

func (s *adminService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.WithUserID(userID).Info("User deleted by admin")
	return nil
}

func (s *adminService) DeleteBooking(ctx context.Context, bookingID primitive.ObjectID) error {
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return err
	}
	s.logger.WithBookingID(bookingID).Info("Booking deleted by admin")
	return nil
}

func (s *adminService) resolveUserRef(ctx context.Context, id primitive.ObjectID) *models.PublicUser {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return models.UnknownUser()
	}
	return user.Public()
}
