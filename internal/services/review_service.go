package services

import (
	"context"
	"fmt"
	"math"

	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	Create(ctx context.Context, employerID primitive.ObjectID, req *validators.ReviewCreateRequest) (*models.Review, error)
	ListForLabourer(ctx context.Context, labourerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ReviewDetail, *utils.PaginationMeta, error)
	RecomputeRating(ctx context.Context, labourerID primitive.ObjectID)
}

type reviewService struct {
	reviewRepo  interfaces.ReviewRepository
	bookingRepo interfaces.BookingRepository
	userRepo    interfaces.UserRepository
	logger      *logger.Logger
}

func NewReviewService(
	reviewRepo interfaces.ReviewRepository,
	bookingRepo interfaces.BookingRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (s *reviewService) Create(ctx context.Context, employerID primitive.ObjectID, req *validators.ReviewCreateRequest) (*models.Review, error) {
	bookingID, err := primitive.ObjectIDFromHex(req.Booking)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id: %w", utils.ErrNotFound)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// A booking another employer owns is indistinguishable from a missing
	// one; ownership is not leaked through a distinct error.
	if booking.EmployerID != employerID {
		return nil, fmt.Errorf("booking %s: %w", bookingID.Hex(), utils.ErrNotFound)
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, fmt.Errorf("booking %s is not completed: %w", bookingID.Hex(), utils.ErrNotFound)
	}

	if existing, err := s.reviewRepo.GetByBookingID(ctx, bookingID); err == nil && existing != nil {
		return nil, fmt.Errorf("booking %s already reviewed: %w", bookingID.Hex(), utils.ErrConflict)
	}

	review := &models.Review{
		BookingID:  bookingID,
		EmployerID: employerID,
		LabourerID: booking.LabourerID,
		Rating:     req.Rating,
		Comment:    validators.SanitizeInput(req.Comment),
	}

	// The unique index on the booking reference catches the race the
	// pre-check above cannot.
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.LogReviewEvent(booking.LabourerID, "created", map[string]interface{}{
		"review_id":  review.ID.Hex(),
		"booking_id": bookingID.Hex(),
		"rating":     req.Rating,
	})

	s.RecomputeRating(ctx, booking.LabourerID)

	return review, nil
}

// RecomputeRating rescans every review for the labourer and writes back the
// mean rounded to one decimal place. A recompute failure is logged but never
// surfaced: the review itself has already been accepted.
func (s *reviewService) RecomputeRating(ctx context.Context, labourerID primitive.ObjectID) {
	reviews, err := s.reviewRepo.GetAllByLabourer(ctx, labourerID)
	if err != nil {
		s.logger.WithError(err).WithField("labourer_id", labourerID.Hex()).
			Error("Failed to load reviews for rating recompute")
		return
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		mean := float64(sum) / float64(len(reviews))
		rating = math.Round(mean*10) / 10
	}

	if err := s.userRepo.UpdateRating(ctx, labourerID, rating, len(reviews)); err != nil {
		s.logger.WithError(err).WithField("labourer_id", labourerID.Hex()).
			Error("Failed to write back labourer rating")
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"labourer_id":   labourerID.Hex(),
		"rating":        rating,
		"total_reviews": len(reviews),
	}).Debug("Labourer rating recomputed")
}

func (s *reviewService) ListForLabourer(ctx context.Context, labourerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ReviewDetail, *utils.PaginationMeta, error) {
	reviews, total, err := s.reviewRepo.GetByLabourer(ctx, labourerID, params)
	if err != nil {
		return nil, nil, err
	}

	details := make([]*models.ReviewDetail, 0, len(reviews))
	for _, review := range reviews {
		details = append(details, &models.ReviewDetail{
			Review:   review,
			Employer: s.resolveReviewer(ctx, review.EmployerID),
		})
	}

	return details, utils.CreatePaginationMeta(params, total), nil
}

func (s *reviewService) resolveReviewer(ctx context.Context, id primitive.ObjectID) *models.PublicUser {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return models.UnknownUser()
	}
	return user.Public()
}
