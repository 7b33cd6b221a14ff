package services

import (
	"context"
	"fmt"
	"sort"

	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"
	"labourlink/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger() *logger.Logger {
	log, _ := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	return log
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users           map[primitive.ObjectID]*models.User
	updateRatingErr error

	lastRating       float64
	lastTotalReviews int
	ratingUpdates    int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return fmt.Errorf("email taken: %w", utils.ErrConflict)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), utils.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id.Hex(), utils.ErrNotFound)
	}
	if role, ok := updates["role"].(models.UserRole); ok {
		user.Role = role
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = name
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("email %s: %w", email, utils.ErrNotFound)
}

func (f *fakeUserRepo) GetLabourerByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok || !user.IsLabourer() {
		return nil, fmt.Errorf("labourer %s: %w", id.Hex(), utils.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserRepo) SearchLabourers(ctx context.Context, filter *interfaces.LabourerFilter) ([]*models.User, int64, error) {
	var results []*models.User
	for _, user := range f.users {
		if !user.IsLabourer() || !user.IsAvailable {
			continue
		}
		if filter.Category != "" && string(user.Category) != filter.Category {
			continue
		}
		results = append(results, user)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Rating > results[j].Rating })
	return results, int64(len(results)), nil
}

func (f *fakeUserRepo) UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64, totalReviews int) error {
	if f.updateRatingErr != nil {
		return f.updateRatingErr
	}
	f.lastRating = rating
	f.lastTotalReviews = totalReviews
	f.ratingUpdates++
	if user, ok := f.users[id]; ok {
		user.Rating = rating
		user.TotalReviews = totalReviews
	}
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, int64, error) {
	var results []*models.User
	for _, user := range f.users {
		if role != "" && user.Role != role {
			continue
		}
		results = append(results, user)
	}
	return results, int64(len(results)), nil
}

func (f *fakeUserRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) GetCountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) GetLabourerCountByCategory(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, user := range f.users {
		if user.IsLabourer() {
			counts[string(user.Category)]++
		}
	}
	return counts, nil
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
	for _, booking := range bookings {
		repo.bookings[booking.ID] = booking
	}
	return repo
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
	}
	booking.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter *interfaces.BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var matched []*models.Booking
	for _, booking := range f.bookings {
		if filter.EmployerID != nil && booking.EmployerID != *filter.EmployerID {
			continue
		}
		if filter.LabourerID != nil && booking.LabourerID != *filter.LabourerID {
			continue
		}
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		matched = append(matched, booking)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := params.GetSkip()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeBookingRepo) GetByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]*models.Booking, error) {
	var results []*models.Booking
	for _, booking := range f.bookings {
		if booking.EmployerID == employerID {
			results = append(results, booking)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})
	return results, nil
}

func (f *fakeBookingRepo) GetRecent(ctx context.Context, limit int) ([]*models.Booking, error) {
	var results []*models.Booking
	for _, booking := range f.bookings {
		results = append(results, booking)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (f *fakeBookingRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeReviewRepo is an in-memory ReviewRepository with the same unique
// booking constraint as the real one.
type fakeReviewRepo struct {
	reviews   map[primitive.ObjectID]*models.Review
	getAllErr error
}

func newFakeReviewRepo(reviews ...*models.Review) *fakeReviewRepo {
	repo := &fakeReviewRepo{reviews: make(map[primitive.ObjectID]*models.Review)}
	for _, review := range reviews {
		if review.ID.IsZero() {
			review.ID = primitive.NewObjectID()
		}
		repo.reviews[review.ID] = review
	}
	return repo
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	for _, existing := range f.reviews {
		if existing.BookingID == review.BookingID {
			return fmt.Errorf("booking already reviewed: %w", utils.ErrConflict)
		}
	}
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Review, error) {
	for _, review := range f.reviews {
		if review.BookingID == bookingID {
			return review, nil
		}
	}
	return nil, fmt.Errorf("review for booking %s: %w", bookingID.Hex(), utils.ErrNotFound)
}

func (f *fakeReviewRepo) GetByLabourer(ctx context.Context, labourerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Review, int64, error) {
	all, err := f.GetAllByLabourer(ctx, labourerID)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	start := params.GetSkip()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeReviewRepo) GetAllByLabourer(ctx context.Context, labourerID primitive.ObjectID) ([]*models.Review, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	var results []*models.Review
	for _, review := range f.reviews {
		if review.LabourerID == labourerID {
			results = append(results, review)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (f *fakeReviewRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(f.reviews)), nil
}

// fakeNotifier records notifications instead of sending them.
type fakeNotifier struct {
	notified int
}

func (f *fakeNotifier) NotifyBookingCreated(booking *models.Booking, employer, labourer *models.User) {
	f.notified++
}

func (f *fakeNotifier) Close() {}
