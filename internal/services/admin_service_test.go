package services

import (
	"context"
	"testing"
	"time"

	"labourlink/internal/models"
	"labourlink/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateUserRole(t *testing.T) {
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Asha Patel",
		Email: "asha@example.com",
		Role:  models.UserRoleEmployer,
	}
	userRepo := newFakeUserRepo(user)
	svc := NewAdminService(userRepo, newFakeBookingRepo(), newFakeReviewRepo(), newTestLogger())

	updated, err := svc.UpdateUserRole(context.Background(), user.ID, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, updated.Role)

	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, stored.Role)
}

func TestUpdateUserRoleMissingUser(t *testing.T) {
	svc := NewAdminService(newFakeUserRepo(), newFakeBookingRepo(), newFakeReviewRepo(), newTestLogger())

	_, err := svc.UpdateUserRole(context.Background(), primitive.NewObjectID(), models.UserRoleLabourer)
	assert.True(t, utils.IsNotFound(err))
}

func TestGetDashboardStats(t *testing.T) {
	employer := &models.User{ID: primitive.NewObjectID(), Name: "Asha Patel", Role: models.UserRoleEmployer}
	mason := &models.User{ID: primitive.NewObjectID(), Name: "Ravi Kumar", Role: models.UserRoleLabourer, Category: models.CategoryMason}
	painter := &models.User{ID: primitive.NewObjectID(), Name: "Sunil Rao", Role: models.UserRoleLabourer, Category: models.CategoryPainter}
	userRepo := newFakeUserRepo(employer, mason, painter)

	bookingRepo := newFakeBookingRepo(
		&models.Booking{ID: primitive.NewObjectID(), EmployerID: employer.ID, LabourerID: mason.ID, Status: models.BookingStatusPending, CreatedAt: time.Now()},
		&models.Booking{ID: primitive.NewObjectID(), EmployerID: employer.ID, LabourerID: painter.ID, Status: models.BookingStatusCompleted, CreatedAt: time.Now().Add(-time.Hour)},
	)
	reviewRepo := newFakeReviewRepo(
		&models.Review{BookingID: primitive.NewObjectID(), EmployerID: employer.ID, LabourerID: painter.ID, Rating: 5},
	)

	svc := NewAdminService(userRepo, bookingRepo, reviewRepo, newTestLogger())

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalEmployers)
	assert.Equal(t, int64(2), stats.TotalLabourers)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.PendingBookings)
	assert.Equal(t, int64(1), stats.CompletedBookings)
	assert.Equal(t, int64(1), stats.TotalReviews)
	assert.Equal(t, int64(1), stats.LabourersByCategory[string(models.CategoryMason)])
	assert.Len(t, stats.RecentBookings, 2)
	assert.Equal(t, employer.Name, stats.RecentBookings[0].Employer.Name)
}
