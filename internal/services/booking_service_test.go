package services

import (
	"context"
	"testing"
	"time"

	"labourlink/internal/models"
	"labourlink/internal/utils"
	"labourlink/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBookingFixture() (*models.User, *models.User, *validators.BookingCreateRequest) {
	employer := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Asha Patel",
		Email: "asha@example.com",
		Role:  models.UserRoleEmployer,
		Phone: "+919800000001",
	}
	labourer := &models.User{
		ID:          primitive.NewObjectID(),
		Name:        "Ravi Kumar",
		Email:       "ravi@example.com",
		Role:        models.UserRoleLabourer,
		Phone:       "+919800000002",
		Category:    models.CategoryPainter,
		HourlyRate:  200,
		IsAvailable: true,
	}
	req := &validators.BookingCreateRequest{
		Date:     "2026-09-01",
		TimeSlot: models.TimeSlot{StartTime: "09:00", EndTime: "12:00"},
		Location: models.BookingLocation{Address: "14 MG Road", City: "Pune"},
		Notes:    "Bring own ladder",
		Duration: 3,
	}
	return employer, labourer, req
}

func TestCreateBookingFixesTotalAmount(t *testing.T) {
	employer, labourer, req := newBookingFixture()
	userRepo := newFakeUserRepo(employer, labourer)
	bookingRepo := newFakeBookingRepo()
	notifier := &fakeNotifier{}

	svc := NewBookingService(bookingRepo, userRepo, notifier, newTestLogger())

	detail, err := svc.Create(context.Background(), employer.ID, labourer.ID, req)
	require.NoError(t, err)

	assert.Equal(t, 600.0, detail.TotalAmount)
	assert.Equal(t, models.BookingStatusPending, detail.Status)
	assert.Equal(t, models.PaymentStatusPending, detail.PaymentStatus)
	assert.Equal(t, "Bring own ladder", detail.Notes)
	assert.Equal(t, 1, notifier.notified)

	// A later rate change must not touch the stored amount.
	labourer.HourlyRate = 500
	stored, err := bookingRepo.GetByID(context.Background(), detail.ID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, stored.TotalAmount)
}

func TestCreateBookingLabourerUnavailable(t *testing.T) {
	employer, labourer, req := newBookingFixture()
	labourer.IsAvailable = false
	userRepo := newFakeUserRepo(employer, labourer)

	svc := NewBookingService(newFakeBookingRepo(), userRepo, &fakeNotifier{}, newTestLogger())

	_, err := svc.Create(context.Background(), employer.ID, labourer.ID, req)
	assert.True(t, utils.IsUnavailable(err))
}

func TestCreateBookingLabourerMissing(t *testing.T) {
	employer, _, req := newBookingFixture()
	userRepo := newFakeUserRepo(employer)

	svc := NewBookingService(newFakeBookingRepo(), userRepo, &fakeNotifier{}, newTestLogger())

	_, err := svc.Create(context.Background(), employer.ID, primitive.NewObjectID(), req)
	assert.True(t, utils.IsNotFound(err))
}

func TestCreateBookingEmployerRoleRejectedAsLabourer(t *testing.T) {
	employer, labourer, req := newBookingFixture()
	userRepo := newFakeUserRepo(employer, labourer)

	svc := NewBookingService(newFakeBookingRepo(), userRepo, &fakeNotifier{}, newTestLogger())

	// Booking another employer as the labourer is a labourer-lookup miss.
	_, err := svc.Create(context.Background(), labourer.ID, employer.ID, req)
	assert.True(t, utils.IsNotFound(err))
}

func TestSetStatusTransitions(t *testing.T) {
	employerID := primitive.NewObjectID()
	labourerID := primitive.NewObjectID()

	cases := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		actorID primitive.ObjectID
		wantErr func(error) bool
	}{
		{"labourer confirms pending", models.BookingStatusPending, models.BookingStatusConfirmed, labourerID, nil},
		{"employer cannot confirm", models.BookingStatusPending, models.BookingStatusConfirmed, employerID, utils.IsInvalidTransition},
		{"employer cancels pending", models.BookingStatusPending, models.BookingStatusCancelled, employerID, nil},
		{"labourer cancels pending", models.BookingStatusPending, models.BookingStatusCancelled, labourerID, nil},
		{"labourer starts confirmed", models.BookingStatusConfirmed, models.BookingStatusOngoing, labourerID, nil},
		{"employer cannot start", models.BookingStatusConfirmed, models.BookingStatusOngoing, employerID, utils.IsInvalidTransition},
		{"employer completes ongoing", models.BookingStatusOngoing, models.BookingStatusCompleted, employerID, nil},
		{"labourer cannot complete", models.BookingStatusOngoing, models.BookingStatusCompleted, labourerID, utils.IsInvalidTransition},
		{"no cancel once ongoing", models.BookingStatusOngoing, models.BookingStatusCancelled, employerID, utils.IsInvalidTransition},
		{"completed is terminal", models.BookingStatusCompleted, models.BookingStatusOngoing, labourerID, utils.IsInvalidTransition},
		{"cancelled is terminal", models.BookingStatusCancelled, models.BookingStatusConfirmed, labourerID, utils.IsInvalidTransition},
		{"no skipping to completed", models.BookingStatusPending, models.BookingStatusCompleted, employerID, utils.IsInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := &models.Booking{
				ID:         primitive.NewObjectID(),
				EmployerID: employerID,
				LabourerID: labourerID,
				Status:     tc.from,
			}
			bookingRepo := newFakeBookingRepo(booking)
			svc := NewBookingService(bookingRepo, newFakeUserRepo(), &fakeNotifier{}, newTestLogger())

			updated, err := svc.SetStatus(context.Background(), booking.ID, tc.actorID, tc.to)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
			} else {
				assert.True(t, tc.wantErr(err), "got %v", err)
				stored, _ := bookingRepo.GetByID(context.Background(), booking.ID)
				assert.Equal(t, tc.from, stored.Status, "status must stay unchanged on rejection")
			}
		})
	}
}

func TestSetStatusNonPartyForbidden(t *testing.T) {
	booking := &models.Booking{
		ID:         primitive.NewObjectID(),
		EmployerID: primitive.NewObjectID(),
		LabourerID: primitive.NewObjectID(),
		Status:     models.BookingStatusPending,
	}
	bookingRepo := newFakeBookingRepo(booking)
	svc := NewBookingService(bookingRepo, newFakeUserRepo(), &fakeNotifier{}, newTestLogger())

	_, err := svc.SetStatus(context.Background(), booking.ID, primitive.NewObjectID(), models.BookingStatusConfirmed)
	assert.True(t, utils.IsForbidden(err))

	stored, _ := bookingRepo.GetByID(context.Background(), booking.ID)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestSetStatusMissingBooking(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeUserRepo(), &fakeNotifier{}, newTestLogger())

	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), models.BookingStatusConfirmed)
	assert.True(t, utils.IsNotFound(err))
}

func TestListScopesToRequesterRole(t *testing.T) {
	employer, labourer, _ := newBookingFixture()
	other := &models.User{ID: primitive.NewObjectID(), Role: models.UserRoleEmployer}

	mine := &models.Booking{
		ID: primitive.NewObjectID(), EmployerID: employer.ID, LabourerID: labourer.ID,
		Status: models.BookingStatusPending, CreatedAt: time.Now(),
	}
	theirs := &models.Booking{
		ID: primitive.NewObjectID(), EmployerID: other.ID, LabourerID: primitive.NewObjectID(),
		Status: models.BookingStatusPending, CreatedAt: time.Now().Add(-time.Hour),
	}

	bookingRepo := newFakeBookingRepo(mine, theirs)
	userRepo := newFakeUserRepo(employer, labourer, other)
	svc := NewBookingService(bookingRepo, userRepo, &fakeNotifier{}, newTestLogger())

	params := &utils.PaginationParams{Page: 1, Limit: 10, Sort: "created_at", Order: "desc"}

	asEmployer, meta, err := svc.List(context.Background(), employer.ID, models.UserRoleEmployer, "", params)
	require.NoError(t, err)
	require.Len(t, asEmployer, 1)
	assert.Equal(t, mine.ID, asEmployer[0].ID)
	assert.Equal(t, int64(1), meta.Total)

	asLabourer, _, err := svc.List(context.Background(), labourer.ID, models.UserRoleLabourer, "", params)
	require.NoError(t, err)
	require.Len(t, asLabourer, 1)
	assert.Equal(t, mine.ID, asLabourer[0].ID)

	asAdmin, adminMeta, err := svc.List(context.Background(), primitive.NewObjectID(), models.UserRoleAdmin, "", params)
	require.NoError(t, err)
	assert.Len(t, asAdmin, 2)
	assert.Equal(t, int64(2), adminMeta.Total)
}

func TestListStatusFilterAndPagination(t *testing.T) {
	employer, labourer, _ := newBookingFixture()
	bookingRepo := newFakeBookingRepo()
	for i := 0; i < 5; i++ {
		status := models.BookingStatusPending
		if i%2 == 0 {
			status = models.BookingStatusCompleted
		}
		bookingRepo.Create(context.Background(), &models.Booking{
			EmployerID: employer.ID,
			LabourerID: labourer.ID,
			Status:     status,
			CreatedAt:  time.Now().Add(time.Duration(-i) * time.Hour),
		})
	}

	userRepo := newFakeUserRepo(employer, labourer)
	svc := NewBookingService(bookingRepo, userRepo, &fakeNotifier{}, newTestLogger())

	params := &utils.PaginationParams{Page: 1, Limit: 2, Sort: "created_at", Order: "desc"}
	completed, meta, err := svc.List(context.Background(), employer.ID, models.UserRoleEmployer, models.BookingStatusCompleted, params)
	require.NoError(t, err)
	assert.Len(t, completed, 2)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 1, meta.CurrentPage)
}

func TestGetByIDAuthorization(t *testing.T) {
	employer, labourer, _ := newBookingFixture()
	booking := &models.Booking{
		ID:         primitive.NewObjectID(),
		EmployerID: employer.ID,
		LabourerID: labourer.ID,
		Status:     models.BookingStatusPending,
	}
	bookingRepo := newFakeBookingRepo(booking)
	userRepo := newFakeUserRepo(employer, labourer)
	svc := NewBookingService(bookingRepo, userRepo, &fakeNotifier{}, newTestLogger())

	detail, err := svc.GetByID(context.Background(), booking.ID, employer.ID, models.UserRoleEmployer)
	require.NoError(t, err)
	assert.Equal(t, employer.Name, detail.Employer.Name)
	assert.Equal(t, labourer.Name, detail.Labourer.Name)

	_, err = svc.GetByID(context.Background(), booking.ID, primitive.NewObjectID(), models.UserRoleEmployer)
	assert.True(t, utils.IsForbidden(err))

	_, err = svc.GetByID(context.Background(), booking.ID, primitive.NewObjectID(), models.UserRoleAdmin)
	assert.NoError(t, err, "admins may view any booking")

	_, err = svc.GetByID(context.Background(), primitive.NewObjectID(), employer.ID, models.UserRoleEmployer)
	assert.True(t, utils.IsNotFound(err))
}

func TestResolveBookingUnknownParty(t *testing.T) {
	employer, labourer, _ := newBookingFixture()
	booking := &models.Booking{
		ID:         primitive.NewObjectID(),
		EmployerID: employer.ID,
		LabourerID: labourer.ID,
		Status:     models.BookingStatusPending,
	}
	// Labourer account was deleted after the booking was made.
	userRepo := newFakeUserRepo(employer)
	svc := NewBookingService(newFakeBookingRepo(booking), userRepo, &fakeNotifier{}, newTestLogger())

	detail, err := svc.GetByID(context.Background(), booking.ID, employer.ID, models.UserRoleEmployer)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", detail.Labourer.Name)
}
