package services

import (
	"context"
	"fmt"

	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	Create(ctx context.Context, employerID, labourerID primitive.ObjectID, req *validators.BookingCreateRequest) (*models.BookingDetail, error)
	SetStatus(ctx context.Context, bookingID, actorID primitive.ObjectID, status models.BookingStatus) (*models.Booking, error)
	List(ctx context.Context, requesterID primitive.ObjectID, requesterRole models.UserRole, status models.BookingStatus, params *utils.PaginationParams) ([]*models.BookingDetail, *utils.PaginationMeta, error)
	GetByID(ctx context.Context, bookingID, requesterID primitive.ObjectID, requesterRole models.UserRole) (*models.BookingDetail, error)
	GetEmployerDashboard(ctx context.Context, employerID primitive.ObjectID) (*EmployerDashboard, error)
}

type bookingService struct {
	bookingRepo interfaces.BookingRepository
	userRepo    interfaces.UserRepository
	notifier    NotificationService
	logger      *logger.Logger
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	userRepo interfaces.UserRepository,
	notifier NotificationService,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      log,
	}
}

// statusTransition keys the transition table by the edge being attempted.
type statusTransition struct {
	from models.BookingStatus
	to   models.BookingStatus
}

// allowedTransitions gates every status change by the actor's side of the
// booking: the labourer accepts and starts work, the employer signs off
// completion, and either party may cancel before work starts.
var allowedTransitions = map[statusTransition][]models.UserRole{
	{models.BookingStatusPending, models.BookingStatusConfirmed}:   {models.UserRoleLabourer},
	{models.BookingStatusPending, models.BookingStatusCancelled}:   {models.UserRoleEmployer, models.UserRoleLabourer},
	{models.BookingStatusConfirmed, models.BookingStatusOngoing}:   {models.UserRoleLabourer},
	{models.BookingStatusConfirmed, models.BookingStatusCancelled}: {models.UserRoleEmployer, models.UserRoleLabourer},
	{models.BookingStatusOngoing, models.BookingStatusCompleted}:   {models.UserRoleEmployer},
}

// CanTransition reports whether the given party role may move a booking from
// one status to another.
func CanTransition(from, to models.BookingStatus, partyRole models.UserRole) bool {
	roles, ok := allowedTransitions[statusTransition{from: from, to: to}]
	if !ok {
		return false
	}
	for _, role := range roles {
		if role == partyRole {
			return true
		}
	}
	return false
}

func (s *bookingService) Create(ctx context.Context, employerID, labourerID primitive.ObjectID, req *validators.BookingCreateRequest) (*models.BookingDetail, error) {
	labourer, err := s.userRepo.GetLabourerByID(ctx, labourerID)
	if err != nil {
		return nil, err
	}
	if !labourer.IsAvailable {
		return nil, fmt.Errorf("labourer %s: %w", labourerID.Hex(), utils.ErrUnavailable)
	}

	// The amount is fixed from the labourer's rate at this moment and never
	// recomputed, even if the rate changes later.
	totalAmount := labourer.HourlyRate * req.Duration

	booking := &models.Booking{
		EmployerID:    employerID,
		LabourerID:    labourerID,
		Date:          validators.ParseBookingDate(req.Date),
		TimeSlot:      req.TimeSlot,
		Location:      req.Location,
		Description:   validators.SanitizeInput(req.Description),
		Notes:         validators.SanitizeInput(req.Notes),
		Duration:      req.Duration,
		TotalAmount:   totalAmount,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(booking.ID, "created", map[string]interface{}{
		"employer_id":  employerID.Hex(),
		"labourer_id":  labourerID.Hex(),
		"total_amount": totalAmount,
	})

	employer, err := s.userRepo.GetByID(ctx, employerID)
	if err != nil {
		employer = nil
	}

	s.notifier.NotifyBookingCreated(booking, employer, labourer)

	detail := &models.BookingDetail{
		Booking:  booking,
		Employer: publicOrUnknown(employer),
		Labourer: labourer.Public(),
	}

	return detail, nil
}

func (s *bookingService) SetStatus(ctx context.Context, bookingID, actorID primitive.ObjectID, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Authorization first: only the booking's own parties may touch its
	// lifecycle, regardless of the transition requested.
	var partyRole models.UserRole
	switch actorID {
	case booking.EmployerID:
		partyRole = models.UserRoleEmployer
	case booking.LabourerID:
		partyRole = models.UserRoleLabourer
	default:
		return nil, fmt.Errorf("user %s is not a party to booking %s: %w",
			actorID.Hex(), bookingID.Hex(), utils.ErrForbiddenAccess)
	}

	if !CanTransition(booking.Status, status, partyRole) {
		return nil, fmt.Errorf("cannot move booking from %s to %s as %s: %w",
			booking.Status, status, partyRole, utils.ErrInvalidTransition)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(bookingID, "status_changed", map[string]interface{}{
		"from":     string(booking.Status),
		"to":       string(status),
		"actor_id": actorID.Hex(),
	})

	booking.Status = status
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, requesterID primitive.ObjectID, requesterRole models.UserRole, status models.BookingStatus, params *utils.PaginationParams) ([]*models.BookingDetail, *utils.PaginationMeta, error) {
	filter := &interfaces.BookingFilter{Status: status}

	switch requesterRole {
	case models.UserRoleEmployer:
		filter.EmployerID = &requesterID
	case models.UserRoleLabourer:
		filter.LabourerID = &requesterID
	}
	// Admins list unrestricted.

	bookings, total, err := s.bookingRepo.List(ctx, filter, params)
	if err != nil {
		return nil, nil, err
	}

	details := make([]*models.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, s.resolveBooking(ctx, booking))
	}

	return details, utils.CreatePaginationMeta(params, total), nil
}

func (s *bookingService) GetByID(ctx context.Context, bookingID, requesterID primitive.ObjectID, requesterRole models.UserRole) (*models.BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsParty(requesterID) && requesterRole != models.UserRoleAdmin {
		return nil, fmt.Errorf("user %s may not view booking %s: %w",
			requesterID.Hex(), bookingID.Hex(), utils.ErrForbiddenAccess)
	}

	return s.resolveBooking(ctx, booking), nil
}

type EmployerDashboard struct {
	TotalBookings     int                     `json:"total_bookings"`
	PendingBookings   int                     `json:"pending_bookings"`
	CompletedBookings int                     `json:"completed_bookings"`
	TotalSpent        float64                 `json:"total_spent"`
	RecentBookings    []*models.BookingDetail `json:"recent_bookings"`
}

func (s *bookingService) GetEmployerDashboard(ctx context.Context, employerID primitive.ObjectID) (*EmployerDashboard, error) {
	bookings, err := s.bookingRepo.GetByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	dashboard := &EmployerDashboard{}
	for _, booking := range bookings {
		dashboard.TotalBookings++
		switch booking.Status {
		case models.BookingStatusPending:
			dashboard.PendingBookings++
		case models.BookingStatusCompleted:
			dashboard.CompletedBookings++
			dashboard.TotalSpent += booking.TotalAmount
		}
	}

	recent := bookings
	if len(recent) > utils.RecentBookingsLimit {
		recent = recent[:utils.RecentBookingsLimit]
	}
	for _, booking := range recent {
		dashboard.RecentBookings = append(dashboard.RecentBookings, s.resolveBooking(ctx, booking))
	}

	return dashboard, nil
}

// resolveBooking attaches the display data of both parties, substituting
// "Unknown" for dangling references.
func (s *bookingService) resolveBooking(ctx context.Context, booking *models.Booking) *models.BookingDetail {
	return &models.BookingDetail{
		Booking:  booking,
		Employer: s.resolveUserRef(ctx, booking.EmployerID),
		Labourer: s.resolveUserRef(ctx, booking.LabourerID),
	}
}

func (s *bookingService) resolveUserRef(ctx context.Context, id primitive.ObjectID) *models.PublicUser {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return models.UnknownUser()
	}
	return user.Public()
}

func publicOrUnknown(user *models.User) *models.PublicUser {
	if user == nil {
		return models.UnknownUser()
	}
	return user.Public()
}
