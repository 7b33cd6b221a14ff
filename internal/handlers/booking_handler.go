package handlers

import (
	"labourlink/internal/middleware"
	"labourlink/internal/models"
	"labourlink/internal/services"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService services.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         log,
	}
}

// CreateBooking handles POST /bookings/labourer/:id
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	employerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	labourerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid labourer ID")
		return
	}

	var req validators.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateBookingCreate(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), employerID, labourerID, &req)
	if err != nil {
		respondDomainError(c, h.logger, err, "labourer")
		return
	}

	utils.CreatedResponse(c, "Booking created", booking)
}

// UpdateBookingStatus handles PATCH /bookings/:id/status
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var req validators.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateBookingStatus(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	booking, err := h.bookingService.SetStatus(c.Request.Context(), bookingID, actorID, models.BookingStatus(req.Status))
	if err != nil {
		respondDomainError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponse(c, "Booking status updated", booking)
}

// ListBookings handles GET /bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	requesterRole := middleware.GetUserRole(c)

	status := c.Query("status")
	if errs := validators.ValidateBookingStatusFilter(status); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	params := utils.GetPaginationParams(c)

	bookings, meta, err := h.bookingService.List(c.Request.Context(), requesterID, requesterRole, models.BookingStatus(status), params)
	if err != nil {
		respondDomainError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", gin.H{
		"items":       bookings,
		"total":       meta.Total,
		"currentPage": meta.CurrentPage,
		"totalPages":  meta.TotalPages,
	}, paginationMeta(meta))
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), bookingID, requesterID, middleware.GetUserRole(c))
	if err != nil {
		respondDomainError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

// GetEmployerDashboard handles GET /dashboard/employer
func (h *BookingHandler) GetEmployerDashboard(c *gin.Context) {
	employerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	dashboard, err := h.bookingService.GetEmployerDashboard(c.Request.Context(), employerID)
	if err != nil {
		respondDomainError(c, h.logger, err, "dashboard")
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", dashboard)
}
