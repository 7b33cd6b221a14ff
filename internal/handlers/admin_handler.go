package handlers

import (
	"labourlink/internal/models"
	"labourlink/internal/services"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminHandler struct {
	adminService   services.AdminService
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewAdminHandler(adminService services.AdminService, bookingService services.BookingService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		bookingService: bookingService,
		logger:         log,
	}
}

// GetDashboard handles GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err, "dashboard")
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", stats)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := models.UserRole(c.Query("role"))
	switch role {
	case "", models.UserRoleEmployer, models.UserRoleLabourer, models.UserRoleAdmin:
	default:
		utils.BadRequestResponse(c, "Invalid role filter")
		return
	}

	params := utils.GetPaginationParams(c)

	users, meta, err := h.adminService.ListUsers(c.Request.Context(), role, params)
	if err != nil {
		respondDomainError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponseWithMeta(c, "Users retrieved", gin.H{
		"items":       users,
		"total":       meta.Total,
		"currentPage": meta.CurrentPage,
		"totalPages":  meta.TotalPages,
	}, paginationMeta(meta))
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var req validators.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateUpdateUserRole(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	user, err := h.adminService.UpdateUserRole(c.Request.Context(), userID, models.UserRole(req.Role))
	if err != nil {
		respondDomainError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponse(c, "User role updated", user)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondDomainError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponse(c, "User deleted", nil)
}

// DeleteBooking handles DELETE /admin/bookings/:id
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	if err := h.adminService.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		respondDomainError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponse(c, "Booking deleted", nil)
}
