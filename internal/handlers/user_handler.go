package handlers

import (
	"labourlink/internal/middleware"
	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/services"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	userService services.UserService
	logger      *logger.Logger
}

func NewUserHandler(userService services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      log,
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", user)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateUpdateProfile(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondDomainError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponse(c, "Profile updated", user)
}

// SearchLabourers handles GET /labourers
func (h *UserHandler) SearchLabourers(c *gin.Context) {
	filter := &interfaces.LabourerFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
	}

	if filter.Category != "" && !models.IsValidCategory(models.LabourCategory(filter.Category)) {
		utils.BadRequestResponse(c, "Invalid labour category")
		return
	}

	labourers, total, err := h.userService.SearchLabourers(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, h.logger, err, "labourer")
		return
	}

	results := make([]gin.H, 0, len(labourers))
	for _, labourer := range labourers {
		results = append(results, gin.H{
			"id":            labourer.ID,
			"name":          labourer.Name,
			"category":      labourer.Category,
			"hourly_rate":   labourer.HourlyRate,
			"experience":    labourer.Experience,
			"rating":        labourer.Rating,
			"total_reviews": labourer.TotalReviews,
			"location":      labourer.Location,
		})
	}

	utils.SuccessResponse(c, "Labourers retrieved", gin.H{
		"items": results,
		"total": total,
	})
}

// GetLabourer handles GET /labourers/:id
func (h *UserHandler) GetLabourer(c *gin.Context) {
	labourerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid labourer ID")
		return
	}

	labourer, err := h.userService.GetLabourer(c.Request.Context(), labourerID)
	if err != nil {
		respondDomainError(c, h.logger, err, "labourer")
		return
	}

	utils.SuccessResponse(c, "Labourer retrieved", labourer)
}

// GetCategories handles GET /categories
func (h *UserHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, "Categories retrieved", models.LabourCategories)
}
