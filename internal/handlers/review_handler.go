package handlers

import (
	"labourlink/internal/middleware"
	"labourlink/internal/services"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	logger        *logger.Logger
}

func NewReviewHandler(reviewService services.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log,
	}
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	employerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateReviewCreate(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), employerID, &req)
	if err != nil {
		if utils.IsConflict(err) {
			utils.ConflictResponse(c, utils.ErrReviewExists)
			return
		}
		respondDomainError(c, h.logger, err, "booking")
		return
	}

	utils.CreatedResponse(c, "Review created", review)
}

// ListLabourerReviews handles GET /labourers/:id/reviews
func (h *ReviewHandler) ListLabourerReviews(c *gin.Context) {
	labourerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid labourer ID")
		return
	}

	params := utils.GetPaginationParams(c)

	reviews, meta, err := h.reviewService.ListForLabourer(c.Request.Context(), labourerID, params)
	if err != nil {
		respondDomainError(c, h.logger, err, "labourer")
		return
	}

	utils.SuccessResponseWithMeta(c, "Reviews retrieved", gin.H{
		"items":       reviews,
		"total":       meta.Total,
		"currentPage": meta.CurrentPage,
		"totalPages":  meta.TotalPages,
	}, paginationMeta(meta))
}
