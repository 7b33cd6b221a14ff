package handlers

import (
	"net/http"

	"labourlink/internal/utils"
	"labourlink/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps a service-layer error onto the HTTP surface. The
// resource name only shows in the not-found message.
func respondDomainError(c *gin.Context, log *logger.Logger, err error, resource string) {
	switch {
	case utils.IsNotFound(err):
		utils.NotFoundResponse(c, resource)
	case utils.IsForbidden(err):
		utils.ForbiddenResponse(c)
	case utils.IsConflict(err):
		utils.ConflictResponse(c, err.Error())
	case utils.IsUnavailable(err):
		utils.ErrorResponse(c, http.StatusBadRequest, "LABOURER_UNAVAILABLE", utils.ErrLabourerUnavailable)
	case utils.IsInvalidTransition(err):
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_TRANSITION", utils.ErrInvalidTransitionMsg)
	default:
		log.WithError(err).Error("Unhandled service error")
		utils.InternalServerErrorResponse(c)
	}
}

// paginationMeta wraps a PaginationMeta into the response Meta envelope.
func paginationMeta(meta *utils.PaginationMeta) *utils.Meta {
	return &utils.Meta{Pagination: meta}
}
