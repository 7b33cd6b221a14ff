package routes

import (
	"labourlink/internal/handlers"
	"labourlink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReviewRoutes sets up review routes. Reading a labourer's reviews is
// public; writing one is for employers.
func SetupReviewRoutes(r *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, jwtSecret string) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("/labourer/:id", reviewHandler.ListLabourerReviews)

		authed := reviews.Group("")
		authed.Use(middleware.AuthRequired(jwtSecret), middleware.EmployerRequired())
		authed.POST("", reviewHandler.CreateReview)
	}
}
