package routes

import (
	"labourlink/internal/handlers"
	"labourlink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up profile and labourer discovery routes
func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, jwtSecret string) {
	// Public discovery routes
	r.GET("/categories", userHandler.GetCategories)

	labourers := r.Group("/labourers")
	{
		labourers.GET("", userHandler.SearchLabourers)
		labourers.GET("/:id", userHandler.GetLabourer)
	}

	// Authenticated profile routes
	users := r.Group("/users")
	users.Use(middleware.AuthRequired(jwtSecret))
	{
		users.GET("/profile", userHandler.GetProfile)
		users.PUT("/profile", userHandler.UpdateProfile)
	}
}
