package routes

import (
	"labourlink/internal/handlers"
	"labourlink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up platform administration routes
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.DELETE("/bookings/:id", adminHandler.DeleteBooking)
	}
}
