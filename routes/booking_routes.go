package routes

import (
	"labourlink/internal/handlers"
	"labourlink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up booking lifecycle routes
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthRequired(jwtSecret))
	{
		bookings.POST("/labourer/:id", middleware.EmployerRequired(), bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthRequired(jwtSecret))
	{
		dashboard.GET("", middleware.EmployerRequired(), bookingHandler.GetEmployerDashboard)
	}
}
