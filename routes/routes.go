package routes

import (
	"time"

	"salonbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/slots", bh.GetDaySchedule)
		booking.POST("", bh.SubmitBooking)
		booking.GET("/id/:id", bh.GetBooking)
	}

	r.GET("/api/services", bh.GetServices)
	r.POST("/api/payments/intent", bh.CreatePaymentIntent)
}

// RegisterHealthRoute exposes the health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh)
	RegisterHealthRoute(r)
}
