package router

import (
	"github.com/dishu-studio/studio-backend/config"
	"github.com/dishu-studio/studio-backend/handlers"
	"github.com/dishu-studio/studio-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	BookingHandler *handlers.BookingHandler
	ContactHandler *handlers.ContactHandler
	HealthHandler  *handlers.HealthHandler
	RedisClient    *redis.Client
	Logger         *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public form submissions are rate limited per client IP
	formLimiter := middleware.FormRateLimiter(
		deps.RedisClient,
		deps.Config.RateLimit.FormRequestsPerMinute,
		deps.Config.RateLimit.Window(),
	)

	api := r.Group("/api")
	{
		// Booking Routes
		bookingRoutes := api.Group("/bookings")
		{
			bookingRoutes.POST("", formLimiter, deps.BookingHandler.CreateBookingHandler)
			bookingRoutes.GET("", deps.BookingHandler.ListBookingsHandler)
			bookingRoutes.GET("/:id", deps.BookingHandler.GetBookingHandler)
			bookingRoutes.PUT("/:id", deps.BookingHandler.UpdateBookingHandler)
			bookingRoutes.DELETE("/:id", deps.BookingHandler.DeleteBookingHandler)
		}

		// Contact Routes. Submission uses the singular path, the admin
		// listing uses the plural one.
		api.POST("/contact", formLimiter, deps.ContactHandler.CreateContactHandler)
		api.GET("/contacts", deps.ContactHandler.ListContactsHandler)
		api.DELETE("/contacts/:id", deps.ContactHandler.DeleteContactHandler)
	}

	return r
}
