// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"railbook/internal/admin"
	"railbook/internal/auth"
	"railbook/internal/bookings"
	"railbook/internal/notifications"
	"railbook/internal/routes"
	"railbook/internal/seats"
	"railbook/internal/shared/config"
	"railbook/internal/shared/database"
	"railbook/internal/trains"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher notifications.Publisher

	// Shared across route groups
	trainService trains.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Trains come before routes so the train service can be injected
		r.setupTrainRoutes(api)
		r.setupSeatRoutes(api)
		r.setupRouteRoutes(api)

		r.setupBookingRoutes(api)
		r.setupAdminRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "railbook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "railbook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

// setupTrainRoutes configures train management routes
func (r *Router) setupTrainRoutes(rg *gin.RouterGroup) {
	trainRepo := trains.NewRepository(r.db.GetPostgreSQL())
	r.trainService = trains.NewService(trainRepo)
	trainController := trains.NewController(r.trainService)

	trains.SetupTrainRoutes(rg, trainController)
}

// setupSeatRoutes configures seat listing routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatRepo)
	seatController := seats.NewController(seatService)

	seats.SetupSeatRoutes(rg, seatController)
}

// setupRouteRoutes configures route search and management routes
func (r *Router) setupRouteRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	routeRepo := routes.NewRepository(r.db.GetPostgreSQL(), seatRepo)
	routeService := routes.NewService(routeRepo, r.trainService)
	routeController := routes.NewController(routeService)

	routes.SetupRouteRoutes(rg, routeController)
}

// setupBookingRoutes configures booking lifecycle routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL(), seatRepo)
	bookingService := bookings.NewService(bookingRepo, r.publisher)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
	bookings.SetupAdminBookingRoutes(rg, bookingController)
}

// setupAdminRoutes configures admin user management routes
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	adminRepo := admin.NewRepository(r.db.GetPostgreSQL())
	adminService := admin.NewService(adminRepo)
	adminController := admin.NewController(adminService)

	admin.SetupAdminRoutes(rg, adminController)
}
