package routes

import (
	"railbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouteRoutes configures route search and management routes
func SetupRouteRoutes(rg *gin.RouterGroup, controller *Controller) {
	routes := rg.Group("/routes")
	{
		// Public read side
		routes.GET("", controller.Search)                 // GET /api/v1/routes
		routes.GET("/stations", controller.ListStations)  // GET /api/v1/routes/stations
		routes.GET("/:id", controller.GetRoute)           // GET /api/v1/routes/:id

		// Admin provisioning
		admin := routes.Group("")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateRoute)             // POST /api/v1/routes
			admin.PATCH("/:id/price", controller.UpdatePrice)  // PATCH /api/v1/routes/:id/price
		}
	}
}
