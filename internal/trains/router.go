package trains

import (
	"railbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTrainRoutes configures train management routes
func SetupTrainRoutes(rg *gin.RouterGroup, controller *Controller) {
	trains := rg.Group("/trains")
	{
		trains.GET("", controller.ListTrains) // GET /api/v1/trains

		admin := trains.Group("")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateTrain) // POST /api/v1/trains
		}
	}
}
