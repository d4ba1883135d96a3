package seats

import (
	"github.com/gin-gonic/gin"
)

// SetupSeatRoutes configures seat listing routes
func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	routes := rg.Group("/routes")
	{
		routes.GET("/:id/seats", controller.ListSeats) // GET /api/v1/routes/:id/seats
	}
}
