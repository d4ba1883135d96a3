package seats

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListSeats handles GET /api/v1/routes/:id/seats
// Returns free seats by default; ?all=true returns the full seat map.
func (c *Controller) ListSeats(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var seats []Seat
	if ctx.Query("all") == "true" {
		seats, err = c.service.ListByRoute(ctx.Request.Context(), routeID)
	} else {
		seats, err = c.service.ListAvailable(ctx.Request.Context(), routeID)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get seats",
			"details": err.Error(),
		})
		return
	}

	responses := make([]SeatResponse, 0, len(seats))
	for _, seat := range seats {
		responses = append(responses, seat.ToResponse())
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Seats retrieved successfully",
		"data": gin.H{
			"route_id": routeID.String(),
			"seats":    responses,
			"count":    len(responses),
		},
	})
}
