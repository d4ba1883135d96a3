package trains

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateTrain handles POST /api/v1/trains (admin only)
func (c *Controller) CreateTrain(ctx *gin.Context) {
	var req CreateTrainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	train, err := c.service.CreateTrain(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create train",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Train created successfully",
		"data":    train,
	})
}

// ListTrains handles GET /api/v1/trains
func (c *Controller) ListTrains(ctx *gin.Context) {
	trains, err := c.service.ListTrains(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get trains",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Trains retrieved successfully",
		"data": gin.H{
			"trains": trains,
			"count":  len(trains),
		},
	})
}
