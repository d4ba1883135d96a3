package routes

import (
	"errors"
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

// Search handles GET /api/v1/routes
func (c *Controller) Search(ctx *gin.Context) {
	var query SearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid search filters",
			"details": err.Error(),
		})
		return
	}

	summaries, err := c.service.Search(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Search failed",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Routes retrieved successfully",
		"data": gin.H{
			"routes": summaries,
			"count":  len(summaries),
		},
	})
}

// GetRoute handles GET /api/v1/routes/:id
func (c *Controller) GetRoute(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	route, err := c.service.GetRoute(ctx.Request.Context(), routeID)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get route",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Route retrieved successfully",
		"data":    route,
	})
}

// ListStations handles GET /api/v1/routes/stations
func (c *Controller) ListStations(ctx *gin.Context) {
	stations, err := c.service.ListStations(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get stations",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Stations retrieved successfully",
		"data": gin.H{
			"stations": stations,
			"count":    len(stations),
		},
	})
}

// CreateRoute handles POST /api/v1/routes (admin only)
func (c *Controller) CreateRoute(ctx *gin.Context) {
	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	route, err := c.service.CreateRoute(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidSchedule) || errors.Is(err, ErrInvalidPrice) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create route",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Route created successfully",
		"data":    route,
	})
}

// UpdatePrice handles PATCH /api/v1/routes/:id/price (admin only)
func (c *Controller) UpdatePrice(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var req UpdatePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.service.UpdateBasePrice(ctx.Request.Context(), routeID, req.BasePrice); err != nil {
		switch {
		case errors.Is(err, ErrRouteNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		case errors.Is(err, ErrInvalidPrice):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to update price",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Base price updated successfully",
	})
}
