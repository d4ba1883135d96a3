package bookings

import (
	"errors"
	"net/http"

	"railbook/internal/routes"
	"railbook/internal/seats"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// userIDFromContext extracts the authenticated user's ID set by the JWT middleware
func userIDFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return uuid.Nil, false
	}
	return userID, true
}

func isAdmin(ctx *gin.Context) bool {
	roleInterface, _ := ctx.Get("role")
	role, _ := roleInterface.(string)
	return role == "ADMIN"
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.service.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPassenger), errors.Is(err, ErrInvalidIdentifier):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, routes.ErrRouteNotFound), errors.Is(err, seats.ErrSeatNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, seats.ErrSeatUnavailable):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Seat is no longer available"})
		case errors.Is(err, ErrSeatRouteMismatch):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create booking",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"data":    booking,
	})
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	details, err := c.service.GetBooking(ctx.Request.Context(), userID, isAdmin(ctx), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrNotBookingOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to get booking",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking retrieved successfully",
		"data":    details,
	})
}

// PayBooking handles POST /api/v1/bookings/:id/pay
func (c *Controller) PayBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	booking, err := c.service.Pay(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		c.writeTransitionError(ctx, err, "Failed to pay booking")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking paid successfully",
		"data":    booking,
	})
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	if isAdmin(ctx) {
		err = c.service.CancelByAdmin(ctx.Request.Context(), bookingID)
	} else {
		err = c.service.Cancel(ctx.Request.Context(), userID, bookingID)
	}
	if err != nil {
		c.writeTransitionError(ctx, err, "Failed to cancel booking")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
	})
}

// ConfirmBooking handles POST /api/v1/bookings/:id/confirm (admin only)
func (c *Controller) ConfirmBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := c.service.Confirm(ctx.Request.Context(), bookingID)
	if err != nil {
		c.writeTransitionError(ctx, err, "Failed to confirm booking")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed successfully",
		"data":    booking,
	})
}

// GetUserBookings handles GET /api/v1/users/bookings
func (c *Controller) GetUserBookings(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	bookings, err := c.service.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get bookings",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bookings retrieved successfully",
		"data": gin.H{
			"bookings": bookings,
			"count":    len(bookings),
		},
	})
}

// GetAllBookings handles GET /api/v1/admin/bookings (admin only)
func (c *Controller) GetAllBookings(ctx *gin.Context) {
	bookings, err := c.service.ListAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get bookings",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bookings retrieved successfully",
		"data": gin.H{
			"bookings": bookings,
			"count":    len(bookings),
		},
	})
}

func (c *Controller) writeTransitionError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, ErrNotBookingOwner):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}
