package bookings

import (
	"time"

	"github.com/google/uuid"
)

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID               uuid.UUID          `json:"id"`
	RouteID          uuid.UUID          `json:"route_id"`
	SeatID           uuid.UUID          `json:"seat_id"`
	Status           Status             `json:"status"`
	FinalPrice       float64            `json:"final_price"`
	ConfirmedByAdmin bool               `json:"confirmed_by_admin"`
	CreatedAt        time.Time          `json:"created_at"`
	CancelledAt      *time.Time         `json:"cancelled_at,omitempty"`
	Passenger        *PassengerResponse `json:"passenger,omitempty"`
}

// PassengerResponse represents a passenger in API responses
type PassengerResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`
	Phone          string    `json:"phone,omitempty"`
}

// ToBookingResponse converts a booking and its passenger to a response DTO
func ToBookingResponse(b *Booking, p *Passenger) *BookingResponse {
	resp := &BookingResponse{
		ID:               b.ID,
		RouteID:          b.RouteID,
		SeatID:           b.SeatID,
		Status:           b.Status,
		FinalPrice:       b.FinalPrice,
		ConfirmedByAdmin: b.ConfirmedByAdmin,
		CreatedAt:        b.CreatedAt,
		CancelledAt:      b.CancelledAt,
	}
	if p != nil {
		resp.Passenger = &PassengerResponse{
			ID:             p.ID,
			FullName:       p.FullName,
			DocumentNumber: p.DocumentNumber,
			Phone:          p.Phone,
		}
	}
	return resp
}
