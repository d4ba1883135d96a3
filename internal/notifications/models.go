package notifications

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "BOOKING_CREATED"
	EventBookingPaid      EventType = "BOOKING_PAID"
	EventBookingConfirmed EventType = "BOOKING_CONFIRMED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
)

// BookingEvent is the message published to Kafka on every booking
// lifecycle change. Keyed by BookingID so all events for one booking
// land on the same partition in order.
type BookingEvent struct {
	Type      EventType `json:"type"`
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	RouteID   uuid.UUID `json:"route_id"`
	SeatID    uuid.UUID `json:"seat_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
