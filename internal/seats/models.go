package seats

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSeatNotFound     = errors.New("seat not found")
	ErrSeatUnavailable  = errors.New("seat is not available")
	ErrInvalidSeatCount = errors.New("seat count must be positive")
)

// Seat defines the structure for individual seats
type Seat struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RouteID        uuid.UUID `gorm:"type:uuid;index;not null" json:"route_id"`
	CarriageNumber int       `gorm:"not null" json:"carriage_number"`
	SeatNumber     int       `gorm:"not null" json:"seat_number"`
	Class          Class     `gorm:"type:varchar(20);not null" json:"class"`
	Status         Status    `gorm:"type:varchar(20);check:status IN ('FREE', 'RESERVED', 'SOLD');default:'FREE'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

func (s *Seat) IsFree() bool {
	return s.Status.IsFree()
}

// ToResponse converts a Seat to its API representation
func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		ID:             s.ID.String(),
		CarriageNumber: s.CarriageNumber,
		SeatNumber:     s.SeatNumber,
		Class:          string(s.Class),
		Status:         string(s.Status),
	}
}

// SeatResponse for API responses
type SeatResponse struct {
	ID             string `json:"id"`
	CarriageNumber int    `json:"carriage_number"`
	SeatNumber     int    `json:"seat_number"`
	Class          string `json:"class"`
	Status         string `json:"status"`
}
