package seats

import (
	"context"

	"github.com/google/uuid"
)

// Service interface defines the contract for seat inventory management.
// Provisioning is not here: the seat set is created inside the route
// creation transaction through Repository.ProvisionSeatsTx.
type Service interface {
	ListAvailable(ctx context.Context, routeID uuid.UUID) ([]Seat, error)
	ListByRoute(ctx context.Context, routeID uuid.UUID) ([]Seat, error)
	GetSeat(ctx context.Context, seatID uuid.UUID) (*Seat, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// BuildSeatLayout assigns carriage and seat numbers sequentially for count
// seats: carriages of 10, positions 1-2 Lux, 3-6 Compartment, 7-10 Standard.
func BuildSeatLayout(routeID uuid.UUID, count int) []Seat {
	seats := make([]Seat, 0, count)
	carriage := 1
	position := 1

	for i := 0; i < count; i++ {
		seats = append(seats, Seat{
			RouteID:        routeID,
			CarriageNumber: carriage,
			SeatNumber:     position,
			Class:          ClassForPosition(position),
			Status:         StatusFree,
		})

		position++
		if position > SeatsPerCarriage {
			carriage++
			position = 1
		}
	}
	return seats
}

func (s *service) ListAvailable(ctx context.Context, routeID uuid.UUID) ([]Seat, error) {
	return s.repo.GetAvailableSeats(ctx, routeID)
}

func (s *service) ListByRoute(ctx context.Context, routeID uuid.UUID) ([]Seat, error) {
	return s.repo.GetSeatsByRouteID(ctx, routeID)
}

func (s *service) GetSeat(ctx context.Context, seatID uuid.UUID) (*Seat, error) {
	return s.repo.GetSeatByID(ctx, seatID)
}
