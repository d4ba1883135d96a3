package seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetSeatByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetSeatsByRouteID(ctx context.Context, routeID uuid.UUID) ([]Seat, error)
	GetAvailableSeats(ctx context.Context, routeID uuid.UUID) ([]Seat, error)

	// Transaction-scoped mutations. These take the caller's transaction
	// handle: route creation and the booking engine own the surrounding
	// transaction, and the seat writes must commit or roll back with it.
	ProvisionSeatsTx(tx *gorm.DB, routeID uuid.UUID, count int) ([]Seat, error)
	ReserveSeatTx(tx *gorm.DB, seatID uuid.UUID) (*Seat, error)
	ReleaseSeatTx(tx *gorm.DB, seatID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ProvisionSeatsTx bulk-inserts the seat layout for a route inside the
// caller's transaction, so the route and its seat set commit together.
func (r *repository) ProvisionSeatsTx(tx *gorm.DB, routeID uuid.UUID, count int) ([]Seat, error) {
	if count <= 0 {
		return nil, ErrInvalidSeatCount
	}

	layout := BuildSeatLayout(routeID, count)
	if err := tx.Create(&layout).Error; err != nil {
		return nil, fmt.Errorf("failed to provision seats: %w", err)
	}
	return layout, nil
}

func (r *repository) GetSeatByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).First(&seat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetSeatsByRouteID(ctx context.Context, routeID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("carriage_number ASC, seat_number ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetAvailableSeats(ctx context.Context, routeID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("route_id = ? AND status = ?", routeID, StatusFree).
		Order("carriage_number ASC, seat_number ASC").
		Find(&seats).Error
	return seats, err
}

// ReserveSeatTx locks the seat row and flips FREE to RESERVED. Two
// concurrent bookings racing for the same seat serialize on the row lock;
// the loser sees a non-FREE status and gets ErrSeatUnavailable. The flip
// itself re-checks FREE, so even a lost race on the lock cannot produce two
// RESERVED claims on one seat.
func (r *repository) ReserveSeatTx(tx *gorm.DB, seatID uuid.UUID) (*Seat, error) {
	var seat Seat
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seat, "id = ?", seatID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to lock seat: %w", err)
	}

	if !seat.Status.IsFree() {
		return nil, ErrSeatUnavailable
	}

	result := tx.Model(&Seat{}).
		Where("id = ? AND status = ?", seatID, StatusFree).
		Update("status", StatusReserved)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to reserve seat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSeatUnavailable
	}
	seat.Status = StatusReserved
	return &seat, nil
}

// ReleaseSeatTx sets the seat back to FREE regardless of its current
// status. Releasing an already-free seat is a no-op, not an error, so
// cancellation replays stay safe.
func (r *repository) ReleaseSeatTx(tx *gorm.DB, seatID uuid.UUID) error {
	return tx.Model(&Seat{}).
		Where("id = ?", seatID).
		Update("status", StatusFree).Error
}
