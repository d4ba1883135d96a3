package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"railbook/internal/routes"
	"railbook/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Concurrency-safe booking creation: the whole multi-entity mutation
	// commits or rolls back as one unit.
	CreateBookingAtomic(ctx context.Context, passenger *Passenger, booking *Booking) error

	// Cancellation: status flip and seat release in one transaction.
	// Cancelling an already-cancelled booking is a successful no-op.
	CancelBookingAtomic(ctx context.Context, id uuid.UUID) error

	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, confirmedByAdmin bool) error

	GetBookingDetails(ctx context.Context, id uuid.UUID) (*BookingDetails, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingDetails, error)
	GetAllBookings(ctx context.Context) ([]BookingDetails, error)
}

type repository struct {
	db    *gorm.DB
	seats seats.Repository
}

func NewRepository(db *gorm.DB, seatRepo seats.Repository) Repository {
	return &repository{db: db, seats: seatRepo}
}

// CreateBookingAtomic creates the passenger and booking rows, snapshots the
// route's current base price and claims the seat, all inside one
// transaction. The seat row is locked FOR UPDATE before its FREE check, so
// two concurrent creates for the same seat cannot both succeed: the loser
// rolls back completely and leaves no passenger or booking rows behind.
func (r *repository) CreateBookingAtomic(ctx context.Context, passenger *Passenger, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Create the passenger record
		if err := tx.Create(passenger).Error; err != nil {
			return fmt.Errorf("failed to create passenger: %w", err)
		}
		booking.PassengerID = passenger.ID

		// 2. Snapshot the route's price. Read fresh here, not from search
		// results: the booking keeps this price even if the route's base
		// price changes later.
		var route struct {
			BasePrice float64 `gorm:"column:base_price"`
		}
		err := tx.Table("routes").
			Select("base_price").
			Where("id = ?", booking.RouteID).
			First(&route).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return routes.ErrRouteNotFound
			}
			return fmt.Errorf("failed to read route price: %w", err)
		}
		booking.FinalPrice = route.BasePrice
		booking.Status = StatusBooked
		booking.ConfirmedByAdmin = false

		// 3. Create the booking row
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// 4. Claim the seat under the same transaction. A non-free seat
		// aborts everything.
		seat, err := r.seats.ReserveSeatTx(tx, booking.SeatID)
		if err != nil {
			return err
		}
		if seat.RouteID != booking.RouteID {
			return ErrSeatRouteMismatch
		}

		return nil
	})
}

func (r *repository) CancelBookingAtomic(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.IsCancelled() {
			return nil
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":             StatusCancelled,
			"confirmed_by_admin": false,
			"cancelled_at":       now,
			"updated_at":         now,
		}
		if err := tx.Model(&Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		// Release unconditionally; freeing an already-free seat is a no-op.
		if err := r.seats.ReleaseSeatTx(tx, booking.SeatID); err != nil {
			return fmt.Errorf("failed to release seat: %w", err)
		}

		return nil
	})
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Passenger").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, confirmedByAdmin bool) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"confirmed_by_admin": confirmedByAdmin,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

const bookingDetailsSelect = `
	b.id AS booking_id, b.status, b.final_price, b.confirmed_by_admin,
	b.created_at AS booking_date, b.cancelled_at,
	p.full_name AS passenger_name, p.document_number, p.phone AS passenger_phone,
	t.number AS train_number, t.name AS train_name,
	r.departure_station, r.arrival_station, r.departure_time, r.arrival_time,
	s.carriage_number, s.seat_number, s.class AS seat_class,
	u.username`

func (r *repository) bookingDetailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings b").
		Select(bookingDetailsSelect).
		Joins("JOIN passengers p ON p.id = b.passenger_id").
		Joins("JOIN routes r ON r.id = b.route_id").
		Joins("JOIN trains t ON t.id = r.train_id").
		Joins("JOIN seats s ON s.id = b.seat_id").
		Joins("JOIN users u ON u.id = b.user_id")
}

func (r *repository) GetBookingDetails(ctx context.Context, id uuid.UUID) (*BookingDetails, error) {
	var details BookingDetails
	err := r.bookingDetailsQuery(ctx).
		Where("b.id = ?", id).
		First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingDetails, error) {
	var details []BookingDetails
	err := r.bookingDetailsQuery(ctx).
		Where("b.user_id = ?", userID).
		Order("b.created_at DESC").
		Find(&details).Error
	return details, err
}

func (r *repository) GetAllBookings(ctx context.Context) ([]BookingDetails, error) {
	var details []BookingDetails
	err := r.bookingDetailsQuery(ctx).
		Order("b.created_at DESC").
		Find(&details).Error
	return details, err
}
