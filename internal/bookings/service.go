package bookings

import (
	"context"
	"strings"
	"time"

	"railbook/internal/notifications"
	"railbook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*BookingDetails, error)
	Pay(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*BookingResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) error
	Confirm(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error)
	CancelByAdmin(ctx context.Context, bookingID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]BookingDetails, error)
	ListAll(ctx context.Context) ([]BookingDetails, error)
}

type service struct {
	repo      Repository
	publisher notifications.Publisher
}

// NewService creates a booking service. publisher may be nil; lifecycle
// events are then skipped.
func NewService(repo Repository, publisher notifications.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// Create books one seat for one passenger. The passenger record, the price
// snapshot, the booking row and the seat reservation commit together or not
// at all.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*BookingResponse, error) {
	if strings.TrimSpace(req.Passenger.FullName) == "" ||
		strings.TrimSpace(req.Passenger.DocumentNumber) == "" {
		return nil, ErrInvalidPassenger
	}

	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, ErrInvalidIdentifier
	}
	seatID, err := uuid.Parse(req.SeatID)
	if err != nil {
		return nil, ErrInvalidIdentifier
	}

	passenger := &Passenger{
		FullName:       strings.TrimSpace(req.Passenger.FullName),
		DocumentNumber: strings.TrimSpace(req.Passenger.DocumentNumber),
		Phone:          strings.TrimSpace(req.Passenger.Phone),
	}
	booking := &Booking{
		RouteID: routeID,
		SeatID:  seatID,
		UserID:  userID,
	}

	if err := s.repo.CreateBookingAtomic(ctx, passenger, booking); err != nil {
		return nil, err
	}

	logger.LogBookingCreated(booking.ID.String(), userID.String(), seatID.String())
	s.publishEvent(ctx, notifications.EventBookingCreated, booking)

	return ToBookingResponse(booking, passenger), nil
}

func (s *service) GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*BookingDetails, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return s.repo.GetBookingDetails(ctx, bookingID)
}

// Pay moves a booking from BOOKED to PAID.
func (s *service) Pay(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if !booking.Status.CanBePaid() {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, StatusPaid, booking.ConfirmedByAdmin); err != nil {
		return nil, err
	}
	booking.Status = StatusPaid
	booking.UpdatedAt = time.Now()

	s.publishEvent(ctx, notifications.EventBookingPaid, booking)

	return ToBookingResponse(booking, booking.Passenger), nil
}

// Cancel releases the booking's seat and marks the booking CANCELLED.
// Cancelling an already-cancelled booking succeeds without changes.
func (s *service) Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) error {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return ErrNotBookingOwner
	}
	return s.cancel(ctx, booking)
}

// CancelByAdmin cancels any user's booking.
func (s *service) CancelByAdmin(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	return s.cancel(ctx, booking)
}

func (s *service) cancel(ctx context.Context, booking *Booking) error {
	alreadyCancelled := booking.IsCancelled()

	if err := s.repo.CancelBookingAtomic(ctx, booking.ID); err != nil {
		return err
	}

	if !alreadyCancelled {
		logger.LogBookingCancelled(booking.ID.String(), booking.UserID.String())
		booking.Cancel()
		s.publishEvent(ctx, notifications.EventBookingCancelled, booking)
	}
	return nil
}

// Confirm marks a booking as confirmed by an admin. BOOKED and PAID
// bookings advance to CONFIRMED; a CONFIRMED booking just keeps its flag.
// CANCELLED bookings cannot be confirmed.
func (s *service) Confirm(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanBeConfirmed() {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, StatusConfirmed, true); err != nil {
		return nil, err
	}
	booking.Status = StatusConfirmed
	booking.ConfirmedByAdmin = true
	booking.UpdatedAt = time.Now()

	logger.LogBookingConfirmed(booking.ID.String(), booking.UserID.String())
	s.publishEvent(ctx, notifications.EventBookingConfirmed, booking)

	return ToBookingResponse(booking, booking.Passenger), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]BookingDetails, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]BookingDetails, error) {
	return s.repo.GetAllBookings(ctx)
}

// publishEvent emits a lifecycle event if a publisher is wired. Failures are
// logged and swallowed; the database is the source of truth.
func (s *service) publishEvent(ctx context.Context, eventType notifications.EventType, booking *Booking) {
	if s.publisher == nil {
		return
	}
	event := &notifications.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		RouteID:   booking.RouteID,
		SeatID:    booking.SeatID,
		Status:    booking.Status.String(),
		Timestamp: time.Now(),
	}
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		logger.Warn("failed to publish booking event",
			"booking_id", booking.ID.String(),
			"event_type", string(eventType),
			"error", err.Error())
	}
}
