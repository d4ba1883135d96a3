package bookings

import (
	"context"
	"testing"

	"railbook/internal/notifications"
	"railbook/internal/seats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateBookingAtomic(ctx context.Context, passenger *Passenger, booking *Booking) error {
	args := m.Called(ctx, passenger, booking)
	if args.Error(0) == nil {
		// simulate DB insert
		passenger.ID = uuid.New()
		booking.ID = uuid.New()
		booking.PassengerID = passenger.ID
		booking.Status = StatusBooked
		booking.FinalPrice = 45.00
	}
	return args.Error(0)
}

func (m *MockRepository) CancelBookingAtomic(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, confirmedByAdmin bool) error {
	args := m.Called(ctx, id, status, confirmedByAdmin)
	return args.Error(0)
}

func (m *MockRepository) GetBookingDetails(ctx context.Context, id uuid.UUID) (*BookingDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingDetails), args.Error(1)
}

func (m *MockRepository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingDetails), args.Error(1)
}

func (m *MockRepository) GetAllBookings(ctx context.Context) ([]BookingDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingDetails), args.Error(1)
}

// Mock publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBookingEvent(ctx context.Context, event *notifications.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func validCreateRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		RouteID: uuid.New().String(),
		SeatID:  uuid.New().String(),
		Passenger: PassengerInput{
			FullName:       "Ivan Petrov",
			DocumentNumber: "AB1234567",
			Phone:          "+3712345678",
		},
	}
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)

	mockRepo.On("CreateBookingAtomic", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockPub.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockPub)
	userID := uuid.New()

	resp, err := service.Create(context.Background(), userID, validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, StatusBooked, resp.Status)
	assert.Equal(t, 45.00, resp.FinalPrice)
	assert.False(t, resp.ConfirmedByAdmin)
	assert.NotNil(t, resp.Passenger)
	assert.Equal(t, "Ivan Petrov", resp.Passenger.FullName)
	mockPub.AssertCalled(t, "PublishBookingEvent", mock.Anything, mock.Anything)
}

func TestService_Create_MissingPassengerDetails(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	req := validCreateRequest()
	req.Passenger.FullName = "   "

	_, err := service.Create(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrInvalidPassenger)

	req = validCreateRequest()
	req.Passenger.DocumentNumber = ""

	_, err = service.Create(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrInvalidPassenger)

	mockRepo.AssertNotCalled(t, "CreateBookingAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_InvalidIdentifiers(t *testing.T) {
	service := NewService(new(MockRepository), nil)

	req := validCreateRequest()
	req.SeatID = "not-a-uuid"

	_, err := service.Create(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestService_Create_SeatAlreadyTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)

	// The atomic create loses the seat race: everything rolled back, no
	// booking exists and no event may be announced
	mockRepo.On("CreateBookingAtomic", mock.Anything, mock.Anything, mock.Anything).
		Return(seats.ErrSeatUnavailable)

	service := NewService(mockRepo, mockPub)

	_, err := service.Create(context.Background(), uuid.New(), validCreateRequest())

	assert.ErrorIs(t, err, seats.ErrSeatUnavailable)
	mockPub.AssertNotCalled(t, "PublishBookingEvent", mock.Anything, mock.Anything)
}

func TestService_Create_SeatRouteMismatch(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CreateBookingAtomic", mock.Anything, mock.Anything, mock.Anything).Return(ErrSeatRouteMismatch)

	service := NewService(mockRepo, nil)

	_, err := service.Create(context.Background(), uuid.New(), validCreateRequest())
	assert.ErrorIs(t, err, ErrSeatRouteMismatch)
}

func TestService_Pay_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)

	userID := uuid.New()
	bookingID := uuid.New()
	booking := &Booking{
		ID:         bookingID,
		UserID:     userID,
		Status:     StatusBooked,
		FinalPrice: 45.00,
	}

	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)
	mockRepo.On("UpdateBookingStatus", mock.Anything, bookingID, StatusPaid, false).Return(nil)
	mockPub.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockPub)

	resp, err := service.Pay(context.Background(), userID, bookingID)

	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, resp.Status)
	assert.Equal(t, 45.00, resp.FinalPrice)
}

func TestService_Pay_NotOwner(t *testing.T) {
	mockRepo := new(MockRepository)

	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: uuid.New(), Status: StatusBooked}
	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)

	service := NewService(mockRepo, nil)

	_, err := service.Pay(context.Background(), uuid.New(), bookingID)
	assert.ErrorIs(t, err, ErrNotBookingOwner)
	mockRepo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Pay_RejectsNonBookedStatuses(t *testing.T) {
	for _, status := range []Status{StatusPaid, StatusConfirmed, StatusCancelled} {
		mockRepo := new(MockRepository)

		userID := uuid.New()
		bookingID := uuid.New()
		booking := &Booking{ID: bookingID, UserID: userID, Status: status}
		mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)

		service := NewService(mockRepo, nil)

		_, err := service.Pay(context.Background(), userID, bookingID)
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s should not be payable", status)
	}
}

func TestService_Confirm_AdvancesToConfirmed(t *testing.T) {
	for _, status := range []Status{StatusBooked, StatusPaid, StatusConfirmed} {
		mockRepo := new(MockRepository)
		mockPub := new(MockPublisher)

		bookingID := uuid.New()
		booking := &Booking{ID: bookingID, UserID: uuid.New(), Status: status}
		mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)
		mockRepo.On("UpdateBookingStatus", mock.Anything, bookingID, StatusConfirmed, true).Return(nil)
		mockPub.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

		service := NewService(mockRepo, mockPub)

		resp, err := service.Confirm(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, StatusConfirmed, resp.Status)
		assert.True(t, resp.ConfirmedByAdmin)
	}
}

func TestService_Confirm_RejectsCancelled(t *testing.T) {
	mockRepo := new(MockRepository)

	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: uuid.New(), Status: StatusCancelled}
	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)

	service := NewService(mockRepo, nil)

	_, err := service.Confirm(context.Background(), bookingID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockRepo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)

	userID := uuid.New()
	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: userID, Status: StatusPaid, ConfirmedByAdmin: true}

	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)
	mockRepo.On("CancelBookingAtomic", mock.Anything, bookingID).Return(nil)
	mockPub.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockPub)

	err := service.Cancel(context.Background(), userID, bookingID)

	assert.NoError(t, err)
	mockPub.AssertCalled(t, "PublishBookingEvent", mock.Anything, mock.Anything)
}

func TestService_Cancel_AlreadyCancelledIsNoOp(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)

	userID := uuid.New()
	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: userID, Status: StatusCancelled}

	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)
	mockRepo.On("CancelBookingAtomic", mock.Anything, bookingID).Return(nil)

	service := NewService(mockRepo, mockPub)

	err := service.Cancel(context.Background(), userID, bookingID)

	assert.NoError(t, err)
	mockPub.AssertNotCalled(t, "PublishBookingEvent", mock.Anything, mock.Anything)
}

func TestService_Cancel_NotOwner(t *testing.T) {
	mockRepo := new(MockRepository)

	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: uuid.New(), Status: StatusBooked}
	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)

	service := NewService(mockRepo, nil)

	err := service.Cancel(context.Background(), uuid.New(), bookingID)
	assert.ErrorIs(t, err, ErrNotBookingOwner)
	mockRepo.AssertNotCalled(t, "CancelBookingAtomic", mock.Anything, mock.Anything)
}

func TestService_CancelByAdmin_IgnoresOwnership(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)

	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: uuid.New(), Status: StatusConfirmed}

	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)
	mockRepo.On("CancelBookingAtomic", mock.Anything, bookingID).Return(nil)
	mockPub.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockPub)

	err := service.CancelByAdmin(context.Background(), bookingID)
	assert.NoError(t, err)
}

func TestService_GetBooking_OwnershipEnforced(t *testing.T) {
	mockRepo := new(MockRepository)

	ownerID := uuid.New()
	bookingID := uuid.New()
	booking := &Booking{ID: bookingID, UserID: ownerID, Status: StatusBooked}
	details := &BookingDetails{BookingID: bookingID, Status: StatusBooked}

	mockRepo.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil)
	mockRepo.On("GetBookingDetails", mock.Anything, bookingID).Return(details, nil)

	service := NewService(mockRepo, nil)

	// Owner can read
	got, err := service.GetBooking(context.Background(), ownerID, false, bookingID)
	assert.NoError(t, err)
	assert.Equal(t, bookingID, got.BookingID)

	// Stranger cannot
	_, err = service.GetBooking(context.Background(), uuid.New(), false, bookingID)
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	// Admin can read anything
	got, err = service.GetBooking(context.Background(), uuid.New(), true, bookingID)
	assert.NoError(t, err)
	assert.Equal(t, bookingID, got.BookingID)
}
