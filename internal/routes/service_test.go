package routes

import (
	"context"
	"testing"
	"time"

	"railbook/internal/trains"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateRoute(ctx context.Context, route *Route, seatCount int) error {
	args := m.Called(ctx, route, seatCount)
	if args.Error(0) == nil {
		route.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Route), args.Error(1)
}

func (m *MockRepository) UpdateBasePrice(ctx context.Context, id uuid.UUID, price float64) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *MockRepository) SearchRoutes(ctx context.Context, filters SearchFilters) ([]RouteSummary, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RouteSummary), args.Error(1)
}

func (m *MockRepository) ListStations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type MockTrainDirectory struct {
	mock.Mock
}

func (m *MockTrainDirectory) GetTrain(ctx context.Context, id uuid.UUID) (*trains.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trains.Train), args.Error(1)
}

func validRouteRequest(trainID uuid.UUID) CreateRouteRequest {
	departure := time.Now().Add(24 * time.Hour)
	return CreateRouteRequest{
		TrainID:          trainID.String(),
		DepartureStation: "Riverton",
		ArrivalStation:   "Port Haven",
		DepartureTime:    departure,
		ArrivalTime:      departure.Add(4 * time.Hour),
		BasePrice:        45.00,
		SeatCount:        30,
	}
}

func TestCreateRoute_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockTrains := new(MockTrainDirectory)

	trainID := uuid.New()
	mockTrains.On("GetTrain", mock.Anything, trainID).Return(&trains.Train{ID: trainID}, nil)
	mockRepo.On("CreateRoute", mock.Anything, mock.Anything, 30).Return(nil)

	service := NewService(mockRepo, mockTrains)

	route, err := service.CreateRoute(context.Background(), validRouteRequest(trainID))

	assert.NoError(t, err)
	assert.NotNil(t, route)
	assert.Equal(t, trainID, route.TrainID)
	mockRepo.AssertCalled(t, "CreateRoute", mock.Anything, mock.Anything, 30)
}

func TestCreateRoute_RejectsArrivalBeforeDeparture(t *testing.T) {
	service := NewService(new(MockRepository), new(MockTrainDirectory))

	req := validRouteRequest(uuid.New())
	req.ArrivalTime = req.DepartureTime.Add(-time.Hour)

	_, err := service.CreateRoute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	// Equal times are also invalid
	req.ArrivalTime = req.DepartureTime
	_, err = service.CreateRoute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestCreateRoute_RejectsNonPositivePrice(t *testing.T) {
	service := NewService(new(MockRepository), new(MockTrainDirectory))

	req := validRouteRequest(uuid.New())
	req.BasePrice = 0

	_, err := service.CreateRoute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUpdateBasePrice_Validation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockTrainDirectory))

	err := service.UpdateBasePrice(context.Background(), uuid.New(), -10)
	assert.ErrorIs(t, err, ErrInvalidPrice)
	mockRepo.AssertNotCalled(t, "UpdateBasePrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_ResolvesDateBucket(t *testing.T) {
	mockRepo := new(MockRepository)

	mockRepo.On("SearchRoutes", mock.Anything, mock.MatchedBy(func(f SearchFilters) bool {
		return f.DepartureStation == "Riverton" && f.From != nil && f.To != nil
	})).Return([]RouteSummary{}, nil)

	service := NewService(mockRepo, new(MockTrainDirectory))

	_, err := service.Search(context.Background(), SearchQuery{
		DepartureStation: "Riverton",
		DateBucket:       "today",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSearch_NoBucketMeansNoWindow(t *testing.T) {
	mockRepo := new(MockRepository)

	mockRepo.On("SearchRoutes", mock.Anything, mock.MatchedBy(func(f SearchFilters) bool {
		return f.From == nil && f.To == nil
	})).Return([]RouteSummary{}, nil)

	service := NewService(mockRepo, new(MockTrainDirectory))

	_, err := service.Search(context.Background(), SearchQuery{})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
