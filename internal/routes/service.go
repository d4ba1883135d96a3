package routes

import (
	"context"
	"fmt"
	"time"

	"railbook/internal/trains"

	"github.com/google/uuid"
)

// TrainDirectory is the slice of the trains service the route service needs.
type TrainDirectory interface {
	GetTrain(ctx context.Context, id uuid.UUID) (*trains.Train, error)
}

type Service interface {
	CreateRoute(ctx context.Context, req CreateRouteRequest) (*Route, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*Route, error)
	UpdateBasePrice(ctx context.Context, id uuid.UUID, price float64) error
	Search(ctx context.Context, query SearchQuery) ([]RouteSummary, error)
	ListStations(ctx context.Context) ([]string, error)
}

type service struct {
	repo   Repository
	trains TrainDirectory
}

func NewService(repo Repository, trainDirectory TrainDirectory) Service {
	return &service{
		repo:   repo,
		trains: trainDirectory,
	}
}

// CreateRoute validates the schedule and price, then persists the route and
// its fixed seat set in one transaction.
func (s *service) CreateRoute(ctx context.Context, req CreateRouteRequest) (*Route, error) {
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, ErrInvalidSchedule
	}
	if req.BasePrice <= 0 {
		return nil, ErrInvalidPrice
	}

	trainID, err := uuid.Parse(req.TrainID)
	if err != nil {
		return nil, fmt.Errorf("invalid train ID: %w", err)
	}
	if _, err := s.trains.GetTrain(ctx, trainID); err != nil {
		return nil, fmt.Errorf("train lookup failed: %w", err)
	}

	route := &Route{
		TrainID:          trainID,
		DepartureStation: req.DepartureStation,
		ArrivalStation:   req.ArrivalStation,
		DepartureTime:    req.DepartureTime,
		ArrivalTime:      req.ArrivalTime,
		BasePrice:        req.BasePrice,
	}

	if err := s.repo.CreateRoute(ctx, route, req.SeatCount); err != nil {
		return nil, err
	}

	return route, nil
}

func (s *service) GetRoute(ctx context.Context, id uuid.UUID) (*Route, error) {
	return s.repo.GetRouteByID(ctx, id)
}

// UpdateBasePrice changes the price used for future bookings. Existing
// bookings keep their snapshotted price.
func (s *service) UpdateBasePrice(ctx context.Context, id uuid.UUID, price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	return s.repo.UpdateBasePrice(ctx, id, price)
}

func (s *service) Search(ctx context.Context, query SearchQuery) ([]RouteSummary, error) {
	filters := SearchFilters{
		DepartureStation: query.DepartureStation,
		ArrivalStation:   query.ArrivalStation,
	}

	bucket := DateBucket(query.DateBucket)
	if !bucket.IsValid() {
		return nil, fmt.Errorf("unknown date filter %q", query.DateBucket)
	}
	if from, to, ok := bucket.Range(time.Now()); ok {
		filters.From = &from
		filters.To = &to
	}

	return s.repo.SearchRoutes(ctx, filters)
}

func (s *service) ListStations(ctx context.Context) ([]string, error) {
	return s.repo.ListStations(ctx)
}
