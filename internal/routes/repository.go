package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"railbook/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchFilters is the resolved form of a SearchQuery: the date bucket has
// already been turned into an absolute time window.
type SearchFilters struct {
	DepartureStation string
	ArrivalStation   string
	From             *time.Time
	To               *time.Time
}

type Repository interface {
	// CreateRoute persists the route and its fixed seat set as one unit:
	// a failed seat batch rolls back the route row too.
	CreateRoute(ctx context.Context, route *Route, seatCount int) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error)
	UpdateBasePrice(ctx context.Context, id uuid.UUID, price float64) error
	SearchRoutes(ctx context.Context, filters SearchFilters) ([]RouteSummary, error)
	ListStations(ctx context.Context) ([]string, error)
}

type repository struct {
	db    *gorm.DB
	seats seats.Repository
}

func NewRepository(db *gorm.DB, seatRepo seats.Repository) Repository {
	return &repository{db: db, seats: seatRepo}
}

func (r *repository) CreateRoute(ctx context.Context, route *Route, seatCount int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(route).Error; err != nil {
			return fmt.Errorf("failed to create route: %w", err)
		}
		if _, err := r.seats.ProvisionSeatsTx(tx, route.ID, seatCount); err != nil {
			return err
		}
		return nil
	})
}

func (r *repository) GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

func (r *repository) UpdateBasePrice(ctx context.Context, id uuid.UUID, price float64) error {
	result := r.db.WithContext(ctx).
		Model(&Route{}).
		Where("id = ?", id).
		Update("base_price", price)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// SearchRoutes joins routes with their train and a live free-seat count.
// Routes with no free seats are excluded; ordering is by departure time.
// This is always a fresh read: seat counts change under concurrent bookings.
func (r *repository) SearchRoutes(ctx context.Context, filters SearchFilters) ([]RouteSummary, error) {
	query := r.db.WithContext(ctx).
		Table("routes r").
		Select(`r.id, r.train_id, r.departure_station, r.arrival_station,
			r.departure_time, r.arrival_time, r.base_price,
			t.number AS train_number, t.name AS train_name, t.type AS train_type,
			COUNT(s.id) AS available_seats`).
		Joins("JOIN trains t ON t.id = r.train_id").
		Joins("LEFT JOIN seats s ON s.route_id = r.id AND s.status = ?", seats.StatusFree)

	if filters.DepartureStation != "" {
		query = query.Where("r.departure_station = ?", filters.DepartureStation)
	}
	if filters.ArrivalStation != "" {
		query = query.Where("r.arrival_station = ?", filters.ArrivalStation)
	}
	if filters.From != nil {
		query = query.Where("r.departure_time >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("r.departure_time < ?", *filters.To)
	}

	var summaries []RouteSummary
	err := query.
		Group("r.id, t.number, t.name, t.type").
		Having("COUNT(s.id) > 0").
		Order("r.departure_time ASC").
		Scan(&summaries).Error

	return summaries, err
}

func (r *repository) ListStations(ctx context.Context) ([]string, error) {
	var stations []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT station FROM (
			SELECT departure_station AS station FROM routes
			UNION
			SELECT arrival_station AS station FROM routes
		) AS all_stations ORDER BY station`).
		Scan(&stations).Error
	return stations, err
}
