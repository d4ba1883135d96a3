package routes

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRouteNotFound   = errors.New("route not found")
	ErrInvalidSchedule = errors.New("arrival time must be after departure time")
	ErrInvalidPrice    = errors.New("base price must be positive")
)

// Route is a scheduled single-train journey between two stations.
type Route struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TrainID          uuid.UUID `gorm:"type:uuid;index;not null" json:"train_id"`
	DepartureStation string    `gorm:"not null;index" json:"departure_station"`
	ArrivalStation   string    `gorm:"not null;index" json:"arrival_station"`
	DepartureTime    time.Time `gorm:"not null;index" json:"departure_time"`
	ArrivalTime      time.Time `gorm:"not null" json:"arrival_time"`
	BasePrice        float64   `gorm:"not null;check:base_price > 0" json:"base_price"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName sets the table name for Route
func (Route) TableName() string {
	return "routes"
}

// RouteSummary is the search projection: a route joined with its train and
// a live count of free seats.
type RouteSummary struct {
	ID               uuid.UUID `gorm:"column:id" json:"route_id"`
	TrainID          uuid.UUID `gorm:"column:train_id" json:"train_id"`
	TrainNumber      string    `gorm:"column:train_number" json:"train_number"`
	TrainName        string    `gorm:"column:train_name" json:"train_name"`
	TrainType        string    `gorm:"column:train_type" json:"train_type"`
	DepartureStation string    `gorm:"column:departure_station" json:"departure_station"`
	ArrivalStation   string    `gorm:"column:arrival_station" json:"arrival_station"`
	DepartureTime    time.Time `gorm:"column:departure_time" json:"departure_time"`
	ArrivalTime      time.Time `gorm:"column:arrival_time" json:"arrival_time"`
	BasePrice        float64   `gorm:"column:base_price" json:"base_price"`
	AvailableSeats   int       `gorm:"column:available_seats" json:"available_seats"`
}
