package routes

import "time"

type CreateRouteRequest struct {
	TrainID          string    `json:"train_id" binding:"required,uuid"`
	DepartureStation string    `json:"departure_station" binding:"required,min=1,max=255"`
	ArrivalStation   string    `json:"arrival_station" binding:"required,min=1,max=255"`
	DepartureTime    time.Time `json:"departure_time" binding:"required"`
	ArrivalTime      time.Time `json:"arrival_time" binding:"required"`
	BasePrice        float64   `json:"base_price" binding:"required"`
	SeatCount        int       `json:"seat_count" binding:"required,min=1,max=1000"`
}

type UpdatePriceRequest struct {
	BasePrice float64 `json:"base_price" binding:"required"`
}

type SearchQuery struct {
	DepartureStation string `form:"departure_station"`
	ArrivalStation   string `form:"arrival_station"`
	DateBucket       string `form:"date" binding:"omitempty,oneof=today tomorrow this_week next_week"`
}
