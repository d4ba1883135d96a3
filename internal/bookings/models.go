package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Passenger is created fresh for every booking; one passenger record
// belongs to exactly one booking.
type Passenger struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	DocumentNumber string    `gorm:"not null" json:"document_number"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
}

// Booking defines the main booking structure
type Booking struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PassengerID      uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"passenger_id"`
	SeatID           uuid.UUID  `gorm:"type:uuid;index;not null" json:"seat_id"`
	RouteID          uuid.UUID  `gorm:"type:uuid;index;not null" json:"route_id"`
	UserID           uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Status           Status     `gorm:"type:varchar(20);check:status IN ('BOOKED', 'PAID', 'CONFIRMED', 'CANCELLED');default:'BOOKED'" json:"status"`
	FinalPrice       float64    `gorm:"not null" json:"final_price"`
	ConfirmedByAdmin bool       `gorm:"not null;default:false" json:"confirmed_by_admin"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Passenger *Passenger `json:"passenger,omitempty" gorm:"foreignKey:PassengerID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for Passenger
func (Passenger) TableName() string {
	return "passengers"
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

func (b *Booking) Cancel() {
	b.Status = StatusCancelled
	b.ConfirmedByAdmin = false
	now := time.Now()
	b.CancelledAt = &now
	b.UpdatedAt = now
}

// BookingDetails is the joined listing row: booking plus passenger, train,
// route and seat columns.
type BookingDetails struct {
	BookingID        uuid.UUID  `gorm:"column:booking_id" json:"booking_id"`
	Status           Status     `gorm:"column:status" json:"status"`
	FinalPrice       float64    `gorm:"column:final_price" json:"final_price"`
	ConfirmedByAdmin bool       `gorm:"column:confirmed_by_admin" json:"confirmed_by_admin"`
	BookingDate      time.Time  `gorm:"column:booking_date" json:"booking_date"`
	CancelledAt      *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	PassengerName  string `gorm:"column:passenger_name" json:"passenger_name"`
	DocumentNumber string `gorm:"column:document_number" json:"document_number"`
	PassengerPhone string `gorm:"column:passenger_phone" json:"passenger_phone"`

	TrainNumber      string    `gorm:"column:train_number" json:"train_number"`
	TrainName        string    `gorm:"column:train_name" json:"train_name"`
	DepartureStation string    `gorm:"column:departure_station" json:"departure_station"`
	ArrivalStation   string    `gorm:"column:arrival_station" json:"arrival_station"`
	DepartureTime    time.Time `gorm:"column:departure_time" json:"departure_time"`
	ArrivalTime      time.Time `gorm:"column:arrival_time" json:"arrival_time"`

	CarriageNumber int    `gorm:"column:carriage_number" json:"carriage_number"`
	SeatNumber     int    `gorm:"column:seat_number" json:"seat_number"`
	SeatClass      string `gorm:"column:seat_class" json:"seat_class"`

	Username string `gorm:"column:username" json:"username"`
}
