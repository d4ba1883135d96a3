package database

import (
	"railbook/internal/bookings"
	"railbook/internal/routes"
	"railbook/internal/seats"
	"railbook/internal/trains"
	"railbook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&trains.Train{},
		&routes.Route{},
		&seats.Seat{},
		&bookings.Passenger{},
		&bookings.Booking{},
	)
}
