package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the indexes and uniqueness guarantees the booking
// engine relies on. Runs after AutoMigrate on every startup; all statements
// are idempotent.
func MigrateConstraints(db *gorm.DB) error {
	statements := []string{
		// Each seat exists once per route, carriage and position
		`CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_route
			ON seats (route_id, carriage_number, seat_number)`,

		// Backstop for the row-locked reservation path: a seat can carry at
		// most one non-cancelled booking, whatever the application does
		`CREATE UNIQUE INDEX IF NOT EXISTS unique_active_booking_per_seat
			ON bookings (seat_id) WHERE status <> 'CANCELLED'`,

		// Seat availability lookups during search
		`CREATE INDEX IF NOT EXISTS idx_seats_route_status
			ON seats (route_id, status)`,

		// Booking queries by user
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id
			ON bookings (user_id)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
