package bookings

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusPaid      Status = "PAID"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusPaid, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanBePaid checks if a booking with this status can be paid
func (s Status) CanBePaid() bool {
	return s == StatusBooked
}

// CanBeConfirmed checks if an admin can confirm a booking with this status.
// CANCELLED is terminal; everything else is confirmable.
func (s Status) CanBeConfirmed() bool {
	return s != StatusCancelled
}

// CanBeCancelled checks if a booking with this status can be cancelled
func (s Status) CanBeCancelled() bool {
	return s != StatusCancelled
}

// IsActive checks if the booking still claims its seat
func (s Status) IsActive() bool {
	return s != StatusCancelled
}
