package bookings

// PassengerInput carries the traveller details captured at booking time.
type PassengerInput struct {
	FullName       string `json:"full_name" binding:"required,min=2,max=200"`
	DocumentNumber string `json:"document_number" binding:"required,min=2,max=50"`
	Phone          string `json:"phone" binding:"omitempty,max=30"`
}

// CreateBookingRequest represents the request to book one seat
type CreateBookingRequest struct {
	RouteID   string         `json:"route_id" binding:"required,uuid"`
	SeatID    string         `json:"seat_id" binding:"required,uuid"`
	Passenger PassengerInput `json:"passenger" binding:"required"`
}
