package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanBePaid(t *testing.T) {
	assert.True(t, StatusBooked.CanBePaid())
	assert.False(t, StatusPaid.CanBePaid())
	assert.False(t, StatusConfirmed.CanBePaid())
	assert.False(t, StatusCancelled.CanBePaid())
}

func TestStatus_CanBeConfirmed(t *testing.T) {
	assert.True(t, StatusBooked.CanBeConfirmed())
	assert.True(t, StatusPaid.CanBeConfirmed())
	assert.True(t, StatusConfirmed.CanBeConfirmed())
	assert.False(t, StatusCancelled.CanBeConfirmed())
}

func TestStatus_CanBeCancelled(t *testing.T) {
	assert.True(t, StatusBooked.CanBeCancelled())
	assert.True(t, StatusPaid.CanBeCancelled())
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, StatusBooked.IsActive())
	assert.True(t, StatusPaid.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusBooked.IsValid())
	assert.False(t, Status("PENDING").IsValid())
}

func TestBooking_Cancel(t *testing.T) {
	b := &Booking{Status: StatusConfirmed, ConfirmedByAdmin: true}

	b.Cancel()

	assert.Equal(t, StatusCancelled, b.Status)
	assert.False(t, b.ConfirmedByAdmin)
	assert.NotNil(t, b.CancelledAt)
}
