package seats

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildSeatLayout_CarriagePacking(t *testing.T) {
	routeID := uuid.New()

	layout := BuildSeatLayout(routeID, 25)

	assert.Len(t, layout, 25)

	// First carriage is full, third holds the remainder
	perCarriage := map[int]int{}
	for _, seat := range layout {
		perCarriage[seat.CarriageNumber]++
		assert.Equal(t, routeID, seat.RouteID)
		assert.Equal(t, StatusFree, seat.Status)
		assert.GreaterOrEqual(t, seat.SeatNumber, 1)
		assert.LessOrEqual(t, seat.SeatNumber, SeatsPerCarriage)
	}
	assert.Equal(t, 10, perCarriage[1])
	assert.Equal(t, 10, perCarriage[2])
	assert.Equal(t, 5, perCarriage[3])
}

func TestBuildSeatLayout_ClassBands(t *testing.T) {
	layout := BuildSeatLayout(uuid.New(), 10)

	for _, seat := range layout {
		switch {
		case seat.SeatNumber <= 2:
			assert.Equal(t, ClassLux, seat.Class, "seat %d", seat.SeatNumber)
		case seat.SeatNumber <= 6:
			assert.Equal(t, ClassCompartment, seat.Class, "seat %d", seat.SeatNumber)
		default:
			assert.Equal(t, ClassStandard, seat.Class, "seat %d", seat.SeatNumber)
		}
	}
}

func TestClassForPosition(t *testing.T) {
	assert.Equal(t, ClassLux, ClassForPosition(1))
	assert.Equal(t, ClassLux, ClassForPosition(2))
	assert.Equal(t, ClassCompartment, ClassForPosition(3))
	assert.Equal(t, ClassCompartment, ClassForPosition(6))
	assert.Equal(t, ClassStandard, ClassForPosition(7))
	assert.Equal(t, ClassStandard, ClassForPosition(10))
}
