package seats

// Status is the inventory state of a single seat.
type Status string

const (
	StatusFree     Status = "FREE"
	StatusReserved Status = "RESERVED"
	StatusSold     Status = "SOLD"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusReserved, StatusSold:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsFree checks if the seat can be claimed by a new booking
func (s Status) IsFree() bool {
	return s == StatusFree
}

// Class is the service class of a seat, derived from its position in the carriage.
type Class string

const (
	ClassLux         Class = "LUX"
	ClassCompartment Class = "COMPARTMENT"
	ClassStandard    Class = "STANDARD"
)

const (
	// SeatsPerCarriage is the fixed carriage capacity used by provisioning.
	SeatsPerCarriage = 10

	luxSeatsPerCarriage         = 2
	compartmentSeatsPerCarriage = 4
)

// ClassForPosition maps a 1-based position within a carriage to its class:
// 1-2 Lux, 3-6 Compartment, 7-10 Standard.
func ClassForPosition(position int) Class {
	switch {
	case position <= luxSeatsPerCarriage:
		return ClassLux
	case position <= luxSeatsPerCarriage+compartmentSeatsPerCarriage:
		return ClassCompartment
	default:
		return ClassStandard
	}
}
