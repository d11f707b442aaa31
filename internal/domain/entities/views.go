package entities

// Confirmation is returned by a successful registration.
type Confirmation struct {
	Seq         int
	DisplayName string
	Power       string
	Slot        string
}

// ActiveEntry is one line of the participant listing.
type ActiveEntry struct {
	DisplayName string
	Power       string
	Slot        string
}

// SlotCount is the occupancy of one slot.
type SlotCount struct {
	Slot       string
	Registered int
	Capacity   int
}

func (c SlotCount) Full() bool {
	return c.Registered >= c.Capacity
}

// SweepReport summarises one retention sweep.
type SweepReport struct {
	Kept        int
	Removed     int
	Unparseable int
}
