package application

import (
	"slices"
	"time"
)

// Settings are the ledger rules shared by the services.
type Settings struct {
	MaxPerSlot int
	Slots      []string
	Retention  time.Duration
	SweepDay   time.Weekday
	// Location is the ledger clock; CreatedAt values are written and parsed in it.
	Location *time.Location
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (s Settings) HasSlot(slot string) bool {
	return slices.Contains(s.Slots, slot)
}

func (s Settings) now() time.Time {
	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().In(s.location())
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
