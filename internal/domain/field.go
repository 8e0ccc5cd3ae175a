package domain

import (
	"time"

	"github.com/fieldbook/FieldBookingService/pkg/types"
)

// Field represents a bookable sports venue as served by the field catalog.
// The catalog (FieldService) owns the full lifecycle; this service only
// reads it to validate and price bookings.
type Field struct {
	ID                  int64
	OwnerID             int64
	Name                string
	Address             string
	BasePrice           float64
	SlotDurationMinutes int
	Grounds             []Ground
	Services            []FieldService
	Schedule            WeekSchedule
}

// GroundByID returns the ground with the given ID, or nil if the field
// has no such ground
func (f *Field) GroundByID(groundID int64) *Ground {
	for i := range f.Grounds {
		if f.Grounds[i].ID == groundID {
			return &f.Grounds[i]
		}
	}
	return nil
}

// ServiceByID returns the service offering with the given ID, or nil
func (f *Field) ServiceByID(serviceID int64) *FieldService {
	for i := range f.Services {
		if f.Services[i].ID == serviceID {
			return &f.Services[i]
		}
	}
	return nil
}

// Ground is an individually bookable sub-court within a field
type Ground struct {
	ID           int64
	GroundNumber int
	Name         string
	Size         string
	Material     string
	PricePerHour float64
	Active       bool
}

// FieldService is an add-on offering (equipment rental etc.) of a field
type FieldService struct {
	ID    int64
	Name  string
	Type  string
	Price float64
}

// OccupiedSlot is a committed reservation interval on a ground
type OccupiedSlot struct {
	ID        int64
	FieldID   int64
	GroundID  int64
	StartTime time.Time
	EndTime   time.Time
}

// OccupiedSlots is the occupied-slot set of a single ground
type OccupiedSlots []OccupiedSlot

// IsStartTaken reports whether any occupied slot starts at exactly the given
// instant. Two intervals that merely overlap without sharing a start are NOT
// considered a conflict; exact start-time equality is the contract callers
// rely on, matching the per-slot booking grid.
func (s OccupiedSlots) IsStartTaken(start time.Time) bool {
	for _, slot := range s {
		if slot.StartTime.Equal(start) {
			return true
		}
	}
	return false
}

// DaySchedule is the slot template for one day of the week
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString

	// TimeSlots, when non-empty, enumerates the bookable windows explicitly
	// and takes precedence over OpenTime/CloseTime generation
	TimeSlots []SlotTemplate
}

// SlotTemplate is a single recurring bookable window in wall-clock time
type SlotTemplate struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// WeekSchedule is a fixed-size weekly slot template keyed by weekday,
// time.Sunday (0) through time.Saturday (6)
type WeekSchedule [7]DaySchedule

// ForDate returns the day schedule for the date's weekday
func (w WeekSchedule) ForDate(date time.Time) DaySchedule {
	return w[int(date.Weekday())]
}
