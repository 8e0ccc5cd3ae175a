package domain

import "github.com/fieldbook/FieldBookingService/pkg/types"

// AvailableSlot represents a candidate time slot of a ground on a specific
// date, with its availability at resolution time
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
