package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusAccepted BookingStatus = "accepted"
	StatusDeclined BookingStatus = "declined"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusDeclined
}

// Booking represents a customer's reservation of a ground at a specific time
type Booking struct {
	ID         int64
	CustomerID int64
	FieldID    int64
	GroundID   int64
	OwnerID    int64
	StartTime  time.Time
	EndTime    time.Time

	// Price is always recomputed server-side from the field base price and
	// the requested service items; client-submitted values are never trusted
	Price    float64
	Services []ServiceItem
	Status   BookingStatus

	// Denormalized field data for history and notification rendering
	FieldName    string
	FieldAddress string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsResolved returns true if the owner has already decided on the booking
func (b *Booking) IsResolved() bool {
	return b.Status == StatusAccepted || b.Status == StatusDeclined
}

// CanBeDecided returns true if the booking is still awaiting an owner decision
func (b *Booking) CanBeDecided() bool {
	return b.Status == StatusPending
}

// ServiceItem is an add-on service line attached to a booking
type ServiceItem struct {
	ServiceID int64
	Name      string
	Price     float64
	Quantity  int
}

// Total returns the line total (price * quantity)
func (i ServiceItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// ComputePrice derives the canonical booking price: the field base price
// plus the sum of all service line totals
func ComputePrice(basePrice float64, items []ServiceItem) float64 {
	total := basePrice
	for _, item := range items {
		total += item.Total()
	}
	return total
}

// Decision represents an owner's verdict on a pending booking
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// IsValid returns true if the decision is one of the known values
func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionDecline
}
