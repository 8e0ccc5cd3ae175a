package domain

import "time"

// NotificationType tags the workflow stage a notification describes
type NotificationType string

const (
	// NotificationRequest is sent to the field owner when a booking is
	// created and awaits a decision
	NotificationRequest NotificationType = "request"

	// NotificationResolution is sent to the customer when the owner has
	// accepted or declined the booking
	NotificationResolution NotificationType = "resolution"
)

// IsValid returns true if the type is one of the known values
func (t NotificationType) IsValid() bool {
	return t == NotificationRequest || t == NotificationResolution
}

// RecipientType distinguishes the two recipient ID spaces
type RecipientType string

const (
	RecipientOwner    RecipientType = "owner"
	RecipientCustomer RecipientType = "customer"
)

// IsValid returns true if the recipient type is one of the known values
func (t RecipientType) IsValid() bool {
	return t == RecipientOwner || t == RecipientCustomer
}

// Notification is a workflow event routed to a single recipient
type Notification struct {
	ID            int64
	RecipientType RecipientType
	RecipientID   int64
	BookingID     int64
	Message       string
	Type          NotificationType
	IsRead        bool
	CreatedAt     time.Time
}

// EnrichedNotification is a notification joined with the context of the
// booking it refers to, as returned by recipient listings
type EnrichedNotification struct {
	Notification
	Booking NotificationBookingContext
}

// NotificationBookingContext carries the booking data joined into a
// notification listing, so the reader can render booking details without
// a second query
type NotificationBookingContext struct {
	BookingID     int64
	FieldName     string
	FieldAddress  string
	StartTime     time.Time
	EndTime       time.Time
	BookingStatus BookingStatus
}
