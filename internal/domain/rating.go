package domain

import "time"

// Rating is a customer's review of a field, independent of the booking
// workflow
type Rating struct {
	ID         int64
	CustomerID int64
	FieldID    int64
	Stars      int
	Comment    string
	CreatedAt  time.Time
}

// IsValidStars returns true if the star value is within the allowed range
func IsValidStars(stars int) bool {
	return stars >= MinRatingStars && stars <= MaxRatingStars
}
