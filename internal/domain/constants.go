package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinRatingStars      = 1
	MaxRatingStars      = 5
	MaxRatingComment    = 1000
	MaxServiceQuantity  = 100
	MaxNotificationText = 500
	MaxBookingHours     = 12 // верхняя граница длительности одного бронирования
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
