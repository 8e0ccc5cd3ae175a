package get_field_bookings

import (
	"context"

	"github.com/fieldbook/FieldBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetFieldBookings(ctx context.Context, fieldID int64, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
