package bookings

import (
	"context"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Booking, error)
	GetByFieldID(ctx context.Context, fieldID int64) ([]*domain.Booking, error)
}

// FieldServiceClient интерфейс клиента каталога полей
type FieldServiceClient interface {
	GetField(ctx context.Context, fieldID int64) (*domain.Field, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
