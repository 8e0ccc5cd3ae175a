package get_available_slots

import (
	"context"
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// SlotRepository интерфейс репозитория занятых слотов
type SlotRepository interface {
	GetByGroundAndRange(ctx context.Context, groundID int64, from, to time.Time) (domain.OccupiedSlots, error)
}

// FieldServiceClient интерфейс клиента каталога полей
type FieldServiceClient interface {
	GetField(ctx context.Context, fieldID int64) (*domain.Field, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
