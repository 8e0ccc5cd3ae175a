package get_available_slots

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	FieldID  int64     // ID поля
	GroundID int64     // ID площадки
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	FieldID  int64                  // ID поля
	GroundID int64                  // ID площадки
	Date     time.Time              // Дата, на которую запрашивались слоты
	Slots    []domain.AvailableSlot // Слоты шаблона дня с признаком доступности
}
