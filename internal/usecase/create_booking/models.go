package create_booking

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// RequestedService запрошенная позиция услуги
type RequestedService struct {
	ServiceID int64 // ID услуги из каталога поля
	Quantity  int   // Количество (> 0)
}

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64              // ID клиента
	FieldID    int64              // ID поля
	GroundID   int64              // ID площадки
	StartTime  time.Time          // Начало слота (абсолютное время)
	EndTime    time.Time          // Конец слота (абсолютное время)
	Services   []RequestedService // Дополнительные услуги (опционально)

	// SubmittedPrice цена, присланная клиентом
	// Принимается для обратной совместимости, но игнорируется: итоговая цена
	// всегда пересчитывается на сервере из каталожных данных
	SubmittedPrice *float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64                // ID созданного бронирования
	CustomerID int64                // ID клиента
	FieldID    int64                // ID поля
	GroundID   int64                // ID площадки
	OwnerID    int64                // ID владельца поля
	StartTime  time.Time            // Начало слота
	EndTime    time.Time            // Конец слота
	Price      float64              // Итоговая цена (каноническая, серверная)
	Status     string               // Статус бронирования
	Services   []domain.ServiceItem // Позиции услуг с каталожными ценами

	// Денормализованные данные поля
	FieldName    string
	FieldAddress string

	CreatedAt time.Time
	UpdatedAt time.Time
}
