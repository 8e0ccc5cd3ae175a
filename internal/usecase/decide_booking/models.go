package decide_booking

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// Request модель запроса на решение по бронированию
type Request struct {
	OwnerID        int64           // ID владельца поля, принимающего решение
	BookingID      int64           // ID бронирования
	NotificationID int64           // ID уведомления-заявки, по которому принимается решение
	Decision       domain.Decision // accept или decline
}

// Response модель ответа с обновлённым бронированием и созданным
// уведомлением клиенту
type Response struct {
	BookingID      int64     // ID бронирования
	CustomerID     int64     // ID клиента
	FieldID        int64     // ID поля
	GroundID       int64     // ID площадки
	StartTime      time.Time // Начало слота
	EndTime        time.Time // Конец слота
	Status         string    // Новый статус бронирования
	NotificationID int64     // ID созданного уведомления клиенту
	Message        string    // Текст уведомления клиенту
}
