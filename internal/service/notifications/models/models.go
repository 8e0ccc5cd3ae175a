package models

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// NotifyRequest запрос на создание уведомления
type NotifyRequest struct {
	RecipientType domain.RecipientType    `json:"recipientType"`
	RecipientID   int64                   `json:"recipientId"`
	BookingID     int64                   `json:"bookingId"`
	Message       string                  `json:"message"`
	Type          domain.NotificationType `json:"type"`
}

// BookingContextResponse данные бронирования, приложенные к уведомлению
type BookingContextResponse struct {
	BookingID    int64     `json:"bookingId"`
	FieldName    string    `json:"fieldName"`
	FieldAddress string    `json:"fieldAddress"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
}

// NotificationResponse модель уведомления для ответа сервиса
type NotificationResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`

	// Booking контекст бронирования; nil для только что созданных
	// уведомлений, когда обогащение не запрашивалось
	Booking *BookingContextResponse `json:"booking,omitempty"`
}

// NotificationListResponse список уведомлений получателя
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// FromDomainNotification конвертирует доменную модель в ответ сервиса
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainEnrichedList конвертирует обогащённый список в ответ сервиса
func FromDomainEnrichedList(notifications []*domain.EnrichedNotification) *NotificationListResponse {
	result := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		resp := *FromDomainNotification(&n.Notification)
		resp.Booking = &BookingContextResponse{
			BookingID:    n.Booking.BookingID,
			FieldName:    n.Booking.FieldName,
			FieldAddress: n.Booking.FieldAddress,
			StartTime:    n.Booking.StartTime,
			EndTime:      n.Booking.EndTime,
			Status:       string(n.Booking.BookingStatus),
		}
		result.Notifications = append(result.Notifications, resp)
	}

	return result
}
