package get_booking

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/internal/service/bookings/models"
)

// ServiceItemResponse позиция услуги бронирования
type ServiceItemResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BookingResponse HTTP response model
// Дата и время отдаются раздельно, в том же виде, в каком клиент их присылал
// при создании бронирования
type BookingResponse struct {
	ID           int64                 `json:"id"`
	CustomerID   int64                 `json:"customerId"`
	FieldID      int64                 `json:"fieldId"`
	GroundID     int64                 `json:"groundId"`
	OwnerID      int64                 `json:"ownerId"`
	Date         string                `json:"date"`
	StartTime    string                `json:"startTime"`
	EndTime      string                `json:"endTime"`
	Price        float64               `json:"price"`
	Status       string                `json:"status"`
	Services     []ServiceItemResponse `json:"services"`
	FieldName    string                `json:"fieldName"`
	FieldAddress string                `json:"fieldAddress"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса бронирований в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	services := make([]ServiceItemResponse, 0, len(resp.Services))
	for _, item := range resp.Services {
		services = append(services, ServiceItemResponse{
			ServiceID: item.ServiceID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &BookingResponse{
		ID:           resp.ID,
		CustomerID:   resp.CustomerID,
		FieldID:      resp.FieldID,
		GroundID:     resp.GroundID,
		OwnerID:      resp.OwnerID,
		Date:         resp.StartTime.Format(domain.DateFormat),
		StartTime:    resp.StartTime.Format(domain.TimeFormat),
		EndTime:      resp.EndTime.Format(domain.TimeFormat),
		Price:        resp.Price,
		Status:       resp.Status,
		Services:     services,
		FieldName:    resp.FieldName,
		FieldAddress: resp.FieldAddress,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
