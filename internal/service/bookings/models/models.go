package models

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// ServiceItemResponse позиция услуги бронирования
type ServiceItemResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BookingResponse модель бронирования для ответа сервиса
type BookingResponse struct {
	ID           int64                 `json:"id"`
	CustomerID   int64                 `json:"customerId"`
	FieldID      int64                 `json:"fieldId"`
	GroundID     int64                 `json:"groundId"`
	OwnerID      int64                 `json:"ownerId"`
	StartTime    time.Time             `json:"startTime"`
	EndTime      time.Time             `json:"endTime"`
	Price        float64               `json:"price"`
	Status       string                `json:"status"`
	Services     []ServiceItemResponse `json:"services"`
	FieldName    string                `json:"fieldName"`
	FieldAddress string                `json:"fieldAddress"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	services := make([]ServiceItemResponse, 0, len(b.Services))
	for _, item := range b.Services {
		services = append(services, ServiceItemResponse{
			ServiceID: item.ServiceID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		FieldID:      b.FieldID,
		GroundID:     b.GroundID,
		OwnerID:      b.OwnerID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Price:        b.Price,
		Status:       string(b.Status),
		Services:     services,
		FieldName:    b.FieldName,
		FieldAddress: b.FieldAddress,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в ответ сервиса
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}
