package create_booking

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	createBooking "github.com/fieldbook/FieldBookingService/internal/usecase/create_booking"
	"github.com/fieldbook/FieldBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID   int64  `json:"fieldId"`
	GroundID  int64  `json:"groundId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"

	Services []RequestedService `json:"services,omitempty"`

	// Price присылается старыми клиентами и игнорируется,
	// итоговая цена всегда считается на сервере
	Price *float64 `json:"price,omitempty"`
}

// RequestedService позиция услуги в запросе
type RequestedService struct {
	ServiceID int64 `json:"serviceId"`
	Quantity  int   `json:"quantity"`
}

// ServiceItemResponse позиция услуги с каталожной ценой
type ServiceItemResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и конца
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	// Совмещаем дату и время в конкретные моменты
	start, err := startTime.OnDate(date)
	if err != nil {
		return nil, err
	}
	end, err := endTime.OnDate(date)
	if err != nil {
		return nil, err
	}

	services := make([]createBooking.RequestedService, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, createBooking.RequestedService{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
		})
	}

	return &createBooking.Request{
		CustomerID:     customerID,
		FieldID:        r.FieldID,
		GroundID:       r.GroundID,
		StartTime:      start,
		EndTime:        end,
		Services:       services,
		SubmittedPrice: r.Price,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
