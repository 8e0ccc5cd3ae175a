package decide_booking

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	decideBooking "github.com/fieldbook/FieldBookingService/internal/usecase/decide_booking"
)

// DecideBookingRequest HTTP request model
type DecideBookingRequest struct {
	NotificationID int64  `json:"notificationId"`
	Decision       string `json:"decision"` // "accept" или "decline"
}

// DecisionResponse HTTP response model
type DecisionResponse struct {
	BookingID      int64  `json:"bookingId"`
	CustomerID     int64  `json:"customerId"`
	FieldID        int64  `json:"fieldId"`
	GroundID       int64  `json:"groundId"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	NotificationID int64  `json:"notificationId"`
	Message        string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DecideBookingRequest) ToUseCaseRequest(ownerID, bookingID int64) *decideBooking.Request {
	return &decideBooking.Request{
		OwnerID:        ownerID,
		BookingID:      bookingID,
		NotificationID: r.NotificationID,
		Decision:       domain.Decision(r.Decision),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideBooking.Response) *DecisionResponse {
	return &DecisionResponse{
		BookingID:      resp.BookingID,
		CustomerID:     resp.CustomerID,
		FieldID:        resp.FieldID,
		GroundID:       resp.GroundID,
		StartTime:      resp.StartTime.Format(time.RFC3339),
		EndTime:        resp.EndTime.Format(time.RFC3339),
		Status:         resp.Status,
		NotificationID: resp.NotificationID,
		Message:        resp.Message,
	}
}
