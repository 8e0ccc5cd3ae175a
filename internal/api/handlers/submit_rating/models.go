package submit_rating

import "github.com/fieldbook/FieldBookingService/internal/service/ratings/models"

// SubmitRatingRequest HTTP request model
type SubmitRatingRequest struct {
	FieldID int64  `json:"fieldId"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SubmitRatingRequest) ToServiceRequest(customerID int64) *models.SubmitRequest {
	return &models.SubmitRequest{
		CustomerID: customerID,
		FieldID:    r.FieldID,
		Stars:      r.Stars,
		Comment:    r.Comment,
	}
}
