package models

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// SubmitRequest запрос на создание оценки поля
type SubmitRequest struct {
	CustomerID int64  `json:"customerId"`
	FieldID    int64  `json:"fieldId"`
	Stars      int    `json:"stars"`
	Comment    string `json:"comment"`
}

// RatingResponse модель оценки для ответа сервиса
type RatingResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	FieldID    int64     `json:"fieldId"`
	Stars      int       `json:"stars"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FieldRatingsResponse список оценок поля со сводкой
type FieldRatingsResponse struct {
	FieldID      int64            `json:"fieldId"`
	AverageStars float64          `json:"averageStars"`
	Ratings      []RatingResponse `json:"ratings"`
}

// FromDomainRating конвертирует доменную модель в ответ сервиса
func FromDomainRating(r *domain.Rating) *RatingResponse {
	return &RatingResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		FieldID:    r.FieldID,
		Stars:      r.Stars,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainRatingList конвертирует список оценок в ответ сервиса
// Среднее считается по возвращаемому набору
func FromDomainRatingList(fieldID int64, ratings []*domain.Rating) *FieldRatingsResponse {
	result := &FieldRatingsResponse{
		FieldID: fieldID,
		Ratings: make([]RatingResponse, 0, len(ratings)),
	}

	total := 0
	for _, r := range ratings {
		total += r.Stars
		result.Ratings = append(result.Ratings, *FromDomainRating(r))
	}

	if len(ratings) > 0 {
		result.AverageStars = float64(total) / float64(len(ratings))
	}

	return result
}
