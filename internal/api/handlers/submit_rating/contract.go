package submit_rating

import (
	"context"

	"github.com/fieldbook/FieldBookingService/internal/service/ratings/models"
)

type RatingService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.RatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
