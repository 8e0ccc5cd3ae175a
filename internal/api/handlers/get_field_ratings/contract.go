package get_field_ratings

import (
	"context"

	"github.com/fieldbook/FieldBookingService/internal/service/ratings/models"
)

type RatingService interface {
	GetFieldRatings(ctx context.Context, fieldID int64) (*models.FieldRatingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
