package list_notifications

import (
	"context"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/internal/service/notifications/models"
)

type NotificationService interface {
	ListForRecipient(ctx context.Context, recipientType domain.RecipientType, recipientID int64) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
