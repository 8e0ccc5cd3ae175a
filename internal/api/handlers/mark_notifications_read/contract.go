package mark_notifications_read

import (
	"context"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

type NotificationService interface {
	MarkAllRead(ctx context.Context, recipientType domain.RecipientType, recipientID int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
