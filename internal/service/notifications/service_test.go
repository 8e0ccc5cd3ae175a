package notifications

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	"github.com/fieldbook/FieldBookingService/internal/service/notifications/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeNotificationRepo struct {
	created  []*domain.Notification
	enriched []*domain.EnrichedNotification
	marked   int64
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = int64(len(f.created) + 1)
	n.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientType domain.RecipientType, recipientID int64) ([]*domain.EnrichedNotification, error) {
	return f.enriched, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientType domain.RecipientType, recipientID int64) (int64, error) {
	return f.marked, nil
}

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func validNotifyRequest() *models.NotifyRequest {
	return &models.NotifyRequest{
		RecipientType: domain.RecipientOwner,
		RecipientID:   77,
		BookingID:     42,
		Message:       "Новая заявка на бронирование",
		Type:          domain.NotificationRequest,
	}
}

func TestNotify_Success(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, &fakeBookingRepo{booking: &domain.Booking{ID: 42}}, nopLogger{})

	resp, err := svc.Notify(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.False(t, resp.IsRead)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.RecipientOwner, repo.created[0].RecipientType)
}

func TestNotify_BookingNotFound(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.Notify(context.Background(), validNotifyRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestNotify_Validation(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, &fakeBookingRepo{booking: &domain.Booking{ID: 42}}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(r *models.NotifyRequest)
	}{
		{name: "bad recipient type", mutate: func(r *models.NotifyRequest) { r.RecipientType = "admin" }},
		{name: "zero recipient", mutate: func(r *models.NotifyRequest) { r.RecipientID = 0 }},
		{name: "zero booking", mutate: func(r *models.NotifyRequest) { r.BookingID = 0 }},
		{name: "empty message", mutate: func(r *models.NotifyRequest) { r.Message = "" }},
		{name: "message too long", mutate: func(r *models.NotifyRequest) {
			r.Message = strings.Repeat("a", domain.MaxNotificationText+1)
		}},
		{name: "bad type", mutate: func(r *models.NotifyRequest) { r.Type = "spam" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validNotifyRequest()
			tt.mutate(req)
			_, err := svc.Notify(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListForRecipient_PreservesRepositoryOrder(t *testing.T) {
	// Репозиторий отдаёт уведомления новыми сверху, сервис порядок не меняет
	newer := &domain.EnrichedNotification{
		Notification: domain.Notification{ID: 2, BookingID: 42},
		Booking:      domain.NotificationBookingContext{BookingID: 42, FieldName: "Арена Север", BookingStatus: domain.StatusPending},
	}
	older := &domain.EnrichedNotification{
		Notification: domain.Notification{ID: 1, BookingID: 41},
		Booking:      domain.NotificationBookingContext{BookingID: 41, FieldName: "Арена Юг", BookingStatus: domain.StatusAccepted},
	}

	repo := &fakeNotificationRepo{enriched: []*domain.EnrichedNotification{newer, older}}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	resp, err := svc.ListForRecipient(context.Background(), domain.RecipientOwner, 77)

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(2), resp.Notifications[0].ID)
	assert.Equal(t, int64(1), resp.Notifications[1].ID)

	// Каждое уведомление обогащено контекстом бронирования
	require.NotNil(t, resp.Notifications[0].Booking)
	assert.Equal(t, "Арена Север", resp.Notifications[0].Booking.FieldName)
	assert.Equal(t, string(domain.StatusAccepted), resp.Notifications[1].Booking.Status)
}

func TestListForRecipient_InvalidRole(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.ListForRecipient(context.Background(), "admin", 77)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkAllRead_EmptySet(t *testing.T) {
	// Пустой набор - не ошибка, возвращается ноль
	svc := NewService(&fakeNotificationRepo{marked: 0}, &fakeBookingRepo{}, nopLogger{})

	updated, err := svc.MarkAllRead(context.Background(), domain.RecipientCustomer, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestMarkAllRead_ReturnsCount(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{marked: 5}, &fakeBookingRepo{}, nopLogger{})

	updated, err := svc.MarkAllRead(context.Background(), domain.RecipientOwner, 77)

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)
}
