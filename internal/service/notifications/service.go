package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	"github.com/fieldbook/FieldBookingService/internal/service/notifications/models"
)

// Service маршрутизатор уведомлений workflow бронирования
// Создаёт события, отдаёт их получателям по запросу (доставка поллингом)
// и ведёт состояние прочитанности
type Service struct {
	notificationRepo NotificationRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Notify создает уведомление получателю о событии бронирования
func (s *Service) Notify(ctx context.Context, req *models.NotifyRequest) (*models.NotificationResponse, error) {
	s.logger.Info("Notify: recipient=%s/%d, booking=%d, type=%s",
		req.RecipientType, req.RecipientID, req.BookingID, req.Type)

	if err := validateNotifyRequest(req); err != nil {
		s.logger.Warn("Notify: validation failed: %v", err)
		return nil, err
	}

	// Уведомление всегда ссылается на существующее бронирование
	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Notify: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Notify: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Notify - repository error: %v", ErrInternal, err)
	}

	created, err := s.notificationRepo.Create(ctx, &domain.Notification{
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
		BookingID:     req.BookingID,
		Message:       req.Message,
		Type:          req.Type,
	})
	if err != nil {
		s.logger.Error("Notify: failed to create notification: %v", err)
		return nil, fmt.Errorf("%w: Notify - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Notify: created notification id=%d", created.ID)
	return models.FromDomainNotification(created), nil
}

// ListForRecipient получает уведомления получателя, новые сверху
// Каждое уведомление обогащено контекстом бронирования
func (s *Service) ListForRecipient(ctx context.Context, recipientType domain.RecipientType, recipientID int64) (*models.NotificationListResponse, error) {
	s.logger.Info("ListForRecipient: recipient=%s/%d", recipientType, recipientID)

	if !recipientType.IsValid() {
		return nil, fmt.Errorf("%w: unknown recipient type %q", ErrInvalidInput, recipientType)
	}

	notifications, err := s.notificationRepo.ListByRecipient(ctx, recipientType, recipientID)
	if err != nil {
		s.logger.Error("ListForRecipient: repository error for recipient=%s/%d: %v",
			recipientType, recipientID, err)
		return nil, fmt.Errorf("%w: ListForRecipient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForRecipient: fetched %d notifications for recipient=%s/%d",
		len(notifications), recipientType, recipientID)
	return models.FromDomainEnrichedList(notifications), nil
}

// MarkAllRead помечает все уведомления получателя прочитанными
// Идемпотентна: пустой набор - не ошибка, возвращается количество обновлённых
func (s *Service) MarkAllRead(ctx context.Context, recipientType domain.RecipientType, recipientID int64) (int64, error) {
	s.logger.Info("MarkAllRead: recipient=%s/%d", recipientType, recipientID)

	if !recipientType.IsValid() {
		return 0, fmt.Errorf("%w: unknown recipient type %q", ErrInvalidInput, recipientType)
	}

	updated, err := s.notificationRepo.MarkAllRead(ctx, recipientType, recipientID)
	if err != nil {
		s.logger.Error("MarkAllRead: repository error for recipient=%s/%d: %v",
			recipientType, recipientID, err)
		return 0, fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: marked %d notifications read for recipient=%s/%d",
		updated, recipientType, recipientID)
	return updated, nil
}

// validateNotifyRequest валидирует запрос на создание уведомления
func validateNotifyRequest(req *models.NotifyRequest) error {
	if !req.RecipientType.IsValid() {
		return fmt.Errorf("%w: unknown recipient type %q", ErrInvalidInput, req.RecipientType)
	}
	if req.RecipientID <= 0 {
		return fmt.Errorf("%w: recipientID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxNotificationText {
		return fmt.Errorf("%w: message longer than %d characters", ErrInvalidInput, domain.MaxNotificationText)
	}
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown notification type %q", ErrInvalidInput, req.Type)
	}
	return nil
}
