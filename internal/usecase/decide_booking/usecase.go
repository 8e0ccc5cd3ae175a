package decide_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	notificationRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/notification"
	slotRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/slot"
)

// UseCase use case решения владельца по заявке на бронирование
type UseCase struct {
	bookingRepo      BookingRepository
	slotRepo         SlotRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		slotRepo:         slotRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case решения по бронированию
// Бронирование и связанное уведомление переводятся атомарно: статус,
// освобождение слота при отклонении, отметка о прочтении заявки и
// уведомление клиенту выполняются в одной сериализуемой транзакции.
// Строка бронирования блокируется (FOR UPDATE), поэтому конкурентные
// решения по одному бронированию сериализуются: второе получает
// ErrAlreadyResolved
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideBooking: owner=%d, booking=%d, notification=%d, decision=%s",
		req.OwnerID, req.BookingID, req.NotificationID, req.Decision)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DecideBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Выполняем переход в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DecideBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DecideBooking: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Решение принимает только владелец поля
		if booking.OwnerID != req.OwnerID {
			uc.logger.Warn("DecideBooking: owner=%d is not the owner of booking id=%d",
				req.OwnerID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Повторное решение - логическая ошибка
		if !booking.CanBeDecided() {
			uc.logger.Warn("DecideBooking: booking id=%d already resolved, status=%s",
				req.BookingID, booking.Status)
			return ErrAlreadyResolved
		}

		// 2.4. Проверяем, что уведомление-заявка относится к этому бронированию
		notification, err := uc.notificationRepo.GetByID(txCtx, req.NotificationID)
		if err != nil {
			if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
				uc.logger.Warn("DecideBooking: notification id=%d not found", req.NotificationID)
				return ErrNotificationNotFound
			}
			uc.logger.Error("DecideBooking: repository error for notification id=%d: %v", req.NotificationID, err)
			return fmt.Errorf("%w: failed to get notification: %v", ErrInternal, err)
		}
		if notification.BookingID != booking.ID {
			uc.logger.Warn("DecideBooking: notification id=%d refers to booking id=%d, expected id=%d",
				req.NotificationID, notification.BookingID, booking.ID)
			return ErrNotificationMismatch
		}

		// 2.5. Выполняем переход статуса
		newStatus := domain.StatusAccepted
		if req.Decision == domain.DecisionDecline {
			newStatus = domain.StatusDeclined

			// Отклонённое бронирование освобождает слот, иначе слот
			// останется заблокированным навсегда
			if err := uc.slotRepo.Release(txCtx, booking.GroundID, booking.StartTime); err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					uc.logger.Warn("DecideBooking: occupied slot for booking id=%d already released", booking.ID)
				} else {
					uc.logger.Error("DecideBooking: failed to release slot for booking id=%d: %v", booking.ID, err)
					return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
				}
			}
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, newStatus); err != nil {
			uc.logger.Error("DecideBooking: failed to update status for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		// 2.6. Помечаем заявку прочитанной
		if err := uc.notificationRepo.MarkRead(txCtx, notification.ID); err != nil {
			uc.logger.Error("DecideBooking: failed to mark notification id=%d read: %v", notification.ID, err)
			return fmt.Errorf("%w: failed to mark notification read: %v", ErrInternal, err)
		}

		// 2.7. Уведомляем клиента о решении
		message := resolutionMessage(booking, newStatus)
		created, err := uc.notificationRepo.Create(txCtx, &domain.Notification{
			RecipientType: domain.RecipientCustomer,
			RecipientID:   booking.CustomerID,
			BookingID:     booking.ID,
			Message:       message,
			Type:          domain.NotificationResolution,
		})
		if err != nil {
			uc.logger.Error("DecideBooking: failed to create customer notification: %v", err)
			return fmt.Errorf("%w: failed to create customer notification: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:      booking.ID,
			CustomerID:     booking.CustomerID,
			FieldID:        booking.FieldID,
			GroundID:       booking.GroundID,
			StartTime:      booking.StartTime,
			EndTime:        booking.EndTime,
			Status:         string(newStatus),
			NotificationID: created.ID,
			Message:        created.Message,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DecideBooking: booking id=%d resolved with status=%s", result.BookingID, result.Status)
	return result, nil
}

// resolutionMessage формирует текст уведомления клиенту о решении владельца
func resolutionMessage(booking *domain.Booking, status domain.BookingStatus) string {
	when := booking.StartTime.Format("02.01.2006 15:04")
	if status == domain.StatusAccepted {
		return fmt.Sprintf("Ваше бронирование подтверждено: %s, %s", booking.FieldName, when)
	}
	return fmt.Sprintf("Ваше бронирование отклонено: %s, %s. Слот снова доступен для бронирования", booking.FieldName, when)
}
