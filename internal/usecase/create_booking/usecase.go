package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	slotRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/slot"
	fieldClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	slotRepo         SlotRepository
	notificationRepo NotificationRepository
	fieldClient      FieldServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	notificationRepo NotificationRepository,
	fieldClient FieldServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		slotRepo:         slotRepo,
		notificationRepo: notificationRepo,
		fieldClient:      fieldClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности, запись занятого слота, создание бронирования и
// уведомление владельцу выполняются в одной сериализуемой транзакции:
// при любой ошибке не остаётся частично применённых изменений.
// Уникальное ограничение (ground_id, start_time) в occupied_slots закрывает
// гонку между конкурентными запросами на один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, field=%d, ground=%d, start=%s",
		req.CustomerID, req.FieldID, req.GroundID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем поле из каталога
	field, err := uc.fieldClient.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			uc.logger.Warn("CreateBooking: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateBooking: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 4. Проверяем существование и активность площадки
	ground := field.GroundByID(req.GroundID)
	if ground == nil {
		uc.logger.Warn("CreateBooking: ground id=%d not found in field id=%d", req.GroundID, req.FieldID)
		return nil, ErrGroundNotFound
	}
	if !ground.Active {
		uc.logger.Warn("CreateBooking: ground id=%d is inactive", req.GroundID)
		return nil, ErrGroundInactive
	}

	// 5. Сопоставляем запрошенные услуги с каталогом
	items, err := resolveServiceItems(field, req.Services)
	if err != nil {
		uc.logger.Warn("CreateBooking: service resolution failed: %v", err)
		return nil, err
	}

	// 6. Считаем каноническую цену на сервере
	// Присланная клиентом цена не участвует в расчёте
	price := domain.ComputePrice(field.BasePrice, items)
	if req.SubmittedPrice != nil && *req.SubmittedPrice != price {
		uc.logger.Warn("CreateBooking: submitted price %.2f ignored, computed %.2f",
			*req.SubmittedPrice, price)
	}

	// 7. Бронировать можно только строго в будущем
	if !req.StartTime.After(now) {
		uc.logger.Warn("CreateBooking: start time %s is not in the future",
			req.StartTime.Format(time.RFC3339))
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Booking

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Перечитываем занятые слоты площадки под блокировкой
		occupied, err := uc.slotRepo.GetByGroundID(txCtx, req.GroundID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get occupied slots: %v", err)
			return fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
		}

		// 8.2. Проверяем доступность по точному совпадению начала слота
		if occupied.IsStartTaken(req.StartTime) {
			uc.logger.Warn("CreateBooking: slot ground=%d start=%s already taken",
				req.GroundID, req.StartTime.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		// 8.3. Фиксируем занятый слот
		// Уникальное ограничение БД - финальный арбитр при гонке
		_, err = uc.slotRepo.Add(txCtx, &domain.OccupiedSlot{
			FieldID:   req.FieldID,
			GroundID:  req.GroundID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost slot race for ground=%d start=%s",
					req.GroundID, req.StartTime.Format(time.RFC3339))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to add occupied slot: %v", err)
			return fmt.Errorf("%w: failed to add occupied slot: %v", ErrInternal, err)
		}

		// 8.4. Создаем бронирование с денормализацией данных поля
		booking := &domain.Booking{
			CustomerID: req.CustomerID,
			FieldID:    req.FieldID,
			GroundID:   req.GroundID,
			OwnerID:    field.OwnerID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Price:      price,
			Services:   items,
			Status:     domain.StatusPending,
			// Денормализация данных поля для истории и уведомлений
			FieldName:    field.Name,
			FieldAddress: field.Address,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 8.5. Уведомляем владельца поля о новой заявке
		_, err = uc.notificationRepo.Create(txCtx, &domain.Notification{
			RecipientType: domain.RecipientOwner,
			RecipientID:   field.OwnerID,
			BookingID:     created.ID,
			Message: fmt.Sprintf("Новая заявка на бронирование: %s, площадка №%d, %s",
				field.Name, ground.GroundNumber, created.StartTime.Format("02.01.2006 15:04")),
			Type: domain.NotificationRequest,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create owner notification: %v", err)
			return fmt.Errorf("%w: failed to create owner notification: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		FieldID:      result.FieldID,
		GroundID:     result.GroundID,
		OwnerID:      result.OwnerID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Price:        result.Price,
		Status:       string(result.Status),
		Services:     result.Services,
		FieldName:    result.FieldName,
		FieldAddress: result.FieldAddress,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
