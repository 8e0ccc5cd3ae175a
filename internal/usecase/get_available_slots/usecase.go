package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	fieldClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
)

// UseCase use case для получения слотов площадки на дату
type UseCase struct {
	slotRepo     SlotRepository
	fieldClient  FieldServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	fieldClient FieldServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		fieldClient:  fieldClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: field=%d, ground=%d, date=%s",
		req.FieldID, req.GroundID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем поле из каталога
	field, err := uc.fieldClient.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 4. Проверяем существование площадки
	ground := field.GroundByID(req.GroundID)
	if ground == nil {
		uc.logger.Warn("GetAvailableSlots: ground id=%d not found in field id=%d", req.GroundID, req.FieldID)
		return nil, ErrGroundNotFound
	}
	if !ground.Active {
		uc.logger.Warn("GetAvailableSlots: ground id=%d is inactive", req.GroundID)
		return nil, ErrGroundInactive
	}

	// 5. Разворачиваем шаблон дня недели в слоты
	// Если поле закрыто в этот день недели - возвращаем пустой список
	templates, err := resolveDaySlots(field.Schedule.ForDate(req.Date), field.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve day slots: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve day slots: %v", ErrInternal, err)
	}

	if len(templates) == 0 {
		uc.logger.Info("GetAvailableSlots: field id=%d is closed on %s",
			req.FieldID, req.Date.Format(domain.DateFormat))
		return &Response{
			FieldID:  req.FieldID,
			GroundID: req.GroundID,
			Date:     req.Date,
			Slots:    []domain.AvailableSlot{},
		}, nil
	}

	// 6. Получаем занятые слоты площадки на эту дату
	dayStart, dayEnd := dayBounds(req.Date)
	occupied, err := uc.slotRepo.GetByGroundAndRange(ctx, req.GroundID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	// 7. Размечаем доступность каждого слота
	slots, err := markAvailability(templates, req.Date, now, occupied)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to mark availability: %v", err)
		return nil, fmt.Errorf("%w: failed to mark availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: resolved %d slots for field=%d, ground=%d, date=%s",
		len(slots), req.FieldID, req.GroundID, req.Date.Format(domain.DateFormat))

	return &Response{
		FieldID:  req.FieldID,
		GroundID: req.GroundID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
