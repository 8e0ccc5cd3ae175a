package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldbook/FieldBookingService/internal/api/handlers"
	getAvailableSlots "github.com/fieldbook/FieldBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidFieldID  = "некорректный ID поля"
	msgInvalidGroundID = "некорректный ID площадки"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFieldNotFound   = "поле не найдено"
	msgGroundNotFound  = "площадка не найдена"
	msgGroundInactive  = "площадка недоступна для бронирования"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/grounds/{groundId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем fieldId из URL
	fieldIDStr := vars["fieldId"]
	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	// Извлекаем groundId из URL
	groundIDStr := vars["groundId"]
	groundID, err := strconv.ParseInt(groundIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Invalid ground ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(fieldID, groundID, dateStr)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailableSlots.ErrGroundNotFound):
			h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Ground not found: field_id=%d, ground_id=%d",
				fieldID, groundID)
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, getAvailableSlots.ErrGroundInactive):
			h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Ground inactive: field_id=%d, ground_id=%d",
				fieldID, groundID)
			handlers.RespondBadRequest(w, msgGroundInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/grounds/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /fields/{id}/grounds/{id}/available-slots - Failed to get slots: field_id=%d, ground_id=%d, error=%v",
				fieldID, groundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /fields/{id}/grounds/{id}/available-slots - Slots retrieved successfully: field_id=%d, ground_id=%d, slots_count=%d",
		fieldID, groundID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
