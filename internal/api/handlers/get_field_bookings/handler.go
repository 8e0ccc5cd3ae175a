package get_field_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldbook/FieldBookingService/internal/api/handlers"
	"github.com/fieldbook/FieldBookingService/internal/api/middleware"
	"github.com/fieldbook/FieldBookingService/internal/service/bookings"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgFieldNotFound  = "поле не найдено"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем fieldId из URL
	vars := mux.Vars(r)
	fieldIDStr := vars["fieldId"]

	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{fieldId}/bookings - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /fields/{fieldId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем бронирования поля (сервис сам проверит права владельца)
	result, err := h.service.GetFieldBookings(r.Context(), fieldID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{fieldId}/bookings - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /fields/{fieldId}/bookings - Access denied: field_id=%d, user_id=%d",
				fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /fields/{fieldId}/bookings - Failed to get bookings: field_id=%d, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{fieldId}/bookings - Bookings retrieved successfully: field_id=%d, count=%d",
		fieldID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
