package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldbook/FieldBookingService/internal/api/handlers"
	"github.com/fieldbook/FieldBookingService/internal/api/middleware"
	decideBooking "github.com/fieldbook/FieldBookingService/internal/usecase/decide_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgBookingNotFound      = "бронирование не найдено"
	msgNotificationNotFound = "уведомление не найдено"
	msgNotificationMismatch = "уведомление относится к другому бронированию"
	msgAlreadyResolved      = "решение по бронированию уже принято"
	msgForbidden            = "доступ запрещен"
	msgInvalidInput         = "некорректные данные решения"
)

type Handler struct {
	useCase DecideBookingUseCase
	logger  Logger
}

func NewHandler(useCase DecideBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем ownerID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, decideBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/decision - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, decideBooking.ErrNotificationNotFound):
			h.logger.Warn("POST /bookings/{id}/decision - Notification not found: booking_id=%d, notification_id=%d",
				bookingID, req.NotificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, decideBooking.ErrNotificationMismatch):
			h.logger.Warn("POST /bookings/{id}/decision - Notification mismatch: booking_id=%d, notification_id=%d",
				bookingID, req.NotificationID)
			handlers.RespondBadRequest(w, msgNotificationMismatch)

		case errors.Is(err, decideBooking.ErrAlreadyResolved):
			h.logger.Warn("POST /bookings/{id}/decision - Already resolved: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyResolved)

		case errors.Is(err, decideBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/decision - Access denied: booking_id=%d, owner_id=%d",
				bookingID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, decideBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/decision - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/decision - Failed to decide booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/decision - Decision applied successfully: booking_id=%d, owner_id=%d, status=%s",
		bookingID, ownerID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
