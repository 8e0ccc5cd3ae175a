package get_booking

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
	msgBadBookingID   = "ID бронирования должен быть положительным числом"
	msgBookingMissing = "бронирование не найдено"
	msgNoUserID       = "отсутствует ID пользователя"
	msgNotParticipant = "бронирование доступно только клиенту и владельцу поля"
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

// Handle GET /api/v1/bookings/{bookingId}
// Бронирование видят только его клиент и владелец поля, проверка прав
// выполняется сервисом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{bookingId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgNoUserID)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{bookingId} - Booking ID is not a positive number: %q", vars["bookingId"])
		handlers.RespondBadRequest(w, msgBadBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondNotFound(w, msgBookingMissing)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{bookingId} - User is not a participant: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgNotParticipant)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking: booking_id=%d, user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{bookingId} - Booking retrieved: booking_id=%d, user_id=%d, status=%s",
		bookingID, userID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
