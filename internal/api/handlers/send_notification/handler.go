package send_notification

import (
	"errors"
	"net/http"

	"github.com/fieldbook/FieldBookingService/internal/api/handlers"
	"github.com/fieldbook/FieldBookingService/internal/api/middleware"
	"github.com/fieldbook/FieldBookingService/internal/service/notifications"
	"github.com/fieldbook/FieldBookingService/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidInput       = "некорректные данные уведомления"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Проверяем аутентификацию (через middleware Auth)
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("POST /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.NotifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Notify(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrBookingNotFound):
			h.logger.Warn("POST /notifications - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /notifications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /notifications - Failed to create notification: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications - Notification created successfully: notification_id=%d, recipient=%s/%d",
		result.ID, req.RecipientType, req.RecipientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
