package list_notifications

import (
	"errors"
	"net/http"

	"github.com/fieldbook/FieldBookingService/internal/api/handlers"
	"github.com/fieldbook/FieldBookingService/internal/api/middleware"
	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/internal/service/notifications"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidRole   = "некорректная роль, ожидается owner или customer"
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

// Handle GET /api/v1/notifications
// Query params: role (required, owner или customer)
// Получатель определяется по X-User-ID и роли
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	recipientType := domain.RecipientType(r.URL.Query().Get("role"))
	if !recipientType.IsValid() {
		h.logger.Warn("GET /notifications - Invalid role: %q", recipientType)
		handlers.RespondBadRequest(w, msgInvalidRole)
		return
	}

	result, err := h.service.ListForRecipient(r.Context(), recipientType, userID)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("GET /notifications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("GET /notifications - Failed to list notifications: recipient=%s/%d, error=%v",
				recipientType, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /notifications - Notifications retrieved successfully: recipient=%s/%d, count=%d",
		recipientType, userID, len(result.Notifications))
	handlers.RespondJSON(w, http.StatusOK, result.Notifications)
}
