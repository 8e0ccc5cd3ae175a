package mark_notifications_read

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

// MarkReadResponse HTTP response model
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

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

// Handle PATCH /api/v1/notifications/read
// Query params: role (required, owner или customer)
// Помечает прочитанными все уведомления получателя, операция идемпотентна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/read - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	recipientType := domain.RecipientType(r.URL.Query().Get("role"))
	if !recipientType.IsValid() {
		h.logger.Warn("PATCH /notifications/read - Invalid role: %q", recipientType)
		handlers.RespondBadRequest(w, msgInvalidRole)
		return
	}

	updated, err := h.service.MarkAllRead(r.Context(), recipientType, userID)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("PATCH /notifications/read - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("PATCH /notifications/read - Failed to mark notifications read: recipient=%s/%d, error=%v",
				recipientType, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/read - Notifications marked read: recipient=%s/%d, updated=%d",
		recipientType, userID, updated)
	handlers.RespondJSON(w, http.StatusOK, MarkReadResponse{Updated: updated})
}
