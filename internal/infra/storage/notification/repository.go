package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/pkg/dbmetrics"
	"github.com/fieldbook/FieldBookingService/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("recipient_type", "recipient_id", "booking_id", "message", "type", "is_read").
		Values(n.RecipientType, n.RecipientID, n.BookingID, n.Message, n.Type, n.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// GetByID получает уведомление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "recipient_type", "recipient_id", "booking_id", "message", "type", "is_read", "created_at",
	).
		From("notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var n domain.Notification
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID,
		&n.RecipientType,
		&n.RecipientID,
		&n.BookingID,
		&n.Message,
		&n.Type,
		&n.IsRead,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan notification: %v", ErrScanRow, err)
	}

	n.CreatedAt = createdAt.Time

	return &n, nil
}

// ListByRecipient получает уведомления получателя, новые сверху
// Каждая запись обогащается данными бронирования (название и адрес поля
// денормализованы в bookings при создании, поэтому достаточно одного JOIN)
func (r *Repository) ListByRecipient(ctx context.Context, recipientType domain.RecipientType, recipientID int64) ([]*domain.EnrichedNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"n.id",
		"n.recipient_type",
		"n.recipient_id",
		"n.booking_id",
		"n.message",
		"n.type",
		"n.is_read",
		"n.created_at",
		"b.field_name",
		"b.field_address",
		"b.start_time",
		"b.end_time",
		"b.status",
	).
		From("notifications n").
		Join("bookings b ON b.id = n.booking_id").
		Where(squirrel.Eq{"n.recipient_type": recipientType}).
		Where(squirrel.Eq{"n.recipient_id": recipientID}).
		OrderBy("n.created_at DESC, n.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.EnrichedNotification, 0)

	for rows.Next() {
		var n domain.EnrichedNotification
		var createdAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.RecipientType,
			&n.RecipientID,
			&n.BookingID,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&createdAt,
			&n.Booking.FieldName,
			&n.Booking.FieldAddress,
			&n.Booking.StartTime,
			&n.Booking.EndTime,
			&n.Booking.BookingStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRecipient - scan row: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		n.Booking.BookingID = n.BookingID

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными
// Идемпотентна: пустой набор уведомлений не является ошибкой, возвращается 0
func (r *Repository) MarkAllRead(ctx context.Context, recipientType domain.RecipientType, recipientID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"recipient_type": recipientType}).
		Where(squirrel.Eq{"recipient_id": recipientID}).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
