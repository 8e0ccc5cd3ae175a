package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/pkg/dbmetrics"
	"github.com/fieldbook/FieldBookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий занятых слотов
// Таблица occupied_slots несёт уникальное ограничение (ground_id, start_time):
// две конкурентные вставки одного слота гарантированно дают ровно одну
// успешную, независимо от уровня изоляции транзакций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятых слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add фиксирует занятый слот на площадке
// При конфликте по (ground_id, start_time) возвращает ErrSlotTaken
func (r *Repository) Add(ctx context.Context, s *domain.OccupiedSlot) (*domain.OccupiedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("occupied_slots").
		Columns("field_id", "ground_id", "start_time", "end_time").
		Values(s.FieldID, s.GroundID, s.StartTime, s.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// isUniqueViolation распознает нарушение ограничения (ground_id, start_time).
// Именно эта ошибка решает исход гонки двух одновременных бронирований
// одного слота: проигравшая вставка получает ErrSlotTaken
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// GetByGroundID получает все занятые слоты площадки
func (r *Repository) GetByGroundID(ctx context.Context, groundID int64) (domain.OccupiedSlots, error) {
	return r.list(ctx, squirrel.And{squirrel.Eq{"ground_id": groundID}})
}

// GetByGroundAndRange получает занятые слоты площадки в интервале [from, to)
// Используется для расчёта доступности слотов на конкретную дату
func (r *Repository) GetByGroundAndRange(ctx context.Context, groundID int64, from, to time.Time) (domain.OccupiedSlots, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"ground_id": groundID},
		squirrel.GtOrEq{"start_time": from},
		squirrel.Lt{"start_time": to},
	})
}

// Release освобождает занятый слот по (ground_id, start_time)
// Вызывается при отклонении бронирования владельцем: слот снова становится
// доступным для бронирования
func (r *Repository) Release(ctx context.Context, groundID int64, startTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("occupied_slots").
		Where(squirrel.Eq{"ground_id": groundID}).
		Where(squirrel.Eq{"start_time": startTime}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.And) (domain.OccupiedSlots, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "field_id", "ground_id", "start_time", "end_time").
		From("occupied_slots").
		Where(where).
		OrderBy("start_time ASC")

	// Внутри транзакции блокируем прочитанные слоты до конца транзакции
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

func (r *Repository) scanSlots(rows *sql.Rows) (domain.OccupiedSlots, error) {
	slots := make(domain.OccupiedSlots, 0)

	for rows.Next() {
		var s domain.OccupiedSlot
		if err := rows.Scan(&s.ID, &s.FieldID, &s.GroundID, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
