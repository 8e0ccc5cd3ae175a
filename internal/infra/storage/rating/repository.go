package rating

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/pkg/dbmetrics"
	"github.com/fieldbook/FieldBookingService/pkg/psqlbuilder"
)

// Repository репозиторий оценок полей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оценок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет оценку поля
func (r *Repository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ratings").
		Columns("customer_id", "field_id", "stars", "comment").
		Values(rating.CustomerID, rating.FieldID, rating.Stars, rating.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rating.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rating.CreatedAt = createdAt.Time

	return rating, nil
}

// GetByFieldID получает оценки поля, новые сверху
func (r *Repository) GetByFieldID(ctx context.Context, fieldID int64) ([]*domain.Rating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "customer_id", "field_id", "stars", "comment", "created_at").
		From("ratings").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ratings := make([]*domain.Rating, 0)

	for rows.Next() {
		var rating domain.Rating
		var createdAt sql.NullTime

		if err := rows.Scan(&rating.ID, &rating.CustomerID, &rating.FieldID, &rating.Stars, &rating.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByFieldID - scan row: %v", ErrScanRow, err)
		}

		rating.CreatedAt = createdAt.Time
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - rows error: %v", ErrScanRow, err)
	}

	return ratings, nil
}
