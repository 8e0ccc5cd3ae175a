package ratings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	fieldClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
	"github.com/fieldbook/FieldBookingService/internal/service/ratings/models"
)

// Service сервис оценок полей
type Service struct {
	ratingRepo  RatingRepository
	fieldClient FieldServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса оценок
func NewService(
	ratingRepo RatingRepository,
	fieldClient FieldServiceClient,
	logger Logger,
) *Service {
	return &Service{
		ratingRepo:  ratingRepo,
		fieldClient: fieldClient,
		logger:      logger,
	}
}

// Submit сохраняет оценку поля от клиента
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.RatingResponse, error) {
	s.logger.Info("Submit: customer=%d rates field=%d with %d stars", req.CustomerID, req.FieldID, req.Stars)

	if err := validateSubmitRequest(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	// Оценка ставится только существующему полю
	if _, err := s.fieldClient.GetField(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("Submit: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Submit: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Submit - failed to get field: %v", ErrInternal, err)
	}

	created, err := s.ratingRepo.Create(ctx, &domain.Rating{
		CustomerID: req.CustomerID,
		FieldID:    req.FieldID,
		Stars:      req.Stars,
		Comment:    req.Comment,
	})
	if err != nil {
		s.logger.Error("Submit: failed to create rating: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: created rating id=%d for field=%d", created.ID, created.FieldID)
	return models.FromDomainRating(created), nil
}

// GetFieldRatings получает оценки поля, новые сверху
func (s *Service) GetFieldRatings(ctx context.Context, fieldID int64) (*models.FieldRatingsResponse, error) {
	s.logger.Info("GetFieldRatings: fetching ratings for field=%d", fieldID)

	if fieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if _, err := s.fieldClient.GetField(ctx, fieldID); err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("GetFieldRatings: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetFieldRatings: failed to get field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetFieldRatings - failed to get field: %v", ErrInternal, err)
	}

	ratings, err := s.ratingRepo.GetByFieldID(ctx, fieldID)
	if err != nil {
		s.logger.Error("GetFieldRatings: repository error for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetFieldRatings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldRatings: fetched %d ratings for field=%d", len(ratings), fieldID)
	return models.FromDomainRatingList(fieldID, ratings), nil
}

// validateSubmitRequest валидирует запрос на создание оценки
func validateSubmitRequest(req *models.SubmitRequest) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}
	if !domain.IsValidStars(req.Stars) {
		return fmt.Errorf("%w: stars must be between %d and %d", ErrInvalidInput, domain.MinRatingStars, domain.MaxRatingStars)
	}
	if len(req.Comment) > domain.MaxRatingComment {
		return fmt.Errorf("%w: comment longer than %d characters", ErrInvalidInput, domain.MaxRatingComment)
	}
	return nil
}
