package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	fieldClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
	"github.com/fieldbook/FieldBookingService/internal/service/bookings/models"
)

// Service сервис проекций бронирований
type Service struct {
	bookingRepo BookingRepository
	fieldClient FieldServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	fieldClient FieldServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		fieldClient: fieldClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видят только его клиент и владелец поля
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.CustomerID != userID && booking.OwnerID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
func (s *Service) GetCustomerBookings(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d", customerID)

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetFieldBookings получает бронирования поля
// Доступно только владельцу поля
func (s *Service) GetFieldBookings(ctx context.Context, fieldID int64, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetFieldBookings: fetching bookings for field=%d, user=%d", fieldID, userID)

	// Проверяем владение полем через каталог
	field, err := s.fieldClient.GetField(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("GetFieldBookings: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetFieldBookings: failed to get field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - failed to get field: %v", ErrInternal, err)
	}

	if field.OwnerID != userID {
		s.logger.Warn("GetFieldBookings: user=%d is not the owner of field=%d", userID, fieldID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByFieldID(ctx, fieldID)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldBookings: fetched %d bookings for field=%d", len(bookings), fieldID)
	return models.FromDomainBookingList(bookings), nil
}
