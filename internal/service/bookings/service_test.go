package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	fieldClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByFieldID(ctx context.Context, fieldID int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.FieldID == fieldID {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeFieldClient struct {
	field *domain.Field
	err   error
}

func (f *fakeFieldClient) GetField(ctx context.Context, fieldID int64) (*domain.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.field, nil
}

func testBooking() *domain.Booking {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         42,
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		OwnerID:    77,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.StatusPending,
		Services:   []domain.ServiceItem{{ServiceID: 1, Name: "Аренда мячей", Price: 100, Quantity: 2}},
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking()}}
	svc := NewService(repo, &fakeFieldClient{}, nopLogger{})

	// Клиент видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	require.Len(t, resp.Services, 1)

	// Владелец поля тоже видит
	_, err = svc.GetByID(context.Background(), 42, 77)
	require.NoError(t, err)

	// Посторонний - нет
	_, err = svc.GetByID(context.Background(), 42, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeFieldClient{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 3)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings(t *testing.T) {
	other := testBooking()
	other.ID = 43
	other.CustomerID = 4

	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking(), other}}
	svc := NewService(repo, &fakeFieldClient{}, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(42), resp.Bookings[0].ID)
}

func TestGetFieldBookings_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking()}}
	client := &fakeFieldClient{field: &domain.Field{ID: 10, OwnerID: 77}}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.GetFieldBookings(context.Background(), 10, 77)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	// Не владелец не видит бронирования поля
	_, err = svc.GetFieldBookings(context.Background(), 10, 3)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetFieldBookings_FieldNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeFieldClient{err: fieldClient.ErrFieldNotFound}, nopLogger{})

	_, err := svc.GetFieldBookings(context.Background(), 10, 77)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
