package decide_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	notificationRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/notification"
	slotRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/slot"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	statuses map[int64]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		statuses: make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.statuses[id] = status
	f.bookings[id].Status = status
	return nil
}

type fakeSlotRepo struct {
	releaseErr error
	released   []time.Time
}

func (f *fakeSlotRepo) Release(ctx context.Context, groundID int64, startTime time.Time) error {
	if f.releaseErr != nil {
		return f.releaseErr
	}
	f.released = append(f.released, startTime)
	return nil
}

type fakeNotificationRepo struct {
	notifications map[int64]*domain.Notification
	markedRead    []int64
	created       []*domain.Notification
}

func newFakeNotificationRepo(notifications ...*domain.Notification) *fakeNotificationRepo {
	repo := &fakeNotificationRepo{notifications: make(map[int64]*domain.Notification)}
	for _, n := range notifications {
		repo.notifications[n.ID] = n
	}
	return repo
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	n, ok := f.notifications[id]
	if !ok {
		return nil, notificationRepo.ErrNotificationNotFound
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = int64(100 + len(f.created))
	f.created = append(f.created, n)
	return n, nil
}

func pendingBooking() *domain.Booking {
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
		FieldName:  "Арена Север",
	}
}

func requestNotification() *domain.Notification {
	return &domain.Notification{
		ID:            7,
		RecipientType: domain.RecipientOwner,
		RecipientID:   77,
		BookingID:     42,
		Type:          domain.NotificationRequest,
	}
}

func TestExecute_Accept(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	slots := &fakeSlotRepo{}
	notifications := newFakeNotificationRepo(requestNotification())

	uc := NewUseCase(bookings, slots, notifications, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionAccept,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAccepted), resp.Status)
	assert.Equal(t, domain.StatusAccepted, bookings.statuses[42])

	// Слот при подтверждении не освобождается
	assert.Empty(t, slots.released)

	// Заявка прочитана, клиент уведомлен о решении
	assert.Equal(t, []int64{7}, notifications.markedRead)
	require.Len(t, notifications.created, 1)
	assert.Equal(t, domain.RecipientCustomer, notifications.created[0].RecipientType)
	assert.Equal(t, int64(3), notifications.created[0].RecipientID)
	assert.Equal(t, domain.NotificationResolution, notifications.created[0].Type)
	assert.Equal(t, notifications.created[0].ID, resp.NotificationID)
}

func TestExecute_DeclineReleasesSlot(t *testing.T) {
	booking := pendingBooking()
	bookings := newFakeBookingRepo(booking)
	slots := &fakeSlotRepo{}
	notifications := newFakeNotificationRepo(requestNotification())

	uc := NewUseCase(bookings, slots, notifications, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionDecline,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDeclined), resp.Status)

	// Отклонение освобождает слот
	require.Len(t, slots.released, 1)
	assert.True(t, slots.released[0].Equal(booking.StartTime))
}

func TestExecute_DeclineWithAlreadyReleasedSlot(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	slots := &fakeSlotRepo{releaseErr: slotRepo.ErrSlotNotFound}
	notifications := newFakeNotificationRepo(requestNotification())

	uc := NewUseCase(bookings, slots, notifications, fakeTxManager{}, nopLogger{})

	// Отсутствие занятого слота не блокирует отклонение
	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionDecline,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDeclined), resp.Status)
}

func TestExecute_DoubleDecide(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	notifications := newFakeNotificationRepo(requestNotification())

	uc := NewUseCase(bookings, &fakeSlotRepo{}, notifications, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionAccept,
	})
	require.NoError(t, err)

	// Повторное решение по уже подтверждённому бронированию
	_, err = uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionDecline,
	})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestExecute_AccessDenied(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	notifications := newFakeNotificationRepo(requestNotification())

	uc := NewUseCase(bookings, &fakeSlotRepo{}, notifications, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        999,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionAccept,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeSlotRepo{}, newFakeNotificationRepo(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionAccept,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotificationMismatch(t *testing.T) {
	otherNotification := requestNotification()
	otherNotification.BookingID = 99

	bookings := newFakeBookingRepo(pendingBooking())
	notifications := newFakeNotificationRepo(otherNotification)

	uc := NewUseCase(bookings, &fakeSlotRepo{}, notifications, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.DecisionAccept,
	})
	assert.ErrorIs(t, err, ErrNotificationMismatch)
}

func TestExecute_InvalidDecision(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	notifications := newFakeNotificationRepo(requestNotification())

	uc := NewUseCase(bookings, &fakeSlotRepo{}, notifications, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        77,
		BookingID:      42,
		NotificationID: 7,
		Decision:       domain.Decision("maybe"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
