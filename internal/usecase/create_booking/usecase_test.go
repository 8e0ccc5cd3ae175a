package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	slotRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/slot"
	fieldClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
	"github.com/fieldbook/FieldBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking.ID = 42
	booking.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

type fakeSlotRepo struct {
	occupied domain.OccupiedSlots
	addErr   error
	added    []*domain.OccupiedSlot
}

func (f *fakeSlotRepo) GetByGroundID(ctx context.Context, groundID int64) (domain.OccupiedSlots, error) {
	return f.occupied, nil
}

func (f *fakeSlotRepo) Add(ctx context.Context, slot *domain.OccupiedSlot) (*domain.OccupiedSlot, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, slot)
	return slot, nil
}

type fakeNotificationRepo struct {
	created []*domain.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = int64(len(f.created) + 1)
	f.created = append(f.created, n)
	return n, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testField() *domain.Field {
	return &domain.Field{
		ID:        10,
		OwnerID:   77,
		Name:      "Арена Север",
		Address:   "ул. Спортивная, 1",
		BasePrice: 200,
		Grounds: []domain.Ground{
			{ID: 5, GroundNumber: 1, Active: true},
			{ID: 6, GroundNumber: 2, Active: false},
		},
		Services: []domain.FieldService{
			{ID: 1, Name: "Аренда мячей", Price: 100},
			{ID: 2, Name: "Манишки", Price: 50},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo, notifications *fakeNotificationRepo, client *fakeFieldClient, now time.Time) *UseCase {
	uc := NewUseCase(bookings, slots, notifications, client, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	bookings := &fakeBookingRepo{}
	slots := &fakeSlotRepo{}
	notifications := &fakeNotificationRepo{}
	client := &fakeFieldClient{field: testField()}

	uc := newTestUseCase(bookings, slots, notifications, client, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Services: []RequestedService{
			{ServiceID: 1, Quantity: 2},
			{ServiceID: 2, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(77), resp.OwnerID)
	assert.Equal(t, "Арена Север", resp.FieldName)
	assert.Equal(t, "ул. Спортивная, 1", resp.FieldAddress)

	// Цена: базовая 200 + 100*2 + 50*1 = 450
	assert.Equal(t, 450.0, resp.Price)

	// Слот зафиксирован
	require.Len(t, slots.added, 1)
	assert.True(t, slots.added[0].StartTime.Equal(start))

	// Владелец получил заявку
	require.Len(t, notifications.created, 1)
	assert.Equal(t, domain.RecipientOwner, notifications.created[0].RecipientType)
	assert.Equal(t, int64(77), notifications.created[0].RecipientID)
	assert.Equal(t, domain.NotificationRequest, notifications.created[0].Type)
	assert.Equal(t, int64(42), notifications.created[0].BookingID)
}

func TestExecute_SubmittedPriceIgnored(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	client := &fakeFieldClient{field: testField()}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, &fakeNotificationRepo{}, client, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Services: []RequestedService{
			{ServiceID: 1, Quantity: 2},
			{ServiceID: 2, Quantity: 1},
		},
		SubmittedPrice: ptr.Ptr(1.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 450.0, resp.Price)
}

func TestExecute_PastStartRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	client := &fakeFieldClient{field: testField()}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, &fakeNotificationRepo{}, client, now)

	tests := []struct {
		name  string
		start time.Time
	}{
		{name: "start in the past", start: now.Add(-time.Hour)},
		{name: "start exactly now", start: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				CustomerID: 3,
				FieldID:    10,
				GroundID:   5,
				StartTime:  tt.start,
				EndTime:    tt.start.Add(time.Hour),
			})
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		})
	}
}

func TestExecute_ExactStartTaken(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	slots := &fakeSlotRepo{
		occupied: domain.OccupiedSlots{
			{GroundID: 5, StartTime: start, EndTime: start.Add(time.Hour)},
		},
	}
	client := &fakeFieldClient{field: testField()}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, &fakeNotificationRepo{}, client, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_InteriorOverlapAccepted(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	// Существующий слот начинается на 30 минут раньше и перекрывает
	// запрошенный интервал, но начало не совпадает - конфликта нет
	slots := &fakeSlotRepo{
		occupied: domain.OccupiedSlots{
			{GroundID: 5, StartTime: start.Add(-30 * time.Minute), EndTime: start.Add(30 * time.Minute)},
		},
	}
	client := &fakeFieldClient{field: testField()}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, &fakeNotificationRepo{}, client, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_SlotRaceLost(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	// Конкурент успел вставить слот между проверкой и INSERT:
	// уникальное ограничение БД возвращает ErrSlotTaken
	slots := &fakeSlotRepo{addErr: slotRepo.ErrSlotTaken}
	client := &fakeFieldClient{field: testField()}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, &fakeNotificationRepo{}, client, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_FieldAndGroundErrors(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		client   *fakeFieldClient
		groundID int64
		wantErr  error
	}{
		{
			name:     "field not found",
			client:   &fakeFieldClient{err: fieldClient.ErrFieldNotFound},
			groundID: 5,
			wantErr:  ErrFieldNotFound,
		},
		{
			name:     "ground not found",
			client:   &fakeFieldClient{field: testField()},
			groundID: 99,
			wantErr:  ErrGroundNotFound,
		},
		{
			name:     "ground inactive",
			client:   &fakeFieldClient{field: testField()},
			groundID: 6,
			wantErr:  ErrGroundInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, &fakeNotificationRepo{}, tt.client, now)
			_, err := uc.Execute(context.Background(), &Request{
				CustomerID: 3,
				FieldID:    10,
				GroundID:   tt.groundID,
				StartTime:  start,
				EndTime:    start.Add(time.Hour),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	client := &fakeFieldClient{field: testField()}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, &fakeNotificationRepo{}, client, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 3,
		FieldID:    10,
		GroundID:   5,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Services:   []RequestedService{{ServiceID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestValidateRequest(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	valid := Request{
		CustomerID: 1,
		FieldID:    1,
		GroundID:   1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Request) {}, wantErr: false},
		{name: "zero customer", mutate: func(r *Request) { r.CustomerID = 0 }, wantErr: true},
		{name: "end before start", mutate: func(r *Request) { r.EndTime = start.Add(-time.Hour) }, wantErr: true},
		{name: "end equals start", mutate: func(r *Request) { r.EndTime = start }, wantErr: true},
		{name: "too long", mutate: func(r *Request) { r.EndTime = start.Add(13 * time.Hour) }, wantErr: true},
		{name: "zero quantity", mutate: func(r *Request) {
			r.Services = []RequestedService{{ServiceID: 1, Quantity: 0}}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := validateRequest(&req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
