package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBookingService/internal/api/middleware"
	"github.com/fieldbook/FieldBookingService/internal/service/bookings"
	"github.com/fieldbook/FieldBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingService struct {
	resp *models.BookingResponse
	err  error

	gotID     int64
	gotUserID int64
}

func (f *fakeBookingService) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	f.gotID = id
	f.gotUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func serveGetBooking(svc *fakeBookingService, path string, userID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()

	middleware.Auth(router).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	svc := &fakeBookingService{
		resp: &models.BookingResponse{
			ID:         42,
			CustomerID: 3,
			FieldID:    10,
			GroundID:   5,
			OwnerID:    77,
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Price:      450,
			Status:     "pending",
			Services:   []models.ServiceItemResponse{{ServiceID: 1, Name: "Аренда мячей", Price: 100, Quantity: 2}},
			FieldName:  "Арена Север",
		},
	}

	rec := serveGetBooking(svc, "/bookings/42", "3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.gotID)
	assert.Equal(t, int64(3), svc.gotUserID)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Дата и время в ответе раздельные, как в запросе на создание
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "2025-10-15", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, "11:00", body.EndTime)
	assert.Equal(t, "pending", body.Status)
	require.Len(t, body.Services, 1)
	assert.Equal(t, "Аренда мячей", body.Services[0].Name)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		userID     string
		serviceErr error
		wantStatus int
	}{
		{name: "not found", path: "/bookings/42", userID: "3", serviceErr: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "not a participant", path: "/bookings/42", userID: "999", serviceErr: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "bad booking id", path: "/bookings/abc", userID: "3", wantStatus: http.StatusBadRequest},
		{name: "missing user id", path: "/bookings/42", userID: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{err: tt.serviceErr}

			rec := serveGetBooking(svc, tt.path, tt.userID)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
