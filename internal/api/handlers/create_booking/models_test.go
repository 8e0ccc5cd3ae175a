package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBookingService/pkg/ptr"
)

func TestToUseCaseRequest(t *testing.T) {
	req := &CreateBookingRequest{
		FieldID:   10,
		GroundID:  5,
		Date:      "2025-10-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Services:  []RequestedService{{ServiceID: 1, Quantity: 2}},
		Price:     ptr.Ptr(1.0),
	}

	ucReq, err := req.ToUseCaseRequest(3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), ucReq.CustomerID)
	assert.Equal(t, int64(10), ucReq.FieldID)
	assert.Equal(t, int64(5), ucReq.GroundID)

	// Дата и время собираются в абсолютные моменты начала и конца слота
	assert.Equal(t, time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), ucReq.StartTime)
	assert.Equal(t, time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC), ucReq.EndTime)

	require.Len(t, ucReq.Services, 1)
	assert.Equal(t, int64(1), ucReq.Services[0].ServiceID)
	assert.Equal(t, 2, ucReq.Services[0].Quantity)

	// Присланная цена доносится до use case, решение игнорировать её - за ним
	require.NotNil(t, ucReq.SubmittedPrice)
	assert.Equal(t, 1.0, *ucReq.SubmittedPrice)
}

func TestToUseCaseRequest_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateBookingRequest)
	}{
		{name: "bad date", mutate: func(r *CreateBookingRequest) { r.Date = "15.10.2025" }},
		{name: "bad start time", mutate: func(r *CreateBookingRequest) { r.StartTime = "25:00" }},
		{name: "bad end time", mutate: func(r *CreateBookingRequest) { r.EndTime = "11-00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CreateBookingRequest{
				FieldID:   10,
				GroundID:  5,
				Date:      "2025-10-15",
				StartTime: "10:00",
				EndTime:   "11:00",
			}
			tt.mutate(req)

			_, err := req.ToUseCaseRequest(3)
			assert.Error(t, err)
		})
	}
}
