package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		items     []ServiceItem
		want      float64
	}{
		{
			name:      "base price only",
			basePrice: 200,
			items:     nil,
			want:      200,
		},
		{
			name:      "base price with services",
			basePrice: 200,
			items: []ServiceItem{
				{Price: 100, Quantity: 2},
				{Price: 50, Quantity: 1},
			},
			want: 450,
		},
		{
			name:      "zero base",
			basePrice: 0,
			items:     []ServiceItem{{Price: 10, Quantity: 3}},
			want:      30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePrice(tt.basePrice, tt.items))
		})
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	pending := Booking{Status: StatusPending}
	accepted := Booking{Status: StatusAccepted}
	declined := Booking{Status: StatusDeclined}

	assert.True(t, pending.CanBeDecided())
	assert.False(t, pending.IsResolved())

	// Оба перехода терминальны
	assert.False(t, accepted.CanBeDecided())
	assert.True(t, accepted.IsResolved())
	assert.False(t, declined.CanBeDecided())
	assert.True(t, declined.IsResolved())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusAccepted.IsValid())
	assert.True(t, StatusDeclined.IsValid())
	assert.False(t, BookingStatus("cancelled").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestDecision_IsValid(t *testing.T) {
	assert.True(t, DecisionAccept.IsValid())
	assert.True(t, DecisionDecline.IsValid())
	assert.False(t, Decision("maybe").IsValid())
}
