package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderUsesVerifiedAmount(t *testing.T) {
	items := []OrderItem{{Name: "Jollof rice", Quantity: 2, Price: 2500}}

	order := NewOrder("PSK123", "Ada", "ada@example.com", "+2348000000000",
		"12 Marina Rd", "Lekki", items, 500000)

	assert.Equal(t, "PSK123", order.Reference)
	assert.Equal(t, StatusPaid, order.Status)
	assert.Equal(t, 5000.0, order.TotalAmount)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Second)
	assert.Nil(t, order.DispatchedAt)
	assert.Nil(t, order.DeliveredAt)
}

func TestApplyStatusStampsTimestamps(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		wantStatus     Status
		wantDispatched bool
		wantDelivered  bool
	}{
		{"delivered", "delivered", StatusDelivered, false, true},
		{"delivered keeps its casing", "Delivered", Status("Delivered"), false, true},
		{"dispatched keeps its casing", "DISPATCHED", Status("DISPATCHED"), true, false},
		{"processing stamps nothing", "processing", StatusProcessing, false, false},
		{"unknown value accepted", "on-hold", Status("on-hold"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := NewOrder("ref", "Ada", "", "", "", "", nil, 100000)

			order.ApplyStatus(tt.status)

			assert.Equal(t, tt.wantStatus, order.Status)
			assert.Equal(t, tt.wantDispatched, order.DispatchedAt != nil)
			assert.Equal(t, tt.wantDelivered, order.DeliveredAt != nil)
		})
	}
}

func TestApplyStatusDeliveredAfterCreation(t *testing.T) {
	order := NewOrder("ref", "Ada", "", "", "", "", nil, 100000)

	order.ApplyStatus("delivered")

	require.NotNil(t, order.DeliveredAt)
	assert.False(t, order.DeliveredAt.Before(order.CreatedAt))
}

func TestApplyStatusRegressionKeepsTimestamps(t *testing.T) {
	order := NewOrder("ref", "Ada", "", "", "", "", nil, 100000)

	order.ApplyStatus("dispatched")
	order.ApplyStatus("delivered")
	order.ApplyStatus("pending")

	assert.Equal(t, StatusPending, order.Status)
	assert.NotNil(t, order.DispatchedAt)
	assert.NotNil(t, order.DeliveredAt)
}
