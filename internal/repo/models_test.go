package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAddress(t *testing.T) {
	t.Run("nil address is null", func(t *testing.T) {
		ns, err := snapshotAddress(nil)
		require.NoError(t, err)
		assert.False(t, ns.Valid)
	})

	t.Run("round trip through order row", func(t *testing.T) {
		addr := &entities.Address{
			ID:           7,
			UserID:       1,
			FullName:     "Alice Doe",
			AddressLine1: "1 Main St",
			City:         "Springfield",
			State:        "IL",
			ZipCode:      "62701",
			Country:      "US",
		}
		ns, err := snapshotAddress(addr)
		require.NoError(t, err)
		require.True(t, ns.Valid)
		assert.NotContains(t, ns.String, "address_line2")

		row := Order{
			ID:                3,
			UserID:            1,
			Status:            string(entities.StatusProcessing),
			ShippingAddressID: sql.NullInt64{Int64: 7, Valid: true},
			ShippingSnapshot:  []byte(ns.String),
		}
		order, err := OrderToEntity(row, nil)
		require.NoError(t, err)
		require.NotNil(t, order.ShippingAddress)
		assert.Equal(t, *addr, *order.ShippingAddress)
	})
}

func TestOrderToEntity(t *testing.T) {
	placed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		row     Order
		items   []Item
		want    entities.Order
		wantErr bool
	}{
		{
			name: "pickup without payment method",
			row: Order{
				ID:          1,
				UserID:      2,
				UserEmail:   sql.NullString{String: "bob@example.com", Valid: true},
				DatePlaced:  placed,
				Status:      "Completed",
				IsPickup:    true,
				TotalAmount: decimal.RequireFromString("10.00"),
				PaymentRef:  sql.NullString{String: "tx_1", Valid: true},
			},
			items: []Item{{ID: 1, OrderID: 1, ProductID: 5, ProductName: "Cable", Quantity: 2, PurchasedPrice: decimal.RequireFromString("5.00")}},
			want: entities.Order{
				ID:          1,
				UserID:      2,
				UserEmail:   "bob@example.com",
				DatePlaced:  placed,
				Status:      entities.StatusCompleted,
				IsPickup:    true,
				TotalAmount: decimal.RequireFromString("10.00"),
				PaymentRef:  "tx_1",
				Items:       []entities.Item{{ProductID: 5, Name: "Cable", Quantity: 2, PurchasedPrice: decimal.RequireFromString("5.00")}},
			},
		},
		{
			name: "card summary",
			row: Order{
				ID:              4,
				UserID:          2,
				Status:          "Processing",
				PaymentMethodID: sql.NullInt64{Int64: 9, Valid: true},
				CardType:        sql.NullString{String: "VISA", Valid: true},
				CardLast4:       sql.NullString{String: "4242", Valid: true},
			},
			want: entities.Order{
				ID:              4,
				UserID:          2,
				Status:          entities.StatusProcessing,
				PaymentMethodID: ptr(int64(9)),
				Payment:         &entities.PaymentSummary{CardType: "VISA", Last4: "4242"},
				Items:           []entities.Item{},
			},
		},
		{
			name:    "broken snapshot",
			row:     Order{ID: 5, ShippingSnapshot: []byte("{")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderToEntity(tt.row, tt.items)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsToEntity(t *testing.T) {
	rows := []ProductStat{
		{ProductID: 1, Name: "Lamp", Value: decimal.NewFromInt(3)},
		{ProductID: 2, Name: "Cable", Value: decimal.NewFromInt(1)},
	}
	got := StatsToEntity(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "Lamp", got[0].Name)

	assert.NotNil(t, StatsToEntity(nil))
}

func ptr[T any](v T) *T {
	return &v
}
