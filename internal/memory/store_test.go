package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memory.Store {
	s := memory.NewStore()
	s.PutUser(entities.User{ID: 1, Email: "alice@example.com"})
	s.PutUser(entities.User{ID: 2, Email: "bob@example.com"})
	s.PutProduct(entities.Product{
		ID:             10,
		Name:           "Lamp",
		RetailPrice:    decimal.RequireFromString("20.00"),
		WholesalePrice: decimal.RequireFromString("12.00"),
		Quantity:       5,
	})
	s.PutProduct(entities.Product{
		ID:             20,
		Name:           "Cable",
		RetailPrice:    decimal.RequireFromString("5.00"),
		WholesalePrice: decimal.RequireFromString("1.00"),
		Quantity:       100,
	})
	return s
}

func TestStore_ReserveRelease(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		product   int64
		qty       int
		wantErr   error
		wantStock int
	}{
		{name: "partial", product: 10, qty: 3, wantStock: 2},
		{name: "whole stock", product: 10, qty: 5, wantStock: 0},
		{name: "more than stock", product: 10, qty: 6, wantErr: entities.ErrInsufficientInventory, wantStock: 5},
		{name: "unknown product", product: 99, qty: 1, wantErr: entities.ErrProductNotFound, wantStock: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore()
			err := s.Reserve(ctx, tt.product, tt.qty)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, s.Stock(tt.product))
		})
	}

	t.Run("release returns stock", func(t *testing.T) {
		s := newStore()
		require.NoError(t, s.Reserve(ctx, 10, 4))
		require.NoError(t, s.Release(ctx, 10, 4))
		assert.Equal(t, 5, s.Stock(10))
	})

	t.Run("insufficient error names the product", func(t *testing.T) {
		s := newStore()
		err := s.Reserve(ctx, 10, 50)
		var insufficient *entities.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(10), insufficient.ProductID)
	})
}

func TestStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	order := &entities.Order{UserID: 1, Status: entities.StatusProcessing, DatePlaced: time.Now()}
	require.NoError(t, s.SaveOrder(ctx, order))
	require.NotZero(t, order.ID)

	require.NoError(t, s.UpdateStatus(ctx, order.ID, entities.StatusProcessing, entities.StatusCanceled))

	// второй переход из того же состояния должен проиграть
	err := s.UpdateStatus(ctx, order.ID, entities.StatusProcessing, entities.StatusCompleted)
	assert.ErrorIs(t, err, entities.ErrInvalidStateTransition)

	got, err := s.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCanceled, got.Status)
	assert.Equal(t, "alice@example.com", got.UserEmail)

	assert.ErrorIs(t, s.UpdateStatus(ctx, 404, entities.StatusProcessing, entities.StatusCanceled), entities.ErrOrderNotFound)
}

func TestStore_SavedOrderIsCopied(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	order := &entities.Order{
		UserID: 1,
		Status: entities.StatusProcessing,
		Items:  []entities.Item{{ProductID: 10, Name: "Lamp", Quantity: 1, PurchasedPrice: decimal.RequireFromString("20.00")}},
	}
	require.NoError(t, s.SaveOrder(ctx, order))
	order.Items[0].Quantity = 99

	got, err := s.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestStore_OrdersPage(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := range 5 {
		o := &entities.Order{UserID: int64(i%2 + 1), Status: entities.StatusProcessing, DatePlaced: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, s.SaveOrder(ctx, o))
	}

	total, err := s.CountOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	first, err := s.OrdersPage(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, []int64{5, 4}, []int64{first[0].ID, first[1].ID})

	last, err := s.OrdersPage(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, int64(1), last[0].ID)

	empty, err := s.OrdersPage(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	byUser, err := s.OrdersByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, int64(4), byUser[0].ID)
	assert.Equal(t, "bob@example.com", byUser[0].UserEmail)

	none, err := s.OrdersByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	save := func(status entities.Status, items ...entities.Item) {
		o := &entities.Order{UserID: 1, Status: status, Items: items}
		require.NoError(t, s.SaveOrder(ctx, o))
	}
	lamp := func(q int) entities.Item {
		return entities.Item{ProductID: 10, Name: "Lamp", Quantity: q, PurchasedPrice: decimal.RequireFromString("20.00")}
	}
	cable := func(q int) entities.Item {
		return entities.Item{ProductID: 20, Name: "Cable", Quantity: q, PurchasedPrice: decimal.RequireFromString("5.00")}
	}

	save(entities.StatusCompleted, lamp(1), cable(3))
	save(entities.StatusCompleted, cable(2))
	save(entities.StatusCanceled, lamp(10))
	save(entities.StatusProcessing, lamp(10))

	stats, err := s.Stats(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.TotalSoldItems)

	require.Len(t, stats.MostPopular, 2)
	assert.Equal(t, int64(20), stats.MostPopular[0].ProductID)
	assert.True(t, decimal.NewFromInt(5).Equal(stats.MostPopular[0].Value))

	// lamp: (20-12)*1 = 8, cable: (5-1)*5 = 20
	require.Len(t, stats.MostProfitable, 2)
	assert.Equal(t, int64(20), stats.MostProfitable[0].ProductID)
	assert.True(t, decimal.NewFromInt(20).Equal(stats.MostProfitable[0].Value))
	assert.True(t, decimal.NewFromInt(8).Equal(stats.MostProfitable[1].Value))

	top, err := s.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top.MostPopular, 1)
	assert.Len(t, top.MostProfitable, 1)
}

func TestStore_Profiles(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	_, err := s.FindUser(ctx, 3)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	addr := &entities.Address{UserID: 1, FullName: "Alice", City: "Berlin"}
	require.NoError(t, s.SaveAddress(ctx, addr))
	got, err := s.FindAddress(ctx, addr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", got.City)

	_, err = s.FindAddress(ctx, addr.ID+1)
	assert.ErrorIs(t, err, entities.ErrAddressNotFound)

	pm := &entities.PaymentMethod{UserID: 1, CardType: "VISA", Last4: "4242"}
	require.NoError(t, s.SavePaymentMethod(ctx, pm))
	gotPM, err := s.FindPaymentMethod(ctx, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "4242", gotPM.Last4)

	_, err = s.FindPaymentMethod(ctx, pm.ID+1)
	assert.ErrorIs(t, err, entities.ErrPaymentMethodNotFound)
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	memory.SeedDemo(s, 3)

	u, err := s.FindUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "user3@example.com", u.Email)

	_, err = s.FindUser(ctx, 4)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	p, err := s.FindProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Quantity)
	assert.True(t, p.RetailPrice.GreaterThan(p.WholesalePrice))
}
