package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/idempotency"
	"github.com/SergeyBogomolovv/checkout-service/internal/memory"
	"github.com/SergeyBogomolovv/checkout-service/internal/payment"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	userID    = int64(1)
	otherID   = int64(2)
	productP  = int64(10)
	productQ  = int64(11)
	userEmail = "buyer@example.com"
)

// inlineDispatcher runs side effects synchronously so tests can observe them.
type inlineDispatcher struct{}

func (inlineDispatcher) Submit(_ string, fn func(ctx context.Context) error) bool {
	_ = fn(context.Background())
	return true
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.OrderEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e entities.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []entities.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]entities.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []int64
}

func (n *recordingNotifier) OrderConfirmation(_ context.Context, _ string, orderID int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, orderID)
	return nil
}

type fixture struct {
	store     *memory.Store
	events    *recordingPublisher
	notifier  *recordingNotifier
	charged   []decimal.Decimal
	chargedMu sync.Mutex
	decline   atomic.Bool
}

func newFixture(t *testing.T, stock map[int64]int) (*fixture, service.Dependencies) {
	t.Helper()

	f := &fixture{
		store:    memory.NewStore(),
		events:   &recordingPublisher{},
		notifier: &recordingNotifier{},
	}
	f.store.PutUser(entities.User{ID: userID, Email: userEmail})
	f.store.PutUser(entities.User{ID: otherID, Email: "other@example.com"})
	for id, qty := range stock {
		f.store.PutProduct(entities.Product{
			ID:             id,
			Name:           "product",
			RetailPrice:    decimal.RequireFromString("19.99"),
			WholesalePrice: decimal.RequireFromString("12.50"),
			Quantity:       qty,
		})
	}

	authorize := payment.AuthorizerFunc(func(_ context.Context, amount decimal.Decimal) (string, error) {
		if f.decline.Load() {
			return "", entities.ErrPaymentDeclined
		}
		f.chargedMu.Lock()
		f.charged = append(f.charged, amount)
		f.chargedMu.Unlock()
		return "tx_test", nil
	})

	return f, service.Dependencies{
		Orders:      f.store,
		Inventory:   f.store,
		Profiles:    f.store,
		Payment:     authorize,
		Events:      f.events,
		Notifier:    f.notifier,
		Dispatcher:  inlineDispatcher{},
		Idempotency: idempotency.NewMemoryStore(100, time.Hour),
	}
}

func newService(deps service.Dependencies) interface {
	PlaceOrder(ctx context.Context, userID int64, req entities.PlaceOrderRequest) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID int64, caller entities.Caller) error
	CompleteOrder(ctx context.Context, orderID int64, caller entities.Caller) error
	GetOrder(ctx context.Context, orderID int64, caller entities.Caller) (entities.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	GetOrdersPage(ctx context.Context, page, size int) (entities.Page[entities.Order], error)
	GetStats(ctx context.Context, limit int) (entities.OrderStats, error)
} {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, trm.NewNopManager(), deps)
}

func pickup(lines ...entities.Line) entities.PlaceOrderRequest {
	return entities.PlaceOrderRequest{Items: lines, IsPickup: true}
}

func TestLifecycle_PlaceThenCancelRestoresStock(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 3}))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusProcessing, order.Status)
	assert.Equal(t, 2, f.store.Stock(productP))
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.RequireFromString("19.99").Equal(order.Items[0].PurchasedPrice))
	assert.Equal(t, userEmail, order.UserEmail)

	require.NoError(t, svc.CancelOrder(ctx, order.ID, entities.Caller{UserID: userID}))
	assert.Equal(t, 5, f.store.Stock(productP))

	stored, err := svc.GetOrder(ctx, order.ID, entities.Caller{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCanceled, stored.Status)

	assert.Equal(t, []entities.EventType{entities.EventOrderPlaced, entities.EventOrderCanceled}, f.events.types())
	assert.Equal(t, []int64{order.ID}, f.notifier.sent)
}

func TestLifecycle_InsufficientInventory(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 2, productQ: 5})
	svc := newService(deps)

	// Q резервируется раньше P и должен вернуться после отказа по P
	_, err := svc.PlaceOrder(context.Background(), userID, pickup(
		entities.Line{ProductID: productQ, Quantity: 4},
		entities.Line{ProductID: productP, Quantity: 3},
	))

	require.ErrorIs(t, err, entities.ErrInsufficientInventory)
	var insufficient *entities.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, productP, insufficient.ProductID)

	assert.Equal(t, 2, f.store.Stock(productP))
	assert.Equal(t, 5, f.store.Stock(productQ))
	assert.Empty(t, f.events.types())
	assert.Empty(t, f.charged)
}

func TestLifecycle_PaymentDeclineRestoresStock(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	f.decline.Store(true)
	svc := newService(deps)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 3}))

	require.ErrorIs(t, err, entities.ErrPaymentDeclined)
	assert.Equal(t, 5, f.store.Stock(productP))

	orders, err := svc.GetOrdersByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, f.notifier.sent)
}

func TestLifecycle_DoubleCancel(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 3}))
	require.NoError(t, err)

	require.NoError(t, svc.CancelOrder(ctx, order.ID, entities.Caller{UserID: userID}))
	err = svc.CancelOrder(ctx, order.ID, entities.Caller{UserID: userID})
	require.ErrorIs(t, err, entities.ErrInvalidStateTransition)
	assert.Equal(t, 5, f.store.Stock(productP), "stock must be restored exactly once")
}

func TestLifecycle_DoubleComplete(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()
	admin := entities.Caller{UserID: 99, IsAdmin: true}

	order, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 2}))
	require.NoError(t, err)

	require.NoError(t, svc.CompleteOrder(ctx, order.ID, admin))
	require.ErrorIs(t, svc.CompleteOrder(ctx, order.ID, admin), entities.ErrInvalidStateTransition)
	require.ErrorIs(t, svc.CancelOrder(ctx, order.ID, admin), entities.ErrInvalidStateTransition)

	stored, err := svc.GetOrder(ctx, order.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, stored.Status)
	assert.Equal(t, 3, f.store.Stock(productP), "completion has no inventory effect")
}

func TestLifecycle_CancelByStranger(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 1}))
	require.NoError(t, err)

	err = svc.CancelOrder(ctx, order.ID, entities.Caller{UserID: otherID})
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	assert.Equal(t, 4, f.store.Stock(productP))

	_, err = svc.GetOrder(ctx, order.ID, entities.Caller{UserID: otherID})
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	require.NoError(t, svc.CancelOrder(ctx, order.ID, entities.Caller{UserID: 99, IsAdmin: true}))
	assert.Equal(t, 5, f.store.Stock(productP))
}

func TestLifecycle_TotalMatchesAuthorizedAmount(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 10, productQ: 10})
	svc := newService(deps)

	order, err := svc.PlaceOrder(context.Background(), userID, pickup(
		entities.Line{ProductID: productP, Quantity: 2},
		entities.Line{ProductID: productQ, Quantity: 1},
		entities.Line{ProductID: productP, Quantity: 1},
	))
	require.NoError(t, err)

	require.Len(t, order.Items, 2, "duplicate product lines are merged")
	assert.Equal(t, productP, order.Items[0].ProductID)
	assert.Equal(t, 3, order.Items[0].Quantity)

	require.Len(t, f.charged, 1)
	assert.True(t, f.charged[0].Equal(order.TotalAmount))
	assert.True(t, decimal.RequireFromString("79.96").Equal(order.TotalAmount))
	assert.Equal(t, 7, f.store.Stock(productP))
	assert.Equal(t, 9, f.store.Stock(productQ))
}

func TestLifecycle_ShippingSnapshot(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	req := entities.PlaceOrderRequest{
		Items: []entities.Line{{ProductID: productP, Quantity: 1}},
		NewAddress: &entities.Address{
			FullName: "Jane Doe", AddressLine1: "1 Main St", City: "Springfield",
			State: "IL", ZipCode: "62701", Country: "US",
		},
		NewPaymentMethod: &entities.PaymentMethod{
			CardHolder: "Jane Doe", CardType: "VISA", Last4: "4242", ExpiryDate: "12/30",
		},
	}
	order, err := svc.PlaceOrder(ctx, userID, req)
	require.NoError(t, err)

	require.NotNil(t, order.ShippingAddress)
	require.NotNil(t, order.ShippingAddressID)
	assert.Equal(t, "Springfield", order.ShippingAddress.City)
	require.NotNil(t, order.Payment)
	assert.Equal(t, entities.PaymentSummary{CardType: "VISA", Last4: "4242"}, *order.Payment)

	saved, err := f.store.FindAddress(ctx, *order.ShippingAddressID)
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)

	// повторное использование сохранённого адреса другим пользователем запрещено
	_, err = svc.PlaceOrder(ctx, otherID, entities.PlaceOrderRequest{
		Items:     []entities.Line{{ProductID: productP, Quantity: 1}},
		AddressID: order.ShippingAddressID,
	})
	require.ErrorIs(t, err, entities.ErrNotFound)
	assert.Equal(t, 4, f.store.Stock(productP))
}

func TestLifecycle_IdempotentReplay(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	req := pickup(entities.Line{ProductID: productP, Quantity: 2})
	req.IdempotencyKey = "checkout-1"

	first, err := svc.PlaceOrder(ctx, userID, req)
	require.NoError(t, err)
	second, err := svc.PlaceOrder(ctx, userID, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, f.store.Stock(productP))
	assert.Len(t, f.charged, 1)
}

// racingStore lets a duplicate placement run to completion right after the
// first lookup reports the key as unused.
type racingStore struct {
	service.IdempotencyStore
	raced     atomic.Bool
	duplicate func()
}

func (s *racingStore) Recall(ctx context.Context, scope, key string) (int64, bool, error) {
	orderID, found, err := s.IdempotencyStore.Recall(ctx, scope, key)
	// повторный вызов изнутри дубликата уже не запускает гонку
	if s.raced.CompareAndSwap(false, true) {
		s.duplicate()
	}
	return orderID, found, err
}

func TestLifecycle_DuplicateFinishedBeforeLock(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	store := &racingStore{IdempotencyStore: deps.Idempotency}
	deps.Idempotency = store
	svc := newService(deps)
	ctx := context.Background()

	req := pickup(entities.Line{ProductID: productP, Quantity: 1})
	req.IdempotencyKey = "checkout-race"

	var duplicate entities.Order
	store.duplicate = func() {
		var err error
		duplicate, err = svc.PlaceOrder(ctx, userID, req)
		require.NoError(t, err)
	}

	order, err := svc.PlaceOrder(ctx, userID, req)
	require.NoError(t, err)

	assert.Equal(t, duplicate.ID, order.ID)
	assert.Equal(t, 4, f.store.Stock(productP))
	assert.Len(t, f.charged, 1)
}

func TestLifecycle_FailedPlacementReleasesIdempotencyKey(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	req := pickup(entities.Line{ProductID: productP, Quantity: 2})
	req.IdempotencyKey = "checkout-2"

	f.decline.Store(true)
	_, err := svc.PlaceOrder(ctx, userID, req)
	require.ErrorIs(t, err, entities.ErrPaymentDeclined)

	f.decline.Store(false)
	order, err := svc.PlaceOrder(ctx, userID, req)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, 3, f.store.Stock(productP))
}

func TestLifecycle_ConcurrentPlacementsNeverOversell(t *testing.T) {
	const (
		stock   = 7
		callers = 20
	)
	f, deps := newFixture(t, map[int64]int{productP: stock})
	svc := newService(deps)

	var succeeded, rejected atomic.Int32
	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			_, err := svc.PlaceOrder(context.Background(), userID, pickup(entities.Line{ProductID: productP, Quantity: 1}))
			switch {
			case err == nil:
				succeeded.Add(1)
			case entities.IsDomain(err):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(stock), succeeded.Load())
	assert.Equal(t, int32(callers-stock), rejected.Load())
	assert.Equal(t, 0, f.store.Stock(productP))
}

func TestLifecycle_ConcurrentCancelRestoresOnce(t *testing.T) {
	f, deps := newFixture(t, map[int64]int{productP: 5})
	svc := newService(deps)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 4}))
	require.NoError(t, err)

	var canceled atomic.Int32
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			if err := svc.CancelOrder(ctx, order.ID, entities.Caller{UserID: userID}); err == nil {
				canceled.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), canceled.Load())
	assert.Equal(t, 5, f.store.Stock(productP))
}

func TestLifecycle_Reads(t *testing.T) {
	_, deps := newFixture(t, map[int64]int{productP: 50})
	svc := newService(deps)
	ctx := context.Background()
	admin := entities.Caller{UserID: 99, IsAdmin: true}

	var ids []int64
	for range 5 {
		o, err := svc.PlaceOrder(ctx, userID, pickup(entities.Line{ProductID: productP, Quantity: 2}))
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	require.NoError(t, svc.CompleteOrder(ctx, ids[0], admin))
	require.NoError(t, svc.CompleteOrder(ctx, ids[1], admin))

	page, err := svc.GetOrdersPage(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Content, 2)

	past, err := svc.GetOrdersPage(ctx, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, past.Content)
	assert.Equal(t, int64(5), past.TotalElements)

	_, err = svc.GetOrdersPage(ctx, 0, 2)
	require.ErrorIs(t, err, entities.ErrInvalidRequest)

	_, err = svc.GetOrdersByUser(ctx, 404)
	require.ErrorIs(t, err, entities.ErrNotFound)

	stats, err := svc.GetStats(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalSoldItems)
	require.Len(t, stats.MostPopular, 1)
	assert.True(t, decimal.NewFromInt(4).Equal(stats.MostPopular[0].Value))
	require.Len(t, stats.MostProfitable, 1)
	assert.True(t, decimal.RequireFromString("29.96").Equal(stats.MostProfitable[0].Value))
}
