package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/events"
	"github.com/SergeyBogomolovv/checkout-service/pkg/saga"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o *entities.Order) error
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	// UpdateStatus переводит заказ только если его текущий статус равен from
	UpdateStatus(ctx context.Context, orderID int64, from, to entities.Status) error
	OrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	OrdersPage(ctx context.Context, offset, limit int) ([]entities.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	Stats(ctx context.Context, limit int) (entities.OrderStats, error)
}

type InventoryLedger interface {
	FindProduct(ctx context.Context, productID int64) (entities.Product, error)
	// Reserve atomically decrements stock or fails with InsufficientInventoryError.
	Reserve(ctx context.Context, productID int64, qty int) error
	Release(ctx context.Context, productID int64, qty int) error
}

type ProfileRepo interface {
	FindUser(ctx context.Context, userID int64) (entities.User, error)
	FindAddress(ctx context.Context, addressID int64) (entities.Address, error)
	SaveAddress(ctx context.Context, a *entities.Address) error
	FindPaymentMethod(ctx context.Context, paymentMethodID int64) (entities.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, p *entities.PaymentMethod) error
}

type PaymentAuthorizer interface {
	Authorize(ctx context.Context, amount decimal.Decimal) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.OrderEvent) error
}

type Notifier interface {
	OrderConfirmation(ctx context.Context, to string, orderID int64) error
}

// Dispatcher runs jobs detached from the request; Submit must not block.
type Dispatcher interface {
	Submit(name string, fn func(ctx context.Context) error) bool
}

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Unlock(ctx context.Context, scope, key string) error
	Remember(ctx context.Context, scope, key string, orderID int64) error
	Recall(ctx context.Context, scope, key string) (int64, bool, error)
}

type Dependencies struct {
	Orders      OrderRepo
	Inventory   InventoryLedger
	Profiles    ProfileRepo
	Payment     PaymentAuthorizer
	Events      EventPublisher
	Notifier    Notifier
	Dispatcher  Dispatcher
	Idempotency IdempotencyStore
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager

	orders      OrderRepo
	inventory   InventoryLedger
	profiles    ProfileRepo
	payment     PaymentAuthorizer
	events      EventPublisher
	notifier    Notifier
	dispatcher  Dispatcher
	idempotency IdempotencyStore

	now func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, deps Dependencies) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		orders:      deps.Orders,
		inventory:   deps.Inventory,
		profiles:    deps.Profiles,
		payment:     deps.Payment,
		events:      deps.Events,
		notifier:    deps.Notifier,
		dispatcher:  deps.Dispatcher,
		idempotency: deps.Idempotency,
		now:         time.Now,
	}
}

// PlaceOrder reserves every line, authorizes the total and stores the order as one unit.
// Any failure after a reservation releases what was reserved before returning.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64, req entities.PlaceOrderRequest) (entities.Order, error) {
	start := time.Now()
	order, err := s.placeOrder(ctx, userID, req)
	placementDuration.Observe(time.Since(start).Seconds())
	ordersPlaced.WithLabelValues(outcome(err)).Inc()
	return order, err
}

func (s *orderService) placeOrder(ctx context.Context, userID int64, req entities.PlaceOrderRequest) (entities.Order, error) {
	lines, err := validatePlacement(req)
	if err != nil {
		return entities.Order{}, err
	}

	if req.IdempotencyKey == "" || s.idempotency == nil {
		return s.checkout(ctx, userID, req, lines)
	}

	scope := strconv.FormatInt(userID, 10)
	if orderID, found, err := s.idempotency.Recall(ctx, scope, req.IdempotencyKey); err != nil {
		return entities.Order{}, entities.Unavailable(fmt.Errorf("failed to recall idempotency key: %w", err))
	} else if found {
		s.logger.InfoContext(ctx, "replaying placement", slog.Int64("order_id", orderID), slog.Int64("user_id", userID))
		return s.replay(ctx, orderID)
	}

	locked, err := s.idempotency.TryLock(ctx, scope, req.IdempotencyKey)
	if err != nil {
		return entities.Order{}, entities.Unavailable(fmt.Errorf("failed to lock idempotency key: %w", err))
	}
	if !locked {
		return entities.Order{}, entities.InvalidRequest("request already in progress")
	}
	defer func() {
		if err := s.idempotency.Unlock(context.WithoutCancel(ctx), scope, req.IdempotencyKey); err != nil {
			s.logger.WarnContext(ctx, "failed to unlock idempotency key", slog.Any("error", err))
		}
	}()

	// дубликат мог завершиться между Recall и TryLock
	if orderID, found, err := s.idempotency.Recall(ctx, scope, req.IdempotencyKey); err != nil {
		return entities.Order{}, entities.Unavailable(fmt.Errorf("failed to recall idempotency key: %w", err))
	} else if found {
		s.logger.InfoContext(ctx, "replaying placement", slog.Int64("order_id", orderID), slog.Int64("user_id", userID))
		return s.replay(ctx, orderID)
	}

	order, err := s.checkout(ctx, userID, req, lines)
	if err != nil {
		return entities.Order{}, err
	}
	if err := s.idempotency.Remember(context.WithoutCancel(ctx), scope, req.IdempotencyKey, order.ID); err != nil {
		// заказ уже создан, повтор с тем же ключом создаст второй
		s.logger.ErrorContext(ctx, "failed to remember idempotency key", slog.Int64("order_id", order.ID), slog.Any("error", err))
	}
	return order, nil
}

func (s *orderService) replay(ctx context.Context, orderID int64) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.Unavailable(err)
	}
	return order, nil
}

func (s *orderService) checkout(ctx context.Context, userID int64, req entities.PlaceOrderRequest, lines []entities.Line) (entities.Order, error) {
	user, err := s.profiles.FindUser(ctx, userID)
	if err != nil {
		return entities.Order{}, entities.Unavailable(err)
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		undo := saga.New()
		o, err := s.reserveAndCharge(ctx, user, req, lines, undo)
		if err != nil {
			if undo.Len() > 0 {
				s.compensate(ctx, undo, err)
			}
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		if !entities.IsDomain(err) {
			s.logger.ErrorContext(ctx, "failed to place order", slog.Int64("user_id", userID), slog.Any("error", err))
		}
		return entities.Order{}, entities.Unavailable(err)
	}

	order.UserEmail = user.Email
	s.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", userID),
		slog.String("total", order.TotalAmount.String()),
	)

	s.publishLater(ctx, events.New(entities.EventOrderPlaced, order, user.Email, order.DatePlaced))
	s.dispatch(ctx, "order.confirmation", func(ctx context.Context) error {
		return s.notifier.OrderConfirmation(ctx, user.Email, order.ID)
	})
	return order, nil
}

func (s *orderService) reserveAndCharge(ctx context.Context, user entities.User, req entities.PlaceOrderRequest, lines []entities.Line, undo *saga.Saga) (entities.Order, error) {
	order := entities.Order{
		UserID:     user.ID,
		UserEmail:  user.Email,
		DatePlaced: s.now().UTC(),
		Status:     entities.StatusProcessing,
		IsPickup:   req.IsPickup,
	}

	var newAddress *entities.Address
	if !req.IsPickup {
		addr, err := s.resolveAddress(ctx, user.ID, req)
		if err != nil {
			return entities.Order{}, err
		}
		order.ShippingAddress = &addr
		if addr.ID == 0 {
			newAddress = order.ShippingAddress
		} else {
			order.ShippingAddressID = &addr.ID
		}
	}

	method, newMethod, err := s.resolvePaymentMethod(ctx, user.ID, req)
	if err != nil {
		return entities.Order{}, err
	}
	if method != nil {
		summary := method.Summary()
		order.Payment = &summary
		if !newMethod {
			order.PaymentMethodID = &method.ID
		}
	}

	products := make(map[int64]entities.Product, len(lines))
	for _, line := range lines {
		p, err := s.inventory.FindProduct(ctx, line.ProductID)
		if err != nil {
			return entities.Order{}, err
		}
		products[line.ProductID] = p
	}

	// резервируем по возрастанию id, чтобы параллельные заказы брали блокировки строк в одном порядке
	byProduct := slices.Clone(lines)
	slices.SortFunc(byProduct, func(a, b entities.Line) int { return cmp.Compare(a.ProductID, b.ProductID) })
	for _, line := range byProduct {
		if err := s.inventory.Reserve(ctx, line.ProductID, line.Quantity); err != nil {
			return entities.Order{}, err
		}
		undo.Record(fmt.Sprintf("release product %d", line.ProductID), func(ctx context.Context) error {
			return s.inventory.Release(ctx, line.ProductID, line.Quantity)
		})
	}

	order.Items = make([]entities.Item, 0, len(lines))
	for _, line := range lines {
		p := products[line.ProductID]
		order.Items = append(order.Items, entities.Item{
			ProductID:      p.ID,
			Name:           p.Name,
			Quantity:       line.Quantity,
			PurchasedPrice: p.RetailPrice,
		})
	}
	order.TotalAmount = order.Total()

	ref, err := s.payment.Authorize(ctx, order.TotalAmount)
	if err != nil {
		return entities.Order{}, err
	}
	order.PaymentRef = ref

	if newAddress != nil {
		if err := s.profiles.SaveAddress(ctx, newAddress); err != nil {
			return entities.Order{}, fmt.Errorf("failed to save address: %w", err)
		}
		order.ShippingAddressID = &newAddress.ID
	}
	if newMethod {
		if err := s.profiles.SavePaymentMethod(ctx, method); err != nil {
			return entities.Order{}, fmt.Errorf("failed to save payment method: %w", err)
		}
		order.PaymentMethodID = &method.ID
	}

	if err := s.orders.SaveOrder(ctx, &order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	return order, nil
}

func (s *orderService) resolveAddress(ctx context.Context, userID int64, req entities.PlaceOrderRequest) (entities.Address, error) {
	if req.NewAddress != nil {
		addr := *req.NewAddress
		addr.ID = 0
		addr.UserID = userID
		return addr, nil
	}

	addr, err := s.profiles.FindAddress(ctx, *req.AddressID)
	if err != nil {
		return entities.Address{}, err
	}
	if addr.UserID != userID {
		// чужой адрес не раскрываем
		return entities.Address{}, entities.ErrAddressNotFound
	}
	return addr, nil
}

// resolvePaymentMethod returns nil when the request names no method; the bool is true
// for an inline method that still has to be saved.
func (s *orderService) resolvePaymentMethod(ctx context.Context, userID int64, req entities.PlaceOrderRequest) (*entities.PaymentMethod, bool, error) {
	switch {
	case req.NewPaymentMethod != nil:
		m := *req.NewPaymentMethod
		m.ID = 0
		m.UserID = userID
		return &m, true, nil
	case req.PaymentMethodID != nil:
		m, err := s.profiles.FindPaymentMethod(ctx, *req.PaymentMethodID)
		if err != nil {
			return nil, false, err
		}
		if m.UserID != userID {
			return nil, false, entities.ErrPaymentMethodNotFound
		}
		return &m, false, nil
	}
	return nil, false, nil
}

// compensate undoes recorded steps when the store has no rollback of its own.
// Inside a database transaction the rollback restores state.
func (s *orderService) compensate(ctx context.Context, undo *saga.Saga, cause error) {
	if trm.InTx(ctx) {
		s.logger.DebugContext(ctx, "undo left to tx rollback", slog.Any("cause", cause))
		return
	}
	if err := undo.Compensate(context.WithoutCancel(ctx)); err != nil {
		compensationFailures.Inc()
		s.logger.ErrorContext(ctx, "compensation failed",
			slog.Int("steps", undo.Len()),
			slog.Any("cause", cause),
			slog.Any("error", err),
		)
		return
	}
	s.logger.DebugContext(ctx, "reservations released", slog.Any("cause", cause))
}

// CancelOrder returns every reserved quantity to stock and marks the order Canceled.
func (s *orderService) CancelOrder(ctx context.Context, orderID int64, caller entities.Caller) error {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !caller.CanAccess(order) {
			return entities.ErrUnauthorized
		}
		if !order.Status.CanTransition(entities.StatusCanceled) {
			return entities.ErrInvalidStateTransition
		}

		// смена статуса первой: из двух параллельных отмен дальше пройдёт только одна
		if err := s.orders.UpdateStatus(ctx, orderID, entities.StatusProcessing, entities.StatusCanceled); err != nil {
			return err
		}
		undo := saga.New()
		undo.Record("restore status", func(ctx context.Context) error {
			return s.orders.UpdateStatus(ctx, orderID, entities.StatusCanceled, entities.StatusProcessing)
		})
		// тот же порядок блокировок, что и при резервировании
		items := slices.Clone(order.Items)
		slices.SortFunc(items, func(a, b entities.Item) int { return cmp.Compare(a.ProductID, b.ProductID) })
		for _, it := range items {
			if err := s.inventory.Release(ctx, it.ProductID, it.Quantity); err != nil {
				s.compensate(ctx, undo, err)
				return fmt.Errorf("failed to release product %d: %w", it.ProductID, err)
			}
			undo.Record(fmt.Sprintf("reserve product %d", it.ProductID), func(ctx context.Context) error {
				return s.inventory.Reserve(ctx, it.ProductID, it.Quantity)
			})
		}
		return nil
	})
	ordersTransitioned.WithLabelValues(string(entities.StatusCanceled), outcome(err)).Inc()
	if err != nil {
		return entities.Unavailable(err)
	}

	s.logger.InfoContext(ctx, "order canceled", slog.Int64("order_id", orderID), slog.Int64("caller_id", caller.UserID))
	order.Status = entities.StatusCanceled
	s.publishLater(ctx, events.New(entities.EventOrderCanceled, order, actor(caller), s.now()))
	return nil
}

// CompleteOrder moves a Processing order to Completed. Stock is not touched.
func (s *orderService) CompleteOrder(ctx context.Context, orderID int64, caller entities.Caller) error {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !order.Status.CanTransition(entities.StatusCompleted) {
			return entities.ErrInvalidStateTransition
		}
		return s.orders.UpdateStatus(ctx, orderID, entities.StatusProcessing, entities.StatusCompleted)
	})
	ordersTransitioned.WithLabelValues(string(entities.StatusCompleted), outcome(err)).Inc()
	if err != nil {
		return entities.Unavailable(err)
	}

	s.logger.InfoContext(ctx, "order completed", slog.Int64("order_id", orderID))
	order.Status = entities.StatusCompleted
	s.publishLater(ctx, events.New(entities.EventOrderCompleted, order, actor(caller), s.now()))
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID int64, caller entities.Caller) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.Unavailable(err)
	}
	if !caller.CanAccess(order) {
		return entities.Order{}, entities.ErrUnauthorized
	}
	return order, nil
}

func (s *orderService) GetOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	if _, err := s.profiles.FindUser(ctx, userID); err != nil {
		return nil, entities.Unavailable(err)
	}
	orders, err := s.orders.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, entities.Unavailable(err)
	}
	return orders, nil
}

func (s *orderService) GetOrdersPage(ctx context.Context, page, size int) (entities.Page[entities.Order], error) {
	if page < 1 || size < 1 {
		return entities.Page[entities.Order]{}, entities.InvalidRequest("page and size must be positive")
	}

	total, err := s.orders.CountOrders(ctx)
	if err != nil {
		return entities.Page[entities.Order]{}, entities.Unavailable(err)
	}
	orders, err := s.orders.OrdersPage(ctx, (page-1)*size, size)
	if err != nil {
		return entities.Page[entities.Order]{}, entities.Unavailable(err)
	}
	return entities.NewPage(orders, total, page, size), nil
}

func (s *orderService) GetStats(ctx context.Context, limit int) (entities.OrderStats, error) {
	if limit < 1 {
		return entities.OrderStats{}, entities.InvalidRequest("limit must be positive")
	}
	stats, err := s.orders.Stats(ctx, limit)
	if err != nil {
		return entities.OrderStats{}, entities.Unavailable(err)
	}
	return stats, nil
}

func (s *orderService) publishLater(ctx context.Context, e entities.OrderEvent) {
	s.dispatch(ctx, string(e.Type), func(ctx context.Context) error {
		return s.events.Publish(ctx, e)
	})
}

// dispatch hands fn to the worker pool; ctx is only used for logging, jobs get their own.
func (s *orderService) dispatch(ctx context.Context, name string, fn func(ctx context.Context) error) {
	if s.dispatcher.Submit(name, fn) {
		return
	}
	sideEffectsDropped.WithLabelValues(name).Inc()
	s.logger.WarnContext(ctx, "side effect dropped", slog.String("job", name))
}

func validatePlacement(req entities.PlaceOrderRequest) ([]entities.Line, error) {
	if len(req.Items) == 0 {
		return nil, entities.InvalidRequest("order must contain at least one item")
	}

	// одинаковые товары объединяются в одну позицию, порядок первого появления сохраняется
	lines := make([]entities.Line, 0, len(req.Items))
	index := make(map[int64]int, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID <= 0 {
			return nil, entities.InvalidRequest("product id must be positive")
		}
		if it.Quantity < 1 {
			return nil, entities.InvalidRequest(fmt.Sprintf("quantity for product %d must be at least 1", it.ProductID))
		}
		if i, ok := index[it.ProductID]; ok {
			lines[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(lines)
		lines = append(lines, it)
	}

	if req.PaymentMethodID != nil && req.NewPaymentMethod != nil {
		return nil, entities.InvalidRequest("specify either payment method id or a new payment method")
	}
	if m := req.NewPaymentMethod; m != nil && !validLast4(m.Last4) {
		return nil, entities.InvalidRequest("card last4 must be four digits")
	}
	if req.IsPickup {
		return lines, nil
	}
	if req.AddressID != nil && req.NewAddress != nil {
		return nil, entities.InvalidRequest("specify either address id or a new address")
	}
	if req.AddressID == nil && req.NewAddress == nil {
		return nil, entities.InvalidRequest("shipping address is required unless the order is picked up")
	}
	return lines, nil
}

func validLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func actor(c entities.Caller) string {
	if c.IsAdmin {
		return "admin " + strconv.FormatInt(c.UserID, 10)
	}
	return strconv.FormatInt(c.UserID, 10)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entities.ErrInsufficientInventory):
		return "insufficient_inventory"
	case errors.Is(err, entities.ErrPaymentDeclined):
		return "payment_declined"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrInvalidStateTransition):
		return "invalid_transition"
	case errors.Is(err, entities.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, entities.ErrInvalidRequest):
		return "invalid_request"
	}
	return "error"
}
