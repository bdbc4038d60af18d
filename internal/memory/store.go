// Package memory is a non-durable backend for local runs and tests. It implements
// the same contracts as the postgres repository; every method is atomic under one lock.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu sync.RWMutex

	products       map[int64]entities.Product
	users          map[int64]entities.User
	addresses      map[int64]entities.Address
	paymentMethods map[int64]entities.PaymentMethod
	orders         map[int64]entities.Order

	nextAddressID int64
	nextPaymentID int64
	nextOrderID   int64
}

func NewStore() *Store {
	return &Store{
		products:       make(map[int64]entities.Product),
		users:          make(map[int64]entities.User),
		addresses:      make(map[int64]entities.Address),
		paymentMethods: make(map[int64]entities.PaymentMethod),
		orders:         make(map[int64]entities.Order),
	}
}

func (s *Store) PutProduct(p entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *Store) PutUser(u entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// Stock returns the current quantity of a product, or -1 if it is unknown.
func (s *Store) Stock(productID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[productID]
	if !ok {
		return -1
	}
	return p.Quantity
}

func (s *Store) FindProduct(_ context.Context, productID int64) (entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.Product{}, fmt.Errorf("%w: %d", entities.ErrProductNotFound, productID)
	}
	return p, nil
}

func (s *Store) Reserve(_ context.Context, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("%w: %d", entities.ErrProductNotFound, productID)
	}
	if qty > p.Quantity {
		return &entities.InsufficientInventoryError{ProductID: productID}
	}
	p.Quantity -= qty
	s.products[productID] = p
	return nil
}

func (s *Store) Release(_ context.Context, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("%w: %d", entities.ErrProductNotFound, productID)
	}
	p.Quantity += qty
	s.products[productID] = p
	return nil
}

func (s *Store) FindUser(_ context.Context, userID int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

func (s *Store) FindAddress(_ context.Context, addressID int64) (entities.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addresses[addressID]
	if !ok {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	return a, nil
}

func (s *Store) SaveAddress(_ context.Context, a *entities.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAddressID++
	a.ID = s.nextAddressID
	s.addresses[a.ID] = *a
	return nil
}

func (s *Store) FindPaymentMethod(_ context.Context, paymentMethodID int64) (entities.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.paymentMethods[paymentMethodID]
	if !ok {
		return entities.PaymentMethod{}, entities.ErrPaymentMethodNotFound
	}
	return p, nil
}

func (s *Store) SavePaymentMethod(_ context.Context, p *entities.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPaymentID++
	p.ID = s.nextPaymentID
	s.paymentMethods[p.ID] = *p
	return nil
}

func (s *Store) SaveOrder(_ context.Context, o *entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	o.ID = s.nextOrderID
	s.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (s *Store) GetOrderByID(_ context.Context, orderID int64) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return s.withEmail(cloneOrder(o)), nil
}

func (s *Store) UpdateStatus(_ context.Context, orderID int64, from, to entities.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	if o.Status != from {
		return entities.ErrInvalidStateTransition
	}
	o.Status = to
	s.orders[orderID] = o
	return nil
}

func (s *Store) OrdersByUser(_ context.Context, userID int64) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []entities.Order
	for _, o := range s.sortedOrders() {
		if o.UserID == userID {
			result = append(result, s.withEmail(cloneOrder(o)))
		}
	}
	if result == nil {
		result = []entities.Order{}
	}
	return result, nil
}

func (s *Store) OrdersPage(_ context.Context, offset, limit int) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.sortedOrders()
	if offset >= len(sorted) {
		return []entities.Order{}, nil
	}
	end := min(offset+limit, len(sorted))

	result := make([]entities.Order, 0, end-offset)
	for _, o := range sorted[offset:end] {
		result = append(result, s.withEmail(cloneOrder(o)))
	}
	return result, nil
}

func (s *Store) CountOrders(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.orders)), nil
}

func (s *Store) Stats(_ context.Context, limit int) (entities.OrderStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quantity := make(map[int64]int64)
	profit := make(map[int64]decimal.Decimal)
	names := make(map[int64]string)

	var stats entities.OrderStats
	for _, o := range s.orders {
		if o.Status != entities.StatusCompleted {
			continue
		}
		for _, it := range o.Items {
			stats.TotalSoldItems += int64(it.Quantity)
			quantity[it.ProductID] += int64(it.Quantity)
			names[it.ProductID] = it.Name

			wholesale := s.products[it.ProductID].WholesalePrice
			margin := it.PurchasedPrice.Sub(wholesale).Mul(decimal.NewFromInt(int64(it.Quantity)))
			profit[it.ProductID] = profit[it.ProductID].Add(margin)
		}
	}

	for id, q := range quantity {
		stats.MostPopular = append(stats.MostPopular, entities.ProductStat{ProductID: id, Name: names[id], Value: decimal.NewFromInt(q)})
		stats.MostProfitable = append(stats.MostProfitable, entities.ProductStat{ProductID: id, Name: names[id], Value: profit[id]})
	}
	stats.MostPopular = topStats(stats.MostPopular, limit)
	stats.MostProfitable = topStats(stats.MostProfitable, limit)
	return stats, nil
}

func topStats(stats []entities.ProductStat, limit int) []entities.ProductStat {
	slices.SortFunc(stats, func(a, b entities.ProductStat) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	if stats == nil {
		stats = []entities.ProductStat{}
	}
	return stats
}

// sortedOrders returns orders newest first, ties broken by id like the SQL query.
func (s *Store) sortedOrders() []entities.Order {
	orders := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	slices.SortFunc(orders, func(a, b entities.Order) int {
		if c := b.DatePlaced.Compare(a.DatePlaced); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return orders
}

func (s *Store) withEmail(o entities.Order) entities.Order {
	if u, ok := s.users[o.UserID]; ok {
		o.UserEmail = u.Email
	}
	return o
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	if o.ShippingAddress != nil {
		a := *o.ShippingAddress
		o.ShippingAddress = &a
	}
	if o.Payment != nil {
		p := *o.Payment
		o.Payment = &p
	}
	if o.ShippingAddressID != nil {
		id := *o.ShippingAddressID
		o.ShippingAddressID = &id
	}
	if o.PaymentMethodID != nil {
		id := *o.PaymentMethodID
		o.PaymentMethodID = &id
	}
	return o
}
