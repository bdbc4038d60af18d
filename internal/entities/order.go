package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCanceled   Status = "Canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransition(next Status) bool {
	return s == StatusProcessing && next.Terminal()
}

type Item struct {
	ProductID int64
	Name      string
	Quantity  int
	// цена фиксируется в момент покупки и больше не пересчитывается
	PurchasedPrice decimal.Decimal
}

func (i Item) Subtotal() decimal.Decimal {
	return i.PurchasedPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID         int64
	UserID     int64
	UserEmail  string
	DatePlaced time.Time
	Status     Status
	IsPickup   bool

	TotalAmount decimal.Decimal
	PaymentRef  string

	ShippingAddressID *int64
	ShippingAddress   *Address
	PaymentMethodID   *int64
	Payment           *PaymentSummary

	Items []Item
}

// Total sums the frozen subtotals of every line.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o Order) OwnedBy(userID int64) bool {
	return o.UserID == userID
}

type Page[T any] struct {
	Content       []T
	TotalElements int64
	TotalPages    int
	Size          int
	Number        int
}

func NewPage[T any](content []T, total int64, page, size int) Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
	}
}

type ProductStat struct {
	ProductID int64
	Name      string
	Value     decimal.Decimal
}

type OrderStats struct {
	TotalSoldItems int64
	MostPopular    []ProductStat
	MostProfitable []ProductStat
}
