package entities

type Line struct {
	ProductID int64
	Quantity  int
}

type PlaceOrderRequest struct {
	Items    []Line
	IsPickup bool

	// не более одного из пары
	AddressID        *int64
	NewAddress       *Address
	PaymentMethodID  *int64
	NewPaymentMethod *PaymentMethod

	IdempotencyKey string
}
