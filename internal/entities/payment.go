package entities

type PaymentMethod struct {
	ID         int64
	UserID     int64
	CardHolder string
	CardType   string
	Last4      string
	ExpiryDate string
}

// PaymentSummary is the only part of a payment method exposed on an order.
type PaymentSummary struct {
	CardType string
	Last4    string
}

func (p PaymentMethod) Summary() PaymentSummary {
	return PaymentSummary{CardType: p.CardType, Last4: p.Last4}
}
