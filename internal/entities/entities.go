package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID             int64
	Name           string
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal
	Quantity       int
}

type User struct {
	ID    int64
	Email string
}

type Address struct {
	ID           int64
	UserID       int64
	FullName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Country      string
}

// Caller identifies who invokes a lifecycle operation.
type Caller struct {
	UserID  int64
	IsAdmin bool
}

func (c Caller) CanAccess(o Order) bool {
	return c.IsAdmin || o.OwnedBy(c.UserID)
}
