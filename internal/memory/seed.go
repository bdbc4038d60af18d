package memory

import (
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

// SeedDemo fills the store with users 1..users and a small catalog so the
// service is usable without a database.
func SeedDemo(s *Store, users int) {
	for i := 1; i <= users; i++ {
		s.PutUser(entities.User{ID: int64(i), Email: fmt.Sprintf("user%d@example.com", i)})
	}

	catalog := []struct {
		name              string
		retail, wholesale string
		stock             int
	}{
		{"Desk Lamp", "19.99", "12.50", 40},
		{"Office Chair", "149.00", "98.00", 15},
		{"Notebook A5", "3.49", "1.10", 500},
		{"USB-C Cable", "9.90", "2.75", 200},
		{"Monitor Stand", "45.00", "30.00", 25},
	}
	for i, p := range catalog {
		s.PutProduct(entities.Product{
			ID:             int64(i + 1),
			Name:           p.name,
			RetailPrice:    decimal.RequireFromString(p.retail),
			WholesalePrice: decimal.RequireFromString(p.wholesale),
			Quantity:       p.stock,
		})
	}
}
