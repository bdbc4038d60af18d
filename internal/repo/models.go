package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	UserEmail         sql.NullString  `db:"email"`
	DatePlaced        time.Time       `db:"date_placed"`
	Status            string          `db:"status"`
	IsPickup          bool            `db:"is_pickup"`
	ShippingAddressID sql.NullInt64   `db:"shipping_address_id"`
	PaymentMethodID   sql.NullInt64   `db:"payment_method_id"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	PaymentRef        sql.NullString  `db:"payment_ref"`
	ShippingSnapshot  []byte          `db:"shipping_snapshot"`
	CardType          sql.NullString  `db:"card_type"`
	CardLast4         sql.NullString  `db:"card_last4"`
}

type Item struct {
	ID             int64           `db:"id"`
	OrderID        int64           `db:"order_id"`
	ProductID      int64           `db:"product_id"`
	ProductName    string          `db:"product_name"`
	Quantity       int             `db:"quantity"`
	PurchasedPrice decimal.Decimal `db:"purchased_price"`
}

type Product struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	RetailPrice    decimal.Decimal `db:"retail_price"`
	WholesalePrice decimal.Decimal `db:"wholesale_price"`
	Quantity       int             `db:"quantity"`
}

type User struct {
	ID    int64  `db:"id"`
	Email string `db:"email"`
}

type Address struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"user_id"`
	FullName     string         `db:"full_name"`
	AddressLine1 string         `db:"address_line1"`
	AddressLine2 sql.NullString `db:"address_line2"`
	City         string         `db:"city"`
	State        string         `db:"state"`
	ZipCode      string         `db:"zip_code"`
	Country      string         `db:"country"`
}

type PaymentMethod struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	CardHolder string `db:"card_holder"`
	CardType   string `db:"card_type"`
	Last4      string `db:"last4"`
	ExpiryDate string `db:"expiry_date"`
}

type ProductStat struct {
	ProductID int64           `db:"product_id"`
	Name      string          `db:"name"`
	Value     decimal.Decimal `db:"value"`
}

// addressSnapshot is frozen into orders.shipping_snapshot at placement time.
type addressSnapshot struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID:      i.ProductID,
		Name:           i.ProductName,
		Quantity:       i.Quantity,
		PurchasedPrice: i.PurchasedPrice,
	}
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	order := entities.Order{
		ID:                o.ID,
		UserID:            o.UserID,
		UserEmail:         nullStringToString(o.UserEmail),
		DatePlaced:        o.DatePlaced,
		Status:            entities.Status(o.Status),
		IsPickup:          o.IsPickup,
		TotalAmount:       o.TotalAmount,
		PaymentRef:        nullStringToString(o.PaymentRef),
		ShippingAddressID: nullInt64ToPtr(o.ShippingAddressID),
		PaymentMethodID:   nullInt64ToPtr(o.PaymentMethodID),
	}

	if len(o.ShippingSnapshot) > 0 {
		var snap addressSnapshot
		if err := json.Unmarshal(o.ShippingSnapshot, &snap); err != nil {
			return entities.Order{}, err
		}
		order.ShippingAddress = &entities.Address{
			FullName:     snap.FullName,
			AddressLine1: snap.AddressLine1,
			AddressLine2: snap.AddressLine2,
			City:         snap.City,
			State:        snap.State,
			ZipCode:      snap.ZipCode,
			Country:      snap.Country,
		}
		if order.ShippingAddressID != nil {
			order.ShippingAddress.ID = *order.ShippingAddressID
		}
		order.ShippingAddress.UserID = o.UserID
	}

	if o.CardType.Valid {
		order.Payment = &entities.PaymentSummary{
			CardType: o.CardType.String,
			Last4:    nullStringToString(o.CardLast4),
		}
	}

	order.Items = make([]entities.Item, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order, nil
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:             p.ID,
		Name:           p.Name,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Quantity:       p.Quantity,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:           a.ID,
		UserID:       a.UserID,
		FullName:     a.FullName,
		AddressLine1: a.AddressLine1,
		AddressLine2: nullStringToString(a.AddressLine2),
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
	}
}

func PaymentMethodToEntity(p PaymentMethod) entities.PaymentMethod {
	return entities.PaymentMethod{
		ID:         p.ID,
		UserID:     p.UserID,
		CardHolder: p.CardHolder,
		CardType:   p.CardType,
		Last4:      p.Last4,
		ExpiryDate: p.ExpiryDate,
	}
}

func StatsToEntity(rows []ProductStat) []entities.ProductStat {
	stats := make([]entities.ProductStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, entities.ProductStat{ProductID: r.ProductID, Name: r.Name, Value: r.Value})
	}
	return stats
}

// snapshotAddress is passed as text: lib/pq would encode []byte as bytea.
func snapshotAddress(a *entities.Address) (sql.NullString, error) {
	if a == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(addressSnapshot{
		FullName:     a.FullName,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
	})
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToPtr(ni sql.NullInt64) *int64 {
	if ni.Valid {
		v := ni.Int64
		return &v
	}
	return nil
}
