package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

// OrderLine позиция корзины
type OrderLine struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

// Address новый адрес доставки
type Address struct {
	FullName     string `json:"fullName" validate:"required,max=255"`
	AddressLine1 string `json:"addressLine1" validate:"required,max=255"`
	AddressLine2 string `json:"addressLine2,omitempty" validate:"max=255"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state,omitempty" validate:"max=100"`
	ZipCode      string `json:"zipCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
}

// PaymentMethod новый способ оплаты; номер карты целиком не принимается
type PaymentMethod struct {
	CardHolder string `json:"cardHolder" validate:"required,max=255"`
	CardType   string `json:"cardType" validate:"required,max=50"`
	Last4      string `json:"last4" validate:"required,len=4,numeric"`
	ExpiryDate string `json:"expiryDate" validate:"required,max=7"`
}

// PlaceOrderRequest тело запроса на оформление заказа
type PlaceOrderRequest struct {
	Items            []OrderLine    `json:"items" validate:"required,min=1,dive"`
	IsPickup         bool           `json:"isPickup"`
	AddressID        *int64         `json:"addressId,omitempty" validate:"omitempty,gt=0"`
	NewAddress       *Address       `json:"newAddress,omitempty"`
	PaymentMethodID  *int64         `json:"paymentMethodId,omitempty" validate:"omitempty,gt=0"`
	NewPaymentMethod *PaymentMethod `json:"newPaymentMethod,omitempty"`
}

// Item позиция заказа с зафиксированной ценой
type Item struct {
	ProductID      int64           `json:"productId"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	PurchasedPrice decimal.Decimal `json:"purchasedPrice" swaggertype:"string" example:"19.99"`
}

// PaymentSummary только тип карты и последние 4 цифры
type PaymentSummary struct {
	CardType string `json:"cardType"`
	Last4    string `json:"last4"`
}

// Order заказ
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	UserEmail       string          `json:"userEmail,omitempty"`
	DatePlaced      time.Time       `json:"datePlaced"`
	Status          string          `json:"status" enums:"Processing,Completed,Canceled"`
	IsPickup        bool            `json:"isPickup"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"59.97"`
	Items           []Item          `json:"items"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	Payment         *PaymentSummary `json:"payment,omitempty"`
}

// OrdersPage страница заказов
type OrdersPage struct {
	Content       []Order `json:"content"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Size          int     `json:"size"`
	Number        int     `json:"number"`
}

// ProductStat строка статистики по товару
type ProductStat struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value" swaggertype:"string"`
}

// Stats статистика по завершённым заказам
type Stats struct {
	TotalSoldItems int64         `json:"totalSoldItems"`
	MostPopular    []ProductStat `json:"mostPopular"`
	MostProfitable []ProductStat `json:"mostProfitable"`
}

func (r PlaceOrderRequest) ToEntity(idempotencyKey string) entities.PlaceOrderRequest {
	lines := make([]entities.Line, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, entities.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	req := entities.PlaceOrderRequest{
		Items:           lines,
		IsPickup:        r.IsPickup,
		AddressID:       r.AddressID,
		PaymentMethodID: r.PaymentMethodID,
		IdempotencyKey:  idempotencyKey,
	}
	if a := r.NewAddress; a != nil {
		req.NewAddress = &entities.Address{
			FullName:     a.FullName,
			AddressLine1: a.AddressLine1,
			AddressLine2: a.AddressLine2,
			City:         a.City,
			State:        a.State,
			ZipCode:      a.ZipCode,
			Country:      a.Country,
		}
	}
	if p := r.NewPaymentMethod; p != nil {
		req.NewPaymentMethod = &entities.PaymentMethod{
			CardHolder: p.CardHolder,
			CardType:   p.CardType,
			Last4:      p.Last4,
			ExpiryDate: p.ExpiryDate,
		}
	}
	return req
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		FullName:     a.FullName,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			ProductID:      it.ProductID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			PurchasedPrice: it.PurchasedPrice,
		})
	}

	res := Order{
		ID:          o.ID,
		UserID:      o.UserID,
		UserEmail:   o.UserEmail,
		DatePlaced:  o.DatePlaced,
		Status:      string(o.Status),
		IsPickup:    o.IsPickup,
		TotalAmount: o.TotalAmount,
		Items:       items,
	}
	if o.ShippingAddress != nil {
		addr := AddressEntityToJSON(*o.ShippingAddress)
		res.ShippingAddress = &addr
	}
	if o.Payment != nil {
		res.Payment = &PaymentSummary{CardType: o.Payment.CardType, Last4: o.Payment.Last4}
	}
	return res
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func PageEntityToJSON(p entities.Page[entities.Order]) OrdersPage {
	return OrdersPage{
		Content:       OrdersEntityToJSON(p.Content),
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Size:          p.Size,
		Number:        p.Number,
	}
}

func StatsEntityToJSON(s entities.OrderStats) Stats {
	convert := func(stats []entities.ProductStat) []ProductStat {
		res := make([]ProductStat, 0, len(stats))
		for _, st := range stats {
			res = append(res, ProductStat{ProductID: st.ProductID, Name: st.Name, Value: st.Value})
		}
		return res
	}
	return Stats{
		TotalSoldItems: s.TotalSoldItems,
		MostPopular:    convert(s.MostPopular),
		MostProfitable: convert(s.MostProfitable),
	}
}
