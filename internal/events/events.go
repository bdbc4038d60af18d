package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/google/uuid"
)

// Message is the JSON payload written to the orders topic.
type Message struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New builds a lifecycle event; actor is the e-mail (or id) of the acting user.
func New(t entities.EventType, order entities.Order, actor string, at time.Time) entities.OrderEvent {
	return entities.OrderEvent{
		ID:         uuid.NewString(),
		Type:       t,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Message:    describe(t, order.ID, actor),
		OccurredAt: at.UTC(),
	}
}

func describe(t entities.EventType, orderID int64, actor string) string {
	switch t {
	case entities.EventOrderPlaced:
		return fmt.Sprintf("Order placed successfully. Order ID: %d, User: %s", orderID, actor)
	case entities.EventOrderCanceled:
		return fmt.Sprintf("Order canceled. Order ID: %d, User: %s", orderID, actor)
	case entities.EventOrderCompleted:
		return fmt.Sprintf("Order completed. Order ID: %d, User: %s", orderID, actor)
	}
	return fmt.Sprintf("Order %d: %s", orderID, t)
}

func Encode(e entities.OrderEvent) (key, value []byte, err error) {
	value, err = json.Marshal(Message{
		EventID:    e.ID,
		Type:       string(e.Type),
		OrderID:    e.OrderID,
		UserID:     e.UserID,
		Message:    e.Message,
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return []byte(strconv.FormatInt(e.OrderID, 10)), value, nil
}
