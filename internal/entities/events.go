package entities

import "time"

type EventType string

const (
	EventOrderPlaced    EventType = "order.placed"
	EventOrderCanceled  EventType = "order.canceled"
	EventOrderCompleted EventType = "order.completed"
)

type OrderEvent struct {
	ID         string
	Type       EventType
	OrderID    int64
	UserID     int64
	Message    string
	OccurredAt time.Time
}

type Notification struct {
	OrderID int64
	To      string
	Subject string
	Body    string
}
