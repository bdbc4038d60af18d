package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	amqp "github.com/rabbitmq/amqp091-go"
)

// mailMessage is consumed by the mail service.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	OrderID int64  `json:"order_id"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type rabbitSender struct {
	conn  *amqp.Connection
	mu    sync.Mutex
	ch    publisher
	queue string
	from  string
}

// NewRabbitSender declares a durable queue and publishes confirmations to it
// through the default exchange.
func NewRabbitSender(cfg config.RabbitMQ, from string) (*rabbitSender, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &rabbitSender{conn: conn, ch: ch, queue: cfg.Queue, from: from}, nil
}

func (s *rabbitSender) Send(ctx context.Context, n entities.Notification) error {
	body, err := json.Marshal(mailMessage{
		From:    s.from,
		To:      n.To,
		Subject: n.Subject,
		Body:    n.Body,
		OrderID: n.OrderID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// amqp.Channel не потокобезопасен для публикации
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ch.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func (s *rabbitSender) Close() error {
	if err := s.ch.Close(); err != nil {
		return err
	}
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
