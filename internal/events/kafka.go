package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
	retry  utils.RetryConfig
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("component", "kafka_publisher")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: cfg.BatchTimeout,
		},
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

// Publish writes the event keyed by order id, so events of one order stay in one partition.
func (p *kafkaPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	key, value, err := Encode(e)
	if err != nil {
		return err
	}

	msg := kafka.Message{Key: key, Value: value, Time: e.OccurredAt}

	// сама библиотека тоже ретраит, здесь ретраи поверх недоступности брокера
	err = utils.Retry(ctx, p.retry, func(ctx context.Context) error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		eventsPublished.WithLabelValues(string(e.Type), "error").Inc()
		return fmt.Errorf("failed to publish %s for order %d: %w", e.Type, e.OrderID, err)
	}

	eventsPublished.WithLabelValues(string(e.Type), "success").Inc()
	p.logger.DebugContext(ctx, "event published", slog.String("type", string(e.Type)), slog.Int64("order_id", e.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type logPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher is used when no broker is configured.
func NewLogPublisher(logger *slog.Logger) *logPublisher {
	return &logPublisher{logger: logger.With(slog.String("component", "log_publisher"))}
}

func (p *logPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	eventsPublished.WithLabelValues(string(e.Type), "logged").Inc()
	p.logger.InfoContext(ctx, "order event",
		slog.String("event_id", e.ID),
		slog.String("type", string(e.Type)),
		slog.Int64("order_id", e.OrderID),
		slog.String("message", e.Message),
	)
	return nil
}
