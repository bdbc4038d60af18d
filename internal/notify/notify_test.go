package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []entities.Notification
	err  error
}

func (s *recordingSender) Send(_ context.Context, n entities.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier_OrderConfirmation(t *testing.T) {
	t.Run("sends confirmation", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewNotifier(discard(), sender)

		require.NoError(t, n.OrderConfirmation(context.Background(), "jane@example.com", 12))
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "jane@example.com", sender.sent[0].To)
		assert.Equal(t, "Order Confirmation - Order #12", sender.sent[0].Subject)
		assert.Contains(t, sender.sent[0].Body, "Your order ID is 12")
	})

	t.Run("skips empty recipient", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewNotifier(discard(), sender)

		require.NoError(t, n.OrderConfirmation(context.Background(), "", 12))
		assert.Empty(t, sender.sent)
	})

	t.Run("propagates send failure", func(t *testing.T) {
		errSMTP := errors.New("mail channel down")
		n := NewNotifier(discard(), &recordingSender{err: errSMTP})

		err := n.OrderConfirmation(context.Background(), "jane@example.com", 12)
		assert.ErrorIs(t, err, errSMTP)
	})
}

type fakeChannel struct {
	key string
	msg amqp.Publishing
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	c.key = key
	c.msg = msg
	return nil
}

func (c *fakeChannel) Close() error { return nil }

func TestRabbitSender_Send(t *testing.T) {
	ch := &fakeChannel{}
	s := &rabbitSender{ch: ch, queue: "order.notifications", from: "noreply@example.com"}

	require.NoError(t, s.Send(context.Background(), Confirmation("jane@example.com", 3)))

	assert.Equal(t, "order.notifications", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

	var body mailMessage
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, "noreply@example.com", body.From)
	assert.Equal(t, "jane@example.com", body.To)
	assert.Equal(t, int64(3), body.OrderID)
}
