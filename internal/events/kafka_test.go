package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("broker not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newPublisher(w *fakeWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: w,
		retry:  utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	order := entities.Order{ID: 42, UserID: 7}
	event := New(entities.EventOrderPlaced, order, "jane@example.com", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	testCases := []struct {
		name      string
		failures  int
		wantErr   bool
		wantCalls int
	}{
		{name: "first attempt", failures: 0, wantCalls: 1},
		{name: "broker recovers", failures: 2, wantCalls: 3},
		{name: "broker down", failures: 3, wantErr: true, wantCalls: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := &fakeWriter{failures: tc.failures}
			err := newPublisher(w).Publish(context.Background(), event)

			assert.Equal(t, tc.wantCalls, w.calls)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, w.written)
				return
			}
			require.NoError(t, err)
			require.Len(t, w.written, 1)

			msg := w.written[0]
			assert.Equal(t, "42", string(msg.Key))

			var body Message
			require.NoError(t, json.Unmarshal(msg.Value, &body))
			assert.Equal(t, "order.placed", body.Type)
			assert.Equal(t, int64(42), body.OrderID)
			assert.Equal(t, int64(7), body.UserID)
			assert.Equal(t, "Order placed successfully. Order ID: 42, User: jane@example.com", body.Message)
			assert.NotEmpty(t, body.EventID)
		})
	}
}
