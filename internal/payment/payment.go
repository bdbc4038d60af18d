package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Config struct {
	DeclineRate float64
	Latency     time.Duration
	Timeout     time.Duration
}

// Simulator stands in for an external card gateway: it waits for Latency,
// declines a DeclineRate share of requests and otherwise returns a transaction ref.
// Calls are never retried here; a decline is final for the placement attempt.
type Simulator struct {
	logger *slog.Logger
	cfg    Config
	roll   func() float64
}

func NewSimulator(logger *slog.Logger, cfg Config) *Simulator {
	return &Simulator{
		logger: logger.With(slog.String("component", "payment")),
		cfg:    cfg,
		roll:   rand.Float64,
	}
}

func (s *Simulator) Authorize(ctx context.Context, amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", entities.InvalidRequest("payment amount must be positive")
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	timer := time.NewTimer(s.cfg.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.WarnContext(ctx, "payment gateway did not answer", slog.String("amount", amount.String()), slog.Any("error", ctx.Err()))
		return "", fmt.Errorf("%w: payment gateway: %w", entities.ErrDependencyUnavailable, ctx.Err())
	case <-timer.C:
	}

	if s.roll() < s.cfg.DeclineRate {
		s.logger.InfoContext(ctx, "payment declined", slog.String("amount", amount.String()))
		return "", entities.ErrPaymentDeclined
	}

	ref := "tx_" + uuid.NewString()
	s.logger.DebugContext(ctx, "payment authorized", slog.String("amount", amount.String()), slog.String("ref", ref))
	return ref, nil
}

// AuthorizerFunc adapts a function to the authorizer contract.
type AuthorizerFunc func(ctx context.Context, amount decimal.Decimal) (string, error)

func (f AuthorizerFunc) Authorize(ctx context.Context, amount decimal.Decimal) (string, error) {
	return f(ctx, amount)
}
