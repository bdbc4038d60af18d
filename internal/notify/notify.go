package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type Sender interface {
	Send(ctx context.Context, n entities.Notification) error
}

type Notifier struct {
	logger *slog.Logger
	sender Sender
}

func NewNotifier(logger *slog.Logger, sender Sender) *Notifier {
	return &Notifier{
		logger: logger.With(slog.String("component", "notifier")),
		sender: sender,
	}
}

func Confirmation(to string, orderID int64) entities.Notification {
	return entities.Notification{
		OrderID: orderID,
		To:      to,
		Subject: fmt.Sprintf("Order Confirmation - Order #%d", orderID),
		Body:    fmt.Sprintf("Thank you for your order! Your order ID is %d. We will notify you when it ships.", orderID),
	}
}

// OrderConfirmation hands the confirmation for a placed order to the mail channel.
func (n *Notifier) OrderConfirmation(ctx context.Context, to string, orderID int64) error {
	if to == "" {
		n.logger.WarnContext(ctx, "no recipient for order confirmation", slog.Int64("order_id", orderID))
		return nil
	}
	if err := n.sender.Send(ctx, Confirmation(to, orderID)); err != nil {
		return fmt.Errorf("failed to send confirmation for order %d: %w", orderID, err)
	}
	n.logger.DebugContext(ctx, "order confirmation sent", slog.Int64("order_id", orderID))
	return nil
}

type logSender struct {
	logger *slog.Logger
	from   string
}

// NewLogSender only records the mail it would have sent.
func NewLogSender(logger *slog.Logger, from string) *logSender {
	return &logSender{logger: logger.With(slog.String("component", "log_sender")), from: from}
}

func (s *logSender) Send(ctx context.Context, n entities.Notification) error {
	s.logger.InfoContext(ctx, "sending email",
		slog.String("from", s.from),
		slog.String("to", n.To),
		slog.String("subject", n.Subject),
	)
	return nil
}
