package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventPortal/internal/config"
	"eventPortal/internal/models"
)

// Notifier stands in for the mail gateway. Send sleeps for the configured
// delay and logs the payload instead of delivering it; the real gateway can
// replace it behind the same interface.
type Notifier struct {
	log       *slog.Logger
	delay     time.Duration
	recipient string
}

func New(log *slog.Logger, cfg config.Notifier) *Notifier {
	return &Notifier{
		log:       log,
		delay:     cfg.SendDelay,
		recipient: cfg.Recipient,
	}
}

func (n *Notifier) Send(ctx context.Context, request models.EventRequest) error {
	const op = "notifier.simulated.Send"

	timer := time.NewTimer(n.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	n.log.Info("event request notification sent",
		slog.String("recipient", n.recipient),
		slog.String("request_id", request.RequestID),
		slog.String("event", request.Event.Name),
	)

	return nil
}
