package notify

import (
	"context"
	"errors"
	"time"

	"review-scheduler/internal/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("review-scheduler/internal/notify")

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	Backoff      retry.Backoff
}

// Dispatcher drains the notification outbox. Delivery is at least once:
// a row is marked sent only after its sender returned, in the same
// transaction that claimed it.
type Dispatcher struct {
	outbox    Outbox
	sender    Sender
	trManager TxManager
	cfg       DispatcherConfig
	log       *zap.Logger
	wake      chan struct{}
	now       func() time.Time
}

func NewDispatcher(outbox Outbox, sender Sender, trManager TxManager, cfg DispatcherConfig, log *zap.Logger) *Dispatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Backoff == nil {
		cfg.Backoff = retry.ExponentialBackoff{Base: 15 * time.Second, Factor: 2, Max: 30 * time.Minute}
	}

	return &Dispatcher{
		outbox:    outbox,
		sender:    sender,
		trManager: trManager,
		cfg:       cfg,
		log:       log,
		wake:      make(chan struct{}, 1),
		now:       time.Now,
	}
}

// Wake asks the dispatcher to poll now. It never blocks.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.log.Info("notification dispatcher started",
		zap.Duration("poll_interval", d.cfg.PollInterval),
		zap.Int("batch_size", d.cfg.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			d.log.Info("notification dispatcher stopped")
			return nil
		case <-ticker.C:
		case <-d.wake:
		}

		for {
			n, err := d.DispatchOnce(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					d.log.Error("dispatch notifications", zap.Error(err))
				}
				break
			}
			if n < d.cfg.BatchSize {
				break
			}
		}
	}
}

// DispatchOnce claims one batch of due notifications and tries each of them.
// It returns how many were claimed.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "notify.DispatchOnce")
	defer span.End()

	var claimed int

	err := d.trManager.Do(ctx, func(ctx context.Context) error {
		due, err := d.outbox.ListDue(ctx, d.now(), d.cfg.MaxAttempts, d.cfg.BatchSize)
		if err != nil {
			return err
		}
		claimed = len(due)

		for _, n := range due {
			sendErr := d.sender.Send(ctx, n)
			if sendErr == nil {
				if err := d.outbox.MarkSent(ctx, n.ID, d.now()); err != nil {
					return err
				}
				continue
			}

			attempt := n.RetryCount + 1
			next := d.now().Add(d.cfg.Backoff.Delay(attempt))
			if err := d.outbox.MarkFailed(ctx, n.ID, sendErr.Error(), next); err != nil {
				return err
			}

			fields := []zap.Field{
				zap.String("notification_id", n.ID.String()),
				zap.String("type", string(n.Type)),
				zap.Int("attempt", attempt),
				zap.Error(sendErr),
			}
			if attempt >= d.cfg.MaxAttempts {
				d.log.Error("notification undeliverable, giving up", fields...)
			} else {
				d.log.Warn("notification delivery failed", append(fields, zap.Time("next_retry_at", next))...)
			}
		}

		return nil
	})

	span.SetAttributes(attribute.Int("notify.claimed", claimed))
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return claimed, nil
}
