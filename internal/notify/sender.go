package notify

//go:generate mockgen -source=sender.go -destination=../mocks/notify.go -package=mocks .

import (
	"context"
	"time"

	"review-scheduler/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender delivers a single notification. A returned error schedules a retry.
type Sender interface {
	Send(ctx context.Context, n *models.NotificationLog) error
}

// Outbox is the durable queue the dispatcher drains.
type Outbox interface {
	ListDue(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*models.NotificationLog, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, nextRetryAt time.Time) error
}

// LogSender writes notifications to the application log instead of
// delivering them. It is the default transport for local runs.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, n *models.NotificationLog) error {
	s.log.Info("notification",
		zap.String("id", n.ID.String()),
		zap.String("type", string(n.Type)),
		zap.Int64("recipient_id", n.RecipientID),
		zap.String("recipient_email", n.RecipientEmail),
		zap.String("subject", n.Subject),
	)
	return nil
}
