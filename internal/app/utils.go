package app

import (
	"errors"

	"review-scheduler/internal/config"
	"review-scheduler/internal/notify"
	"review-scheduler/internal/repository"
	"review-scheduler/internal/retry"

	"go.uber.org/zap"
)

func newRepoRetrier(cfg config.Retry, retryableFunc retry.IsRetryableFunc) retry.Retrier {
	opts := []retry.RetryOption{
		retry.WithMaxAttempts(cfg.MaxAttempts),
	}

	if retryableFunc != nil {
		opts = append(opts, retry.WithIsRetryableFunc(retryableFunc))
	}

	if cfg.Backoff == "exponential" {
		opts = append(opts, retry.WithBackoff(retry.ExponentialBackoff{
			Base:   cfg.Base,
			Factor: cfg.Factor,
			Max:    cfg.Max,
			Jitter: cfg.Jitter,
		}))
	}

	return retry.New(opts...)
}

// isRetryableFunc classifies raw driver errors as well as repository
// sentinels, since the retrier sees errors before the repository wraps them.
func isRetryableFunc(err error) bool {
	err = repository.Translate(err)

	unretryableErrors := []error{
		repository.ErrDuplicate,
		repository.ErrNotFound,
		repository.ErrInvalidID,
		repository.ErrForeignKeyViolation,
		repository.ErrTxAborted,
		repository.ErrOverlap,
		repository.ErrInvalidData,
		// a serialization failure poisons the surrounding transaction;
		// only a fresh transaction can retry it
		repository.ErrSerialization,
	}

	for _, unretryableErr := range unretryableErrors {
		if errors.Is(err, unretryableErr) {
			return false
		}
	}

	return true
}

func notificationBackoff(cfg config.Notify) retry.Backoff {
	return retry.ExponentialBackoff{
		Base:   cfg.Base,
		Factor: cfg.Factor,
		Max:    cfg.Max,
		Jitter: cfg.Jitter,
	}
}

// newSender picks the delivery transport. The returned close func releases
// the transport's connections.
func newSender(cfg *config.Config, log *zap.Logger) (notify.Sender, func() error) {
	switch cfg.Notify.Transport {
	case config.TransportSMTP:
		return notify.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From), func() error { return nil }
	case config.TransportKafka:
		s := notify.NewKafkaSender(notify.NewKafkaWriter(cfg.Kafka.Brokers), cfg.Kafka.Topic)
		return s, s.Close
	default:
		return notify.NewLogSender(log), func() error { return nil }
	}
}
