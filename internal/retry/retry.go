package retry

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

type Retrier interface {
	Do(ctx context.Context, fn func() error) error
}

type IsRetryableFunc func(err error) bool

// Backoff returns the delay to wait before the given attempt (1-based).
type Backoff interface {
	Delay(attempt int) time.Duration
}

type ConstantBackoff struct {
	Interval time.Duration
}

func (b ConstantBackoff) Delay(int) time.Duration {
	return b.Interval
}

// ExponentialBackoff yields Base * Factor^(attempt-1), capped at Max.
// With Jitter the delay is drawn uniformly from [delay/2, delay].
type ExponentialBackoff struct {
	Base   time.Duration
	Factor float64
	Max    time.Duration
	Jitter bool
}

func (b ExponentialBackoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	factor := b.Factor
	if factor < 1 {
		factor = 1
	}

	d := float64(b.Base) * math.Pow(factor, float64(attempt-1))
	if b.Max > 0 && d > float64(b.Max) {
		d = float64(b.Max)
	}

	delay := time.Duration(d)
	if b.Jitter && delay > 1 {
		half := delay / 2
		delay = half + rand.N(delay-half+1)
	}

	return delay
}

type RetryOption func(*retrier)

func WithMaxAttempts(n int) RetryOption {
	return func(r *retrier) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func WithIsRetryableFunc(fn IsRetryableFunc) RetryOption {
	return func(r *retrier) {
		r.isRetryable = fn
	}
}

func WithBackoff(b Backoff) RetryOption {
	return func(r *retrier) {
		r.backoff = b
	}
}

type retrier struct {
	maxAttempts int
	backoff     Backoff
	isRetryable IsRetryableFunc
}

func New(opts ...RetryOption) Retrier {
	r := &retrier{
		maxAttempts: 1,
		backoff:     ConstantBackoff{Interval: 50 * time.Millisecond},
		isRetryable: func(error) bool { return true },
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *retrier) Do(ctx context.Context, fn func() error) error {
	var err error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if !r.isRetryable(err) || attempt == r.maxAttempts {
			return err
		}

		timer := time.NewTimer(r.backoff.Delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}

	return err
}
