package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"review-scheduler/internal/retry"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestRetrier_Do(t *testing.T) {
	fast := retry.WithBackoff(retry.ConstantBackoff{Interval: time.Millisecond})

	t.Run("succeeds first time", func(t *testing.T) {
		calls := 0
		r := retry.New(retry.WithMaxAttempts(3), fast)

		err := r.Do(t.Context(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		r := retry.New(retry.WithMaxAttempts(3), fast)

		err := r.Do(t.Context(), func() error {
			calls++
			if calls < 3 {
				return errBoom
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		r := retry.New(retry.WithMaxAttempts(2), fast)

		err := r.Do(t.Context(), func() error {
			calls++
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)
		require.Equal(t, 2, calls)
	})

	t.Run("does not retry unretryable errors", func(t *testing.T) {
		calls := 0
		r := retry.New(
			retry.WithMaxAttempts(5),
			retry.WithIsRetryableFunc(func(err error) bool { return !errors.Is(err, errBoom) }),
			fast,
		)

		err := r.Do(t.Context(), func() error {
			calls++
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)
		require.Equal(t, 1, calls)
	})

	t.Run("stops on context cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		calls := 0
		r := retry.New(retry.WithMaxAttempts(5), retry.WithBackoff(retry.ConstantBackoff{Interval: time.Hour}))

		go cancel()
		err := r.Do(ctx, func() error {
			calls++
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)
		require.Equal(t, 1, calls)
	})
}

func TestExponentialBackoff_Delay(t *testing.T) {
	b := retry.ExponentialBackoff{
		Base:   100 * time.Millisecond,
		Factor: 2,
		Max:    time.Second,
	}

	require.Equal(t, 100*time.Millisecond, b.Delay(0))
	require.Equal(t, 100*time.Millisecond, b.Delay(1))
	require.Equal(t, 200*time.Millisecond, b.Delay(2))
	require.Equal(t, 400*time.Millisecond, b.Delay(3))
	require.Equal(t, time.Second, b.Delay(5))
	require.Equal(t, time.Second, b.Delay(50))

	b.Jitter = true
	for attempt := 1; attempt <= 6; attempt++ {
		d := b.Delay(attempt)
		full := retry.ExponentialBackoff{Base: b.Base, Factor: b.Factor, Max: b.Max}.Delay(attempt)
		require.GreaterOrEqual(t, d, full/2)
		require.LessOrEqual(t, d, full)
	}
}
