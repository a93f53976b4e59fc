//go:build integration
// +build integration

package repository_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"review-scheduler/internal/repository"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerializesSameReviewerDay(t *testing.T) {
	ctx := t.Context()
	trManager := manager.Must(trmpgx.NewDefaultFactory(db))
	locker := repository.NewLocker(db, trmpgx.DefaultCtxGetter, retrier)

	day := mustDate(t, "2030-07-08")

	var released atomic.Bool
	locked := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- trManager.Do(ctx, func(ctx context.Context) error {
			if err := locker.LockReviewerDay(ctx, 70, day); err != nil {
				return err
			}
			close(locked)
			time.Sleep(200 * time.Millisecond)
			released.Store(true)
			return nil
		})
	}()

	<-locked

	err := trManager.Do(ctx, func(ctx context.Context) error {
		if err := locker.LockReviewerDay(ctx, 70, day); err != nil {
			return err
		}
		require.True(t, released.Load(), "second holder got the lock before the first committed")
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, <-done)
}

func TestLocker_OtherDayDoesNotBlock(t *testing.T) {
	ctx := t.Context()
	trManager := manager.Must(trmpgx.NewDefaultFactory(db))
	locker := repository.NewLocker(db, trmpgx.DefaultCtxGetter, retrier)

	monday := mustDate(t, "2030-07-08")
	tuesday := mustDate(t, "2030-07-09")

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- trManager.Do(ctx, func(ctx context.Context) error {
			if err := locker.LockReviewerDay(ctx, 71, monday); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()

	<-locked

	lockCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := trManager.Do(lockCtx, func(ctx context.Context) error {
		return locker.LockReviewerDay(ctx, 71, tuesday)
	})
	close(release)

	require.NoError(t, err)
	require.NoError(t, <-done)
}

func TestReviewerDayLockKey(t *testing.T) {
	require.Equal(t, "reviewer-day:7:2030-07-08", repository.ReviewerDayLockKey(7, mustDate(t, "2030-07-08")))
}
