package repository

import (
	"context"
	"fmt"
	"time"

	"review-scheduler/internal/retry"
	"review-scheduler/internal/schedule"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Locker serializes writers that touch the same reviewer day using
// transaction-scoped advisory locks. The lock is released on commit or
// rollback, so it only has effect inside a transaction.
type Locker struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	retrier retry.Retrier
}

func NewLocker(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *Locker {
	return &Locker{
		db:      db,
		getter:  c,
		retrier: r,
	}
}

func (l *Locker) LockReviewerDay(ctx context.Context, reviewerID int64, date time.Time) error {
	key := ReviewerDayLockKey(reviewerID, date)
	conn := l.getter.DefaultTrOrDB(ctx, l.db)

	err := l.retrier.Do(ctx, func() error {
		_, err := conn.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key)
		return err
	})

	return wrapDBError(err)
}

func ReviewerDayLockKey(reviewerID int64, date time.Time) string {
	return fmt.Sprintf("reviewer-day:%d:%s", reviewerID, date.Format(schedule.DateLayout))
}
