//go:build integration
// +build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"review-scheduler/internal/models"
	"review-scheduler/internal/repository"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLeaveRepository(t *testing.T) {
	ctx := t.Context()
	trManager := manager.Must(trmpgx.NewDefaultFactory(db))

	repo := repository.NewLeaveRepository(db, trmpgx.DefaultCtxGetter, retrier)

	day := mustDate(t, "2030-04-01")

	_ = trManager.Do(ctx, func(ctx context.Context) error {
		morning := &models.LeaveSchedule{
			ReviewerID: 40,
			Date:       day,
			Interval:   mustInterval(t, "09:00", "12:00"),
		}
		afternoon := &models.LeaveSchedule{
			ReviewerID: 40,
			Date:       day,
			Interval:   mustInterval(t, "12:00", "13:00"),
		}

		t.Run("Create", func(t *testing.T) {
			require.NoError(t, repo.Create(ctx, morning))
			require.NotEqual(t, uuid.Nil, morning.ID)
			require.NoError(t, repo.Create(ctx, afternoon))
		})

		t.Run("GetByID", func(t *testing.T) {
			actual, err := repo.GetByID(ctx, morning.ID)
			require.NoError(t, err)
			require.Equal(t, morning.ReviewerID, actual.ReviewerID)
			require.Equal(t, morning.Interval, actual.Interval)
			require.True(t, day.Equal(actual.Date))
		})

		t.Run("ListByReviewerDay ordered by start", func(t *testing.T) {
			list, err := repo.ListByReviewerDay(ctx, 40, day)
			require.NoError(t, err)
			require.Len(t, list, 2)
			require.Equal(t, morning.ID, list[0].ID)
			require.Equal(t, afternoon.ID, list[1].ID)
		})

		t.Run("ListByReviewer outside range", func(t *testing.T) {
			from := day.AddDate(0, 0, 1)
			list, err := repo.ListByReviewer(ctx, 40, &from, nil)
			require.NoError(t, err)
			require.Empty(t, list)
		})

		t.Run("Delete", func(t *testing.T) {
			require.NoError(t, repo.Delete(ctx, afternoon.ID))

			_, err := repo.GetByID(ctx, afternoon.ID)
			require.ErrorIs(t, err, repository.ErrNotFound)

			err = repo.Delete(ctx, afternoon.ID)
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		t.Run("Create overlapping", func(t *testing.T) {
			err := repo.Create(ctx, &models.LeaveSchedule{
				ReviewerID: 40,
				Date:       day,
				Interval:   mustInterval(t, "11:00", "14:00"),
			})
			require.ErrorIs(t, err, repository.ErrOverlap)
		})

		return fmt.Errorf("rollback transaction")
	})
}
