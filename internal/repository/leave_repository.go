package repository

import (
	"context"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var leaveColumns = []string{
	"id", "reviewer_id", "leave_date", "time_start", "time_end", "created_at", "updated_at",
}

type LeaveRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewLeaveRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *LeaveRepository {
	return &LeaveRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

func (r *LeaveRepository) Create(ctx context.Context, l *models.LeaveSchedule) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	query := r.psql.Insert("leave_schedules").
		Columns("id", "reviewer_id", "leave_date", "time_start", "time_end").
		Values(l.ID, l.ReviewerID, dateOnly(l.Date), toPgTime(l.Interval.Start), toPgTime(l.Interval.End)).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&l.CreatedAt, &l.UpdatedAt)
	})

	return wrapDBError(err)
}

func (r *LeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LeaveSchedule, error) {
	query := r.psql.Select(leaveColumns...).
		From("leave_schedules").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var l *models.LeaveSchedule

	err = r.retrier.Do(ctx, func() error {
		var scanErr error
		l, scanErr = scanLeave(conn.QueryRow(ctx, sql, args...))
		return scanErr
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return l, nil
}

func (r *LeaveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := r.psql.Delete("leave_schedules").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		tag, execErr := conn.Exec(ctx, sql, args...)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})

	return wrapDBError(err)
}

func (r *LeaveRepository) ListByReviewerDay(ctx context.Context, reviewerID int64, date time.Time) ([]*models.LeaveSchedule, error) {
	return r.list(ctx, sq.Eq{"reviewer_id": reviewerID, "leave_date": dateOnly(date)})
}

func (r *LeaveRepository) ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.LeaveSchedule, error) {
	where := sq.And{sq.Eq{"reviewer_id": reviewerID}}
	if from != nil {
		where = append(where, sq.GtOrEq{"leave_date": dateOnly(*from)})
	}
	if to != nil {
		where = append(where, sq.LtOrEq{"leave_date": dateOnly(*to)})
	}

	return r.list(ctx, where)
}

func (r *LeaveRepository) list(ctx context.Context, where sq.Sqlizer) ([]*models.LeaveSchedule, error) {
	query := r.psql.Select(leaveColumns...).
		From("leave_schedules").
		Where(where).
		OrderBy("leave_date", "time_start")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var leaves []*models.LeaveSchedule

	err = r.retrier.Do(ctx, func() error {
		leaves = make([]*models.LeaveSchedule, 0)

		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			l, err := scanLeave(rows)
			if err != nil {
				return err
			}
			leaves = append(leaves, l)
		}

		return rows.Err()
	})

	return leaves, wrapDBError(err)
}

func scanLeave(row rowScanner) (*models.LeaveSchedule, error) {
	var (
		l          models.LeaveSchedule
		start, end pgtype.Time
	)

	if err := row.Scan(&l.ID, &l.ReviewerID, &l.Date, &start, &end, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}

	iv, err := toInterval(start, end)
	if err != nil {
		return nil, err
	}
	l.Interval = iv

	return &l, nil
}
