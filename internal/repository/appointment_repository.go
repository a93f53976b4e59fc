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

var appointmentColumns = []string{
	"id", "applicant_id", "reviewer_id", "appointment_date", "time_start", "time_end",
	"object_name", "status", "delegate_reviewer_id", "delegate_status", "created_by_id",
	"created_at", "updated_at", "cancelled_at", "cancelled_reason",
}

type AppointmentRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewAppointmentRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *AppointmentRepository {
	return &AppointmentRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

// Create inserts a with a fresh id when a.ID is nil. Overlap with another
// occupying appointment of the same reviewer and day yields ErrOverlap.
func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query := r.psql.Insert("appointments").
		Columns(
			"id", "applicant_id", "reviewer_id", "appointment_date", "time_start", "time_end",
			"object_name", "status", "created_by_id",
		).
		Values(
			a.ID, a.ApplicantID, a.ReviewerID, dateOnly(a.Date),
			toPgTime(a.Interval.Start), toPgTime(a.Interval.End),
			a.ObjectName, string(a.Status), a.CreatedByID,
		).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&a.CreatedAt, &a.UpdatedAt)
	})

	return wrapDBError(err)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return r.getOne(ctx, r.psql.Select(appointmentColumns...).
		From("appointments").
		Where(sq.Eq{"id": id}))
}

// GetForReviewer locks the appointment row for the rest of the transaction.
// A row owned by another reviewer is reported as ErrNotFound.
func (r *AppointmentRepository) GetForReviewer(ctx context.Context, id uuid.UUID, reviewerID int64) (*models.Appointment, error) {
	return r.getOne(ctx, r.psql.Select(appointmentColumns...).
		From("appointments").
		Where(sq.Eq{"id": id, "reviewer_id": reviewerID}).
		Suffix("FOR UPDATE"))
}

func (r *AppointmentRepository) getOne(ctx context.Context, query sq.SelectBuilder) (*models.Appointment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var a *models.Appointment

	err = r.retrier.Do(ctx, func() error {
		var scanErr error
		a, scanErr = scanAppointment(conn.QueryRow(ctx, sql, args...))
		return scanErr
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus, at time.Time) error {
	query := r.psql.Update("appointments").
		Set("status", string(status)).
		Set("updated_at", at).
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

// ListByReviewerDay returns the reviewer's appointments on date, skipping
// excludeStatuses and, when set, excludeID.
func (r *AppointmentRepository) ListByReviewerDay(
	ctx context.Context,
	reviewerID int64,
	date time.Time,
	excludeStatuses []models.AppointmentStatus,
	excludeID *uuid.UUID,
) ([]*models.Appointment, error) {
	where := sq.And{
		sq.Eq{"reviewer_id": reviewerID, "appointment_date": dateOnly(date)},
	}
	if len(excludeStatuses) > 0 {
		statuses := make([]string, 0, len(excludeStatuses))
		for _, s := range excludeStatuses {
			statuses = append(statuses, string(s))
		}
		where = append(where, sq.NotEq{"status": statuses})
	}
	if excludeID != nil {
		where = append(where, sq.NotEq{"id": *excludeID})
	}

	return r.list(ctx, where)
}

// ListByReviewer returns the reviewer's appointments, optionally bounded by
// date on either side, ordered by date and start time.
func (r *AppointmentRepository) ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.Appointment, error) {
	where := sq.And{sq.Eq{"reviewer_id": reviewerID}}
	if from != nil {
		where = append(where, sq.GtOrEq{"appointment_date": dateOnly(*from)})
	}
	if to != nil {
		where = append(where, sq.LtOrEq{"appointment_date": dateOnly(*to)})
	}

	return r.list(ctx, where)
}

func (r *AppointmentRepository) ListByApplicant(ctx context.Context, applicantID int64, from *time.Time) ([]*models.Appointment, error) {
	where := sq.And{sq.Eq{"applicant_id": applicantID}}
	if from != nil {
		where = append(where, sq.GtOrEq{"appointment_date": dateOnly(*from)})
	}

	return r.list(ctx, where)
}

func (r *AppointmentRepository) list(ctx context.Context, where sq.Sqlizer) ([]*models.Appointment, error) {
	query := r.psql.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		OrderBy("appointment_date", "time_start")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var appointments []*models.Appointment

	err = r.retrier.Do(ctx, func() error {
		appointments = make([]*models.Appointment, 0)

		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAppointment(rows)
			if err != nil {
				return err
			}
			appointments = append(appointments, a)
		}

		return rows.Err()
	})

	return appointments, wrapDBError(err)
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var (
		a          models.Appointment
		start, end pgtype.Time
		status     string
	)

	if err := row.Scan(
		&a.ID, &a.ApplicantID, &a.ReviewerID, &a.Date, &start, &end,
		&a.ObjectName, &status, &a.DelegateReviewerID, &a.DelegateStatus, &a.CreatedByID,
		&a.CreatedAt, &a.UpdatedAt, &a.CancelledAt, &a.CancelledReason,
	); err != nil {
		return nil, err
	}

	iv, err := toInterval(start, end)
	if err != nil {
		return nil, err
	}
	a.Interval = iv
	a.Status = models.AppointmentStatus(status)

	return &a, nil
}
