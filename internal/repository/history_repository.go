package repository

import (
	"context"

	"review-scheduler/internal/models"
	"review-scheduler/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository is append-only: entries are never updated or deleted.
type HistoryRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewHistoryRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *HistoryRepository {
	return &HistoryRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, h *models.AppointmentHistory) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	query := r.psql.Insert("appointment_histories").
		Columns("id", "appointment_id", "action", "actor_id", "notes").
		Values(h.ID, h.AppointmentID, string(h.Action), h.ActorID, h.Notes).
		Suffix("RETURNING occurred_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&h.OccurredAt)
	})

	return wrapDBError(err)
}

func (r *HistoryRepository) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*models.AppointmentHistory, error) {
	query := r.psql.Select("id", "appointment_id", "action", "actor_id", "occurred_at", "notes").
		From("appointment_histories").
		Where(sq.Eq{"appointment_id": appointmentID}).
		OrderBy("occurred_at", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var entries []*models.AppointmentHistory

	err = r.retrier.Do(ctx, func() error {
		entries = make([]*models.AppointmentHistory, 0)

		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				h      models.AppointmentHistory
				action string
			)
			if err := rows.Scan(&h.ID, &h.AppointmentID, &action, &h.ActorID, &h.OccurredAt, &h.Notes); err != nil {
				return err
			}
			h.Action = models.HistoryAction(action)
			entries = append(entries, &h)
		}

		return rows.Err()
	})

	return entries, wrapDBError(err)
}
