package repository

import (
	"context"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository is the outbox behind notification delivery.
type NotificationRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewNotificationRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *NotificationRepository {
	return &NotificationRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

// Enqueue stores n as pending and due immediately.
func (r *NotificationRepository) Enqueue(ctx context.Context, n *models.NotificationLog) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.Status = models.NotificationPending

	query := r.psql.Insert("notification_logs").
		Columns(
			"id", "appointment_id", "recipient_id", "recipient_email",
			"notification_type", "subject", "content", "status",
		).
		Values(
			n.ID, n.AppointmentID, n.RecipientID, n.RecipientEmail,
			string(n.Type), n.Subject, n.Content, string(n.Status),
		).
		Suffix("RETURNING created_at, next_retry_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&n.CreatedAt, &n.NextRetryAt)
	})

	return wrapDBError(err)
}

// ListDue claims up to limit notifications that are pending or failed, below
// maxAttempts and due at now. Rows are locked with SKIP LOCKED, so callers must
// run inside a transaction and concurrent dispatchers never share a row.
// An empty recipient_email is filled from the users table.
func (r *NotificationRepository) ListDue(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*models.NotificationLog, error) {
	query := r.psql.Select(
		"n.id", "n.appointment_id", "n.recipient_id",
		"COALESCE(NULLIF(n.recipient_email, ''), u.email, '')",
		"n.notification_type", "n.subject", "n.content", "n.status",
		"n.retry_count", "n.next_retry_at", "n.created_at",
	).From("notification_logs n").
		LeftJoin("users u ON u.id = n.recipient_id").
		Where(sq.Eq{"n.status": []string{
			string(models.NotificationPending),
			string(models.NotificationFailed),
		}}).
		Where(sq.Lt{"n.retry_count": maxAttempts}).
		Where(sq.LtOrEq{"n.next_retry_at": now}).
		OrderBy("n.next_retry_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE OF n SKIP LOCKED")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var due []*models.NotificationLog

	err = r.retrier.Do(ctx, func() error {
		due = make([]*models.NotificationLog, 0)

		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				n           models.NotificationLog
				typ, status string
			)
			if err := rows.Scan(
				&n.ID, &n.AppointmentID, &n.RecipientID, &n.RecipientEmail,
				&typ, &n.Subject, &n.Content, &status,
				&n.RetryCount, &n.NextRetryAt, &n.CreatedAt,
			); err != nil {
				return err
			}
			n.Type = models.NotificationType(typ)
			n.Status = models.NotificationStatus(status)
			due = append(due, &n)
		}

		return rows.Err()
	})

	return due, wrapDBError(err)
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.update(ctx, r.psql.Update("notification_logs").
		Set("status", string(models.NotificationSent)).
		Set("sent_at", at).
		Set("error_message", nil).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}))
}

// MarkFailed records a failed attempt and schedules the next one.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, nextRetryAt time.Time) error {
	return r.update(ctx, r.psql.Update("notification_logs").
		Set("status", string(models.NotificationFailed)).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("error_message", reason).
		Set("next_retry_at", nextRetryAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
}

func (r *NotificationRepository) update(ctx context.Context, query sq.UpdateBuilder) error {
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
