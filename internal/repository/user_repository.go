package repository

import (
	"context"

	"review-scheduler/internal/models"
	"review-scheduler/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository reads the local projection of the user directory.
type UserRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewUserRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *UserRepository {
	return &UserRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := r.psql.Select(
		"id", "name", "email", "role", "is_active",
	).From("users").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	u := &models.User{}

	err = r.retrier.Do(ctx, func() error {
		var role string
		if err := conn.QueryRow(ctx, sql, args...).
			Scan(&u.ID, &u.Name, &u.Email, &role, &u.IsActive); err != nil {
			return err
		}
		u.Role = models.Role(role)
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return u, nil
}

// ListActiveByRole returns active users with role, ordered by name.
func (r *UserRepository) ListActiveByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	return r.getUsersBy(ctx, sq.Eq{
		"role":      string(role),
		"is_active": true,
	})
}

func (r *UserRepository) getUsersBy(ctx context.Context, where sq.Eq) ([]*models.User, error) {
	query := r.psql.Select(
		"id", "name", "email", "role", "is_active",
	).From("users").
		Where(where).
		OrderBy("name", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	var users []*models.User

	err = r.retrier.Do(ctx, func() error {
		users = make([]*models.User, 0)

		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u := &models.User{}
			var role string
			if err := rows.Scan(
				&u.ID, &u.Name, &u.Email, &role, &u.IsActive,
			); err != nil {
				return err
			}
			u.Role = models.Role(role)

			users = append(users, u)
		}

		return rows.Err()
	})

	return users, wrapDBError(err)
}

// Upsert writes a directory entry into the projection, replacing any
// previous copy of the same id.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := r.psql.Insert("users").
		Columns("id", "name", "email", "role", "is_active").
		Values(user.ID, user.Name, user.Email, string(user.Role), user.IsActive).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			updated_at = now()`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		_, retryErr := conn.Exec(ctx, sql, args...)
		return retryErr
	})

	return wrapDBError(err)
}
