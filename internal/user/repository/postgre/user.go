package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"broadcast-srv/internal/model"
	"broadcast-srv/internal/user/repository"
	postgrePkg "broadcast-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

// dbUser mirrors the users table row.
type dbUser struct {
	ID        int64     `boil:"id"`
	Name      string    `boil:"name"`
	Email     string    `boil:"email"`
	CreatedAt null.Time `boil:"created_at"`
	UpdatedAt null.Time `boil:"updated_at"`
}

func (u dbUser) toModel() model.User {
	return model.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Time,
		UpdatedAt: u.UpdatedAt.Time,
	}
}

const userColumns = "id, name, email, created_at, updated_at"

func (r *implRepository) First(ctx context.Context) (model.User, error) {
	var row dbUser
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM users ORDER BY id LIMIT 1", userColumns),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.First: %v", err)
		return model.User{}, errors.Wrap(err, "select first user")
	}

	return row.toModel(), nil
}

func (r *implRepository) Detail(ctx context.Context, id int64) (model.User, error) {
	var row dbUser
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns), id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail: %v", err)
		return model.User{}, errors.Wrap(err, "select user")
	}

	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users", userColumns)
	var args []interface{}
	if ids := opts.Filter.IDs; len(ids) > 0 {
		query += fmt.Sprintf(" WHERE id IN (%s)", postgrePkg.Placeholders(len(ids), 1))
		args = postgrePkg.ArgsFor(ids)
	}
	query += " ORDER BY id"

	var rows []dbUser
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List: %v", err)
		return nil, errors.Wrap(err, "select users")
	}

	res := make([]model.User, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	now := r.clock()

	var row dbUser
	err := queries.Raw(
		fmt.Sprintf(`INSERT INTO users (name, email, created_at, updated_at)
			VALUES ($1, $2, $3, $4) RETURNING %s`, userColumns),
		opts.User.Name, opts.User.Email, now, now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create: %v", err)
		return model.User{}, errors.Wrap(err, "insert user")
	}

	return row.toModel(), nil
}

func (r *implRepository) Count(ctx context.Context) (int64, error) {
	var row struct {
		Count int64 `boil:"count"`
	}
	if err := queries.Raw("SELECT COUNT(*) AS count FROM users").Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Count: %v", err)
		return 0, errors.Wrap(err, "count users")
	}
	return row.Count, nil
}
