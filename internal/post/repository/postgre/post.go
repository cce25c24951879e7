package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"broadcast-srv/internal/model"
	"broadcast-srv/internal/post/repository"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

// dbPost mirrors the posts table row.
type dbPost struct {
	ID        int64     `boil:"id"`
	UserID    int64     `boil:"user_id"`
	Title     string    `boil:"title"`
	Body      string    `boil:"body"`
	CreatedAt null.Time `boil:"created_at"`
	UpdatedAt null.Time `boil:"updated_at"`
}

func (p dbPost) toModel() model.Post {
	return model.Post{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.Time,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

const postColumns = "id, user_id, title, body, created_at, updated_at"

func (r *implRepository) GetByOwner(ctx context.Context, ownerID int64) (model.Post, error) {
	var row dbPost
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM posts WHERE user_id = $1 ORDER BY id LIMIT 1", postColumns), ownerID,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Post{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.post.repository.postgres.GetByOwner: %v", err)
		return model.Post{}, errors.Wrap(err, "select post by owner")
	}

	return row.toModel(), nil
}

func (r *implRepository) Detail(ctx context.Context, id int64) (model.Post, error) {
	var row dbPost
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM posts WHERE id = $1", postColumns), id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Post{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.post.repository.postgres.Detail: %v", err)
		return model.Post{}, errors.Wrap(err, "select post")
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, id int64, opt repository.UpdateOptions) (model.Post, error) {
	var row dbPost
	err := queries.Raw(
		fmt.Sprintf(`UPDATE posts SET title = $1, body = $2, updated_at = $3
			WHERE id = $4 RETURNING %s`, postColumns),
		opt.Title, opt.Body, r.clock(), id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Post{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.post.repository.postgres.Update: %v", err)
		return model.Post{}, errors.Wrap(err, "update post")
	}

	return row.toModel(), nil
}

func (r *implRepository) ExistsOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	var row struct {
		Exists bool `boil:"exists"`
	}
	err := queries.Raw(
		"SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1 AND user_id = $2) AS exists", id, ownerID,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.post.repository.postgres.ExistsOwned: %v", err)
		return false, errors.Wrap(err, "select post ownership")
	}

	return row.Exists, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Post, error) {
	now := r.clock()

	var row dbPost
	err := queries.Raw(
		fmt.Sprintf(`INSERT INTO posts (user_id, title, body, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5) RETURNING %s`, postColumns),
		opt.UserID, opt.Title, opt.Body, now, now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.post.repository.postgres.Create: %v", err)
		return model.Post{}, errors.Wrap(err, "insert post")
	}

	return row.toModel(), nil
}

func (r *implRepository) Count(ctx context.Context) (int64, error) {
	var row struct {
		Count int64 `boil:"count"`
	}
	if err := queries.Raw("SELECT COUNT(*) AS count FROM posts").Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.post.repository.postgres.Count: %v", err)
		return 0, errors.Wrap(err, "count posts")
	}
	return row.Count, nil
}
