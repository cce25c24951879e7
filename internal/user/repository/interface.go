package repository

import (
	"context"
	"errors"

	"broadcast-srv/internal/model"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("not found")

// Filter contains filtering options for user queries.
type Filter struct {
	IDs []int64
}

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter Filter
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

//go:generate mockery --name Repository
type Repository interface {
	First(ctx context.Context) (model.User, error)
	Detail(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context, opts ListOptions) ([]model.User, error)
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	Count(ctx context.Context) (int64, error)
}
