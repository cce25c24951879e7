package repository

import (
	"context"
	"errors"

	"broadcast-srv/internal/model"
)

var (
	ErrNotFound = errors.New("record not found")
)

type UpdateOptions struct {
	Title string
	Body  string
}

type CreateOptions struct {
	UserID int64
	Title  string
	Body   string
}

//go:generate mockery --name Repository
type Repository interface {
	GetByOwner(ctx context.Context, ownerID int64) (model.Post, error)
	Detail(ctx context.Context, id int64) (model.Post, error)
	Update(ctx context.Context, id int64, opt UpdateOptions) (model.Post, error)
	ExistsOwned(ctx context.Context, id, ownerID int64) (bool, error)
	Create(ctx context.Context, opt CreateOptions) (model.Post, error)
	Count(ctx context.Context) (int64, error)
}
