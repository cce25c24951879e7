package user

import (
	"context"

	"broadcast-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// First returns the lowest-id user, the demo's default login identity.
	First(ctx context.Context) (model.User, error)
	Detail(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
