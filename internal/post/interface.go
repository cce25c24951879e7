package post

import (
	"context"

	"broadcast-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// DetailOwned returns the post owned by the scoped principal.
	DetailOwned(ctx context.Context, sc model.Scope) (model.Post, error)
	// Update rewrites the owned post's title/body. A successful update
	// publishes a PostUpdated model-change event on Post.<id>. Concurrent
	// updates race under last-write-wins; the demo accepts that.
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Post, error)
	// IsOwned reports whether a post exists with the given id and owner.
	// Implements broadcast.PostChecker for channel authorization.
	IsOwned(ctx context.Context, postID, ownerID int64) (bool, error)
}
