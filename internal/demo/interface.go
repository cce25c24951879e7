package demo

import (
	"context"

	"broadcast-srv/internal/model"
)

// UseCase drives the broadcasting demo: passwordless login-as sessions and
// the trigger operations that each dispatch exactly one event or
// notification. Triggers never fail once the principal is resolved, except
// the model event which requires an owned post.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Login authenticates as the first seeded user.
	Login(ctx context.Context) (Session, error)
	// SwitchUser re-issues the session as another user. The fresh token
	// carries a new JTI, invalidating nothing server-side; the cookie
	// replacement is the session rotation.
	SwitchUser(ctx context.Context, userID int64) (Session, error)
	// Index returns the demo page's data bag.
	Index(ctx context.Context, sc model.Scope) (IndexOutput, error)

	TriggerPublicEvent(ctx context.Context, sc model.Scope) error
	TriggerPrivateEvent(ctx context.Context, sc model.Scope) error
	TriggerPresenceEvent(ctx context.Context, sc model.Scope) error
	TriggerModelEvent(ctx context.Context, sc model.Scope) error
	TriggerNotification(ctx context.Context, sc model.Scope) error
}
