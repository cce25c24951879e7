package broadcast

import (
	"context"

	"broadcast-srv/internal/model"
)

// PresenceMember is the subscriber datum a presence channel reports for
// "who is online".
type PresenceMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Decision is the outcome of a channel authorization check. Member is
// non-nil only for allowed presence subscriptions.
type Decision struct {
	Allowed bool
	Member  *PresenceMember
}

// Deny is the zero Decision.
func Deny() Decision { return Decision{} }

// Allow permits a plain subscription.
func Allow() Decision { return Decision{Allowed: true} }

// AllowWithPresence permits a presence subscription with member data.
func AllowWithPresence(m PresenceMember) Decision {
	return Decision{Allowed: true, Member: &m}
}

// Authorizer decides whether a principal may subscribe to a named channel.
// The channel name carries no wire prefix. A nil principal means the
// subscription attempt is unauthenticated. Implementations must be free of
// side effects so the check can run on every subscription attempt.
//
//go:generate mockery --name Authorizer
type Authorizer interface {
	Authorize(ctx context.Context, principal *model.Scope, channel string) (Decision, error)
}

// Sink is the broadcast transport capability handlers depend on. Publish
// fans an event out to a channel's authorized subscribers; Notify delivers
// a direct payload to one principal's connections. Both are fire-and-forget
// past the sink: delivery reliability belongs to the transport.
//
//go:generate mockery --name Sink
type Sink interface {
	Publish(ctx context.Context, channel Channel, kind string, payload map[string]any) error
	Notify(ctx context.Context, principalID int64, payload map[string]any) error
}

// PostChecker is the read-only resource-store lookup the authorizer needs
// for Post.<id> channels.
type PostChecker interface {
	IsOwned(ctx context.Context, postID, ownerID int64) (bool, error)
}
