package usecase

import (
	"context"
	"strconv"
	"strings"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
)

// Authorize evaluates the demo's channel rules. Unmatched channel names are
// denied; there is no default-allow path.
func (uc *usecase) Authorize(ctx context.Context, principal *model.Scope, channel string) (broadcast.Decision, error) {
	if channel == "" {
		return broadcast.Deny(), broadcast.ErrChannelRequired
	}

	switch {
	case channel == broadcast.AnnouncementsName:
		// Public channel, open to everyone including anonymous subscribers.
		return broadcast.Allow(), nil

	case channel == broadcast.ChatRoomName:
		if principal == nil {
			return broadcast.Deny(), nil
		}
		return broadcast.AllowWithPresence(broadcast.PresenceMember{
			ID:   principal.UserID,
			Name: principal.Name,
		}), nil

	case strings.HasPrefix(channel, "orders."):
		return uc.authorizeOwnID(principal, strings.TrimPrefix(channel, "orders.")), nil

	case strings.HasPrefix(channel, "User."):
		return uc.authorizeOwnID(principal, strings.TrimPrefix(channel, "User.")), nil

	case strings.HasPrefix(channel, "Post."):
		return uc.authorizePost(ctx, principal, strings.TrimPrefix(channel, "Post."))

	default:
		return broadcast.Deny(), nil
	}
}

// authorizeOwnID allows channels parameterized by the principal's own id.
// The id segment is coerced numerically before comparison.
func (uc *usecase) authorizeOwnID(principal *model.Scope, rawID string) broadcast.Decision {
	if principal == nil {
		return broadcast.Deny()
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return broadcast.Deny()
	}
	if principal.UserID != id {
		return broadcast.Deny()
	}
	return broadcast.Allow()
}

// authorizePost allows the Post.<id> channel only for the post's owner.
func (uc *usecase) authorizePost(ctx context.Context, principal *model.Scope, rawID string) (broadcast.Decision, error) {
	if principal == nil {
		return broadcast.Deny(), nil
	}
	postID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return broadcast.Deny(), nil
	}

	owned, err := uc.posts.IsOwned(ctx, postID, principal.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.broadcast.usecase.Authorize.IsOwned: %v", err)
		return broadcast.Deny(), err
	}
	if !owned {
		return broadcast.Deny(), nil
	}
	return broadcast.Allow(), nil
}
