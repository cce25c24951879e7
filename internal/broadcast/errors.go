package broadcast

import "errors"

var (
	// ErrChannelRequired is returned when an authorization request names no channel.
	ErrChannelRequired = errors.New("channel name required")
	// ErrForbidden is returned when a subscription is denied.
	ErrForbidden = errors.New("channel subscription forbidden")
)
