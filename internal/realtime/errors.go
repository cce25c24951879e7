package realtime

import "errors"

var (
	// ErrInvalidCommand is returned for malformed client commands.
	ErrInvalidCommand = errors.New("invalid command")
)
