package postgre

import "errors"

var (
	// ErrNoRows is the package-level alias for an empty result.
	ErrNoRows = errors.New("no rows in result set")
)
