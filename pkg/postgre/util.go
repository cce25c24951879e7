package postgre

import (
	"database/sql"
	"errors"

	"github.com/aarondl/strmangle"
)

// IsNoRows reports whether err means an empty result set.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNoRows)
}

// Placeholders returns a PostgreSQL placeholder group ($1,$2,...) for count
// arguments starting at start. Used when building IN clauses by hand.
func Placeholders(count, start int) string {
	return strmangle.Placeholders(true, count, start, 1)
}

// ArgsFor converts ids to a driver argument slice.
func ArgsFor(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
