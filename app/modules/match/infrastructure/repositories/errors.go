package matchdb

import "errors"

var (
	// ErrNotFound indicates the requested match does not exist.
	ErrNotFound = errors.New("match not found")

	// ErrNoRowsAffected indicates an UPDATE/DELETE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
