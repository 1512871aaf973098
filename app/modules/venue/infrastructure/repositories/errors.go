package venuedb

import "errors"

var (
	// ErrNotFound is returned when a venue does not exist.
	ErrNotFound = errors.New("venue not found")
	// ErrDuplicate is returned when a venue with the same id already exists.
	ErrDuplicate = errors.New("venue already exists")
)
