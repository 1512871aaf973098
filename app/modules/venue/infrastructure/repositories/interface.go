package venuedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for venues.
type Repository interface {
	// Create inserts a venue. ErrDuplicate when the id is taken.
	Create(ctx context.Context, db bun.IDB, venue *Venue) error

	// GetByID retrieves a venue by slug.
	GetByID(ctx context.Context, db bun.IDB, venueID string) (*Venue, error)

	// List returns every venue ordered by name.
	List(ctx context.Context, db bun.IDB) ([]Venue, error)
}
