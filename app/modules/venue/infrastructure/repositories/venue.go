package venuedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AhmedMHR/PadelPal/app/shared/pgerr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new venue repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a venue.
func (r *Impl) Create(ctx context.Context, db bun.IDB, venue *Venue) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(venue).Exec(ctx); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("venuedb.Create: %w", err)
	}
	return nil
}

// GetByID retrieves a venue by slug.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, venueID string) (*Venue, error) {
	db = r.resolveDB(db)
	venue := new(Venue)
	err := db.NewSelect().
		Model(venue).
		Where("v.id = ?", venueID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("venuedb.GetByID: %w", err)
	}
	return venue, nil
}

// List returns every venue ordered by name.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Venue, error) {
	db = r.resolveDB(db)
	var venues []Venue
	if err := db.NewSelect().Model(&venues).Order("v.name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("venuedb.List: %w", err)
	}
	return venues, nil
}
