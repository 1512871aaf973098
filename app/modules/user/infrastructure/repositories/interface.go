package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for user profiles.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist (Get* methods, IncrementBalance)
//   - ErrNoRowsAffected: UPDATE matched no rows
//   - other errors: infrastructure failures
type Repository interface {
	// GetByUID retrieves a profile.
	GetByUID(ctx context.Context, db bun.IDB, uid string) (*User, error)

	// GetManyForUpdate locks and returns the existing profiles among uids,
	// ordered by uid. Unknown uids are omitted.
	GetManyForUpdate(ctx context.Context, db bun.IDB, uids []string) ([]User, error)

	// CreateIfAbsent inserts the profile unless one already exists and
	// reports whether a row was created.
	CreateIfAbsent(ctx context.Context, db bun.IDB, user *User) (bool, error)

	// UpdateStanding writes level, wins and matches played.
	UpdateStanding(ctx context.Context, db bun.IDB, uid string, standing StandingUpdate) error

	// UpdateProfile writes the non-nil editable fields.
	UpdateProfile(ctx context.Context, db bun.IDB, uid string, update ProfileUpdate) error

	// IncrementBalance atomically adds amount and returns the new balance.
	IncrementBalance(ctx context.Context, db bun.IDB, uid string, amount int64) (int64, error)

	// TopByLevel returns the highest rated profiles.
	TopByLevel(ctx context.Context, db bun.IDB, limit int) ([]User, error)
}
