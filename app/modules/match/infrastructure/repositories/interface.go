package matchdb

import (
	"context"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for match persistence.
// Every method accepts a bun.IDB so callers can run it inside a transaction;
// a nil db uses the repository's default connection.
type Repository interface {
	// Create inserts a new match.
	Create(ctx context.Context, db bun.IDB, match *Match) error

	// GetByID retrieves a match without locking it.
	GetByID(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*Match, error)

	// GetForUpdate retrieves a match and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*Match, error)

	// UpdateRoster replaces the player list and status.
	UpdateRoster(ctx context.Context, db bun.IDB, matchID uuid.UUID, players []string, status matchdomain.Status) error

	// UpdateResult writes the score, winners and status.
	UpdateResult(ctx context.Context, db bun.IDB, matchID uuid.UUID, status matchdomain.Status, score string, winners []string) error

	// Delete removes a match.
	Delete(ctx context.Context, db bun.IDB, matchID uuid.UUID) error

	// ListOpen returns open matches dated on or after fromDate, earliest first.
	ListOpen(ctx context.Context, db bun.IDB, fromDate string, limit int) ([]Match, error)

	// ListByPlayer returns every match whose roster contains userID, latest first.
	ListByPlayer(ctx context.Context, db bun.IDB, userID string) ([]Match, error)

	// BookedSlots returns the start times already taken at a venue on a date.
	BookedSlots(ctx context.Context, db bun.IDB, venueID, date string) ([]string, error)

	// CreateMessage inserts a chat message.
	CreateMessage(ctx context.Context, db bun.IDB, msg *Message) error

	// ListMessages returns the chat of a match, oldest first.
	ListMessages(ctx context.Context, db bun.IDB, matchID uuid.UUID, limit int) ([]Message, error)
}
