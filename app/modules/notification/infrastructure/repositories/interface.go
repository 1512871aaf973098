package notificationdb

import (
	"context"
	"time"

	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for notifications.
type Repository interface {
	// CreateMany inserts notifications in one statement, skipping ids that
	// already exist.
	CreateMany(ctx context.Context, db bun.IDB, notifications []Notification) error

	// GetByID retrieves a notification.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Notification, error)

	// ListPending returns the pending notifications addressed to userID, newest first.
	ListPending(ctx context.Context, db bun.IDB, userID string) ([]Notification, error)

	// UpdateStatus sets the status of a notification.
	UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status notificationdomain.Status) error

	// Delete removes a notification.
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// DeletePendingOfTypeBefore removes pending notifications of type t created
	// before cutoff and returns how many were removed.
	DeletePendingOfTypeBefore(ctx context.Context, db bun.IDB, t notificationdomain.Type, cutoff time.Time) (int, error)
}
