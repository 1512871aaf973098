package notificationdb

import (
	"time"

	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Notification is a message addressed to one player. Challenges carry the
// proposed slot.
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n"`
	ID            uuid.UUID                 `bun:"id,pk,type:uuid" json:"id"`
	Type          notificationdomain.Type   `bun:"type,notnull" json:"type"`
	FromUserID    string                    `bun:"from_user_id,notnull" json:"from_user_id"`
	FromName      string                    `bun:"from_name,notnull" json:"from_name"`
	ToUserID      string                    `bun:"to_user_id,notnull" json:"to_user_id"`
	MatchID       *uuid.UUID                `bun:"match_id,type:uuid" json:"match_id,omitempty"`
	Message       string                    `bun:"message,notnull" json:"message"`
	Status        notificationdomain.Status `bun:"status,notnull" json:"status"`
	VenueID       *string                   `bun:"venue_id" json:"venue_id,omitempty"`
	Date          *string                   `bun:"date" json:"date,omitempty"`
	StartTime     *string                   `bun:"start_time" json:"start_time,omitempty"`
	CreatedAt     time.Time                 `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
