package matchdb

import (
	"slices"
	"time"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Match is a booked court session. Players and winners are stored as jsonb
// arrays of user ids.
type Match struct {
	bun.BaseModel  `bun:"table:matches,alias:m"`
	ID             uuid.UUID          `bun:"id,pk,type:uuid" json:"id"`
	VenueID        string             `bun:"venue_id,notnull" json:"venue_id"`
	CourtName      string             `bun:"court_name,notnull" json:"court_name"`
	Date           string             `bun:"date,notnull" json:"date"`
	StartTime      string             `bun:"start_time,notnull" json:"start_time"`
	Type           matchdomain.Type   `bun:"type,notnull" json:"type"`
	HostID         string             `bun:"host_id,notnull" json:"host_id"`
	Players        []string           `bun:"players,type:jsonb,notnull" json:"players"`
	Level          float64            `bun:"level,notnull" json:"level"`
	PricePerPlayer float64            `bun:"price_per_player,notnull" json:"price_per_player"`
	Status         matchdomain.Status `bun:"status,notnull" json:"status"`
	Score          *string            `bun:"score" json:"score,omitempty"`
	Winners        []string           `bun:"winners,type:jsonb" json:"winners,omitempty"`
	CreatedAt      time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// IsHost reports whether userID created the match.
func (m *Match) IsHost(userID string) bool {
	return m.HostID == userID
}

// HasPlayer reports whether userID is on the roster.
func (m *Match) HasPlayer(userID string) bool {
	return userID != "" && slices.Contains(m.Players, userID)
}

// Message is a chat line posted to a match by one of its players.
type Message struct {
	bun.BaseModel `bun:"table:match_messages,alias:mm"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	MatchID       uuid.UUID `bun:"match_id,type:uuid,notnull" json:"match_id"`
	SenderID      string    `bun:"sender_id,notnull" json:"sender_id"`
	SenderName    string    `bun:"sender_name,notnull" json:"sender_name"`
	Text          string    `bun:"text,notnull" json:"text"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
