package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a player profile. Numeric columns are NOT NULL and receive their
// defaults when the profile is created.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	UID           string    `bun:"uid,pk" json:"uid"`
	Email         *string   `bun:"email" json:"email"`
	DisplayName   *string   `bun:"display_name" json:"display_name,omitempty"`
	PhotoURL      *string   `bun:"photo_url" json:"photo_url,omitempty"`
	Level         float64   `bun:"level,notnull" json:"level"`
	Wins          int       `bun:"wins,notnull" json:"wins"`
	MatchesPlayed int       `bun:"matches_played,notnull" json:"matches_played"`
	Balance       int64     `bun:"balance,notnull" json:"balance"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// StandingUpdate is the set of rating columns written by the score ledger.
type StandingUpdate struct {
	Level         float64
	Wins          int
	MatchesPlayed int
}

// ProfileUpdate holds the user-editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}
