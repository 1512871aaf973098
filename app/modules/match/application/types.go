package matchservice

import (
	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
)

// OpenMatchesPageSize caps the open match directory.
const OpenMatchesPageSize = 20

// MessagesPageSize caps how many chat messages are returned.
const MessagesPageSize = 200

// DefaultCourtName is used when a booking does not name a court.
const DefaultCourtName = "Court 1"

// CreateMatchInput describes a new booking.
type CreateMatchInput struct {
	VenueID   string           `json:"venue_id"`
	CourtName string           `json:"court_name,omitempty"`
	Date      string           `json:"date"`
	StartTime string           `json:"start_time"`
	Type      matchdomain.Type `json:"type"`
	Level     float64          `json:"level"`
}

// ChallengeMatchInput is the slot proposed by a challenge invite.
type ChallengeMatchInput struct {
	VenueID   string `json:"venue_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// PlayerChange records how the ledger moved one player's standing.
type PlayerChange struct {
	UserID      string  `json:"user_id"`
	Winner      bool    `json:"winner"`
	LevelBefore float64 `json:"level_before"`
	LevelAfter  float64 `json:"level_after"`
	WinsBefore  int     `json:"wins_before"`
	WinsAfter   int     `json:"wins_after"`
}

// LedgerResult is returned by score submission and correction.
type LedgerResult struct {
	Match   *matchdb.Match `json:"match"`
	Changes []PlayerChange `json:"changes"`
	// Skipped lists players whose profile did not exist.
	Skipped []string `json:"skipped,omitempty"`
}

// Sender identifies the author of a chat message.
type Sender struct {
	UserID      string
	DisplayName string
	Email       string
}
