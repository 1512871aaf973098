// Package matchevents defines the topics and payloads published after match
// lifecycle changes.
package matchevents

import "time"

const (
	MatchCreatedV1        = "padelpal.match.created.v1"
	MatchJoinedV1         = "padelpal.match.joined.v1"
	MatchLeftV1           = "padelpal.match.left.v1"
	MatchFullV1           = "padelpal.match.full.v1"
	MatchCancelledV1      = "padelpal.match.cancelled.v1"
	MatchFinishedV1       = "padelpal.match.finished.v1"
	MatchScoreCorrectedV1 = "padelpal.match.score.corrected.v1"
	MatchMessagePostedV1  = "padelpal.match.message.posted.v1"
)

// MatchCreatedPayloadV1 is published when a host books a new match.
type MatchCreatedPayloadV1 struct {
	MatchID   string    `json:"match_id"`
	HostID    string    `json:"host_id"`
	VenueID   string    `json:"venue_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	Type      string    `json:"type"`
	Level     float64   `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// RosterChangedPayloadV1 is published on join and leave.
type RosterChangedPayloadV1 struct {
	MatchID string   `json:"match_id"`
	UserID  string   `json:"user_id"`
	Players []string `json:"players"`
	Status  string   `json:"status"`
}

// MatchFullPayloadV1 is published when the fourth player joins.
type MatchFullPayloadV1 struct {
	MatchID   string   `json:"match_id"`
	VenueID   string   `json:"venue_id"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	Players   []string `json:"players"`
}

// MatchCancelledPayloadV1 is published when the host cancels.
type MatchCancelledPayloadV1 struct {
	MatchID   string   `json:"match_id"`
	HostID    string   `json:"host_id"`
	VenueID   string   `json:"venue_id"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	Players   []string `json:"players"`
}

// PlayerRatingV1 is one participant's standing after a result was applied.
type PlayerRatingV1 struct {
	UserID      string  `json:"user_id"`
	Winner      bool    `json:"winner"`
	LevelBefore float64 `json:"level_before"`
	LevelAfter  float64 `json:"level_after"`
}

// MatchResultPayloadV1 is shared by the finished and score corrected topics.
type MatchResultPayloadV1 struct {
	MatchID string           `json:"match_id"`
	Score   string           `json:"score"`
	Winners []string         `json:"winners"`
	Players []string         `json:"players"`
	Ratings []PlayerRatingV1 `json:"ratings"`
	Skipped []string         `json:"skipped,omitempty"`
}

// MessagePostedPayloadV1 is published when a player writes in the match chat.
type MessagePostedPayloadV1 struct {
	MatchID    string    `json:"match_id"`
	MessageID  string    `json:"message_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
