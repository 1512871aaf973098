package notificationservice

import (
	"context"
	"time"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	userdomain "github.com/AhmedMHR/PadelPal/app/modules/user/domain"
	"github.com/google/uuid"
)

// Service manages challenges and the per-player notification inbox.
type Service interface {
	SendChallenge(ctx context.Context, from userdomain.Identity, input ChallengeInput) (*notificationdb.Notification, error)
	ListPending(ctx context.Context, userID string) ([]notificationdb.Notification, error)
	Respond(ctx context.Context, userID string, notificationID uuid.UUID, accept bool) (*RespondResult, error)
	MarkRead(ctx context.Context, userID string, notificationID uuid.UUID) (*notificationdb.Notification, error)
	Notify(ctx context.Context, batch Batch) (int, error)
	ExpireStaleChallenges(ctx context.Context, ttl time.Duration) (int, error)
}

// MatchBooker creates the match agreed through a challenge.
type MatchBooker interface {
	CreateChallengeMatch(ctx context.Context, fromUserID, toUserID string, input matchservice.ChallengeMatchInput) (*matchdb.Match, error)
}

// ChallengeInput names the opponent and the proposed slot.
type ChallengeInput struct {
	ToUserID  string `json:"to_user_id"`
	VenueID   string `json:"venue_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// RespondResult reports the outcome of answering a challenge.
type RespondResult struct {
	Accepted bool       `json:"accepted"`
	MatchID  *uuid.UUID `json:"match_id,omitempty"`
}

// Message is one notification of a Batch.
type Message struct {
	ToUserID string
	Text     string
}

// Batch is a set of system notifications raised by one event. When DedupKey
// is set the notification ids are derived from it, so a redelivered event
// stores nothing new.
type Batch struct {
	Type     notificationdomain.Type
	MatchID  *uuid.UUID
	DedupKey string
	Messages []Message
}
