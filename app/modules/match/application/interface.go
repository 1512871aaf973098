package matchservice

import (
	"context"

	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	"github.com/google/uuid"
)

// Service is the match use-case surface consumed by HTTP handlers and other
// modules. Domain failures are returned as *results.DomainError.
type Service interface {
	// CreateMatch books a slot and opens a match hosted by hostID.
	CreateMatch(ctx context.Context, hostID string, input CreateMatchInput) (*matchdb.Match, error)

	// CreateChallengeMatch creates a private match between two players.
	CreateChallengeMatch(ctx context.Context, fromUserID, toUserID string, input ChallengeMatchInput) (*matchdb.Match, error)

	// GetMatch returns a single match.
	GetMatch(ctx context.Context, matchID uuid.UUID) (*matchdb.Match, error)

	// JoinMatch adds userID to the roster.
	JoinMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error)

	// LeaveMatch removes userID from the roster and reopens the match.
	LeaveMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error)

	// CancelMatch deletes a match on behalf of its host.
	CancelMatch(ctx context.Context, matchID uuid.UUID, userID string) (*matchdb.Match, error)

	// SubmitScore finalizes a match on behalf of userID, one of its players,
	// and applies rating changes to every player.
	SubmitScore(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*LedgerResult, error)

	// CorrectScore replaces the result of a finished match on behalf of
	// userID, one of its players, and recomputes ratings.
	CorrectScore(ctx context.Context, matchID uuid.UUID, userID, score string, winnerIDs []string) (*LedgerResult, error)

	// ListOpenMatches returns the open directory from today onwards.
	ListOpenMatches(ctx context.Context) ([]matchdb.Match, error)

	// PostMessage adds a chat message from one of the match's players.
	PostMessage(ctx context.Context, matchID uuid.UUID, sender Sender, text string) (*matchdb.Message, error)

	// ListMessages returns the match chat, oldest first, to one of its players.
	ListMessages(ctx context.Context, matchID uuid.UUID, userID string) ([]matchdb.Message, error)

	// ListUserMatches returns every match userID played in, latest first.
	ListUserMatches(ctx context.Context, userID string) ([]matchdb.Match, error)
}
