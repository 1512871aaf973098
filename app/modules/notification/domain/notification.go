// Package notificationdomain defines notification kinds, states and the
// messages shown to players.
package notificationdomain

import (
	"fmt"
	"time"
)

// Type identifies what a notification is about.
type Type string

const (
	TypeChallenge      Type = "challenge"
	TypeMatchFull      Type = "match_full"
	TypeMatchCancelled Type = "match_cancelled"
	TypeMatchFinished  Type = "match_finished"
	TypeScoreCorrected Type = "score_corrected"
	TypeWalletToppedUp Type = "wallet_topped_up"
)

// Status is the lifecycle state of a notification.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusRead     Status = "read"
)

// DefaultChallengeTTL is how long an unanswered challenge stays pending.
const DefaultChallengeTTL = 7 * 24 * time.Hour

// SystemSender is the sender id of notifications raised by match events.
const SystemSender = "padelpal"

// IsActionable reports whether the notification expects an accept or decline.
func (t Type) IsActionable() bool {
	return t == TypeChallenge
}

func ChallengeMessage(fromName, venueID, date, startTime string) string {
	return fmt.Sprintf("%s challenged you to a match at %s on %s %s", fromName, venueID, date, startTime)
}

func MatchFullMessage(date, startTime string) string {
	return fmt.Sprintf("Your match on %s at %s is full, see you on court", date, startTime)
}

func MatchCancelledMessage(date, startTime string) string {
	return fmt.Sprintf("The match on %s at %s was cancelled by the host", date, startTime)
}

// MatchFinishedMessage describes a player's rating move after a result.
func MatchFinishedMessage(score string, won bool, levelBefore, levelAfter float64) string {
	outcome := "lost"
	if won {
		outcome = "won"
	}
	return fmt.Sprintf("You %s %s, level %.2f to %.2f", outcome, score, levelBefore, levelAfter)
}

func ScoreCorrectedMessage(score string, levelAfter float64) string {
	return fmt.Sprintf("The score was corrected to %s, your level is now %.2f", score, levelAfter)
}

func WalletToppedUpMessage(amount, balance int64) string {
	return fmt.Sprintf("%d EGP added to your wallet, balance %d EGP", amount, balance)
}
