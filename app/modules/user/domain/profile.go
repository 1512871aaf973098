// Package userdomain holds the profile defaults and display rules.
package userdomain

import (
	"math"
	"strings"
)

const (
	// DefaultLevel is the level of a new player.
	DefaultLevel = 1.0
	// DefaultBalance is the wallet credit a new profile starts with, in EGP.
	DefaultBalance int64 = 2000
	// UnknownDisplayName is shown when a profile has neither a name nor an email.
	UnknownDisplayName = "Unknown"
	// LeaderboardSize caps the leaderboard.
	LeaderboardSize = 20
)

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// Profile is a freshly created player profile.
type Profile struct {
	UID           string
	Email         *string
	DisplayName   *string
	Level         float64
	Wins          int
	MatchesPlayed int
	Balance       int64
}

// NewProfile applies the starting values to a new profile. It is the only
// place defaults are filled in.
func NewProfile(id Identity) Profile {
	return Profile{
		UID:           id.UID,
		Email:         optional(id.Email),
		DisplayName:   optional(id.DisplayName),
		Level:         DefaultLevel,
		Wins:          0,
		MatchesPlayed: 0,
		Balance:       DefaultBalance,
	}
}

// DisplayName returns the name to show for a profile: the display name, else
// the local part of the email, else UnknownDisplayName.
func DisplayName(displayName, email *string) string {
	if displayName != nil && strings.TrimSpace(*displayName) != "" {
		return strings.TrimSpace(*displayName)
	}
	if email != nil {
		local, _, _ := strings.Cut(*email, "@")
		if local = strings.TrimSpace(local); local != "" {
			return local
		}
	}
	return UnknownDisplayName
}

// WinRate is the rounded percentage of matches won, 0 before the first match.
func WinRate(wins, matchesPlayed int) int {
	if matchesPlayed <= 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(matchesPlayed) * 100))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
