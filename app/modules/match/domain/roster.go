package matchdomain

import (
	"errors"
	"slices"
)

// MaxPlayers is the roster capacity of a padel match.
const MaxPlayers = 4

var (
	// ErrRosterFull is returned when joining a match that already has MaxPlayers.
	ErrRosterFull = errors.New("roster is full")
	// ErrAlreadyMember is returned when the user is already on the roster.
	ErrAlreadyMember = errors.New("already a member of this match")
)

// Join returns the roster with userID appended and the status the match takes
// afterwards. The input slice is not modified.
func Join(players []string, userID string) ([]string, Status, error) {
	if len(players) >= MaxPlayers {
		return nil, "", ErrRosterFull
	}
	if slices.Contains(players, userID) {
		return nil, "", ErrAlreadyMember
	}
	next := append(slices.Clone(players), userID)
	return next, StatusForRoster(next), nil
}

// Leave returns the roster without userID. Removing an absent user is a no-op.
// Leaving always reopens the match.
func Leave(players []string, userID string) ([]string, Status) {
	next := slices.DeleteFunc(slices.Clone(players), func(p string) bool { return p == userID })
	return next, StatusOpen
}

// StatusForRoster is full at capacity and open otherwise.
func StatusForRoster(players []string) Status {
	if len(players) >= MaxPlayers {
		return StatusFull
	}
	return StatusOpen
}

// NormalizeWinners drops duplicates while keeping the first occurrence order.
func NormalizeWinners(winners []string) []string {
	out := make([]string, 0, len(winners))
	for _, w := range winners {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}

// MissingFromRoster returns the winners that are not players.
func MissingFromRoster(players, winners []string) []string {
	var missing []string
	for _, w := range winners {
		if !slices.Contains(players, w) {
			missing = append(missing, w)
		}
	}
	return missing
}
