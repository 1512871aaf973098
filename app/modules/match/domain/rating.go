package matchdomain

import "math"

const (
	// WinLevelDelta is added to a winner's level.
	WinLevelDelta = 0.10
	// LossLevelDelta is added to a loser's level.
	LossLevelDelta = -0.05
	// LevelFloor is the lowest level a player can hold.
	LevelFloor = 1.0
)

// Delta is the change a match outcome applies to a player's standing.
type Delta struct {
	Level float64
	Wins  int
}

// Standing is the part of a profile the rating model reads and writes.
type Standing struct {
	Level float64
	Wins  int
}

// ComputeDelta returns the rating change for a single finished match.
func ComputeDelta(isWinner bool) Delta {
	if isWinner {
		return Delta{Level: WinLevelDelta, Wins: 1}
	}
	return Delta{Level: LossLevelDelta, Wins: 0}
}

// Reverse returns the delta that undoes d.
func (d Delta) Reverse() Delta {
	return Delta{Level: -d.Level, Wins: -d.Wins}
}

// Add sums two deltas.
func (d Delta) Add(o Delta) Delta {
	return Delta{Level: d.Level + o.Level, Wins: d.Wins + o.Wins}
}

// CorrectionDelta undoes the contribution of the old outcome and applies the
// new one as a single combined delta.
func CorrectionDelta(wasWinner, isWinner bool) Delta {
	return ComputeDelta(wasWinner).Reverse().Add(ComputeDelta(isWinner))
}

// Apply adds d to s. The level is clamped at LevelFloor and rounded to two
// decimals; wins are not clamped.
func Apply(s Standing, d Delta) Standing {
	return Standing{
		Level: RoundLevel(math.Max(LevelFloor, s.Level+d.Level)),
		Wins:  s.Wins + d.Wins,
	}
}

// RoundLevel rounds v to two decimals, halves rounding up.
func RoundLevel(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
