package matchdomain

// Status is the lifecycle state of a match.
type Status string

const (
	StatusOpen     Status = "open"
	StatusFull     Status = "full"
	StatusFinished Status = "finished"
	// StatusCancelled is never stored: cancelling deletes the match. It exists
	// so transitions into the terminal state can be checked like any other.
	StatusCancelled Status = "cancelled"
)

// Type tells whether a match accepts players from the open directory.
type Type string

const (
	TypePrivate Type = "private"
	TypeOpen    Type = "open"
)

// Valid reports whether t is a known match type.
func (t Type) Valid() bool {
	return t == TypePrivate || t == TypeOpen
}

// IsFinished reports whether the match has a recorded result.
func (s Status) IsFinished() bool {
	return s == StatusFinished
}

var transitions = map[Status]map[Status]bool{
	StatusOpen: {
		StatusOpen:      true,
		StatusFull:      true,
		StatusFinished:  true,
		StatusCancelled: true,
	},
	StatusFull: {
		StatusOpen:      true,
		StatusFinished:  true,
		StatusCancelled: true,
	},
	StatusFinished: {
		StatusFinished: true,
	},
}

// CanTransition reports whether a match in state from may move to state to.
// Finished is final except for corrections, which re-enter finished.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}
