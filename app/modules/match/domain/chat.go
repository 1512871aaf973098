package matchdomain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the longest chat message accepted, in characters.
const MaxMessageLength = 1000

var (
	// ErrEmptyMessage is returned for a message with no visible text.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMessageTooLong is returned when a message exceeds MaxMessageLength.
	ErrMessageTooLong = errors.New("message is too long")
)

// NormalizeMessage trims surrounding whitespace and checks the length.
func NormalizeMessage(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return text, nil
}
