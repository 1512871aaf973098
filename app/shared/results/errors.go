package results

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindFull                Kind = "full"
	KindAlreadyMember       Kind = "already_member"
	KindTransactionConflict Kind = "transaction_conflict"
	KindValidation          Kind = "validation_error"
	KindInvalidState        Kind = "invalid_state"
	KindForbidden           Kind = "forbidden"
	KindConflict            Kind = "conflict"
)

// Sentinels for errors.Is checks against a DomainError's kind.
var (
	ErrNotFound            = &DomainError{Kind: KindNotFound}
	ErrFull                = &DomainError{Kind: KindFull}
	ErrAlreadyMember       = &DomainError{Kind: KindAlreadyMember}
	ErrTransactionConflict = &DomainError{Kind: KindTransactionConflict}
	ErrValidation          = &DomainError{Kind: KindValidation}
	ErrInvalidState        = &DomainError{Kind: KindInvalidState}
	ErrForbidden           = &DomainError{Kind: KindForbidden}
	ErrConflict            = &DomainError{Kind: KindConflict}
)

// DomainError is a business failure with a message fit for display.
type DomainError struct {
	Kind    Kind
	Message string
}

// NewError builds a DomainError with a formatted message.
func NewError(kind Kind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches any DomainError of the same kind, so callers can compare against
// the package sentinels.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first DomainError in err's chain, or "" when
// err carries none.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
