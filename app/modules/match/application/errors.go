package matchservice

import (
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/google/uuid"
)

func errMatchNotFound(matchID uuid.UUID) *results.DomainError {
	return results.NewError(results.KindNotFound, "Match %s was not found", matchID)
}

func errMatchFull() *results.DomainError {
	return results.NewError(results.KindFull, "This match is already full")
}

func errAlreadyMember() *results.DomainError {
	return results.NewError(results.KindAlreadyMember, "You have already joined this match")
}

func errMatchFinished(action string) *results.DomainError {
	return results.NewError(results.KindInvalidState, "This match is finished, you can no longer %s", action)
}

func errMatchNotFinished() *results.DomainError {
	return results.NewError(results.KindInvalidState, "Only a finished match can have its score corrected")
}

func errNotHost() *results.DomainError {
	return results.NewError(results.KindForbidden, "Only the host can cancel this match")
}

func errNotPlayer(action string) *results.DomainError {
	return results.NewError(results.KindForbidden, "Only players of this match can %s", action)
}

func errHostCannotLeave() *results.DomainError {
	return results.NewError(results.KindInvalidState, "The host cannot leave, cancel the match instead")
}

func errValidation(format string, args ...any) *results.DomainError {
	return results.NewError(results.KindValidation, format, args...)
}

func errSlotTaken(startTime string) *results.DomainError {
	return results.NewError(results.KindConflict, "The %s slot is already booked", startTime)
}
