// Package httpx writes the JSON envelope shared by every HTTP handler.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/AhmedMHR/PadelPal/app/shared/results"
)

const maxBodyBytes = 1 << 20

// Response is the body of every API reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes resp with the given status code.
func WriteJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a successful reply.
func OK(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// Fail writes a failed reply. Domain errors keep their message; anything else
// is reported as an internal error without leaking details.
func Fail(w http.ResponseWriter, err error) {
	var de *results.DomainError
	if errors.As(err, &de) {
		WriteJSON(w, StatusForKind(de.Kind), Response{Success: false, Message: de.Error()})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, Response{Success: false, Message: "Something went wrong, please try again"})
}

// BadRequest writes a 400 reply with message.
func BadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, Response{Success: false, Message: message})
}

// StatusForKind maps a failure kind to its HTTP status code.
func StatusForKind(kind results.Kind) int {
	switch kind {
	case results.KindNotFound:
		return http.StatusNotFound
	case results.KindValidation:
		return http.StatusBadRequest
	case results.KindForbidden:
		return http.StatusForbidden
	case results.KindFull, results.KindAlreadyMember, results.KindConflict,
		results.KindInvalidState, results.KindTransactionConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a bounded request body into out, rejecting unknown fields.
func DecodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
