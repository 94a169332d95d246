package tournament

import (
	"errors"
	"fmt"
)

// Error represents a domain failure from the bracket engine.
//
// Domain errors include:
//   - Insufficient entrants: fewer than two teams registered for the event
//   - Match not found: a result referenced a match ID absent from the bracket
//   - Unresolved opponent: completion requested while a slot is still a
//     forward reference
//
// Error includes structured fields for diagnostics. Storage corruption is
// deliberately NOT part of this taxonomy: the store treats it as absence so
// the caller can fall back to regeneration.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// EventID identifies the affected event.
	EventID string

	// MatchID identifies the affected match (for match-scoped errors).
	MatchID string
}

// ErrorCode categorizes domain errors.
type ErrorCode string

const (
	// ErrCodeInsufficientEntrants indicates fewer than two entrants. Not
	// retryable; no bracket is produced.
	ErrCodeInsufficientEntrants ErrorCode = "INSUFFICIENT_ENTRANTS"

	// ErrCodeMatchNotFound indicates a result referenced an unknown match.
	ErrCodeMatchNotFound ErrorCode = "MATCH_NOT_FOUND"

	// ErrCodeUnresolvedOpponent indicates an attempt to complete a match
	// whose opponent is still a forward reference.
	ErrCodeUnresolvedOpponent ErrorCode = "UNRESOLVED_OPPONENT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.MatchID != "" {
		return fmt.Sprintf("%s: %s (event=%s, match=%s)", e.Code, e.Message, e.EventID, e.MatchID)
	}
	if e.EventID != "" {
		return fmt.Sprintf("%s: %s (event=%s)", e.Code, e.Message, e.EventID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInsufficientEntrantsError creates an Error for an event with too few
// entrants to pair.
func NewInsufficientEntrantsError(eventID string, count int) *Error {
	return &Error{
		Code:    ErrCodeInsufficientEntrants,
		Message: fmt.Sprintf("need at least 2 entrants to build a bracket, have %d", count),
		EventID: eventID,
	}
}

// NewMatchNotFoundError creates an Error for an unknown match ID.
func NewMatchNotFoundError(eventID, matchID string) *Error {
	return &Error{
		Code:    ErrCodeMatchNotFound,
		Message: "no such match in bracket",
		EventID: eventID,
		MatchID: matchID,
	}
}

// NewUnresolvedOpponentError creates an Error for completing a match whose
// slot is still a placeholder.
func NewUnresolvedOpponentError(eventID, matchID string) *Error {
	return &Error{
		Code:    ErrCodeUnresolvedOpponent,
		Message: "cannot complete a match while an opponent is still undetermined",
		EventID: eventID,
		MatchID: matchID,
	}
}

// IsInsufficientEntrants returns true if the error is an insufficient
// entrants error. Uses errors.As to handle wrapped errors.
func IsInsufficientEntrants(err error) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == ErrCodeInsufficientEntrants
	}
	return false
}

// IsMatchNotFound returns true if the error is a match-not-found error.
// Uses errors.As to handle wrapped errors.
func IsMatchNotFound(err error) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == ErrCodeMatchNotFound
	}
	return false
}

// IsUnresolvedOpponent returns true if the error is an unresolved-opponent
// error. Uses errors.As to handle wrapped errors.
func IsUnresolvedOpponent(err error) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == ErrCodeUnresolvedOpponent
	}
	return false
}
