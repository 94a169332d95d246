package tournament

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"insufficient entrants", NewInsufficientEntrantsError("evt", 1), IsInsufficientEntrants},
		{"match not found", NewMatchNotFoundError("evt", "match-r1-1"), IsMatchNotFound},
		{"unresolved opponent", NewUnresolvedOpponentError("evt", "match-r2-1"), IsUnresolvedOpponent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Error("predicate did not match its own error")
			}
			wrapped := fmt.Errorf("recording result: %w", tt.err)
			if !tt.pred(wrapped) {
				t.Error("predicate did not match the wrapped error")
			}
			if tt.pred(errors.New("unrelated")) {
				t.Error("predicate matched an unrelated error")
			}
		})
	}
}

func TestErrorPredicates_DisjointCodes(t *testing.T) {
	err := NewMatchNotFoundError("evt", "match-r1-1")
	if IsInsufficientEntrants(err) || IsUnresolvedOpponent(err) {
		t.Error("predicates must distinguish error codes")
	}
}

func TestError_MessageIncludesContext(t *testing.T) {
	err := NewMatchNotFoundError("basketball", "match-r1-3")
	msg := err.Error()
	for _, want := range []string{"MATCH_NOT_FOUND", "basketball", "match-r1-3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	eventOnly := NewInsufficientEntrantsError("chess", 0).Error()
	if !strings.Contains(eventOnly, "chess") || strings.Contains(eventOnly, "match=") {
		t.Errorf("Error() = %q", eventOnly)
	}
}
