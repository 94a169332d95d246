package tournament

import (
	"fmt"
	"time"
)

// Entrant is a team registered for an event. Entrants are immutable once a
// bracket has been built from them.
type Entrant struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Status is the lifecycle state of a match.
//
// Transitions: scheduled → in_progress → completed;
// scheduled|in_progress → cancelled. An admin correction may reopen
// completed → in_progress, which reverts any propagated winners downstream.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is one of the four known match statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Match is a single pairing in the bracket. Round is 1-based and increases
// toward the final. Winner is set only when Status is completed, and is
// always a concrete entrant, never a placeholder.
type Match struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	Round         int       `json:"round"`
	IndexInRound  int       `json:"index_in_round"`
	SlotA         MatchSlot `json:"slot_a"`
	SlotB         MatchSlot `json:"slot_b"`
	ScoreA        int       `json:"score_a"`
	ScoreB        int       `json:"score_b"`
	Status        Status    `json:"status"`
	Winner        *Entrant  `json:"winner,omitempty"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Venue         string    `json:"venue"`
}

// MatchID returns the deterministic identifier for the match at the given
// 1-based round and index. The format matches the historical bracket rows
// ("match-r1-1"), which keeps regenerated brackets structurally comparable.
func MatchID(round, indexInRound int) string {
	return fmt.Sprintf("match-r%d-%d", round, indexInRound)
}

// Bracket is the full single-elimination structure for one event: an ordered
// list of rounds, each an ordered list of matches. The last round contains
// exactly one match, the final.
//
// Invariant: with a padded entrant count of 2^k, the bracket has k rounds and
// 2^k - 1 matches in total.
type Bracket struct {
	EventID      string    `json:"event_id"`
	EntrantCount int       `json:"entrant_count"`
	Rounds       [][]Match `json:"rounds"`
}

// NumRounds returns the number of rounds in the bracket.
func (b *Bracket) NumRounds() int {
	return len(b.Rounds)
}

// TotalMatches returns the total match count across all rounds.
func (b *Bracket) TotalMatches() int {
	n := 0
	for _, round := range b.Rounds {
		n += len(round)
	}
	return n
}

// FindMatch returns a pointer to the match with the given ID, or nil if no
// such match exists. The pointer aliases the bracket's backing storage, so
// mutations through it are visible in the bracket.
func (b *Bracket) FindMatch(matchID string) *Match {
	for r := range b.Rounds {
		for i := range b.Rounds[r] {
			if b.Rounds[r][i].ID == matchID {
				return &b.Rounds[r][i]
			}
		}
	}
	return nil
}

// Final returns a pointer to the final match, or nil for an empty bracket.
func (b *Bracket) Final() *Match {
	if len(b.Rounds) == 0 {
		return nil
	}
	last := b.Rounds[len(b.Rounds)-1]
	if len(last) != 1 {
		return nil
	}
	return &last[0]
}

// ScheduleEntry is the flattened, time-stamped projection of a single match,
// used for display and calendar export. Entries carry no independent truth:
// the full schedule is regenerable from the bracket alone.
type ScheduleEntry struct {
	MatchID      string    `json:"match_id"`
	EventID      string    `json:"event_id"`
	Round        int       `json:"round"`
	IndexInRound int       `json:"index_in_round"`
	Label        string    `json:"label"`
	SlotA        MatchSlot `json:"slot_a"`
	SlotB        MatchSlot `json:"slot_b"`
	Start        time.Time `json:"start"`
	Venue        string    `json:"venue"`
	Status       Status    `json:"status"`
}

// TournamentState is the unit of persistence and atomic replacement: the
// current bracket plus its schedule projection, keyed by event. Revision
// changes on every save so readers can tell regenerations apart.
type TournamentState struct {
	EventID  string          `json:"event_id"`
	Revision string          `json:"revision"`
	Bracket  Bracket         `json:"bracket"`
	Schedule []ScheduleEntry `json:"schedule"`
}
