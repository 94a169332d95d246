package engine

import (
	"log/slog"
	"time"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// Result is an admin's update to a single match.
type Result struct {
	ScoreA int
	ScoreB int
	Status tournament.Status

	// ScheduledTime, when non-nil, overrides the planner's slot for this
	// match. The override survives later result updates but not a reset.
	ScheduledTime *time.Time
}

// applyResult mutates the match identified by matchID inside state's bracket
// and maintains bracket consistency.
//
// On completion the winner is the entrant with the strictly higher score; a
// match against a bye advances the lone entrant regardless of scores. Equal
// scores assign no winner and the status reverts to in_progress, because an
// arbitrary pick would corrupt downstream propagation irreversibly.
//
// A determined winner is propagated exactly one hop: every forward reference
// to this match in the next round resolves to the winner. Reopening a
// completed match reverts those references to forward-reference form, and the
// reversal cascades through any later rounds that had already consumed the
// stale winner.
//
// The schedule projection is NOT touched here; the caller regenerates it from
// the bracket after any mutation.
func applyResult(state *tournament.TournamentState, matchID string, res Result) error {
	m := state.Bracket.FindMatch(matchID)
	if m == nil {
		return tournament.NewMatchNotFoundError(state.EventID, matchID)
	}

	if res.Status == tournament.StatusCompleted {
		if m.SlotA.IsForward() || m.SlotB.IsForward() {
			return tournament.NewUnresolvedOpponentError(state.EventID, matchID)
		}
	}

	m.ScoreA = res.ScoreA
	m.ScoreB = res.ScoreB
	if res.ScheduledTime != nil {
		m.ScheduledTime = *res.ScheduledTime
	}

	prevWinner := m.Winner
	m.Status = res.Status

	if res.Status == tournament.StatusCompleted {
		w := decideWinner(m)
		if w == nil {
			// Tie: reject the completion rather than pick a side.
			m.Status = tournament.StatusInProgress
			m.Winner = nil
			slog.Warn("tie score rejected, match reverted to in_progress",
				"event_id", state.EventID,
				"match_id", matchID,
				"score_a", res.ScoreA,
				"score_b", res.ScoreB,
			)
		} else {
			m.Winner = w
		}
	} else {
		m.Winner = nil
	}

	if prevWinner != nil && (m.Winner == nil || m.Winner.ID != prevWinner.ID) {
		revertDependents(&state.Bracket, m.ID)
	}
	if m.Winner != nil {
		resolveDependents(&state.Bracket, m.ID, *m.Winner)
	}

	return nil
}

// decideWinner returns the winning entrant for a completed match, or nil when
// no winner can be determined (tied scores). A bye opponent concedes: the
// lone concrete entrant wins whatever the scores say.
func decideWinner(m *tournament.Match) *tournament.Entrant {
	aResolved := m.SlotA.IsResolved()
	bResolved := m.SlotB.IsResolved()

	switch {
	case aResolved && m.SlotB.IsBye():
		return m.SlotA.Entrant
	case bResolved && m.SlotA.IsBye():
		return m.SlotB.Entrant
	case aResolved && bResolved:
		if m.ScoreA > m.ScoreB {
			return m.SlotA.Entrant
		}
		if m.ScoreB > m.ScoreA {
			return m.SlotB.Entrant
		}
	}
	return nil
}

// resolveDependents rewrites every forward reference to sourceID into the
// concrete winner. One hop only: the rewritten matches keep their own status
// untouched.
func resolveDependents(b *tournament.Bracket, sourceID string, winner tournament.Entrant) {
	for r := range b.Rounds {
		for i := range b.Rounds[r] {
			dep := &b.Rounds[r][i]
			if dep.SlotA.IsForward() && dep.SlotA.SourceMatchID == sourceID {
				dep.SlotA = dep.SlotA.Resolve(winner)
			}
			if dep.SlotB.IsForward() && dep.SlotB.SourceMatchID == sourceID {
				dep.SlotB = dep.SlotB.Resolve(winner)
			}
		}
	}
}

// revertDependents walks every match holding an entrant resolved from
// sourceID and reverts the slot to forward-reference form. If the dependent
// match had itself produced a winner from the stale entrant, that winner is
// cleared, the match drops back to in_progress, and the reversal continues
// downstream. Leaving a stale winner anywhere would poison every later round.
func revertDependents(b *tournament.Bracket, sourceID string) {
	for r := range b.Rounds {
		for i := range b.Rounds[r] {
			dep := &b.Rounds[r][i]
			touched := false
			if dep.SlotA.IsResolved() && dep.SlotA.SourceMatchID == sourceID {
				dep.SlotA = dep.SlotA.Unresolve()
				touched = true
			}
			if dep.SlotB.IsResolved() && dep.SlotB.SourceMatchID == sourceID {
				dep.SlotB = dep.SlotB.Unresolve()
				touched = true
			}
			if touched && dep.Winner != nil {
				dep.Winner = nil
				if dep.Status == tournament.StatusCompleted {
					dep.Status = tournament.StatusInProgress
				}
				revertDependents(b, dep.ID)
			}
		}
	}
}
