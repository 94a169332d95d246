// Package bracket builds single-elimination brackets from entrant lists.
//
// Build is a pure function: the same entrant list in the same order always
// yields the same bracket shape. All scheduling concerns (times, venues)
// belong to the schedule package.
package bracket

import (
	"math/bits"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// Build constructs the initial bracket for an event from its registered
// entrants.
//
// The entrant list is padded with byes up to the next power of two. Round 1
// pairs entrants positionally (slots 2k and 2k+1); every later round is
// wired with forward references per the halving rule: match i of round r
// takes the winners of matches 2i and 2i+1 of round r-1.
//
// A first-round match against a bye is represented as such and left for an
// explicit admin advance. A match whose slots are both byes can never be
// played: it is created cancelled and a bye is propagated into the dependent
// slot, cascading upward if needed.
//
// Fails with an INSUFFICIENT_ENTRANTS error when fewer than two entrants are
// registered.
func Build(eventID string, entrants []tournament.Entrant) (tournament.Bracket, error) {
	if len(entrants) < 2 {
		return tournament.Bracket{}, tournament.NewInsufficientEntrantsError(eventID, len(entrants))
	}

	size := paddedSize(len(entrants))
	numRounds := bits.TrailingZeros(uint(size))

	b := tournament.Bracket{
		EventID:      eventID,
		EntrantCount: len(entrants),
		Rounds:       make([][]tournament.Match, numRounds),
	}

	// Round 1: positional pairing over the padded entrant list.
	firstRound := make([]tournament.Match, 0, size/2)
	for i := 0; i < size; i += 2 {
		m := tournament.Match{
			ID:           tournament.MatchID(1, i/2+1),
			EventID:      eventID,
			Round:        1,
			IndexInRound: i/2 + 1,
			SlotA:        slotAt(entrants, i),
			SlotB:        slotAt(entrants, i+1),
			Status:       tournament.StatusScheduled,
		}
		firstRound = append(firstRound, m)
	}
	b.Rounds[0] = firstRound

	// Later rounds: forward references per the halving rule.
	for r := 2; r <= numRounds; r++ {
		prev := b.Rounds[r-2]
		round := make([]tournament.Match, 0, len(prev)/2)
		for i := 0; i < len(prev)/2; i++ {
			round = append(round, tournament.Match{
				ID:           tournament.MatchID(r, i+1),
				EventID:      eventID,
				Round:        r,
				IndexInRound: i + 1,
				SlotA:        tournament.WinnerOf(prev[2*i].ID),
				SlotB:        tournament.WinnerOf(prev[2*i+1].ID),
				Status:       tournament.StatusScheduled,
			})
		}
		b.Rounds[r-1] = round
	}

	cancelDoubleByes(&b)

	return b, nil
}

// PaddedSize returns the next power of two greater than or equal to n.
func PaddedSize(n int) int {
	return paddedSize(n)
}

func paddedSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// slotAt returns the entrant at index i of the padded list, or a bye marker
// past the end of the real entrants. Display names are canonicalized so
// winner propagation compares stable identities.
func slotAt(entrants []tournament.Entrant, i int) tournament.MatchSlot {
	if i >= len(entrants) {
		return tournament.ByeSlot()
	}
	e := entrants[i]
	e.DisplayName = tournament.NormalizeName(e.DisplayName)
	return tournament.EntrantSlot(e)
}

// cancelDoubleByes finds matches whose slots are both byes, marks them
// cancelled, and replaces the dependent forward reference with a bye. Byes
// can meet again one round up for sparse entrant counts, so the sweep runs
// round by round toward the final.
func cancelDoubleByes(b *tournament.Bracket) {
	for r := range b.Rounds {
		for i := range b.Rounds[r] {
			m := &b.Rounds[r][i]
			if !m.SlotA.IsBye() || !m.SlotB.IsBye() {
				continue
			}
			m.Status = tournament.StatusCancelled
			if r+1 < len(b.Rounds) {
				next := &b.Rounds[r+1][i/2]
				if next.SlotA.SourceMatchID == m.ID {
					next.SlotA = tournament.ByeSlot()
				} else if next.SlotB.SourceMatchID == m.ID {
					next.SlotB = tournament.ByeSlot()
				}
			}
		}
	}
}
