package tournament

import "fmt"

// SlotKind discriminates the MatchSlot tagged union.
type SlotKind string

const (
	// SlotEntrant is a concrete entrant occupying the slot.
	SlotEntrant SlotKind = "entrant"
	// SlotBye is a padding opponent representing "no entrant".
	SlotBye SlotKind = "bye"
	// SlotWinnerOf is a forward reference to the winner of an earlier match.
	SlotWinnerOf SlotKind = "winner_of"
)

// MatchSlot is one side of a match: a concrete entrant, a bye marker, or a
// forward reference to the winner of a prior match.
//
// SourceMatchID is set for forward references, and is retained after the
// reference resolves to a concrete entrant. Keeping the provenance is what
// allows a reopened upstream result to revert the slot back to
// forward-reference form.
type MatchSlot struct {
	Kind          SlotKind `json:"kind"`
	Entrant       *Entrant `json:"entrant,omitempty"`
	SourceMatchID string   `json:"source_match_id,omitempty"`
}

// EntrantSlot returns a slot holding a concrete entrant.
func EntrantSlot(e Entrant) MatchSlot {
	return MatchSlot{Kind: SlotEntrant, Entrant: &e}
}

// ByeSlot returns a bye marker slot.
func ByeSlot() MatchSlot {
	return MatchSlot{Kind: SlotBye}
}

// WinnerOf returns a forward reference to the given match.
func WinnerOf(sourceMatchID string) MatchSlot {
	return MatchSlot{Kind: SlotWinnerOf, SourceMatchID: sourceMatchID}
}

// IsResolved reports whether the slot holds a concrete entrant.
func (s MatchSlot) IsResolved() bool {
	return s.Kind == SlotEntrant && s.Entrant != nil
}

// IsBye reports whether the slot is a bye marker.
func (s MatchSlot) IsBye() bool {
	return s.Kind == SlotBye
}

// IsForward reports whether the slot is an unresolved forward reference.
func (s MatchSlot) IsForward() bool {
	return s.Kind == SlotWinnerOf
}

// Resolve fills the forward reference with the concrete entrant, keeping the
// source match ID for later reversal.
func (s MatchSlot) Resolve(e Entrant) MatchSlot {
	return MatchSlot{Kind: SlotEntrant, Entrant: &e, SourceMatchID: s.SourceMatchID}
}

// Unresolve reverts a resolved slot back to forward-reference form. Calling
// it on a slot with no source match is a no-op.
func (s MatchSlot) Unresolve() MatchSlot {
	if s.SourceMatchID == "" {
		return s
	}
	return MatchSlot{Kind: SlotWinnerOf, SourceMatchID: s.SourceMatchID}
}

// Label returns the display text for the slot: the entrant name, the
// historical bye label, or a "Winner of ..." placeholder.
func (s MatchSlot) Label() string {
	switch s.Kind {
	case SlotEntrant:
		if s.Entrant != nil {
			return s.Entrant.DisplayName
		}
		return "TBD"
	case SlotBye:
		return "Bye (Automatic Advance)"
	case SlotWinnerOf:
		return fmt.Sprintf("Winner of %s", s.SourceMatchID)
	}
	return "TBD"
}
