package tournament

import "fmt"

// RoundLabel returns the historical tier name for a round: the last round is
// the Finals, the round before it the Semi Finals, and earlier rounds are
// Quarter Finals for small fields or the Group Stage for large ones.
//
// Tiering is purely a presentation policy layered over the halving structure;
// it never changes the shape of the bracket.
func RoundLabel(round, totalRounds, entrantCount int) string {
	switch {
	case round == totalRounds:
		return "Finals"
	case round == totalRounds-1:
		return "Semi Finals"
	case round == totalRounds-2 && entrantCount <= 8:
		return "Quarter Finals"
	default:
		return "Group Stage"
	}
}

// MatchLabel returns the display title for a match, e.g.
// "Semi Finals - Match 2".
func MatchLabel(m Match, totalRounds, entrantCount int) string {
	label := RoundLabel(m.Round, totalRounds, entrantCount)
	return fmt.Sprintf("%s - Match %d", label, m.IndexInRound)
}
