package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mjdesu1/intramurals-engine/internal/engine"
)

// renderModel writes the bracket and schedule views as plain text.
func renderModel(w io.Writer, model *engine.SnapshotModel) {
	fmt.Fprintf(w, "%s (revision %s)\n", model.EventTitle, model.Revision)

	for _, round := range model.Bracket.Rounds {
		fmt.Fprintf(w, "\n%s\n", round.Label)
		fmt.Fprintln(w, strings.Repeat("-", len(round.Label)))
		for _, m := range round.Matches {
			line := fmt.Sprintf("  %-12s %s vs %s", m.MatchID, m.TeamA, m.TeamB)
			switch m.Status {
			case "completed":
				line += fmt.Sprintf("  [%d-%d, winner: %s]", m.ScoreA, m.ScoreB, m.Winner)
			case "cancelled":
				line += "  [cancelled]"
			default:
				line += fmt.Sprintf("  [%s]", m.Status)
			}
			fmt.Fprintln(w, line)
		}
	}

	if len(model.Schedule.Days) == 0 {
		return
	}
	fmt.Fprintf(w, "\nSchedule\n========\n")
	for _, day := range model.Schedule.Days {
		fmt.Fprintf(w, "%s\n", day.Date)
		for _, entry := range day.Entries {
			fmt.Fprintf(w, "  %s  %-12s %s vs %s (%s)\n",
				entry.Time, entry.Venue, entry.TeamA, entry.TeamB, entry.Label)
		}
	}
}
