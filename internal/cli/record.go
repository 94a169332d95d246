package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mjdesu1/intramurals-engine/internal/engine"
	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// NewRecordCommand creates the record command.
func NewRecordCommand(opts *RootOptions) *cobra.Command {
	var (
		scoreA       int
		scoreB       int
		status       string
		timeOverride string
	)

	cmd := &cobra.Command{
		Use:   "record <event-id> <match-id>",
		Short: "Record a match result",
		Long: `Records scores and status for one match. Completing a match determines
its winner and advances them into the next round; reopening a completed
match reverts every downstream match that depended on its winner.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, matchID := args[0], args[1]

			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			if !tournament.ValidStatus(tournament.Status(status)) {
				msg := fmt.Sprintf("invalid status %q: must be one of scheduled, in_progress, completed, cancelled", status)
				_ = formatter.Error(ErrCodeCommand, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}

			res := engine.Result{
				ScoreA: scoreA,
				ScoreB: scoreB,
				Status: tournament.Status(status),
			}
			if timeOverride != "" {
				t, err := time.Parse(time.RFC3339, timeOverride)
				if err != nil {
					return reportError(formatter, "invalid --time, expected RFC3339", err)
				}
				res.ScheduledTime = &t
			}

			eng, cleanup, err := openEngine(opts)
			if err != nil {
				return reportError(formatter, "failed to open database", err)
			}
			defer cleanup()

			state, err := eng.RecordResult(cmd.Context(), eventID, matchID, res)
			if err != nil {
				return reportError(formatter, "failed to record result", err)
			}

			if opts.Format == "json" {
				return formatter.Success(state)
			}

			m := state.Bracket.FindMatch(matchID)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s vs %s, %d-%d (%s)",
				m.ID, m.SlotA.Label(), m.SlotB.Label(), m.ScoreA, m.ScoreB, m.Status)
			if m.Winner != nil {
				fmt.Fprintf(cmd.OutOrStdout(), ", winner: %s", m.Winner.DisplayName)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&scoreA, "score-a", 0, "score for the first slot")
	cmd.Flags().IntVar(&scoreB, "score-b", 0, "score for the second slot")
	cmd.Flags().StringVar(&status, "status", string(tournament.StatusInProgress), "match status (scheduled|in_progress|completed|cancelled)")
	cmd.Flags().StringVar(&timeOverride, "time", "", "override the scheduled time (RFC3339)")

	return cmd
}
