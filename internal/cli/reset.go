package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCommand creates the reset command.
func NewResetCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset <event-id>",
		Short: "Discard all results and regenerate the bracket",
		Long: `Throws away the stored bracket and schedule for an event and rebuilds
both from the current event definition. All recorded results are lost.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]

			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			if !yes {
				msg := "reset discards all recorded results; re-run with --yes to confirm"
				_ = formatter.Error(ErrCodeCommand, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}

			eng, cleanup, err := openEngine(opts)
			if err != nil {
				return reportError(formatter, "failed to open database", err)
			}
			defer cleanup()

			state, err := eng.ResetBracket(cmd.Context(), eventID)
			if err != nil {
				return reportError(formatter, "failed to reset bracket", err)
			}

			if opts.Format == "json" {
				return formatter.Success(state)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s: fresh bracket with %d entrants (revision %s)\n",
				state.EventID, state.Bracket.EntrantCount, state.Revision)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm discarding recorded results")

	return cmd
}
