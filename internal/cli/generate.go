package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <event-id>",
		Short: "Generate the bracket and schedule for an event",
		Long: `Builds the single-elimination bracket and match schedule for an event
from its definition file and persists them. If the event already has a
stored bracket, it is loaded unchanged; use reset to regenerate.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // Errors go through the formatter
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]

			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			eng, cleanup, err := openEngine(opts)
			if err != nil {
				return reportError(formatter, "failed to open database", err)
			}
			defer cleanup()

			state, err := eng.GenerateOrLoad(cmd.Context(), eventID)
			if err != nil {
				return reportError(formatter, "failed to generate bracket", err)
			}

			if opts.Format == "json" {
				return formatter.Success(state)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Generated bracket for %s: %d entrants, %d rounds, %d matches (revision %s)\n",
				state.EventID, state.Bracket.EntrantCount,
				state.Bracket.NumRounds(), state.Bracket.TotalMatches(),
				state.Revision)
			return nil
		},
	}
	return cmd
}
