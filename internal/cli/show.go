package cli

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <event-id>",
		Short:         "Display the bracket and schedule for an event",
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

			eng, cleanup, err := openEngine(opts)
			if err != nil {
				return reportError(formatter, "failed to open database", err)
			}
			defer cleanup()

			model, err := eng.SnapshotModel(cmd.Context(), eventID)
			if err != nil {
				return reportError(formatter, "failed to load event state", err)
			}

			if opts.Format == "json" {
				return formatter.Success(model)
			}

			renderModel(cmd.OutOrStdout(), model)
			return nil
		},
	}
	return cmd
}
