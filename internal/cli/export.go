package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mjdesu1/intramurals-engine/internal/ics"
)

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <event-id>",
		Short: "Export the event schedule as an iCalendar file",
		Long: `Writes the event's match schedule as an RFC 5545 iCalendar document.
By default the file is named after the event title; use -o to choose a
path, or "-o -" to write the calendar to stdout.`,
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

			calendar, err := eng.ExportCalendar(cmd.Context(), eventID)
			if err != nil {
				return reportError(formatter, "failed to export calendar", err)
			}

			if output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), calendar)
				return nil
			}

			path := output
			if path == "" {
				info, infoErr := eng.EventInfo(cmd.Context(), eventID)
				if infoErr != nil {
					return reportError(formatter, "failed to load event definition", infoErr)
				}
				path = ics.FileName(info.Title)
			}

			if err := os.WriteFile(path, []byte(calendar), 0o644); err != nil {
				return reportError(formatter, "failed to write calendar file", err)
			}

			if opts.Format == "json" {
				return formatter.Success(map[string]string{"path": path})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output path ("-" for stdout)`)

	return cmd
}
