package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjdesu1/intramurals-engine/internal/eventdef"
)

// ValidationResult holds validation results for the events directory.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Events []string `json:"events,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate all event definition files",
		Long: `Checks every .cue file in the events directory against the event
schema and reports all problems found. Exits 1 if any file is invalid.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			loader := eventdef.NewLoader(opts.Config.EventsDir)
			errs := loader.Validate()

			// A missing or unreadable directory is a command error, not a
			// failed validation.
			if len(errs) == 1 {
				var le *eventdef.LoadError
				if errors.As(errs[0], &le) && le.Code == eventdef.ErrCodeNotFound {
					return reportError(formatter, "failed to read events directory", errs[0])
				}
			}

			if len(errs) > 0 {
				return outputValidationErrors(formatter, errs)
			}

			events, err := loader.LoadAll()
			if err != nil {
				return reportError(formatter, "failed to read events directory", err)
			}

			ids := make([]string, 0, len(events))
			for _, ev := range events {
				ids = append(ids, ev.ID)
				formatter.VerboseLog("Validated event: %s (%d entrants)", ev.ID, len(ev.Entrants))
			}

			if opts.Format == "json" {
				return formatter.Success(ValidationResult{Valid: true, Events: ids})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All %d event definition(s) valid\n", len(events))
			return nil
		},
	}
	return cmd
}

// outputValidationErrors outputs every validation error and returns the
// validation-failure exit code.
func outputValidationErrors(formatter *OutputFormatter, errs []error) error {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}

	if formatter.Format == "json" {
		_ = formatter.Error(eventdef.ErrCodeInvalidSchema,
			fmt.Sprintf("%d event definition(s) failed validation", len(errs)),
			ValidationResult{Valid: false, Errors: messages})
	} else {
		fmt.Fprintln(formatter.Writer, "Validation failed")
		for _, msg := range messages {
			fmt.Fprintf(formatter.Writer, "  %s\n", msg)
		}
	}

	return NewExitError(ExitFailure,
		fmt.Sprintf("%d event definition(s) failed validation", len(errs)))
}
