package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mjdesu1/intramurals-engine/internal/engine"
	"github.com/mjdesu1/intramurals-engine/internal/eventdef"
	"github.com/mjdesu1/intramurals-engine/internal/store"
	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// ErrCodeCommand labels failures outside the domain taxonomy (bad paths,
// unreadable database, malformed flags).
const ErrCodeCommand = "E_COMMAND"

// openEngine wires up the store, the event definition loader, and the engine
// from the resolved options. The returned cleanup closes the store.
func openEngine(opts *RootOptions) (*engine.Engine, func(), error) {
	st, err := store.Open(opts.Config.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database %s: %w", opts.Config.Database, err)
	}

	loader := eventdef.NewLoader(opts.Config.EventsDir)
	eng := engine.New(st, loader, opts.Config.Scheduling)

	cleanup := func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}
	return eng, cleanup, nil
}

// reportError prints err through the formatter and returns the matching
// ExitError. Domain errors (bad result, invalid event definition) exit 1;
// everything else is a command error and exits 2.
func reportError(f *OutputFormatter, message string, err error) error {
	code := ErrCodeCommand
	exit := ExitCommandError

	var de *tournament.Error
	var le *eventdef.LoadError
	switch {
	case errors.As(err, &de):
		code = string(de.Code)
		exit = ExitFailure
	case errors.As(err, &le):
		code = le.Code
		exit = ExitFailure
	}

	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err), nil)
	return WrapExitError(exit, message, err)
}
