package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mjdesu1/intramurals-engine/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own formatted errors and return an
		// ExitError. Anything else is a flag or config problem that
		// never reached a command.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
