// Package main is the entry point for the csvgate CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/csvgate/cmd/csvgate/commands"
	gateerrors "github.com/thoreinstein/csvgate/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *gateerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(gateerrors.ExitUser)
}
