// Package main is the entry point for the qualitymap CLI.
package main

import (
	"fmt"
	"os"

	"qualitymap/cmd/cli/cmd"
	"qualitymap/internal/errors"
	"qualitymap/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
