// Package cmd - validate command
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qualitymap/core/catalog"
	"qualitymap/core/exchange"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an external table",
	Long: `Load an external table and report every malformed row at once.
Duplicate codes and catalog rule violations (code syntax, empty or padded
mapping hints, renamed codes that do not spell their hint) are reported too.

Exit status: 5 malformed rows, 4 duplicate code or rule violation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		reg, err := exchange.LoadFile(args[0])
		if err != nil {
			var loadErr *exchange.LoadError
			if errors.As(err, &loadErr) {
				for _, row := range loadErr.Rows {
					fmt.Fprintf(out, "%s:%d: %s\n", args[0], row.Line, row.Reason)
				}
			}
			return err
		}

		violations := catalog.Validate(reg, catalog.DefaultValidationRules())
		for _, v := range violations {
			fmt.Fprintf(out, "%s: %v\n", args[0], v)
		}
		if len(violations) > 0 {
			return &ruleViolations{count: len(violations)}
		}

		fmt.Fprintf(out, "%s: %d entries, fingerprint %s\n", args[0], reg.Len(), reg.Fingerprint())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
