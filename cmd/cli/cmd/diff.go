// Package cmd - diff command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"qualitymap/core/catalog"
	"qualitymap/core/diff"
	"qualitymap/core/exchange"
	"qualitymap/core/quality"
)

var (
	diffExitCode bool
	diffFull     bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <file-a> [file-b]",
	Short: "Compare two tables",
	Long: `Compare two tables entry by entry and line by line. Without file-b the
first table is compared against the builtin one.

Examples:
  qualitymap diff old.csv new.csv
  qualitymap diff regenerated.yaml --exit-code`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		before, err := exchange.LoadFile(args[0])
		if err != nil {
			return err
		}

		var after *quality.Registry
		if len(args) == 2 {
			if after, err = exchange.LoadFile(args[1]); err != nil {
				return err
			}
		} else {
			after = catalog.Default()
		}

		result := diff.Tables(before, after)
		out := cmd.OutOrStdout()

		if diffFull {
			fmt.Fprint(out, result.Pretty())
		} else {
			for _, d := range result.Removed {
				fmt.Fprintf(out, "- %s\t%s\t%s\n", d.Code, d.Before.Quality, d.Before.Description)
			}
			for _, d := range result.Added {
				fmt.Fprintf(out, "+ %s\t%s\t%s\n", d.Code, d.After.Quality, d.After.Description)
			}
			for _, d := range result.Changed {
				fmt.Fprintf(out, "~ %s\t%s -> %s\t%q -> %q\n", d.Code,
					d.Before.Quality, d.After.Quality, d.Before.Description, d.After.Description)
			}
		}
		fmt.Fprintln(out, result.Summary())

		if diffExitCode && !result.Equal() {
			return &tablesDiffer{summary: result.Summary()}
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "exit with status 1 if the tables differ")
	diffCmd.Flags().BoolVar(&diffFull, "full", false, "print the full line diff of both tables")

	rootCmd.AddCommand(diffCmd)
}
