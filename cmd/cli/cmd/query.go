// Package cmd - registry queries
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
)

var qualityDefault string

var lookupCmd = &cobra.Command{
	Use:   "lookup <code>",
	Short: "Show the entry of a code",
	Long: `Show quality and mapping hint of a code. Codes are matched exactly
and case-sensitively. Exits with status 3 if the code is unknown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		e, err := reg.Lookup(args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
		fmt.Fprintf(w, "Code:\t%s\n", e.Code)
		fmt.Fprintf(w, "Quality:\t%s\n", e.Quality)
		fmt.Fprintf(w, "Mapping hint:\t%s\n", e.Description)
		return w.Flush()
	},
}

var qualityCmd = &cobra.Command{
	Use:   "quality <code>",
	Short: "Print the quality of a code",
	Long: `Print the quality label of a code. With --default an unknown code
prints the given label instead of failing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		var level quality.Level
		if cmd.Flags().Changed("default") {
			def, err := quality.ParseLevel(qualityDefault)
			if err != nil {
				return qerrors.Wrap(qerrors.TypeInput, "--default", err)
			}
			level = reg.QualityOrDefault(args[0], def)
		} else if level, err = reg.QualityOf(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), level)
		return nil
	},
}

var familyCmd = &cobra.Command{
	Use:   "family <mapping hint>",
	Short: "List the codes sharing a mapping hint",
	Long: `List every code whose mapping hint equals the argument exactly, in
table order. Use "qualitymap review" to find hints that differ only in
spelling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		entries := reg.EntriesWithDescription(args[0])
		if len(entries) == 0 {
			fmt.Fprintf(os.Stderr, "no code has mapping hint %q\n", args[0])
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Code, e.Quality)
		}
		return w.Flush()
	},
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List all codes in table order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for code := range reg.AllCodes() {
			fmt.Fprintln(out, code)
		}
		return nil
	},
}

func init() {
	qualityCmd.Flags().StringVar(&qualityDefault, "default", "", "label printed for unknown codes (empty or UNSPECIFIED, IM_SYSTEM_VORHANDEN, ERWARTET, INFORMATIV)")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(familyCmd)
	rootCmd.AddCommand(codesCmd)
}
