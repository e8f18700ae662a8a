// Package cmd - derive command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"qualitymap/core/derive"
	"qualitymap/core/exchange"
	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
)

var (
	deriveFormat string
	deriveOutput string
)

var deriveCmd = &cobra.Command{
	Use:   "derive <qualitymap.csv>",
	Short: "Derive code entries from a scraped quality-map table",
	Long: `Read the quality map of an AHB as exported by the scraper (one row per
segment group, one column per quality) and derive the code entries.

A qualifier used in more than one column is split into codes suffixed with
its mapping hint, e.g. Z51 becomes Z51_Termindaten_der_Marktlokation and
Z51_Daten_der_Netzlokation. The quality wording in front of hints
("Erwartete ...", "Im System vorhandene ...") is stripped.

Examples:
  qualitymap derive utilmd_qualitymap.csv --format csharp -o QualityMap.cs
  qualitymap derive utilmd_qualitymap.csv --format hcl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return qerrors.Wrap(qerrors.TypeInput, "open quality map", err)
		}
		defer f.Close()

		table, err := derive.ReadTableCSV(f)
		if err != nil {
			return qerrors.Wrap(qerrors.TypeInput, "read quality map", err)
		}
		reg, err := derive.Registry(table)
		if err != nil {
			return err
		}

		format, err := exchange.ParseFormat(deriveFormat)
		if err != nil {
			return qerrors.Wrap(qerrors.TypeInput, "--format", err)
		}
		return writeEntries(cmd, format, deriveOutput, reg)
	},
}

func writeEntries(cmd *cobra.Command, format exchange.Format, path string, reg *quality.Registry) error {
	if path == "" {
		return exchange.Write(cmd.OutOrStdout(), format, reg.Slice())
	}
	return exchange.WriteFile(path, format, reg.Slice())
}

func init() {
	deriveCmd.Flags().StringVarP(&deriveFormat, "format", "f", "csharp", "csv, jsonl, yaml, hcl or csharp")
	deriveCmd.Flags().StringVarP(&deriveOutput, "output", "o", "", "output file; stdout if empty")

	rootCmd.AddCommand(deriveCmd)
}
