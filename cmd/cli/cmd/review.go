// Package cmd - review and stats commands
package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qualitymap/core/quality"
	"qualitymap/internal/config"
)

var reviewSkipIncomplete bool

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Report incomplete families and mapping-hint variants",
	Long: `Report irregularities of the mapping hints without changing them:

  incomplete_family     a hint that does not occur with every quality
  description_variant   hints that differ only in case, abbreviations
                        (NeLo, MaLo, NB, LF, ...), filler words or inflection

Additional abbreviations can be configured under review.abbreviations.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		cfg := config.Get()
		findings := reg.ReviewWith(quality.ReviewOptions{
			Abbreviations:          cfg.Review.Abbreviations,
			SkipIncompleteFamilies: cfg.Review.SkipIncompleteFamilies || reviewSkipIncomplete,
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, f := range findings {
			switch f.Kind {
			case quality.FindingIncompleteFamily:
				missing := make([]string, len(f.Missing))
				for i, l := range f.Missing {
					missing[i] = l.String()
				}
				fmt.Fprintf(w, "%s\t%q\tmissing %s\t%s\n", f.Kind, f.Descriptions[0],
					strings.Join(missing, ", "), strings.Join(f.Codes, " "))
			case quality.FindingDescriptionVariant:
				quoted := make([]string, len(f.Descriptions))
				for i, d := range f.Descriptions {
					quoted[i] = fmt.Sprintf("%q", d)
				}
				fmt.Fprintf(w, "%s\t%s\t\t%s\n", f.Kind, strings.Join(quoted, " ~ "), strings.Join(f.Codes, " "))
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d findings\n", len(findings))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entry counts per quality and family figures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		stats := reg.Stats()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "QUALITY\tENTRIES\tSHARE %%\t\n")
		for _, level := range quality.Levels {
			fmt.Fprintf(w, "%s\t%d\t%s\t\n", level, stats.ByLevel[level], stats.Shares[level].StringFixed(2))
		}
		fmt.Fprintf(w, "TOTAL\t%d\t\t\n", stats.Total)
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nfamilies: %d (complete %d, single code %d)\nfingerprint: %s\n",
			stats.Families, stats.CompleteFamilies, stats.SingletonFamilies, reg.Fingerprint())
		return nil
	},
}

func init() {
	reviewCmd.Flags().BoolVar(&reviewSkipIncomplete, "skip-incomplete", false, "hide incomplete-family findings")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
}
