// Package cmd - export command
package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"qualitymap/core/exchange"
	"qualitymap/db"
	"qualitymap/internal/config"
	qerrors "qualitymap/internal/errors"
)

// formatSQLite writes into the SQLite store instead of a text format
const formatSQLite = "sqlite"

var (
	exportFormat string
	exportOutput string
	exportName   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the table in an interchange format",
	Long: `Write the table as csv, jsonl, yaml, hcl or as the C# annotation extract
(csharp). With --format sqlite the table is saved as a snapshot in the
SQLite store.

Examples:
  qualitymap export --format csharp -o QualityMap.cs
  qualitymap export --format sqlite -o qualitymap.db --name utilmd_strom`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "csv, jsonl, yaml, hcl, csharp or sqlite (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file; stdout if empty (store path for sqlite)")
	exportCmd.Flags().StringVar(&exportName, "name", "", "snapshot name for sqlite (default from config)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	name := exportFormat
	if name == "" {
		name = cfg.Output.DefaultFormat
	}

	if name == formatSQLite {
		path := exportOutput
		if path == "" {
			path = cfg.Store.Path
		}
		snapshot := exportName
		if snapshot == "" {
			snapshot = cfg.Store.Table
		}

		store, err := db.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		snap, err := store.SaveRegistry(context.Background(), snapshot, reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d entries as %s (%s) in %s\n", snap.EntryCount, snap.Name, snap.ID, path)
		return nil
	}

	format, err := exchange.ParseFormat(name)
	if err != nil {
		return qerrors.Wrap(qerrors.TypeInput, "--format", err)
	}
	if exportOutput == "" {
		return exchange.Write(cmd.OutOrStdout(), format, reg.Slice())
	}

	path := exportOutput
	if !filepath.IsAbs(path) && filepath.Dir(path) == "." && cfg.Output.Directory != "" {
		path = filepath.Join(cfg.Output.Directory, path)
	}
	return exchange.WriteFile(path, format, reg.Slice())
}
