// Package cmd - SQLite store operations
package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"qualitymap/core/catalog"
	"qualitymap/core/exchange"
	"qualitymap/db"
	"qualitymap/db/ingestion"
	"qualitymap/internal/config"
	qerrors "qualitymap/internal/errors"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage table snapshots in the SQLite store",
	Long: `Manage named table snapshots in the SQLite store (store.path in the
config, or --db).

Ingestion runs fetch, build, contract check and store in that order. A
table whose content equals the stored snapshot is not written again.`,
}

var storeIngestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Store the builtin table, a table file or a derived quality map",
	Long: `Store a table as a named snapshot.

Without an argument the builtin table is stored. A table file (csv, jsonl,
yaml, hcl) is stored as is; with --derive the file is read as a scraped
quality-map CSV and its entries are derived first.

Examples:
  qualitymap store ingest
  qualitymap store ingest utilmd.yaml --name utilmd_strom --strict
  qualitymap store ingest utilmd_qualitymap.csv --derive --name utilmd_derived`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStoreIngest,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE:  runStoreList,
}

var storeRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Write a stored snapshot in an interchange format",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreRestore,
}

var (
	storePath          string
	storeName          string
	storeDerive        bool
	storeStrict        bool
	storeTimeout       time.Duration
	storeRestoreFormat string
	storeRestoreOutput string
)

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeRestoreCmd)

	storeCmd.PersistentFlags().StringVar(&storePath, "db", "", "SQLite file (default from config)")
	storeCmd.PersistentFlags().DurationVar(&storeTimeout, "timeout", time.Minute, "timeout for store operations")

	storeIngestCmd.Flags().StringVar(&storeName, "name", "", "snapshot name (default from config)")
	storeIngestCmd.Flags().BoolVar(&storeDerive, "derive", false, "read the file as a scraped quality-map CSV")
	storeIngestCmd.Flags().BoolVar(&storeStrict, "strict", false, "refuse tables that violate their contract")

	storeRestoreCmd.Flags().StringVarP(&storeRestoreFormat, "format", "f", "csv", "csv, jsonl, yaml, hcl or csharp")
	storeRestoreCmd.Flags().StringVarP(&storeRestoreOutput, "output", "o", "", "output file; stdout if empty")
}

func openStore() (*db.Store, error) {
	path := storePath
	if path == "" {
		path = config.Get().Store.Path
	}
	return db.Open(path)
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cfg := config.Get()
	name := storeName
	if name == "" {
		name = cfg.Store.Table
	}

	var fetcher ingestion.Fetcher
	switch {
	case len(args) == 0 && storeDerive:
		return qerrors.New(qerrors.TypeInput, "--derive needs a quality-map file")
	case len(args) == 0:
		fetcher = ingestion.BuiltinFetcher{Table: catalog.UTILMDStromSource.Name}
	case storeDerive:
		fetcher = ingestion.DerivedFetcher{Path: args[0]}
	default:
		fetcher = ingestion.FileFetcher{Path: args[0]}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	pipeline := ingestion.NewPipeline(fetcher, store)
	pipeline.Strict = storeStrict

	result, err := pipeline.Ingest(ctx, name)
	out := cmd.OutOrStdout()
	if result != nil && result.Validation != nil {
		for _, msg := range result.Validation.Errors {
			fmt.Fprintf(out, "contract: %s\n", msg)
		}
	}
	if err != nil {
		return err
	}

	state := "stored"
	if result.Unchanged {
		state = "unchanged"
	}
	fmt.Fprintf(out, "%s %s: %d entries from %s (snapshot %s, fingerprint %.16s)\n",
		state, name, result.Snapshot.EntryCount, fetcher.Source(), result.Snapshot.ID, result.Snapshot.Fingerprint)
	return nil
}

func runStoreList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snapshots, err := store.ListSnapshots(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tENTRIES\tSAVED\tFINGERPRINT")
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%d\t%s\t%.16s\n", s.Name, s.EntryCount, s.SavedAt.Format(time.RFC3339), s.Fingerprint)
	}
	return w.Flush()
}

func runStoreRestore(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	format, err := exchange.ParseFormat(storeRestoreFormat)
	if err != nil {
		return qerrors.Wrap(qerrors.TypeInput, "--format", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	reg, err := store.LoadRegistry(ctx, args[0])
	if err != nil {
		return err
	}
	return writeEntries(cmd, format, storeRestoreOutput, reg)
}
