// Package cmd provides the CLI commands for qualitymap.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qualitymap/core/catalog"
	"qualitymap/core/exchange"
	"qualitymap/core/quality"
	"qualitymap/internal/config"
	qerrors "qualitymap/internal/errors"
	"qualitymap/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile  string
	verbose  bool
	dataPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qualitymap",
	Short: "Query and maintain EDI@Energy quality codes",
	Long: `qualitymap holds the quality map of the UTILMD AHB Strom: every code with
its data quality (IM_SYSTEM_VORHANDEN, ERWARTET, INFORMATIV or none) and
its mapping hint.

The builtin table is used unless --data names an external table file.

Examples:
  qualitymap lookup Z50_Termindaten_der_Marktlokation
  qualitymap family "Referenz auf die Lokationsbündelstruktur"
  qualitymap export --format csharp -o QualityMap.cs
  qualitymap derive utilmd_qualitymap.csv --format yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (json or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "external table file (csv, jsonl, yaml, hcl) instead of the builtin table")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// loadRegistry returns the registry selected by configuration
func loadRegistry() (*quality.Registry, error) {
	cfg := config.Get()
	if cfg.Data.Path == "" {
		return catalog.Default(), nil
	}
	if cfg.Data.Format == "" {
		return exchange.LoadFile(cfg.Data.Path)
	}

	format, err := exchange.ParseFormat(cfg.Data.Format)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeConfig, "data format", err)
	}
	f, err := os.Open(cfg.Data.Path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "open table", err)
	}
	defer f.Close()
	return exchange.Load(f, format, cfg.Data.Path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qualitymap version %s (builtin table %s, valid from %s)\n",
			Version, catalog.UTILMDStromSource.Name, catalog.UTILMDStromSource.ValidFrom)
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
