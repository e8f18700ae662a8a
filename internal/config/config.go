// Package config provides configuration management.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	qerrors "qualitymap/internal/errors"
	"qualitymap/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. QUALITYMAP_DATA_PATH.
const EnvPrefix = "QUALITYMAP"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Data selects the table the registry is built from
	Data DataConfig `json:"data" mapstructure:"data"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Store contains SQLite store configuration
	Store StoreConfig `json:"store" mapstructure:"store"`

	// Review contains settings for the irregularity review
	Review ReviewConfig `json:"review" mapstructure:"review"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// DataConfig selects the source table
type DataConfig struct {
	// Path is an external table file; empty means the builtin UTILMD table
	Path string `json:"path" mapstructure:"path"`

	// Format overrides format detection by file extension
	Format string `json:"format" mapstructure:"format"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the export format used when --format is not given
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// Directory is where export writes files when no output path is given
	Directory string `json:"directory" mapstructure:"directory"`
}

// StoreConfig contains SQLite store settings
type StoreConfig struct {
	// Path is the SQLite database file
	Path string `json:"path" mapstructure:"path"`

	// Table is the snapshot name the registry is saved under
	Table string `json:"table" mapstructure:"table"`
}

// ReviewConfig contains review settings
type ReviewConfig struct {
	// Abbreviations adds expansions on top of the builtin ones (e.g. "SR": "Steuerbare Ressource")
	Abbreviations map[string]string `json:"abbreviations" mapstructure:"abbreviations"`

	// SkipIncompleteFamilies hides incomplete-family findings
	SkipIncompleteFamilies bool `json:"skip_incomplete_families" mapstructure:"skip_incomplete_families"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Path:   "",
			Format: "",
		},
		Output: OutputConfig{
			DefaultFormat: "csv",
			Directory:     ".",
		},
		Store: StoreConfig{
			Path:  filepath.Join(homeDir, ".qualitymap", "qualitymap.db"),
			Table: "utilmd_strom",
		},
		Review:  ReviewConfig{},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from path (json or yaml, detected by extension)
// and applies QUALITYMAP_* environment overrides. An empty path yields the
// defaults; a path that cannot be read is a configuration error.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
				return nil, qerrors.Wrap(qerrors.TypeConfig, "config file not found", err).
					WithContext("path", path)
			}
			return nil, qerrors.Wrap(qerrors.TypeConfig, "read config", err).
				WithContext("path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeConfig, "decode config", err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("version", d.Version)
	v.SetDefault("data.path", d.Data.Path)
	v.SetDefault("data.format", d.Data.Format)
	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.directory", d.Output.Directory)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("store.table", d.Store.Table)
	v.SetDefault("review.skip_incomplete_families", d.Review.SkipIncompleteFamilies)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
