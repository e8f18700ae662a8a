package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	qerrors "qualitymap/internal/errors"
)

func TestLoad_MissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Nil(t, cfg)
	require.True(t, qerrors.IsType(err, qerrors.TypeConfig))
	require.Equal(t, qerrors.ExitInput, qerrors.ExitCode(err))
}

func TestLoad_NoPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	d := Default()
	require.Equal(t, d.Output.DefaultFormat, cfg.Output.DefaultFormat)
	require.Equal(t, d.Store.Table, cfg.Store.Table)
	require.Equal(t, d.Logging.Level, cfg.Logging.Level)
	require.Empty(t, cfg.Data.Path)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qualitymap.yaml")
	content := `
data:
  path: tables/utilmd.csv
output:
  default_format: hcl
review:
  abbreviations:
    SR: Steuerbare Ressource
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "tables/utilmd.csv", cfg.Data.Path)
	require.Equal(t, "hcl", cfg.Output.DefaultFormat)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "Steuerbare Ressource", cfg.Review.Abbreviations["sr"])
	// untouched keys keep their defaults
	require.Equal(t, "utilmd_strom", cfg.Store.Table)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("QUALITYMAP_DATA_PATH", "/srv/qualitymap/table.jsonl")
	t.Setenv("QUALITYMAP_OUTPUT_DEFAULT_FORMAT", "yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/srv/qualitymap/table.jsonl", cfg.Data.Path)
	require.Equal(t, "yaml", cfg.Output.DefaultFormat)
}

func TestGetSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	cfg := Default()
	cfg.Data.Path = "x.csv"
	Set(cfg)
	require.Equal(t, "x.csv", Get().Data.Path)
}
