package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualitymap/core/catalog"
	"qualitymap/core/exchange"
	"qualitymap/core/quality"
	"qualitymap/db"
	qerrors "qualitymap/internal/errors"
)

func openStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "qualitymap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestIngest_Builtin(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	p := NewPipeline(BuiltinFetcher{Table: "utilmd_strom"}, store)

	first, err := p.Ingest(ctx, "utilmd_strom")
	require.NoError(t, err)
	assert.True(t, first.Validation.IsValid, first.Validation.Errors)
	assert.True(t, first.Validation.Contracted)
	assert.False(t, first.Unchanged)

	second, err := p.Ingest(ctx, "utilmd_strom")
	require.NoError(t, err)
	assert.True(t, second.Unchanged)
	assert.Equal(t, first.Snapshot.ID, second.Snapshot.ID)
}

func TestIngest_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "table.jsonl")
	require.NoError(t, exchange.WriteFile(path, exchange.FormatJSONL, catalog.UTILMDStrom()[:12]))

	store := openStore(t)
	p := NewPipeline(FileFetcher{Path: path}, store)

	// the UTILMD contract wants at least 100 entries
	res, err := p.Ingest(ctx, "utilmd_strom")
	require.NoError(t, err)
	assert.False(t, res.Validation.IsValid)
	assert.NotNil(t, res.Snapshot)

	p.Strict = true
	_, err = p.Ingest(ctx, "utilmd_strom")
	assert.Equal(t, qerrors.ExitDuplicate, qerrors.ExitCode(err))

	res, err = p.Ingest(ctx, "excerpt")
	require.NoError(t, err)
	assert.True(t, res.Validation.IsValid)
	assert.False(t, res.Validation.Contracted)
}

func TestIngest_Derived(t *testing.T) {
	doc := "Segmentgruppe,Gültige Daten,Informative Daten,Erwartete Daten,Im System vorhandene Daten\n" +
		"SG6 RFF,Z78 Referenz auf die Lokationsbündelstruktur,ZD5 Informative Referenz auf die Lokationsbündelstruktur," +
		"ZC7 Erwartete Referenz auf die Lokationsbündelstruktur,ZC8 Im System vorhandene Referenz auf die Lokationsbündelstruktur\n"
	path := filepath.Join(t.TempDir(), "qualitymap.csv")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store := openStore(t)
	res, err := NewPipeline(DerivedFetcher{Path: path}, store).Ingest(context.Background(), "rff")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Snapshot.EntryCount)

	reg, err := store.LoadRegistry(context.Background(), "rff")
	require.NoError(t, err)
	assert.Equal(t, catalog.UTILMDStrom()[8:12], reg.Slice())
}

func TestValidator_MissingLevels(t *testing.T) {
	v := NewValidator()
	v.AddContract(Contract{Table: "t", RequiredLevels: quality.Levels})

	res := v.Validate("t", quality.MustNew([]quality.Entry{{Code: "EO", Description: "Steuerbox"}}))
	assert.False(t, res.IsValid)
	assert.Equal(t, []quality.Level{quality.ImSystemVorhanden, quality.Erwartet, quality.Informativ}, res.MissingLevels)
}
