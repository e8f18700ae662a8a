package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualitymap/core/catalog"
	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "qualitymap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	reg := catalog.Default()

	snap, err := store.SaveRegistry(ctx, "utilmd_strom", reg)
	require.NoError(t, err)
	assert.Equal(t, 181, snap.EntryCount)
	assert.Equal(t, reg.Fingerprint().Hex(), snap.Fingerprint)

	loaded, err := store.LoadRegistry(ctx, "utilmd_strom")
	require.NoError(t, err)
	assert.Equal(t, reg.Slice(), loaded.Slice())

	got, err := store.GetSnapshot(ctx, "utilmd_strom")
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, snap.SavedAt.UnixMilli(), got.SavedAt.UnixMilli())
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	_, err := store.SaveRegistry(ctx, "t", catalog.Default())
	require.NoError(t, err)

	small := quality.MustNew([]quality.Entry{{Code: "EO", Description: "Steuerbox"}})
	_, err = store.SaveRegistry(ctx, "t", small)
	require.NoError(t, err)

	loaded, err := store.LoadRegistry(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, small.Slice(), loaded.Slice())

	snapshots, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 1, snapshots[0].EntryCount)
}

func TestStore_NotFound(t *testing.T) {
	store := openStore(t)

	_, err := store.LoadRegistry(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.Equal(t, qerrors.ExitNotFound, qerrors.ExitCode(err))
}

func TestStore_Validation(t *testing.T) {
	_, err := Open(" ")
	assert.Error(t, err)

	store := openStore(t)
	_, err = store.SaveRegistry(context.Background(), "", catalog.Default())
	assert.Equal(t, qerrors.ExitInput, qerrors.ExitCode(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.SaveRegistry(ctx, "t", catalog.Default())
	assert.ErrorIs(t, err, context.Canceled)
}
