// Package db persists quality-map tables as named snapshots in SQLite.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
	"qualitymap/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name        TEXT PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	fingerprint TEXT NOT NULL,
	entry_count INTEGER NOT NULL,
	saved_at    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	snapshot    TEXT NOT NULL REFERENCES snapshots(name) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	code        TEXT NOT NULL,
	quality     TEXT NOT NULL,
	description TEXT NOT NULL,
	PRIMARY KEY (snapshot, code),
	UNIQUE (snapshot, position)
);
`

// ErrSnapshotNotFound is returned when no table is stored under a name
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot describes one stored table
type Snapshot struct {
	ID          uuid.UUID
	Name        string
	Fingerprint string
	EntryCount  int
	SavedAt     time.Time
}

// Store persists snapshots in a SQLite file
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (or creates) a SQLite store and applies the schema
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, qerrors.New(qerrors.TypeConfig, "storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "open sqlite db", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, qerrors.Wrap(qerrors.TypeStorage, "ping sqlite db", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, qerrors.Wrap(qerrors.TypeStorage, "apply schema", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveRegistry replaces the snapshot stored under name with the entries of r.
// The snapshot and its entries are written in one transaction.
func (s *Store) SaveRegistry(ctx context.Context, name string, r *quality.Registry) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, qerrors.New(qerrors.TypeInput, "snapshot name is required")
	}

	snap := &Snapshot{
		ID:          uuid.New(),
		Name:        name,
		Fingerprint: r.Fingerprint().Hex(),
		EntryCount:  r.Len(),
		SavedAt:     time.Now().UTC(),
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE snapshot = ?`, name); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "clear entries", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "clear snapshot", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (name, id, fingerprint, entry_count, saved_at) VALUES (?, ?, ?, ?, ?)`,
		snap.Name, snap.ID.String(), snap.Fingerprint, snap.EntryCount, toMillis(snap.SavedAt),
	); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "insert snapshot", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (snapshot, position, code, quality, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "prepare insert", err)
	}
	defer stmt.Close()

	position := 0
	for e := range r.Entries() {
		if _, err := stmt.ExecContext(ctx, name, position, e.Code, e.Quality.Label(), e.Description); err != nil {
			return nil, qerrors.Wrap(qerrors.TypeStorage, "insert entry "+e.Code, err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "commit", err)
	}

	logging.Named("db").Info("snapshot saved",
		zap.String("name", name),
		zap.Stringer("id", snap.ID),
		zap.Int("entries", snap.EntryCount))
	return snap, nil
}

// GetSnapshot returns the metadata of the snapshot stored under name
func (s *Store) GetSnapshot(ctx context.Context, name string) (*Snapshot, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, fingerprint, entry_count, saved_at FROM snapshots WHERE name = ?`, name)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, qerrors.Wrap(qerrors.TypeNotFound, fmt.Sprintf("snapshot %q", name), ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "get snapshot", err)
	}
	return snap, nil
}

// ListSnapshots returns all stored snapshots ordered by name
func (s *Store) ListSnapshots(ctx context.Context) ([]*Snapshot, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, fingerprint, entry_count, saved_at FROM snapshots ORDER BY name`)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "list snapshots", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.TypeStorage, "scan snapshot", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "list snapshots", err)
	}
	return snapshots, nil
}

// LoadRegistry rebuilds the registry stored under name, in stored order
func (s *Store) LoadRegistry(ctx context.Context, name string) (*quality.Registry, error) {
	if _, err := s.GetSnapshot(ctx, name); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT code, quality, description FROM entries WHERE snapshot = ? ORDER BY position`, name)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "load entries", err)
	}
	defer rows.Close()

	var entries []quality.Entry
	for rows.Next() {
		var code, label, description string
		if err := rows.Scan(&code, &label, &description); err != nil {
			return nil, qerrors.Wrap(qerrors.TypeStorage, "scan entry", err)
		}
		level, err := quality.ParseLevel(label)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.TypeStorage, fmt.Sprintf("entry %s", code), err)
		}
		entries = append(entries, quality.Entry{Code: code, Quality: level, Description: description})
	}
	if err := rows.Err(); err != nil {
		return nil, qerrors.Wrap(qerrors.TypeStorage, "load entries", err)
	}

	return quality.New(entries)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var (
		snap    Snapshot
		id      string
		savedAt int64
	)
	if err := row.Scan(&id, &snap.Name, &snap.Fingerprint, &snap.EntryCount, &savedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", snap.Name, err)
	}
	snap.ID = parsed
	snap.SavedAt = fromMillis(savedAt)
	return &snap, nil
}
