// Package ingestion - Quality-map ingestion pipeline
// Strictly separated from lookup: fetch → build → govern → store
package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"qualitymap/core/quality"
	"qualitymap/db"
	qerrors "qualitymap/internal/errors"
	"qualitymap/internal/logging"
)

// Fetcher produces the entries of one table
type Fetcher interface {
	// Source names where the entries come from
	Source() string

	// Fetch returns the entries in table order
	Fetch(ctx context.Context) ([]quality.Entry, error)
}

// Result is the outcome of one ingestion
type Result struct {
	Snapshot   *db.Snapshot
	Validation *ValidationResult

	// Unchanged is set when the stored snapshot already had the same content
	Unchanged bool
}

// Pipeline orchestrates the full ingestion flow
type Pipeline struct {
	fetcher   Fetcher
	store     *db.Store
	validator *Validator

	// Strict refuses to store a table that violates its contract
	Strict bool
}

// NewPipeline creates a new ingestion pipeline with the default contracts
func NewPipeline(fetcher Fetcher, store *db.Store) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		store:     store,
		validator: NewValidator(),
	}
}

// Validator exposes the contract validator for customisation
func (p *Pipeline) Validator() *Validator {
	return p.validator
}

// Ingest fetches the table, checks it against the contract for name and
// stores it as snapshot name. A table whose content matches the stored
// snapshot is not written again.
func (p *Pipeline) Ingest(ctx context.Context, name string) (*Result, error) {
	log := logging.Named("ingestion")

	// Fetch
	entries, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.fetcher.Source(), err)
	}

	// Build
	reg, err := quality.New(entries)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", p.fetcher.Source(), err)
	}

	// Govern
	validation := p.validator.Validate(name, reg)
	if !validation.IsValid {
		log.Warn("contract violated",
			zap.String("name", name),
			zap.Strings("errors", validation.Errors))
		if p.Strict {
			return &Result{Validation: validation}, qerrors.Newf(qerrors.TypeInvalidEntry,
				"%s violates its contract: %d errors", name, len(validation.Errors))
		}
	}

	// Skip unchanged content
	existing, err := p.store.GetSnapshot(ctx, name)
	switch {
	case err == nil && existing.Fingerprint == reg.Fingerprint().Hex():
		log.Info("snapshot unchanged", zap.String("name", name), zap.Stringer("id", existing.ID))
		return &Result{Snapshot: existing, Validation: validation, Unchanged: true}, nil
	case err != nil && !qerrors.IsType(err, qerrors.TypeNotFound):
		return nil, err
	}

	// Store
	snap, err := p.store.SaveRegistry(ctx, name, reg)
	if err != nil {
		return nil, err
	}
	return &Result{Snapshot: snap, Validation: validation}, nil
}
