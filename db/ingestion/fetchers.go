package ingestion

import (
	"context"
	"fmt"
	"os"

	"qualitymap/core/catalog"
	"qualitymap/core/derive"
	"qualitymap/core/exchange"
	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
)

// BuiltinFetcher reads a table compiled into the binary
type BuiltinFetcher struct {
	Table string
}

// Source returns the builtin table name
func (f BuiltinFetcher) Source() string {
	return "builtin:" + f.Table
}

// Fetch returns the builtin entries
func (f BuiltinFetcher) Fetch(ctx context.Context) ([]quality.Entry, error) {
	table, ok := catalog.Tables[f.Table]
	if !ok {
		return nil, qerrors.Newf(qerrors.TypeInput, "unknown builtin table %q", f.Table)
	}
	return table.Entries(), ctx.Err()
}

// FileFetcher reads an interchange file; the format follows the extension
type FileFetcher struct {
	Path string
}

// Source returns the file path
func (f FileFetcher) Source() string {
	return f.Path
}

// Fetch reads and parses the file
func (f FileFetcher) Fetch(ctx context.Context) ([]quality.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := exchange.FormatFromPath(f.Path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "fetch", err)
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "open", err)
	}
	defer file.Close()

	return exchange.Read(file, format, f.Path)
}

// DerivedFetcher derives the entries from a scraped quality-map CSV
type DerivedFetcher struct {
	Path string
}

// Source returns the quality-map path
func (f DerivedFetcher) Source() string {
	return "derived:" + f.Path
}

// Fetch reads the quality map and derives its entries
func (f DerivedFetcher) Fetch(ctx context.Context) ([]quality.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "open", err)
	}
	defer file.Close()

	table, err := derive.ReadTableCSV(file)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, fmt.Sprintf("read quality map %s", f.Path), err)
	}
	return derive.Entries(table)
}
