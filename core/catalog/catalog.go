// Package catalog - Builtin quality-map tables
// Holds the literal code tables shipped with the binary and the
// process-wide default registry built from them.
package catalog

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"qualitymap/core/quality"
	"qualitymap/internal/logging"
)

// Source describes the AHB document a builtin table was taken from
type Source struct {
	Name      string
	Document  string
	ValidFrom string
	ValidTo   string
}

// UTILMDStromSource is the origin of UTILMDStrom
var UTILMDStromSource = Source{
	Name:      "utilmd_strom",
	Document:  "UTILMD AHB Strom 2.0 informatorische Lesefassung",
	ValidFrom: "2025-04-04",
	ValidTo:   "9999-12-31",
}

// Table pairs a source with its entries
type Table struct {
	Source  Source
	Entries func() []quality.Entry
}

// Tables lists the builtin tables by name
var Tables = map[string]Table{
	UTILMDStromSource.Name: {Source: UTILMDStromSource, Entries: UTILMDStrom},
}

var (
	defaultOnce     sync.Once
	defaultRegistry *quality.Registry
)

// Default returns the registry of the builtin UTILMD Strom table.
// It is built and validated on first use and shared afterwards.
func Default() *quality.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = quality.MustNew(UTILMDStrom())
		MustValidate(defaultRegistry)
		logging.Debug("builtin catalog ready",
			zap.String("table", UTILMDStromSource.Name),
			zap.Int("entries", defaultRegistry.Len()))
	})
	return defaultRegistry
}

// Build returns a fresh registry for a builtin table by name
func Build(name string) (*quality.Registry, error) {
	table, ok := Tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown builtin table %q", name)
	}
	r, err := quality.New(table.Entries())
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return r, nil
}
