// Package exchange reads and writes quality-map tables in their interchange
// formats: CSV, JSON Lines, YAML and HCL, plus a write-only C# annotation
// extract.
package exchange

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an interchange format
type Format string

const (
	// FormatCSV is a header row "code,quality,description" followed by one row per entry
	FormatCSV Format = "csv"

	// FormatJSONL is one JSON object per line
	FormatJSONL Format = "jsonl"

	// FormatYAML is an "entries:" list
	FormatYAML Format = "yaml"

	// FormatHCL is one entry block per code
	FormatHCL Format = "hcl"

	// FormatCSharp is the BO4E annotated enum member list; it cannot be read back
	FormatCSharp Format = "csharp"
)

// Formats lists every supported format
var Formats = []Format{FormatCSV, FormatJSONL, FormatYAML, FormatHCL, FormatCSharp}

// Readable reports whether a reader exists for the format
func (f Format) Readable() bool {
	switch f {
	case FormatCSV, FormatJSONL, FormatYAML, FormatHCL:
		return true
	}
	return false
}

// Ext returns the file extension used for the format
func (f Format) Ext() string {
	if f == FormatCSharp {
		return ".cs"
	}
	return "." + string(f)
}

// ParseFormat parses a format name as given on the command line
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSONL, FormatYAML, FormatHCL, FormatCSharp:
		return f, nil
	case "json", "ndjson":
		return FormatJSONL, nil
	case "yml":
		return FormatYAML, nil
	case "cs", "c#":
		return FormatCSharp, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// FormatFromPath selects the format by file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no extension", path)
	}
	return ParseFormat(ext)
}
