package exchange

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
	"qualitymap/internal/logging"
)

// Write renders entries in the given format
func Write(w io.Writer, format Format, entries []quality.Entry) error {
	var err error
	switch format {
	case FormatCSV:
		err = WriteCSV(w, entries)
	case FormatJSONL:
		err = WriteJSONL(w, entries)
	case FormatYAML:
		err = WriteYAML(w, entries)
	case FormatHCL:
		err = WriteHCL(w, entries)
	case FormatCSharp:
		err = WriteCSharp(w, entries)
	default:
		return qerrors.Newf(qerrors.TypeInput, "unsupported format %q", format)
	}
	if err != nil {
		if qerrors.Classify(err) != qerrors.TypeInternal {
			return err
		}
		return qerrors.Wrap(qerrors.TypeInternal, "write "+string(format), err)
	}

	logging.Named("exchange").Debug("entries written",
		zap.String("format", string(format)),
		zap.Int("entries", len(entries)))
	return nil
}

// Read parses entries in the given format. Source names the document in
// error messages. Every malformed row is reported in one *LoadError.
func Read(r io.Reader, format Format, source string) ([]quality.Entry, error) {
	var (
		entries []quality.Entry
		err     error
	)
	switch format {
	case FormatCSV:
		entries, err = ReadCSV(r, source)
	case FormatJSONL:
		entries, err = ReadJSONL(r, source)
	case FormatYAML:
		entries, err = ReadYAML(r, source)
	case FormatHCL:
		entries, err = ReadHCL(r, source)
	case FormatCSharp:
		return nil, qerrors.New(qerrors.TypeInput, "the C# extract cannot be read back")
	default:
		return nil, qerrors.Newf(qerrors.TypeInput, "unsupported format %q", format)
	}

	// unreadable documents are bad input, malformed rows keep their own type
	if err != nil && qerrors.Classify(err) == qerrors.TypeInternal {
		return nil, qerrors.Wrap(qerrors.TypeInput, "read "+source, err)
	}
	return entries, err
}

// Load reads entries and builds a registry from them
func Load(r io.Reader, format Format, source string) (*quality.Registry, error) {
	entries, err := Read(r, format, source)
	if err != nil {
		return nil, err
	}
	reg, err := quality.New(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logging.Named("exchange").Info("table loaded",
		zap.String("path", source),
		zap.String("format", string(format)),
		zap.Int("entries", reg.Len()))
	return reg, nil
}

// LoadFile loads a table from disk, selecting the format by extension
func LoadFile(path string) (*quality.Registry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "load table", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.TypeInput, "open table", err)
	}
	defer f.Close()

	return Load(f, format, path)
}

// WriteFile writes entries to path, creating or truncating it
func WriteFile(path string, format Format, entries []quality.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return qerrors.Wrap(qerrors.TypeInput, "create output", err)
	}
	if err := Write(f, format, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
