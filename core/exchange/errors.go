package exchange

import (
	"errors"
	"fmt"
	"strings"

	qerrors "qualitymap/internal/errors"
)

// ErrMalformedRow matches every *MalformedRowError
var ErrMalformedRow = errors.New("malformed row")

// MalformedRowError describes one unusable row of an external table.
// Line is 1-based in the source document.
type MalformedRowError struct {
	Line   int
	Code   string
	Reason string
}

func (e *MalformedRowError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d (code %q): %s", e.Line, e.Code, e.Reason)
}

// Is matches ErrMalformedRow
func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }

// ErrorType implements errors.Typed
func (e *MalformedRowError) ErrorType() qerrors.Type { return qerrors.TypeMalformedRow }

// LoadError collects every malformed row of one document
type LoadError struct {
	Source string
	Rows   []*MalformedRowError
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d malformed rows", e.Source, len(e.Rows))
	for _, row := range e.Rows {
		b.WriteString("\n  ")
		b.WriteString(row.Error())
	}
	return b.String()
}

// Unwrap exposes the individual rows to errors.Is and errors.As
func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Rows))
	for i, row := range e.Rows {
		errs[i] = row
	}
	return errs
}

// ErrorType implements errors.Typed
func (e *LoadError) ErrorType() qerrors.Type { return qerrors.TypeMalformedRow }
