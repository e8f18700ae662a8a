package quality

import (
	"errors"
	"fmt"

	qerrors "qualitymap/internal/errors"
)

// Sentinels for errors.Is.
var (
	ErrDuplicateCode = errors.New("duplicate code")
	ErrNotFound      = errors.New("code not found")
	ErrInvalidEntry  = errors.New("invalid entry")
)

// DuplicateCodeError is returned when a code appears twice in the input.
// Indexes are zero-based positions in the input sequence.
type DuplicateCodeError struct {
	Code       string
	FirstIndex int
	Index      int
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("duplicate code %q at position %d (first seen at %d)", e.Code, e.Index, e.FirstIndex)
}

// Is matches ErrDuplicateCode
func (e *DuplicateCodeError) Is(target error) bool { return target == ErrDuplicateCode }

// ErrorType implements errors.Typed
func (e *DuplicateCodeError) ErrorType() qerrors.Type { return qerrors.TypeDuplicateCode }

// NotFoundError is returned by lookups for an absent code.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("code %q not found", e.Code)
}

// Is matches ErrNotFound
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ErrorType implements errors.Typed
func (e *NotFoundError) ErrorType() qerrors.Type { return qerrors.TypeNotFound }

// InvalidEntryError is returned for an entry with an empty code or an unknown level.
type InvalidEntryError struct {
	Index  int
	Code   string
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid entry at position %d (code %q): %s", e.Index, e.Code, e.Reason)
}

// Is matches ErrInvalidEntry
func (e *InvalidEntryError) Is(target error) bool { return target == ErrInvalidEntry }

// ErrorType implements errors.Typed
func (e *InvalidEntryError) ErrorType() qerrors.Type { return qerrors.TypeInvalidEntry }
