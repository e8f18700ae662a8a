// Package errors provides error classification for the registry and the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates invalid user input (flags, arguments)
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a code absent from the registry
	TypeNotFound Type = "NOT_FOUND"

	// TypeDuplicateCode indicates a code that appears twice in a table
	TypeDuplicateCode Type = "DUPLICATE_CODE"

	// TypeMalformedRow indicates a row of an external table that cannot be loaded
	TypeMalformedRow Type = "MALFORMED_ROW"

	// TypeInvalidEntry indicates an entry rejected at construction time
	TypeInvalidEntry Type = "INVALID_ENTRY"

	// TypeStorage indicates a failure of the SQLite store
	TypeStorage Type = "STORAGE_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Typed is implemented by domain errors that know their category.
type Typed interface {
	ErrorType() Type
}

// Error represents a classified error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorType implements Typed
func (e *Error) ErrorType() Type {
	return e.Type
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a category and message
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Classify returns the category of the first typed error in the chain.
// Errors joined with errors.Join report the category of their first typed member.
func Classify(err error) Type {
	if err == nil {
		return ""
	}
	var typed Typed
	if stderrors.As(err, &typed) {
		return typed.ErrorType()
	}
	return TypeInternal
}

// IsType checks if any error in the chain is of a specific type.
// Unlike Classify it looks past the first typed error and into every
// member of a joined error.
func IsType(err error, t Type) bool {
	if err == nil {
		return false
	}
	if typed, ok := err.(Typed); ok && typed.ErrorType() == t {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return IsType(u.Unwrap(), t)
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if IsType(e, t) {
				return true
			}
		}
	}
	return false
}

// Exit codes returned by the CLI.
const (
	ExitOK           = 0
	ExitInternal     = 1
	ExitInput        = 2
	ExitNotFound     = 3
	ExitDuplicate    = 4
	ExitMalformedRow = 5
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch Classify(err) {
	case TypeInput, TypeConfig:
		return ExitInput
	case TypeNotFound:
		return ExitNotFound
	case TypeDuplicateCode, TypeInvalidEntry:
		return ExitDuplicate
	case TypeMalformedRow:
		return ExitMalformedRow
	default:
		return ExitInternal
	}
}
