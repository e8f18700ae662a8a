package cmd

import (
	"fmt"

	qerrors "qualitymap/internal/errors"
)

// ruleViolations is returned once the individual violations were printed
type ruleViolations struct {
	count int
}

func (e *ruleViolations) Error() string {
	return fmt.Sprintf("%d rule violations", e.count)
}

func (e *ruleViolations) ErrorType() qerrors.Type { return qerrors.TypeInvalidEntry }

// tablesDiffer makes diff --exit-code fail without being an internal error
type tablesDiffer struct {
	summary string
}

func (e *tablesDiffer) Error() string {
	return "tables differ: " + e.summary
}
