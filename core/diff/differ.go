// Package diff compares two quality-map tables.
// Entries are matched by code; the rendered tables are also compared line by
// line so reordering shows up.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"qualitymap/core/quality"
)

// Result is the complete diff between two tables
type Result struct {
	Added   []*EntryDiff
	Removed []*EntryDiff
	Changed []*EntryDiff

	UnchangedCount int

	// OrderChanged is set when both tables hold the same entries in a
	// different order
	OrderChanged bool

	lines []diffmatchpatch.Diff
}

// EntryDiff describes the change of one code
type EntryDiff struct {
	Code       string
	ChangeType ChangeType

	Before *quality.Entry
	After  *quality.Entry

	QualityChanged     bool
	DescriptionChanged bool
}

// ChangeType indicates the type of change
type ChangeType int

const (
	ChangeAdded     ChangeType = iota // code only in the second table
	ChangeRemoved                     // code only in the first table
	ChangeModified                    // quality or hint differ
	ChangeUnchanged                   // identical entry
)

// String returns the change type name
func (c ChangeType) String() string {
	switch c {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	case ChangeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Tables diffs before against after. Added and changed entries follow the
// order of after, removed entries the order of before.
func Tables(before, after *quality.Registry) *Result {
	result := &Result{}

	for e := range after.Entries() {
		old, err := before.Lookup(e.Code)
		if err != nil {
			result.Added = append(result.Added, &EntryDiff{Code: e.Code, ChangeType: ChangeAdded, After: &e})
			continue
		}
		if old == e {
			result.UnchangedCount++
			continue
		}
		result.Changed = append(result.Changed, &EntryDiff{
			Code:               e.Code,
			ChangeType:         ChangeModified,
			Before:             &old,
			After:              &e,
			QualityChanged:     old.Quality != e.Quality,
			DescriptionChanged: old.Description != e.Description,
		})
	}

	for e := range before.Entries() {
		if !after.Contains(e.Code) {
			result.Removed = append(result.Removed, &EntryDiff{Code: e.Code, ChangeType: ChangeRemoved, Before: &e})
		}
	}

	result.lines = diffLines(Render(before), Render(after))
	result.OrderChanged = result.sameEntries() && !allEqual(result.lines)
	return result
}

func (r *Result) sameEntries() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Equal reports whether both tables hold the same entries in the same order
func (r *Result) Equal() bool {
	return r.sameEntries() && !r.OrderChanged
}

// Summary returns a one-line count of the changes
func (r *Result) Summary() string {
	s := fmt.Sprintf("%d added, %d removed, %d changed, %d unchanged",
		len(r.Added), len(r.Removed), len(r.Changed), r.UnchangedCount)
	if r.OrderChanged {
		s += ", order changed"
	}
	return s
}

// Pretty renders the line diff of both tables. Lines are prefixed with
// "+ ", "- " or two spaces.
func (r *Result) Pretty() string {
	var b strings.Builder
	for _, d := range r.lines {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
		}
	}
	return b.String()
}

// Render returns the canonical rendering of a table, one
// "code<TAB>label<TAB>description" line per entry
func Render(r *quality.Registry) string {
	var b strings.Builder
	for e := range r.Entries() {
		b.WriteString(e.Code)
		b.WriteByte('\t')
		b.WriteString(e.Quality.Label())
		b.WriteByte('\t')
		b.WriteString(e.Description)
		b.WriteByte('\n')
	}
	return b.String()
}

func diffLines(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func allEqual(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	return true
}
