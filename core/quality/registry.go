package quality

import (
	"iter"
	"strings"

	"go.uber.org/zap"

	"qualitymap/core/determinism"
	"qualitymap/internal/logging"
)

// Entry is one code of the table
type Entry struct {
	Code        string
	Quality     Level
	Description string
}

// BlankCode reports whether code is empty or whitespace only.
// Such codes are rejected by New and by every table reader.
func BlankCode(code string) bool {
	return strings.TrimSpace(code) == ""
}

// Registry is an immutable code table. It is built once by New and never
// mutated afterwards, so any number of goroutines may query it concurrently.
type Registry struct {
	entries       []Entry
	byCode        map[string]int
	byDescription map[string][]int
	descOrder     []string
}

// New builds a registry from entries in the given order.
// Construction is all-or-nothing: the first duplicate code or invalid entry
// aborts it and no registry is returned.
func New(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries:       make([]Entry, 0, len(entries)),
		byCode:        make(map[string]int, len(entries)),
		byDescription: make(map[string][]int),
	}

	for i, e := range entries {
		if BlankCode(e.Code) {
			return nil, &InvalidEntryError{Index: i, Code: e.Code, Reason: "empty code"}
		}
		if !e.Quality.Valid() {
			return nil, &InvalidEntryError{Index: i, Code: e.Code, Reason: "quality " + e.Quality.String() + " outside the closed set"}
		}
		if first, exists := r.byCode[e.Code]; exists {
			return nil, &DuplicateCodeError{Code: e.Code, FirstIndex: first, Index: i}
		}

		r.byCode[e.Code] = i
		if _, seen := r.byDescription[e.Description]; !seen {
			r.descOrder = append(r.descOrder, e.Description)
		}
		r.byDescription[e.Description] = append(r.byDescription[e.Description], i)
		r.entries = append(r.entries, e)
	}

	logging.Debug("quality registry built",
		zap.Int("entries", len(r.entries)),
		zap.Int("families", len(r.descOrder)))
	return r, nil
}

// MustNew is New for literal tables; it panics on invalid input.
func MustNew(entries []Entry) *Registry {
	r, err := New(entries)
	if err != nil {
		panic("quality: " + err.Error())
	}
	return r
}

// Lookup returns the entry for code. Matching is exact and case-sensitive.
func (r *Registry) Lookup(code string) (Entry, error) {
	idx, ok := r.byCode[code]
	if !ok {
		return Entry{}, &NotFoundError{Code: code}
	}
	return r.entries[idx], nil
}

// QualityOf returns only the quality level of code.
func (r *Registry) QualityOf(code string) (Level, error) {
	e, err := r.Lookup(code)
	if err != nil {
		return Unspecified, err
	}
	return e.Quality, nil
}

// QualityOrDefault returns the level of code, or def when code is absent.
func (r *Registry) QualityOrDefault(code string, def Level) Level {
	if idx, ok := r.byCode[code]; ok {
		return r.entries[idx].Quality
	}
	return def
}

// Contains reports whether code is in the table
func (r *Registry) Contains(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// EntriesWithDescription returns all entries whose description equals text,
// in construction order. The result is a fresh slice.
func (r *Registry) EntriesWithDescription(text string) []Entry {
	idxs := r.byDescription[text]
	result := make([]Entry, 0, len(idxs))
	for _, idx := range idxs {
		result = append(result, r.entries[idx])
	}
	return result
}

// AllCodes yields every code in construction order. The sequence can be
// ranged over any number of times.
func (r *Registry) AllCodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range r.entries {
			if !yield(e.Code) {
				return
			}
		}
	}
}

// Entries yields every entry in construction order.
func (r *Registry) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice returns a copy of all entries in construction order.
func (r *Registry) Slice() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.entries)
}

// Fingerprint returns a hash over the ordered (code, quality, description) triples.
// Two registries have the same fingerprint iff they hold the same table in the same order.
func (r *Registry) Fingerprint() determinism.ContentHash {
	h := determinism.NewContentHasher()
	for _, e := range r.entries {
		h.Add(e.Code, e.Quality.String(), e.Description)
	}
	return h.Sum()
}
