package quality

import (
	"github.com/shopspring/decimal"

	"qualitymap/core/determinism"
)

// Family groups the entries that share one description: the same market
// object at different quality levels. Families need not be complete.
type Family struct {
	Description string
	Entries     []Entry
}

// Levels returns the levels present, in entry order
func (f Family) Levels() []Level {
	levels := make([]Level, 0, len(f.Entries))
	for _, e := range f.Entries {
		levels = append(levels, e.Quality)
	}
	return levels
}

// Has reports whether some entry of the family carries level
func (f Family) Has(level Level) bool {
	for _, e := range f.Entries {
		if e.Quality == level {
			return true
		}
	}
	return false
}

// Missing returns the levels no entry carries, in declaration order
func (f Family) Missing() []Level {
	var missing []Level
	for _, l := range Levels {
		if !f.Has(l) {
			missing = append(missing, l)
		}
	}
	return missing
}

// Complete reports whether all four levels are present
func (f Family) Complete() bool {
	return len(f.Missing()) == 0
}

// Codes returns the codes of the family in entry order
func (f Family) Codes() []string {
	codes := make([]string, len(f.Entries))
	for i, e := range f.Entries {
		codes[i] = e.Code
	}
	return codes
}

// Families returns one family per distinct description, ordered by the
// first appearance of the description.
func (r *Registry) Families() []Family {
	families := make([]Family, 0, len(r.descOrder))
	for _, desc := range r.descOrder {
		families = append(families, Family{
			Description: desc,
			Entries:     r.EntriesWithDescription(desc),
		})
	}
	return families
}

// Stats holds registry statistics
type Stats struct {
	Total             int
	ByLevel           map[Level]int
	Shares            map[Level]decimal.Decimal // percent of Total, two places
	Families          int
	CompleteFamilies  int
	SingletonFamilies int
}

// Stats returns registry statistics
func (r *Registry) Stats() Stats {
	stats := Stats{
		Total:   len(r.entries),
		ByLevel: make(map[Level]int, len(Levels)),
		Shares:  make(map[Level]decimal.Decimal, len(Levels)),
	}

	for _, e := range r.entries {
		stats.ByLevel[e.Quality]++
	}
	for _, l := range Levels {
		stats.Shares[l] = determinism.Percent(stats.ByLevel[l], stats.Total)
	}

	for _, f := range r.Families() {
		stats.Families++
		if f.Complete() {
			stats.CompleteFamilies++
		}
		if len(f.Entries) == 1 {
			stats.SingletonFamilies++
		}
	}

	return stats
}
