package quality

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// FindingKind classifies a review finding
type FindingKind string

const (
	// FindingIncompleteFamily - a family lacks one or more levels
	FindingIncompleteFamily FindingKind = "incomplete_family"
	// FindingDescriptionVariant - distinct descriptions that look like the same object
	FindingDescriptionVariant FindingKind = "description_variant"
)

// Finding is one item for domain-expert review. Descriptions are never rewritten;
// a finding only points at them.
type Finding struct {
	Kind FindingKind

	// Descriptions holds the family description, or all variants in first-appearance order
	Descriptions []string

	// Codes of the entries involved, in construction order
	Codes []string

	// Missing levels (incomplete families only)
	Missing []Level
}

// DefaultAbbreviations are the market-role and location abbreviations used in mapping hints.
var DefaultAbbreviations = map[string]string{
	"NeLo": "Netzlokation",
	"MaLo": "Marktlokation",
	"MeLo": "Messlokation",
	"NB":   "Netzbetreiber",
	"LF":   "Lieferant",
	"MSB":  "Messstellenbetreiber",
	"ÜNB":  "Übertragungsnetzbetreiber",
}

// articles and prepositions that do not change which object a hint names
var fillerWords = map[string]bool{
	"der": true, "des": true, "die": true, "dem": true, "den": true,
	"an": true, "am": true,
}

// ReviewOptions tunes Review
type ReviewOptions struct {
	// Abbreviations extends DefaultAbbreviations; keys are matched case-insensitively
	Abbreviations map[string]string

	// SkipIncompleteFamilies omits FindingIncompleteFamily
	SkipIncompleteFamilies bool
}

// Review lists irregularities with default options
func (r *Registry) Review() []Finding {
	return r.ReviewWith(ReviewOptions{})
}

// ReviewWith lists incomplete families followed by description variants.
func (r *Registry) ReviewWith(opts ReviewOptions) []Finding {
	var findings []Finding
	families := r.Families()

	if !opts.SkipIncompleteFamilies {
		for _, f := range families {
			if missing := f.Missing(); len(missing) > 0 {
				findings = append(findings, Finding{
					Kind:         FindingIncompleteFamily,
					Descriptions: []string{f.Description},
					Codes:        f.Codes(),
					Missing:      missing,
				})
			}
		}
	}

	n := newHintNormalizer(opts.Abbreviations)
	var keys []string
	groups := make(map[string][]Family)
	for _, f := range families {
		key := n.normalize(f.Description)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], f)
	}

	for _, key := range keys {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		finding := Finding{Kind: FindingDescriptionVariant}
		for _, f := range group {
			finding.Descriptions = append(finding.Descriptions, f.Description)
			finding.Codes = append(finding.Codes, f.Codes()...)
		}
		findings = append(findings, finding)
	}

	return findings
}

type hintNormalizer struct {
	fold   cases.Caser
	expand map[string][]string
}

func newHintNormalizer(extra map[string]string) *hintNormalizer {
	n := &hintNormalizer{
		fold:   cases.Fold(),
		expand: make(map[string][]string),
	}
	for _, m := range []map[string]string{DefaultAbbreviations, extra} {
		for abbr, long := range m {
			n.expand[n.fold.String(abbr)] = n.tokens(long)
		}
	}
	return n
}

func (n *hintNormalizer) tokens(s string) []string {
	return strings.FieldsFunc(n.fold.String(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '/'
	})
}

// normalize maps a hint to a comparison key: case folded, abbreviations
// expanded, filler words dropped and German inflection endings trimmed.
func (n *hintNormalizer) normalize(desc string) string {
	var out []string
	for _, tok := range n.tokens(desc) {
		words := []string{tok}
		if long, ok := n.expand[tok]; ok {
			words = long
		}
		for _, w := range words {
			if fillerWords[w] {
				continue
			}
			out = append(out, stem(w))
		}
	}
	return strings.Join(out, " ")
}

// stem trims the endings that separate "Kunde"/"Kunden" or "Netzbetreiber"/"Netzbetreibers"
func stem(word string) string {
	for _, suffix := range []string{"s", "n", "e"} {
		if len(word) > 3 {
			word = strings.TrimSuffix(word, suffix)
		}
	}
	return word
}
