package derive

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"qualitymap/core/quality"
)

var umlauts = map[rune]string{
	'Ä': "AE", 'Ö': "OE", 'Ü': "UE",
	'ä': "ae", 'ö': "oe", 'ü': "ue",
	'ß': "ss",
}

// ReplaceUmlauts transliterates German umlauts. An upper-case umlaut
// followed by an ASCII lower-case letter becomes title case (Ü -> Ue),
// otherwise all caps (Ü -> UE).
func ReplaceUmlauts(s string) string {
	runes := []rune(norm.NFC.String(s))
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i, r := range runes {
		repl, ok := umlauts[r]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if (r == 'Ä' || r == 'Ö' || r == 'Ü') && i+1 < len(runes) && isASCIILower(runes[i+1]) {
			repl = repl[:1] + strings.ToLower(repl[1:])
		}
		b.WriteString(repl)
	}
	return b.String()
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// CodeSuffix turns a mapping hint into the identifier suffix used for
// renamed qualifiers: "Produkt-Daten der Netzlokation" -> "Produkt_Daten_der_Netzlokation".
func CodeSuffix(description string) string {
	words := strings.Fields(ReplaceUmlauts(description))
	return strings.ReplaceAll(strings.Join(words, "_"), "-", "_")
}

// RenameQualifier builds the code for a qualifier that occurs more than once.
func RenameQualifier(qualifier, description string) string {
	return qualifier + "_" + CodeSuffix(description)
}

// prefix word stems by column; Unspecified has none
var prefixStems = map[quality.Level]string{
	quality.Informativ:        "informativ",
	quality.Erwartet:          "erwartet",
	quality.ImSystemVorhanden: "im system vorhanden",
}

// StripQualityPrefix removes the quality wording a column repeats in front
// of its descriptions ("Erwarteter Kunde des LF" -> "Kunde des LF").
// As many words are dropped as the stem has.
func StripQualityPrefix(description string, level quality.Level) string {
	stem, ok := prefixStems[level]
	if !ok {
		return description
	}
	if !strings.HasPrefix(strings.ToLower(description), stem) {
		return description
	}
	words := strings.Fields(description)
	n := len(strings.Fields(stem))
	if n > len(words) {
		n = len(words)
	}
	return strings.Join(words[n:], " ")
}
