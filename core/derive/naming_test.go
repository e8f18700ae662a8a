package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qualitymap/core/quality"
)

func TestReplaceUmlauts(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Lokationsbündels", "Lokationsbuendels"},
		{"Überführungszeitreihe", "Ueberfuehrungszeitreihe"},
		{"des ÜNB", "des UENB"},
		{"Zähleinrichtung", "Zaehleinrichtung"},
		{"Straße", "Strasse"},
		{"ÄÖx", "AEOex"},
		{"U\u0308bertragung", "Uebertragung"}, // decomposed input
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplaceUmlauts(tt.in), tt.in)
	}
}

func TestCodeSuffix(t *testing.T) {
	assert.Equal(t, "Zuordnung_Lokation_zum_Objektcode_des_Lokationsbuendels",
		CodeSuffix("Zuordnung Lokation zum Objektcode des Lokationsbündels"))
	assert.Equal(t, "OBIS_Daten_der_Netzlokation", CodeSuffix("OBIS-Daten der Netzlokation"))
	assert.Equal(t, "Daten_der_Technischen_Ressource", CodeSuffix("  Daten der  Technischen Ressource "))
	assert.Equal(t, "Z57_Erwarteter_Hausverwalter", RenameQualifier("Z57", "Erwarteter Hausverwalter"))
}

func TestStripQualityPrefix(t *testing.T) {
	tests := []struct {
		desc  string
		level quality.Level
		want  string
	}{
		{"Erwarteter Kunde des Netzbetreibers", quality.Erwartet, "Kunde des Netzbetreibers"},
		{"Im System vorhandene Korrespondenzanschrift des Kunden des LF", quality.ImSystemVorhanden, "Korrespondenzanschrift des Kunden des LF"},
		{"Informative Daten der Tranche", quality.Informativ, "Daten der Tranche"},
		{"Daten der Tranche", quality.Informativ, "Daten der Tranche"},
		{"Erwartete Termindaten", quality.Unspecified, "Erwartete Termindaten"},
		{"Erwartet", quality.Erwartet, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripQualityPrefix(tt.desc, tt.level), tt.desc)
	}
}
