package derive_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualitymap/core/catalog"
	"qualitymap/core/derive"
	"qualitymap/core/quality"
)

// The first three qualifiers of the UTILMD Strom quality map, spread over
// five segment-group rows as in the AHB.
const utilmdExcerpt = `"Qualität

Segmentgruppe",Bestellte Daten,Gültige Daten,Informative Daten,Erwartete Daten,Im System vorhandene Daten
SG8 SEQ Termine,,Z50 Termindaten der Marktlokation,,Z51 Erwartete Termindaten der Marktlokation,Z52 Im System vorhandene Termindaten der Marktlokation
SG8 SEQ Netzlokation,Z33 Bestellte Netzlokation,Z51 Daten der Netzlokation,,,
SG8 SEQ Technische Ressource,,Z52 Daten der Technischen Ressource,,,
SG12 NAD Kunde NB,,,,"Z51 Erwarteter Kunde des
Netzbetreibers",Z52 Im System vorhandener Kunde des Netzbetreibers
SG12 NAD Korrespondenz,,,,,Z50 Im System vorhandene Korrespondenzanschrift des Kunden des LF
`

func TestReadTableCSV(t *testing.T) {
	table, err := derive.ReadTableCSV(strings.NewReader(utilmdExcerpt))
	require.NoError(t, err)
	require.Len(t, table.Rows, 5)

	assert.Equal(t, "SG8 SEQ Termine", table.Rows[0].SegmentGroup)
	assert.Equal(t, []derive.Cell{{Qualifier: "Z33", Description: "Bestellte Netzlokation"}}, table.Rows[1].Bestellte)
	assert.Equal(t,
		[]derive.Cell{{Qualifier: "Z51", Description: "Erwarteter Kunde des Netzbetreibers"}},
		table.Rows[3].Cells(quality.Erwartet),
		"continuation line joins the previous description")
}

func TestEntries_ReproducesBuiltinTable(t *testing.T) {
	table, err := derive.ReadTableCSV(strings.NewReader(utilmdExcerpt))
	require.NoError(t, err)

	entries, err := derive.Entries(table)
	require.NoError(t, err)

	assert.Equal(t, catalog.UTILMDStrom()[:8], entries)
}

func TestEntries_SingleOccurrenceKeepsBareQualifier(t *testing.T) {
	table := &derive.Table{Rows: []derive.Row{{
		SegmentGroup: "SG6 RFF",
		Columns: map[quality.Level][]derive.Cell{
			quality.Unspecified:       {{Qualifier: "Z78", Description: "Referenz auf die Lokationsbündelstruktur"}},
			quality.Informativ:        {{Qualifier: "ZD5", Description: "Informative Referenz auf die Lokationsbündelstruktur"}},
			quality.Erwartet:          {{Qualifier: "ZC7", Description: "Erwartete Referenz auf die Lokationsbündelstruktur"}},
			quality.ImSystemVorhanden: {{Qualifier: "ZC8", Description: "Im System vorhandene Referenz auf die Lokationsbündelstruktur"}},
		},
	}}}

	r, err := derive.Registry(table)
	require.NoError(t, err)

	family := r.EntriesWithDescription("Referenz auf die Lokationsbündelstruktur")
	require.Len(t, family, 4)
	assert.Equal(t, catalog.UTILMDStrom()[8:12], family)
}

func TestEntries_DuplicateAfterRename(t *testing.T) {
	table := &derive.Table{Rows: []derive.Row{
		{Columns: map[quality.Level][]derive.Cell{
			quality.Unspecified: {{Qualifier: "Z01", Description: "Wandlerdaten"}},
			quality.Erwartet:    {{Qualifier: "Z01", Description: "Kunde"}},
		}},
		{Columns: map[quality.Level][]derive.Cell{
			quality.Informativ: {{Qualifier: "Z01", Description: "Kunde"}},
		}},
	}}

	_, err := derive.Entries(table)
	require.ErrorIs(t, err, quality.ErrDuplicateCode)

	var dup *quality.DuplicateCodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Z01_Kunde", dup.Code)
}

func TestReadTableCSV_MissingColumn(t *testing.T) {
	_, err := derive.ReadTableCSV(strings.NewReader("Segmentgruppe,Gültige Daten,Erwartete Daten\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Informative Daten")
}
