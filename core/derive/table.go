// Package derive turns a scraped AHB quality-map table into code entries.
//
// The quality map lists, per segment group, the qualifiers used for each
// quality column. A qualifier that occurs in more than one column is split
// into several codes suffixed with their mapping hint, so every code of the
// result is unique.
package derive

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"qualitymap/core/quality"
)

// Cell is one qualifier listed in a quality column
type Cell struct {
	Qualifier   string
	Description string
}

// Row is one segment group of the quality map
type Row struct {
	SegmentGroup string

	// Bestellte lists ordered data; it never produces codes
	Bestellte []Cell

	// Columns holds the cells of the four quality columns
	Columns map[quality.Level][]Cell
}

// Cells returns the cells of one quality column
func (r Row) Cells(level quality.Level) []Cell {
	return r.Columns[level]
}

// Table is a scraped quality map
type Table struct {
	Rows []Row
}

// Column titles as they appear in the AHB.
const (
	ColumnSegmentGroup = "Qualität \\ Segmentgruppe"
	ColumnBestellte    = "Bestellte Daten"
)

// columnOrder is the order in which quality columns are read
var columnOrder = []quality.Level{
	quality.Unspecified,
	quality.Informativ,
	quality.Erwartet,
	quality.ImSystemVorhanden,
}

var qualifierPattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)

// ReadTableCSV reads a quality map exported by the scraper: a header row with
// the segment-group column first, then one column per quality. Each cell holds
// one "<qualifier> <description>" per line; a line that does not start with a
// qualifier continues the description of the line before.
func ReadTableCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns, bestellte, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	table := &Table{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := Row{
			SegmentGroup: strings.TrimSpace(field(record, 0)),
			Columns:      make(map[quality.Level][]Cell, len(columnOrder)),
		}
		if bestellte >= 0 {
			row.Bestellte = parseCells(field(record, bestellte))
		}
		for level, idx := range columns {
			row.Columns[level] = parseCells(field(record, idx))
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func mapHeader(header []string) (map[quality.Level]int, int, error) {
	if len(header) == 0 {
		return nil, -1, fmt.Errorf("empty header")
	}

	columns := make(map[quality.Level]int, len(columnOrder))
	bestellte := -1
	for i, title := range header[1:] {
		title = normalizeTitle(title)
		if title == ColumnBestellte {
			bestellte = i + 1
			continue
		}
		for _, level := range columnOrder {
			if title == level.Column() {
				columns[level] = i + 1
			}
		}
	}

	for _, level := range columnOrder {
		if _, ok := columns[level]; !ok {
			return nil, -1, fmt.Errorf("header lacks column %q", level.Column())
		}
	}
	return columns, bestellte, nil
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

func field(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

func parseCells(text string) []Cell {
	var cells []Cell
	for _, line := range strings.Split(norm.NFC.String(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		qualifier, rest, _ := strings.Cut(line, " ")
		if qualifierPattern.MatchString(qualifier) {
			cells = append(cells, Cell{Qualifier: qualifier, Description: strings.TrimSpace(rest)})
			continue
		}
		if len(cells) > 0 {
			last := &cells[len(cells)-1]
			last.Description = strings.TrimSpace(last.Description + " " + line)
		}
	}
	return cells
}
