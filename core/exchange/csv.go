package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"qualitymap/core/quality"
	qerrors "qualitymap/internal/errors"
)

var csvHeader = []string{"code", "quality", "description"}

// WriteCSV writes the header row followed by one row per entry.
// Carriage returns are refused: the CSV reader folds "\r\n" inside quoted
// fields to "\n", so they would not survive a reload.
func WriteCSV(w io.Writer, entries []quality.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if strings.ContainsRune(e.Code, '\r') || strings.ContainsRune(e.Description, '\r') {
			return qerrors.Newf(qerrors.TypeInput, "write %s: carriage return cannot be stored in CSV", e.Code)
		}
		if err := cw.Write([]string{e.Code, e.Quality.Label(), e.Description}); err != nil {
			return fmt.Errorf("write %s: %w", e.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV. Columns are matched by header
// name, so their order may differ.
func ReadCSV(r io.Reader, source string) ([]quality.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index, err := csvColumns(header)
	if err != nil {
		return nil, err
	}

	var c collector
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		line, _ := cr.FieldPos(0)

		if len(record) != len(header) {
			c.malformed(line, record[0], fmt.Sprintf("expected %d fields, got %d", len(header), len(record)))
			continue
		}
		c.add(line, Record{
			Code:        record[index["code"]],
			Quality:     record[index["quality"]],
			Description: record[index["description"]],
		})
	}
	return c.result(source)
}

func csvColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range csvHeader {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("header lacks column %q", name)
		}
	}
	return index, nil
}
