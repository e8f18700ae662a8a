package exchange

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"qualitymap/core/quality"
)

const maxLineSize = 1 << 20

// WriteJSONL writes one JSON object per entry and line
func WriteJSONL(w io.Writer, entries []quality.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, e := range entries {
		if err := enc.Encode(RecordOf(e)); err != nil {
			return fmt.Errorf("write %s: %w", e.Code, err)
		}
	}
	return nil
}

// ReadJSONL reads one object per line. Blank lines are skipped; anything
// after the object on the same line makes the row malformed.
func ReadJSONL(r io.Reader, source string) ([]quality.Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var c collector
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		var rec Record
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			c.malformed(line, "", fmt.Sprintf("invalid JSON: %v", err))
			continue
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			c.malformed(line, rec.Code, "trailing data after JSON object")
			continue
		}
		c.add(line, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return c.result(source)
}
