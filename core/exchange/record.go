package exchange

import "qualitymap/core/quality"

// Record is the external shape of an entry. Quality is the level label,
// empty for UNSPECIFIED.
type Record struct {
	Code        string `json:"code" yaml:"code"`
	Quality     string `json:"quality,omitempty" yaml:"quality,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// RecordOf converts an entry to its external shape
func RecordOf(e quality.Entry) Record {
	return Record{Code: e.Code, Quality: e.Quality.Label(), Description: e.Description}
}

// Entry converts the record back, reporting why it is unusable
func (r Record) Entry() (quality.Entry, string) {
	if quality.BlankCode(r.Code) {
		return quality.Entry{}, "missing code"
	}
	level, err := quality.ParseLevel(r.Quality)
	if err != nil {
		return quality.Entry{}, err.Error()
	}
	return quality.Entry{Code: r.Code, Quality: level, Description: r.Description}, ""
}

// collector gathers entries and malformed rows while a document is read
type collector struct {
	entries []quality.Entry
	rows    []*MalformedRowError
}

func (c *collector) add(line int, r Record) {
	e, reason := r.Entry()
	if reason != "" {
		c.malformed(line, r.Code, reason)
		return
	}
	c.entries = append(c.entries, e)
}

func (c *collector) malformed(line int, code, reason string) {
	c.rows = append(c.rows, &MalformedRowError{Line: line, Code: code, Reason: reason})
}

func (c *collector) result(source string) ([]quality.Entry, error) {
	if len(c.rows) > 0 {
		return nil, &LoadError{Source: source, Rows: c.rows}
	}
	return c.entries, nil
}
