package derive

import (
	"go.uber.org/zap"

	"qualitymap/core/quality"
	"qualitymap/internal/logging"
)

type pending struct {
	entry    quality.Entry
	position int
}

// Entries derives the code entries of a quality map.
//
// Columns are read Gültige, Informative, Erwartete, Im System vorhandene;
// ordered data is ignored. The first occurrence of a qualifier keeps the bare
// qualifier as its code. On the second occurrence the first entry is renamed
// after its (prefix-stripped) hint and every further entry is named after its
// raw hint. Entries are returned grouped by qualifier in first-seen order.
func Entries(table *Table) ([]quality.Entry, error) {
	log := logging.Named("derive")

	groups := make(map[string][]*pending)
	var order []string
	position := 0

	for _, row := range table.Rows {
		for _, level := range columnOrder {
			for _, cell := range row.Cells(level) {
				position++
				p := &pending{
					position: position,
					entry: quality.Entry{
						Code:        cell.Qualifier,
						Quality:     level,
						Description: StripQualityPrefix(cell.Description, level),
					},
				}

				group, seen := groups[cell.Qualifier]
				if !seen {
					order = append(order, cell.Qualifier)
					groups[cell.Qualifier] = []*pending{p}
					continue
				}

				if len(group) == 1 {
					first := group[0]
					first.entry.Code = RenameQualifier(cell.Qualifier, first.entry.Description)
				}
				p.entry.Code = RenameQualifier(cell.Qualifier, cell.Description)
				for _, other := range group {
					if other.entry.Code == p.entry.Code {
						return nil, &quality.DuplicateCodeError{
							Code:       p.entry.Code,
							FirstIndex: other.position - 1,
							Index:      p.position - 1,
						}
					}
				}

				log.Debug("qualifier renamed",
					logging.Code(p.entry.Code),
					zap.String("segment_group", row.SegmentGroup),
					zap.Stringer("quality", level))
				groups[cell.Qualifier] = append(group, p)
			}
		}
	}

	entries := make([]quality.Entry, 0, position)
	for _, qualifier := range order {
		for _, p := range groups[qualifier] {
			entries = append(entries, p.entry)
		}
	}

	log.Info("quality map derived",
		zap.Int("rows", len(table.Rows)),
		zap.Int("entries", len(entries)))
	return entries, nil
}

// Registry derives the entries of table and builds a registry from them.
func Registry(table *Table) (*quality.Registry, error) {
	entries, err := Entries(table)
	if err != nil {
		return nil, err
	}
	return quality.New(entries)
}
