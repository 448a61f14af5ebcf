// Package table holds the canonical tabular value types shared by every
// stage of the pipeline: the four-column canonical table emitted by the
// source adapters and the wide merged table produced by joining them.
//
// All tables are immutable value objects. Every operation returns a fresh
// table and never mutates its input, so a canonical table can safely back
// multiple derived views at once.
package table

import (
	"sort"
	"strconv"
)

// Table is an ordered collection of records sharing one indicator.
type Table struct {
	Indicator string   `json:"indicator"`
	Records   []Record `json:"records"`
}

// New builds a canonical table. Records are sorted by country then year so
// output is deterministic regardless of source ordering.
func New(indicator string, records []Record) Table {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Country != sorted[j].Country {
			return sorted[i].Country < sorted[j].Country
		}
		return sorted[i].Year < sorted[j].Year
	})
	return Table{Indicator: indicator, Records: sorted}
}

// Empty returns an empty canonical table with the standard shape.
func Empty(indicator string) Table {
	return Table{Indicator: indicator}
}

func (t Table) IsEmpty() bool {
	return len(t.Records) == 0
}

func (t Table) Len() int {
	return len(t.Records)
}

// Deduplicate keeps the first record for each (ISO3, year) pair. Adapters
// guarantee uniqueness after cleaning; this enforces it at the merge
// boundary the same way the duplicate policy of a keyed merge would.
func (t Table) Deduplicate() Table {
	seen := make(map[string]bool, len(t.Records))
	kept := make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		k := r.ISO3 + "|" + strconv.Itoa(r.Year)
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, r)
	}
	return Table{Indicator: t.Indicator, Records: kept}
}

// FilterYears returns the records falling inside yr.
func (t Table) FilterYears(yr YearRange) Table {
	if yr.IsZero() {
		return Table{Indicator: t.Indicator, Records: append([]Record(nil), t.Records...)}
	}
	kept := make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		if yr.Contains(r.Year) {
			kept = append(kept, r)
		}
	}
	return Table{Indicator: t.Indicator, Records: kept}
}

// FilterCountries returns the records for the named countries only.
func (t Table) FilterCountries(names ...string) Table {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	kept := make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		if want[r.Country] {
			kept = append(kept, r)
		}
	}
	return Table{Indicator: t.Indicator, Records: kept}
}

// Countries returns the sorted distinct country names present.
func (t Table) Countries() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.Records {
		if !seen[r.Country] {
			seen[r.Country] = true
			names = append(names, r.Country)
		}
	}
	sort.Strings(names)
	return names
}

// Years returns the sorted distinct years present.
func (t Table) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range t.Records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

