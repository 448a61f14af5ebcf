package table

import "sort"

// Row is one row of a merged table. Values holds one entry per indicator
// column that has data for this (country, iso3, year); indicators absent
// for the row simply have no entry, there is no null-in-place.
type Row struct {
	Country string             `json:"country"`
	ISO3    string             `json:"country_iso3"`
	Year    int                `json:"year"`
	Values  map[string]float64 `json:"values"`
}

// Value returns the named column's value and whether it is present.
func (r Row) Value(column string) (float64, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Complete reports whether every named column is present on the row.
func (r Row) Complete(columns []string) bool {
	for _, c := range columns {
		if _, ok := r.Values[c]; !ok {
			return false
		}
	}
	return true
}

// Merged is the wide table produced by joining canonical tables on
// (country, iso3, year). Columns lists the value columns in join order;
// a column contributed by an empty table is absent entirely.
type Merged struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func (m Merged) IsEmpty() bool {
	return len(m.Rows) == 0
}

// HasColumn reports whether the named value column survived the merge.
func (m Merged) HasColumn(name string) bool {
	for _, c := range m.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// FilterYear returns the rows for a single year.
func (m Merged) FilterYear(year int) Merged {
	out := Merged{Columns: append([]string(nil), m.Columns...)}
	for _, r := range m.Rows {
		if r.Year == year {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// FilterCountries returns the rows for the named countries only.
func (m Merged) FilterCountries(names ...string) Merged {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := Merged{Columns: append([]string(nil), m.Columns...)}
	for _, r := range m.Rows {
		if want[r.Country] {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// MergeInput pairs a canonical table with the semantic column name its
// values take in the merged table.
type MergeInput struct {
	Column string
	Table  Table
}

// OuterJoin progressively joins canonical tables on (country, iso3, year).
// Empty input tables are skipped so a failed fetch degrades the merge
// instead of emptying it; if every table is empty the result is empty.
// Inputs are deduplicated keep-first on (iso3, year) before joining.
//
// The result is freshly allocated: input tables are never aliased or
// mutated, and each row carries its own Values map.
func OuterJoin(inputs []MergeInput) Merged {
	var columns []string
	rows := make(map[Key]Row)

	for _, in := range inputs {
		t := in.Table.Deduplicate()
		if t.IsEmpty() {
			continue
		}
		columns = append(columns, in.Column)
		for _, rec := range t.Records {
			k := rec.Key()
			row, ok := rows[k]
			if !ok {
				row = Row{
					Country: rec.Country,
					ISO3:    rec.ISO3,
					Year:    rec.Year,
					Values:  make(map[string]float64, len(inputs)),
				}
			}
			row.Values[in.Column] = rec.Value
			rows[k] = row
		}
	}

	out := Merged{Columns: columns, Rows: make([]Row, 0, len(rows))}
	for _, row := range rows {
		out.Rows = append(out.Rows, row)
	}
	sort.Slice(out.Rows, func(i, j int) bool {
		if out.Rows[i].Country != out.Rows[j].Country {
			return out.Rows[i].Country < out.Rows[j].Country
		}
		return out.Rows[i].Year < out.Rows[j].Year
	})
	return out
}
