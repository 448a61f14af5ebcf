// Package score computes the composite development & equality index:
// per-year min-max normalization of a fixed set of indicators summed into
// one fairness score per (country, year).
package score

import (
	"sort"

	"fairdex/domain/table"
	"fairdex/internal/notify"

	"github.com/montanaflynn/stats"
)

// Component is one indicator feeding the composite score.
type Component struct {
	// Column is the indicator's column name in the merged table.
	Column string
	// Invert flags indicators where lower raw values are better
	// (inequality indexes). Such percentage-scaled values are transformed
	// to 100 − value before normalizing, so every normalized component
	// points the same direction: higher is better.
	Invert bool
}

// NormColumn is the name of the component's normalized output column.
func (c Component) NormColumn() string {
	return "norm_" + c.Column
}

// DefaultComponents is the six-indicator set of the development & equality
// index.
func DefaultComponents() []Component {
	return []Component{
		{Column: "gini", Invert: true},
		{Column: "gender_ratio_labor"},
		{Column: "governance"},
		{Column: "school_enrollment"},
		{Column: "life_expectancy"},
		{Column: "access_to_electricity"},
	}
}

// Row is one scored row: the raw merged values plus one normalized value
// per component and the summed fairness score.
type Row struct {
	Country       string             `json:"country"`
	ISO3          string             `json:"country_iso3"`
	Year          int                `json:"year"`
	Raw           map[string]float64 `json:"raw"`
	Normalized    map[string]float64 `json:"normalized"`
	FairnessScore float64            `json:"fairness_score"`
}

// ComponentRow is the narrow trend-view row: identifying columns plus the
// normalized components only.
type ComponentRow struct {
	Country    string             `json:"country"`
	ISO3       string             `json:"country_iso3"`
	Year       int                `json:"year"`
	Normalized map[string]float64 `json:"normalized"`
}

// Result pairs the full scored table with the narrow components table.
type Result struct {
	Full       []Row          `json:"full"`
	Components []ComponentRow `json:"components"`
}

// Fairness scores a merged table. Rows missing any component column are
// dropped first; the survivors are partitioned by year and each partition
// is normalized independently against its own cross-section.
//
// If any component column is entirely absent from the merge (an upstream
// indicator unavailable), a warning is reported and both result tables are
// empty: no partial score is computed.
func Fairness(m table.Merged, components []Component, n notify.Notifier) Result {
	if n == nil {
		n = notify.NewLog("Score")
	}

	for _, c := range components {
		if !m.HasColumn(c.Column) {
			n.Warnf("component %s missing from merged data, no score computed", c.Column)
			return Result{}
		}
	}

	required := make([]string, len(components))
	for i, c := range components {
		required[i] = c.Column
	}

	complete := make([]table.Row, 0, len(m.Rows))
	for _, row := range m.Rows {
		if row.Complete(required) {
			complete = append(complete, row)
		}
	}
	if len(complete) == 0 {
		n.Warnf("no rows carried a complete set of all %d components", len(components))
		return Result{}
	}

	var result Result
	for _, group := range partitionByYear(complete) {
		result.Full = append(result.Full, scoreYear(group, components)...)
	}

	sort.Slice(result.Full, func(i, j int) bool {
		if result.Full[i].Country != result.Full[j].Country {
			return result.Full[i].Country < result.Full[j].Country
		}
		return result.Full[i].Year < result.Full[j].Year
	})

	result.Components = make([]ComponentRow, len(result.Full))
	for i, row := range result.Full {
		normalized := make(map[string]float64, len(row.Normalized))
		for k, v := range row.Normalized {
			normalized[k] = v
		}
		result.Components[i] = ComponentRow{
			Country:    row.Country,
			ISO3:       row.ISO3,
			Year:       row.Year,
			Normalized: normalized,
		}
	}
	return result
}

// partitionByYear splits rows into per-year groups. Partitions are
// independent; there is no ordering dependency between them.
func partitionByYear(rows []table.Row) map[int][]table.Row {
	groups := make(map[int][]table.Row)
	for _, row := range rows {
		groups[row.Year] = append(groups[row.Year], row)
	}
	return groups
}

// scoreYear transforms and normalizes one year's cross-section.
func scoreYear(rows []table.Row, components []Component) []Row {
	// Transform first so inverted indicators point the right way, then
	// normalize against this year's min/max.
	transformed := make(map[string][]float64, len(components))
	for _, c := range components {
		values := make([]float64, len(rows))
		for i, row := range rows {
			v := row.Values[c.Column]
			if c.Invert {
				v = 100 - v
			}
			values[i] = v
		}
		transformed[c.Column] = values
	}

	scored := make([]Row, len(rows))
	for i, row := range rows {
		raw := make(map[string]float64, len(components))
		for _, c := range components {
			raw[c.Column] = row.Values[c.Column]
		}
		scored[i] = Row{
			Country:    row.Country,
			ISO3:       row.ISO3,
			Year:       row.Year,
			Raw:        raw,
			Normalized: make(map[string]float64, len(components)),
		}
	}

	for _, c := range components {
		normalized := normalize(transformed[c.Column])
		for i := range scored {
			scored[i].Normalized[c.NormColumn()] = normalized[i]
			scored[i].FairnessScore += normalized[i]
		}
	}
	return scored
}

// normalize min-max scales values to [0,1] against their own spread. A
// zero-variance group (including a single country) maps every value to
// 0.5, a documented arbitrary tie-break rather than an error.
func normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	min, errMin := stats.Min(values)
	max, errMax := stats.Max(values)
	if errMin != nil || errMax != nil || max == min {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}

	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}
