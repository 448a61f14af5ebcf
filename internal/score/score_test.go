package score

import (
	"testing"

	"fairdex/domain/table"
	"fairdex/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergedRow(country, iso3 string, year int, values map[string]float64) table.Row {
	return table.Row{Country: country, ISO3: iso3, Year: year, Values: values}
}

func twoComponents() []Component {
	return []Component{
		{Column: "gini", Invert: true},
		{Column: "life_expectancy"},
	}
}

func TestFairnessNormalizationBounds(t *testing.T) {
	m := table.Merged{
		Columns: []string{"gini", "life_expectancy"},
		Rows: []table.Row{
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"gini": 50, "life_expectancy": 75}),
			mergedRow("Chile", "CHL", 2021, map[string]float64{"gini": 45, "life_expectancy": 80}),
			mergedRow("Peru", "PER", 2021, map[string]float64{"gini": 42, "life_expectancy": 77}),
		},
	}

	result := Fairness(m, twoComponents(), notify.Discard{})
	require.Len(t, result.Full, 3)

	// Min normalizes to 0, max to 1, everything in between
	var sawZero, sawOne bool
	for _, row := range result.Full {
		v := row.Normalized["norm_life_expectancy"]
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		if v == 0.0 {
			sawZero = true
			assert.Equal(t, "Brazil", row.Country)
		}
		if v == 1.0 {
			sawOne = true
			assert.Equal(t, "Chile", row.Country)
		}
	}
	assert.True(t, sawZero, "year-group min must normalize to 0")
	assert.True(t, sawOne, "year-group max must normalize to 1")

	// fairness_score stays in [0, k]
	for _, row := range result.Full {
		assert.GreaterOrEqual(t, row.FairnessScore, 0.0)
		assert.LessOrEqual(t, row.FairnessScore, float64(len(twoComponents())))
	}
}

func TestFairnessInvertedIndicator(t *testing.T) {
	// Raw inequality 20 and 80: after the 100−value transform the raw-20
	// country holds the better (higher) transformed value and normalizes
	// to 1.0.
	m := table.Merged{
		Columns: []string{"gini", "life_expectancy"},
		Rows: []table.Row{
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"gini": 20, "life_expectancy": 70}),
			mergedRow("Chile", "CHL", 2021, map[string]float64{"gini": 80, "life_expectancy": 70}),
		},
	}

	result := Fairness(m, twoComponents(), notify.Discard{})
	require.Len(t, result.Full, 2)

	byCountry := make(map[string]Row)
	for _, row := range result.Full {
		byCountry[row.Country] = row
	}
	assert.Equal(t, 1.0, byCountry["Brazil"].Normalized["norm_gini"])
	assert.Equal(t, 0.0, byCountry["Chile"].Normalized["norm_gini"])
}

func TestFairnessDegenerateGroupNormalizesToHalf(t *testing.T) {
	m := table.Merged{
		Columns: []string{"gini", "life_expectancy"},
		Rows: []table.Row{
			// life_expectancy has zero variance in 2021; 2020 has one country
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"gini": 40, "life_expectancy": 75}),
			mergedRow("Chile", "CHL", 2021, map[string]float64{"gini": 45, "life_expectancy": 75}),
			mergedRow("Peru", "PER", 2020, map[string]float64{"gini": 44, "life_expectancy": 76}),
		},
	}

	result := Fairness(m, twoComponents(), notify.Discard{})
	require.Len(t, result.Full, 3)

	for _, row := range result.Full {
		if row.Year == 2021 {
			assert.Equal(t, 0.5, row.Normalized["norm_life_expectancy"])
		}
		if row.Year == 2020 {
			// Single-country groups are degenerate for every component
			assert.Equal(t, 0.5, row.Normalized["norm_gini"])
			assert.Equal(t, 0.5, row.Normalized["norm_life_expectancy"])
		}
	}
}

func TestFairnessYearsNormalizeIndependently(t *testing.T) {
	m := table.Merged{
		Columns: []string{"gini", "life_expectancy"},
		Rows: []table.Row{
			mergedRow("Brazil", "BRA", 2020, map[string]float64{"gini": 40, "life_expectancy": 60}),
			mergedRow("Chile", "CHL", 2020, map[string]float64{"gini": 45, "life_expectancy": 90}),
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"gini": 40, "life_expectancy": 89}),
			mergedRow("Chile", "CHL", 2021, map[string]float64{"gini": 45, "life_expectancy": 90}),
		},
	}

	result := Fairness(m, twoComponents(), notify.Discard{})
	require.Len(t, result.Full, 4)

	// Brazil is the year minimum both times even though its absolute
	// values differ wildly: normalization is within-year only.
	for _, row := range result.Full {
		if row.Country == "Brazil" {
			assert.Equal(t, 0.0, row.Normalized["norm_life_expectancy"], "year %d", row.Year)
		}
	}
}

func TestFairnessDropsIncompleteRowsPerYear(t *testing.T) {
	m := table.Merged{
		Columns: []string{"gini", "life_expectancy"},
		Rows: []table.Row{
			// Peru misses gini in 2021 but is complete in 2020
			mergedRow("Peru", "PER", 2021, map[string]float64{"life_expectancy": 77}),
			mergedRow("Peru", "PER", 2020, map[string]float64{"gini": 44, "life_expectancy": 76}),
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"gini": 50, "life_expectancy": 75}),
			mergedRow("Brazil", "BRA", 2020, map[string]float64{"gini": 51, "life_expectancy": 74}),
		},
	}

	result := Fairness(m, twoComponents(), notify.Discard{})

	for _, row := range result.Full {
		if row.Country == "Peru" && row.Year == 2021 {
			t.Error("Peru must not be scored for 2021 with gini missing")
		}
	}

	var peru2020 bool
	for _, row := range result.Full {
		if row.Country == "Peru" && row.Year == 2020 {
			peru2020 = true
		}
	}
	assert.True(t, peru2020, "Peru has full data for 2020 and must be scored there")
}

func TestFairnessMissingColumnYieldsEmptyResult(t *testing.T) {
	m := table.Merged{
		Columns: []string{"life_expectancy"},
		Rows: []table.Row{
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"life_expectancy": 75}),
		},
	}

	collector := notify.NewCollector()
	result := Fairness(m, twoComponents(), collector)

	assert.Empty(t, result.Full)
	assert.Empty(t, result.Components)
	assert.NotEmpty(t, collector.Warnings)
}

func TestFairnessComponentsTableShape(t *testing.T) {
	m := table.Merged{
		Columns: []string{"gini", "life_expectancy"},
		Rows: []table.Row{
			mergedRow("Brazil", "BRA", 2021, map[string]float64{"gini": 40, "life_expectancy": 75}),
			mergedRow("Chile", "CHL", 2021, map[string]float64{"gini": 45, "life_expectancy": 80}),
		},
	}

	result := Fairness(m, twoComponents(), notify.Discard{})
	require.Len(t, result.Components, len(result.Full))

	for i, c := range result.Components {
		assert.Equal(t, result.Full[i].Country, c.Country)
		assert.Len(t, c.Normalized, 2)
		_, hasNorm := c.Normalized["norm_gini"]
		assert.True(t, hasNorm)
	}
}

func TestFairnessDefaultComponents(t *testing.T) {
	components := DefaultComponents()
	require.Len(t, components, 6)
	assert.True(t, components[0].Invert, "gini is the inverted component")
	assert.Equal(t, "norm_gini", components[0].NormColumn())
}
