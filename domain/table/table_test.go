package table

import "testing"

func TestNewSortsRecords(t *testing.T) {
	tbl := New("gdp", []Record{
		{Country: "Chile", ISO3: "CHL", Year: 2021, Value: 1},
		{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 2},
		{Country: "Brazil", ISO3: "BRA", Year: 2019, Value: 3},
	})

	if tbl.Records[0].Country != "Brazil" || tbl.Records[0].Year != 2019 {
		t.Errorf("expected Brazil/2019 first, got %s/%d", tbl.Records[0].Country, tbl.Records[0].Year)
	}
	if tbl.Records[2].Country != "Chile" {
		t.Errorf("expected Chile last, got %s", tbl.Records[2].Country)
	}
}

func TestDeduplicateKeepsFirst(t *testing.T) {
	tbl := Table{Indicator: "gdp", Records: []Record{
		{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 1},
		{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 2},
		{Country: "Brazil", ISO3: "BRA", Year: 2021, Value: 3},
	}}

	deduped := tbl.Deduplicate()
	if deduped.Len() != 2 {
		t.Fatalf("expected 2 records after dedup, got %d", deduped.Len())
	}
	if deduped.Records[0].Value != 1 {
		t.Errorf("expected first occurrence kept, got value %f", deduped.Records[0].Value)
	}
}

func TestFilterYears(t *testing.T) {
	tbl := New("gdp", []Record{
		{Country: "Brazil", ISO3: "BRA", Year: 2018, Value: 1},
		{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 2},
		{Country: "Brazil", ISO3: "BRA", Year: 2022, Value: 3},
	})

	filtered := tbl.FilterYears(YearRange{From: 2019, To: 2021})
	if filtered.Len() != 1 || filtered.Records[0].Year != 2020 {
		t.Errorf("expected only 2020 to survive, got %+v", filtered.Records)
	}

	// Zero range keeps everything
	all := tbl.FilterYears(YearRange{})
	if all.Len() != 3 {
		t.Errorf("zero range should keep all records, got %d", all.Len())
	}
}

func TestFilterYearsDoesNotMutateInput(t *testing.T) {
	tbl := New("gdp", []Record{{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 2}})
	filtered := tbl.FilterYears(YearRange{})
	filtered.Records[0].Value = 99

	if tbl.Records[0].Value != 2 {
		t.Error("filter mutated the source table")
	}
}

func TestCountriesAndYears(t *testing.T) {
	tbl := New("gdp", []Record{
		{Country: "Chile", ISO3: "CHL", Year: 2021, Value: 1},
		{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 2},
		{Country: "Brazil", ISO3: "BRA", Year: 2021, Value: 3},
	})

	countries := tbl.Countries()
	if len(countries) != 2 || countries[0] != "Brazil" || countries[1] != "Chile" {
		t.Errorf("unexpected countries: %v", countries)
	}

	years := tbl.Years()
	if len(years) != 2 || years[0] != 2020 || years[1] != 2021 {
		t.Errorf("unexpected years: %v", years)
	}
}

func TestYearRangeString(t *testing.T) {
	if s := (YearRange{From: 2010, To: 2023}).String(); s != "2010:2023" {
		t.Errorf("expected 2010:2023, got %s", s)
	}
	if s := (YearRange{}).String(); s != "" {
		t.Errorf("expected empty string for zero range, got %q", s)
	}
}
