package table

import "fmt"

// Record is one row of the canonical table: a single indicator observation
// for one country in one year. Rows with missing or non-numeric values are
// dropped during cleaning and never appear here.
type Record struct {
	Country string  `json:"country"`
	ISO3    string  `json:"country_iso3"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
}

// Key identifies a row across canonical tables. Tables join on the full
// triple, matching the (country, countryiso3code, date) join of the sources.
type Key struct {
	Country string
	ISO3    string
	Year    int
}

func (r Record) Key() Key {
	return Key{Country: r.Country, ISO3: r.ISO3, Year: r.Year}
}

// YearRange restricts a fetch to [From, To] inclusive. The zero value means
// "all available years".
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (yr YearRange) IsZero() bool {
	return yr.From == 0 && yr.To == 0
}

// Contains reports whether year falls inside the range. A zero range
// contains every year.
func (yr YearRange) Contains(year int) bool {
	if yr.IsZero() {
		return true
	}
	return year >= yr.From && year <= yr.To
}

// String renders the range in the "start:end" wire format the World Bank
// API expects.
func (yr YearRange) String() string {
	if yr.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d:%d", yr.From, yr.To)
}
