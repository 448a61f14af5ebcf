package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"fairdex/domain/table"
	"fairdex/internal/notify"
)

// WorldBank fetches indicator time series from the World Bank v2 API.
// The API answers with a two-element envelope: metadata first, records
// second. A missing or empty second element means "no data", not an error.
type WorldBank struct {
	baseURL string
	http    Doer
	notify  notify.Notifier
}

// NewWorldBank creates a World Bank adapter. A nil doer gets a default
// client with the standard per-call deadline.
func NewWorldBank(baseURL string, doer Doer, n notify.Notifier) *WorldBank {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	if n == nil {
		n = notify.NewLog("WorldBank")
	}
	return &WorldBank{baseURL: strings.TrimRight(baseURL, "/"), http: doer, notify: n}
}

// wbRecord mirrors one record of the envelope's second element. Columns
// missing from a record decode to their zero values and are cleaned away.
type wbRecord struct {
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	ISO3  string      `json:"countryiso3code"`
	Date  string      `json:"date"`
	Value interface{} `json:"value"`
}

// Fetch returns the canonical table for one indicator. countries is a list
// of ISO3 codes; nil or empty fetches all countries. A zero year range
// fetches all available years.
func (w *WorldBank) Fetch(ctx context.Context, indicator string, countries []string, years table.YearRange) table.Table {
	selector := "all"
	if len(countries) > 0 {
		selector = strings.Join(countries, ";")
	}

	url := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=20000", w.baseURL, selector, indicator)
	if !years.IsZero() {
		url += "&date=" + years.String()
	}

	var envelope []json.RawMessage
	if err := getJSON(ctx, w.http, url, &envelope); err != nil {
		w.notify.Errorf("indicator %s: %v", indicator, err)
		return table.Empty(indicator)
	}

	// Metadata-only envelopes (and error payloads, which decode to a
	// single-element array) yield an empty table.
	if len(envelope) < 2 {
		w.notify.Warnf("indicator %s: response carried no records", indicator)
		return table.Empty(indicator)
	}

	var records []wbRecord
	if err := json.Unmarshal(envelope[1], &records); err != nil {
		w.notify.Errorf("indicator %s: undecodable record list: %v", indicator, err)
		return table.Empty(indicator)
	}

	rows := make([]table.Record, 0, len(records))
	for _, rec := range records {
		value, ok := parseValue(rec.Value)
		if !ok {
			continue
		}
		year, ok := parseYear(rec.Date)
		if !ok {
			continue
		}
		if rec.Country.Value == "" || rec.ISO3 == "" {
			continue
		}
		rows = append(rows, table.Record{
			Country: rec.Country.Value,
			ISO3:    rec.ISO3,
			Year:    year,
			Value:   value,
		})
	}

	if len(rows) == 0 {
		w.notify.Warnf("indicator %s: no numeric records survived cleaning", indicator)
		return table.Empty(indicator)
	}

	log.Printf("[WorldBank] indicator %s: %d records", indicator, len(rows))
	return table.New(indicator, rows).Deduplicate()
}
