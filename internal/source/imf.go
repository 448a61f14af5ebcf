package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"fairdex/domain/table"
	"fairdex/internal/country"
	"fairdex/internal/notify"
)

// IMF fetches indicator time series from the IMF DataMapper API. The
// response nests values by indicator code, then country code, then year
// string. The API carries no country names, so display names are
// back-filled through the country resolver.
type IMF struct {
	baseURL  string
	http     Doer
	resolver *country.Resolver
	notify   notify.Notifier
}

func NewIMF(baseURL string, doer Doer, resolver *country.Resolver, n notify.Notifier) *IMF {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	if n == nil {
		n = notify.NewLog("IMF")
	}
	return &IMF{baseURL: strings.TrimRight(baseURL, "/"), http: doer, resolver: resolver, notify: n}
}

type imfEnvelope struct {
	Values map[string]map[string]map[string]interface{} `json:"values"`
}

// Fetch returns the canonical table for one indicator. The API always
// answers with every country; countries (ISO3 codes) and years are
// filtered client-side. Sentinel values ("--", "NA", "n/a", "") and
// unparsable data points are skipped individually.
func (m *IMF) Fetch(ctx context.Context, indicator string, countries []string, years table.YearRange) table.Table {
	url := fmt.Sprintf("%s/%s", m.baseURL, indicator)

	var envelope imfEnvelope
	if err := getJSON(ctx, m.http, url, &envelope); err != nil {
		m.notify.Errorf("indicator %s: %v", indicator, err)
		return table.Empty(indicator)
	}

	series, ok := envelope.Values[indicator]
	if !ok {
		m.notify.Warnf("indicator %s: response carried no values", indicator)
		return table.Empty(indicator)
	}

	var want map[string]bool
	if len(countries) > 0 {
		want = make(map[string]bool, len(countries))
		for _, c := range countries {
			want[strings.ToUpper(c)] = true
		}
	}

	var rows []table.Record
	for iso3, byYear := range series {
		if want != nil && !want[strings.ToUpper(iso3)] {
			continue
		}
		// DataMapper also reports aggregates under group codes ("WEO",
		// "ADVEC"); those echo through Name() unresolved and are kept out.
		name := m.resolver.Name(iso3)
		if name == strings.ToUpper(iso3) {
			continue
		}
		for yearStr, raw := range byYear {
			year, ok := parseYear(yearStr)
			if !ok || !years.Contains(year) {
				continue
			}
			value, ok := parseValue(raw)
			if !ok {
				continue
			}
			rows = append(rows, table.Record{
				Country: name,
				ISO3:    strings.ToUpper(iso3),
				Year:    year,
				Value:   value,
			})
		}
	}

	if len(rows) == 0 {
		m.notify.Warnf("indicator %s: no numeric records survived cleaning", indicator)
		return table.Empty(indicator)
	}

	log.Printf("[IMF] indicator %s: %d records", indicator, len(rows))
	return table.New(indicator, rows).Deduplicate()
}
