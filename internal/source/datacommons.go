package source

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"fairdex/domain/table"
	"fairdex/internal/country"
	"fairdex/internal/notify"

	"gonum.org/v1/gonum/stat"
)

// DataCommons fetches observations from the Data Commons v2 observation
// API. The request is a POST with a JSON body: the entity list for an
// all-countries query is large enough to overflow a query-string limit.
// The API cannot filter by year range server-side, so the requested range
// is applied client-side after aggregation.
type DataCommons struct {
	baseURL  string
	http     Doer
	resolver *country.Resolver
	notify   notify.Notifier
}

func NewDataCommons(baseURL string, doer Doer, resolver *country.Resolver, n notify.Notifier) *DataCommons {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	if n == nil {
		n = notify.NewLog("DataCommons")
	}
	return &DataCommons{baseURL: strings.TrimRight(baseURL, "/"), http: doer, resolver: resolver, notify: n}
}

type dcIDList struct {
	DCIDs []string `json:"dcids"`
}

type dcRequest struct {
	Dates    string   `json:"dates,omitempty"`
	Select   []string `json:"select"`
	Entity   dcIDList `json:"entity"`
	Variable dcIDList `json:"variable"`
}

type dcObservation struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type dcResponse struct {
	ByVariable map[string]struct {
		ByEntity map[string]struct {
			OrderedFacets []struct {
				Observations []dcObservation `json:"observations"`
			} `json:"orderedFacets"`
		} `json:"byEntity"`
	} `json:"byVariable"`
}

// Fetch returns the canonical table for one statistical variable dcid.
// countries is a list of display names; nil or empty queries every country
// in the resolver's table. Observation dates are truncated to the calendar
// year and multiple observations for the same (entity, year) are averaged.
func (d *DataCommons) Fetch(ctx context.Context, variable string, countries []string, years table.YearRange) table.Table {
	var entities []string
	if len(countries) == 0 {
		for _, iso3 := range d.resolver.ISO3Codes() {
			entities = append(entities, "country/"+iso3)
		}
	} else {
		for _, name := range countries {
			iso3, ok := d.resolver.ISO3(name)
			if !ok {
				d.notify.Warnf("variable %s: unmapped country name %q skipped", variable, name)
				continue
			}
			entities = append(entities, "country/"+iso3)
		}
	}
	if len(entities) == 0 {
		d.notify.Warnf("variable %s: no resolvable countries in selection", variable)
		return table.Empty(variable)
	}

	req := dcRequest{
		Select:   []string{"date", "entity", "value", "variable"},
		Entity:   dcIDList{DCIDs: entities},
		Variable: dcIDList{DCIDs: []string{variable}},
	}

	var resp dcResponse
	if err := postJSON(ctx, d.http, d.baseURL+"/v2/observation", req, &resp); err != nil {
		d.notify.Errorf("variable %s: %v", variable, err)
		return table.Empty(variable)
	}

	byEntity := resp.ByVariable[variable].ByEntity
	var rows []table.Record
	for entity, facets := range byEntity {
		iso3 := strings.ToUpper(strings.TrimPrefix(entity, "country/"))
		name := d.resolver.Name(iso3)

		perYear := make(map[int][]float64)
		for _, facet := range facets.OrderedFacets {
			for _, obs := range facet.Observations {
				year, ok := parseYear(obs.Date)
				if !ok {
					continue
				}
				perYear[year] = append(perYear[year], obs.Value)
			}
		}
		for year, values := range perYear {
			if !years.Contains(year) {
				continue
			}
			rows = append(rows, table.Record{
				Country: name,
				ISO3:    iso3,
				Year:    year,
				Value:   stat.Mean(values, nil),
			})
		}
	}

	if len(rows) == 0 {
		d.notify.Warnf("variable %s: no observations survived cleaning", variable)
		return table.Empty(variable)
	}

	log.Printf("[DataCommons] variable %s: %d records", variable, len(rows))
	return table.New(variable, rows).Deduplicate()
}
