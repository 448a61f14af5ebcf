package ui

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fairdex/adapters/excel"
	"fairdex/domain/table"
	"fairdex/internal/notify"
	"fairdex/internal/score"
)

// response is the common JSON envelope: the payload plus any failure
// messages collected while producing it. A failed view arrives as an empty
// payload with messages, never as a 5xx with a partial body.
type response struct {
	Data     interface{} `json:"data"`
	Messages []string    `json:"messages,omitempty"`
}

func (a *App) writeJSON(w http.ResponseWriter, status int, data interface{}, messages []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Data: data, Messages: messages}); err != nil {
		log.Printf("[UI] failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, nil, []string{message})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, nil)
}

func (a *App) handleCoverage(w http.ResponseWriter, r *http.Request) {
	years, countries, err := a.dashboard.Coverage(r.Context())
	if err != nil {
		a.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"years":     years,
		"countries": countries,
	}, nil)
}

func (a *App) handleIndicator(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	years, ok := parseYearRange(r)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "from/to must be integer years")
		return
	}

	t, err := a.fetcher.Fetch(r.Context(), code, nil, years)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, t, nil)
}

func (a *App) handleEconomic(w http.ResponseWriter, r *http.Request) {
	a.handleMergedView(w, r, a.dashboard.EconomicOverview)
}

func (a *App) handleSocial(w http.ResponseWriter, r *http.Request) {
	a.handleMergedView(w, r, a.dashboard.SocialDevelopment)
}

type mergedView func(ctx context.Context, years table.YearRange) (table.Merged, error)

func (a *App) handleMergedView(w http.ResponseWriter, r *http.Request, view mergedView) {
	years, ok := parseYearRange(r)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "from/to must be integer years")
		return
	}

	merged, err := view(r.Context(), years)
	if err != nil {
		a.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	year, ok := parseYear(r)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	if year != 0 {
		merged = merged.FilterYear(year)
	}

	var messages []string
	if merged.IsEmpty() {
		messages = append(messages, "no merged data available for the requested range")
	}
	a.writeJSON(w, http.StatusOK, merged, messages)
}

func (a *App) handleDebt(w http.ResponseWriter, r *http.Request) {
	years, ok := parseYearRange(r)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "from/to must be integer years")
		return
	}

	t, err := a.dashboard.GovernmentDebt(r.Context(), years)
	if err != nil {
		a.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	var messages []string
	if t.IsEmpty() {
		messages = append(messages, "IMF returned no data for the government debt indicator")
	}
	a.writeJSON(w, http.StatusOK, t, messages)
}

func (a *App) handleFairness(w http.ResponseWriter, r *http.Request) {
	years, ok := parseYearRange(r)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "from/to must be integer years")
		return
	}

	collector := notify.NewCollector()
	svc := a.dashboard.WithNotifier(collector)
	result, err := svc.FairnessIndex(r.Context(), years)
	if err != nil {
		a.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if a.snapshots != nil {
		if year, ok := parseYear(r); ok && year != 0 {
			rows := make([]score.Row, 0, len(result.Full))
			for _, row := range result.Full {
				if row.Year == year {
					rows = append(rows, row)
				}
			}
			if len(rows) > 0 {
				if _, err := a.snapshots.Save(r.Context(), year, rows); err != nil {
					log.Printf("[UI] snapshot save failed: %v", err)
				}
			}
		}
	}

	a.writeJSON(w, http.StatusOK, result, collector.Messages())
}

func (a *App) handleCompare(w http.ResponseWriter, r *http.Request) {
	countryA := r.URL.Query().Get("a")
	countryB := r.URL.Query().Get("b")
	if countryA == "" || countryB == "" {
		a.writeError(w, http.StatusBadRequest, "query parameters a and b are required")
		return
	}

	comparisons, err := a.dashboard.CountryComparison(r.Context(), countryA, countryB)
	if err != nil {
		a.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	var messages []string
	for _, c := range comparisons {
		if c.Table.IsEmpty() {
			messages = append(messages, "no comparison data available for "+c.Label)
		}
	}
	a.writeJSON(w, http.StatusOK, comparisons, messages)
}

func (a *App) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if a.snapshots == nil {
		a.writeError(w, http.StatusNotFound, "snapshot persistence is not configured")
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}

	snap, err := a.snapshots.Latest(r.Context(), year)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if snap == nil {
		a.writeError(w, http.StatusNotFound, "no snapshot stored for that year")
		return
	}
	a.writeJSON(w, http.StatusOK, snap, nil)
}

func (a *App) handleExportFairness(w http.ResponseWriter, r *http.Request) {
	years, ok := parseYearRange(r)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "from/to must be integer years")
		return
	}

	result, err := a.dashboard.FairnessIndex(r.Context(), years)
	if err != nil {
		a.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if len(result.Full) == 0 {
		a.writeError(w, http.StatusNotFound, "no scored data available to export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="fairness_scores.xlsx"`)
	if err := excel.WriteScores(w, result.Full, score.DefaultComponents()); err != nil {
		log.Printf("[UI] export failed: %v", err)
	}
}

func parseYearRange(r *http.Request) (table.YearRange, bool) {
	from, okFrom := parseIntParam(r, "from")
	to, okTo := parseIntParam(r, "to")
	if !okFrom || !okTo {
		return table.YearRange{}, false
	}
	return table.YearRange{From: from, To: to}, true
}

func parseYear(r *http.Request) (int, bool) {
	return parseIntParam(r, "year")
}

// parseIntParam returns (0, true) for an absent parameter and (0, false)
// for a present but non-integer one.
func parseIntParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
