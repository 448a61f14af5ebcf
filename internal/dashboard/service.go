// Package dashboard composes the pipeline into the data products the UI
// renders: merged indicator bundles, the fairness index, debt series and
// head-to-head country comparisons.
package dashboard

import (
	"context"
	"log"

	"fairdex/domain/table"
	"fairdex/internal/errors"
	"fairdex/internal/fetch"
	"fairdex/internal/notify"
	"fairdex/internal/score"
)

// Indicator codes used by the bundled views.
const (
	CodeGDPPerCapita      = "WB_NY.GDP.PCAP.CD"
	CodeLifeExpectancy    = "WB_SP.DYN.LE00.IN"
	CodePopulation        = "WB_SP.POP.TOTL"
	CodeHealthExpenditure = "WB_SH.XPD.CHEX.PC.CD"
	CodeGovernmentDebt    = "IMF_GGXWDG_NGDP"
	CodeInflation         = "IMF_PCPIPCH"

	CodeGini          = "WB_SI.POV.GINI"
	CodeGenderLabor   = "WB_SL.TLF.CACT.FM.ZS"
	CodeGovernance    = "WB_RL.EST"
	CodeSchooling     = "WB_SE.SEC.ENRR"
	CodeElectricity   = "WB_EG.ELC.ACCS.ZS"
)

// Indicator pairs a semantic column name with its prefixed code.
type Indicator struct {
	Column string
	Code   string
}

// FairnessIndicators is the six-indicator set feeding the development &
// equality index, in component order.
func FairnessIndicators() []Indicator {
	return []Indicator{
		{Column: "gini", Code: CodeGini},
		{Column: "gender_ratio_labor", Code: CodeGenderLabor},
		{Column: "governance", Code: CodeGovernance},
		{Column: "school_enrollment", Code: CodeSchooling},
		{Column: "life_expectancy", Code: CodeLifeExpectancy},
		{Column: "access_to_electricity", Code: CodeElectricity},
	}
}

// Service assembles dashboard datasets from the fetch facade.
type Service struct {
	fetcher fetch.Fetcher
	notify  notify.Notifier
}

func NewService(fetcher fetch.Fetcher, n notify.Notifier) *Service {
	if n == nil {
		n = notify.NewLog("Dashboard")
	}
	return &Service{fetcher: fetcher, notify: n}
}

// WithNotifier returns a copy of the service routing notifications to n.
// Request handlers use it to collect per-request messages.
func (s *Service) WithNotifier(n notify.Notifier) *Service {
	return &Service{fetcher: s.fetcher, notify: n}
}

// Merge fetches every indicator and outer-joins the results on
// (country, iso3, year). Indicators whose fetch comes back empty are
// skipped; the merge proceeds with the rest.
func (s *Service) Merge(ctx context.Context, indicators []Indicator, years table.YearRange) (table.Merged, error) {
	inputs := make([]table.MergeInput, 0, len(indicators))
	for _, ind := range indicators {
		t, err := s.fetcher.Fetch(ctx, ind.Code, nil, years)
		if err != nil {
			return table.Merged{}, errors.Wrapf(err, "fetch %s", ind.Code)
		}
		if t.IsEmpty() {
			s.notify.Warnf("indicator %s (%s) returned no data, merging without it", ind.Column, ind.Code)
			continue
		}
		inputs = append(inputs, table.MergeInput{Column: ind.Column, Table: t})
	}

	merged := table.OuterJoin(inputs)
	log.Printf("[Dashboard] merged %d indicators into %d rows", len(merged.Columns), len(merged.Rows))
	return merged, nil
}

// EconomicOverview merges GDP per capita, life expectancy and population.
func (s *Service) EconomicOverview(ctx context.Context, years table.YearRange) (table.Merged, error) {
	return s.Merge(ctx, []Indicator{
		{Column: "gdp_per_capita", Code: CodeGDPPerCapita},
		{Column: "life_expectancy", Code: CodeLifeExpectancy},
		{Column: "population", Code: CodePopulation},
	}, years)
}

// SocialDevelopment merges life expectancy, health expenditure and
// population.
func (s *Service) SocialDevelopment(ctx context.Context, years table.YearRange) (table.Merged, error) {
	return s.Merge(ctx, []Indicator{
		{Column: "life_expectancy", Code: CodeLifeExpectancy},
		{Column: "health_expenditure", Code: CodeHealthExpenditure},
		{Column: "population", Code: CodePopulation},
	}, years)
}

// GovernmentDebt returns the IMF general government gross debt series.
func (s *Service) GovernmentDebt(ctx context.Context, years table.YearRange) (table.Table, error) {
	return s.fetcher.Fetch(ctx, CodeGovernmentDebt, nil, years)
}

// FairnessIndex fetches the six index indicators, merges them and computes
// the composite score for every (country, year) with complete data.
func (s *Service) FairnessIndex(ctx context.Context, years table.YearRange) (score.Result, error) {
	merged, err := s.Merge(ctx, FairnessIndicators(), years)
	if err != nil {
		return score.Result{}, err
	}
	return score.Fairness(merged, score.DefaultComponents(), s.notify), nil
}

// Comparison holds one indicator's series filtered to the two compared
// countries.
type Comparison struct {
	Label string      `json:"label"`
	Code  string      `json:"code"`
	Table table.Table `json:"table"`
}

// CountryComparison fetches the four head-to-head metrics for two
// countries across all years. Empty fetches stay in the result so the
// caller can render a per-metric "no data" state.
func (s *Service) CountryComparison(ctx context.Context, countryA, countryB string) ([]Comparison, error) {
	metrics := []struct {
		label string
		code  string
	}{
		{"GDP per capita (USD)", CodeGDPPerCapita},
		{"Inflation (Annual %)", CodeInflation},
		{"Government Debt (% of GDP)", CodeGovernmentDebt},
		{"Life Expectancy (Years)", CodeLifeExpectancy},
	}

	out := make([]Comparison, 0, len(metrics))
	for _, m := range metrics {
		t, err := s.fetcher.Fetch(ctx, m.code, nil, table.YearRange{})
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", m.code)
		}
		out = append(out, Comparison{
			Label: m.label,
			Code:  m.code,
			Table: t.FilterCountries(countryA, countryB),
		})
	}
	return out, nil
}

// Coverage fetches the population series and derives the year and country
// lists available for filters.
func (s *Service) Coverage(ctx context.Context) (years []int, countries []string, err error) {
	t, err := s.fetcher.Fetch(ctx, CodePopulation, nil, table.YearRange{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "fetch population coverage")
	}
	if t.IsEmpty() {
		s.notify.Errorf("could not load population data to derive coverage")
		return nil, nil, nil
	}
	return t.Years(), t.Countries(), nil
}
