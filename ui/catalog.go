package ui

import (
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"fairdex/internal/dashboard"
)

// CatalogEntry describes one fetchable indicator for the frontend's
// picker. Description is authored as markdown and served pre-rendered.
type CatalogEntry struct {
	Code            string `json:"code"`
	Label           string `json:"label"`
	Source          string `json:"source"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	Inverted        bool   `json:"inverted,omitempty"`
}

var catalogEntries = []CatalogEntry{
	{
		Code:        dashboard.CodeGDPPerCapita,
		Label:       "GDP per capita (USD)",
		Source:      "World Bank",
		Description: "Gross domestic product divided by midyear population, in **current US dollars**.",
	},
	{
		Code:        dashboard.CodeLifeExpectancy,
		Label:       "Life Expectancy (Years)",
		Source:      "World Bank",
		Description: "Years a newborn would live if mortality patterns at birth stayed constant.",
	},
	{
		Code:        dashboard.CodePopulation,
		Label:       "Population",
		Source:      "World Bank",
		Description: "Total midyear population, counting all residents regardless of legal status.",
	},
	{
		Code:        dashboard.CodeHealthExpenditure,
		Label:       "Health Expenditure per capita (USD)",
		Source:      "World Bank",
		Description: "Current health expenditure per capita in **current US dollars**.",
	},
	{
		Code:        dashboard.CodeGovernmentDebt,
		Label:       "Government Debt (% of GDP)",
		Source:      "IMF",
		Description: "General government gross debt as a share of GDP, from the *World Economic Outlook*.",
	},
	{
		Code:        dashboard.CodeInflation,
		Label:       "Inflation (Annual %)",
		Source:      "IMF",
		Description: "Average consumer price inflation, annual percent change.",
	},
	{
		Code:        dashboard.CodeGini,
		Label:       "Gini Index",
		Source:      "World Bank",
		Description: "Income inequality on a 0-100 scale. *Lower is more equal*, so the fairness index inverts it.",
		Inverted:    true,
	},
	{
		Code:        dashboard.CodeGenderLabor,
		Label:       "Female/Male Labor Participation Ratio (%)",
		Source:      "World Bank",
		Description: "Ratio of female to male labor force participation rates, modeled ILO estimate.",
	},
	{
		Code:        dashboard.CodeGovernance,
		Label:       "Rule of Law Estimate",
		Source:      "World Bank",
		Description: "Worldwide Governance Indicators rule-of-law estimate, roughly -2.5 to 2.5.",
	},
	{
		Code:        dashboard.CodeSchooling,
		Label:       "Secondary School Enrollment (% gross)",
		Source:      "World Bank",
		Description: "Gross secondary enrollment ratio; can exceed 100% where over-age pupils enroll.",
	},
	{
		Code:        dashboard.CodeElectricity,
		Label:       "Access to Electricity (% of population)",
		Source:      "World Bank",
		Description: "Share of the population with access to electricity.",
	},
}

// renderCatalog fills DescriptionHTML for every entry. gomarkdown's parser
// is single-use, so each entry gets a fresh one.
func renderCatalog(entries []CatalogEntry) []CatalogEntry {
	out := make([]CatalogEntry, len(entries))
	for i, e := range entries {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
		e.DescriptionHTML = string(markdown.ToHTML([]byte(e.Description), p, renderer))
		out[i] = e
	}
	return out
}

func (a *App) handleCatalog(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, renderCatalog(catalogEntries), nil)
}
