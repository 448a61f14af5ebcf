// Package ui serves the pipeline's data products as a JSON API. Rendering
// (maps, charts, cross-filtering) is the frontend's concern; this layer
// only shapes data and failure messages.
package ui

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fairdex/adapters/postgres"
	"fairdex/internal/dashboard"
	"fairdex/internal/fetch"
)

// App represents the API application
type App struct {
	router    *chi.Mux
	dashboard *dashboard.Service
	fetcher   fetch.Fetcher
	snapshots postgres.SnapshotRepository // nil when persistence is disabled
}

// Config holds API application configuration
type Config struct {
	Port string
}

// NewApp creates a new API application
func NewApp(svc *dashboard.Service, fetcher fetch.Fetcher, snapshots postgres.SnapshotRepository) *App {
	app := &App{
		router:    chi.NewRouter(),
		dashboard: svc,
		fetcher:   fetcher,
		snapshots: snapshots,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

func (a *App) setupMiddleware() {
	a.router.Use(requestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Timeout(2 * time.Minute))
}

func (a *App) setupRoutes() {
	a.router.Get("/api/health", a.handleHealth)
	a.router.Get("/api/catalog", a.handleCatalog)
	a.router.Get("/api/coverage", a.handleCoverage)
	a.router.Get("/api/indicators/{code}", a.handleIndicator)

	a.router.Route("/api/dashboards", func(r chi.Router) {
		r.Get("/economic", a.handleEconomic)
		r.Get("/social", a.handleSocial)
		r.Get("/debt", a.handleDebt)
		r.Get("/fairness", a.handleFairness)
		r.Get("/compare", a.handleCompare)
	})

	a.router.Get("/api/snapshots/{year}", a.handleSnapshot)
	a.router.Get("/api/export/fairness.xlsx", a.handleExportFairness)
}

// Router exposes the configured router for serving and tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server and blocks.
func (a *App) Start(config Config) error {
	addr := ":" + config.Port
	log.Printf("[UI] serving API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
