package main

import (
	"context"
	"log"
	"net/http"

	"fairdex/adapters/postgres"
	"fairdex/internal/config"
	"fairdex/internal/country"
	"fairdex/internal/dashboard"
	"fairdex/internal/fetch"
	"fairdex/internal/notify"
	"fairdex/internal/source"
	"fairdex/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	resolver := country.NewResolver()
	httpClient := &http.Client{Timeout: cfg.Sources.Timeout}

	wb := source.NewWorldBank(cfg.Sources.WorldBankURL, httpClient, notify.NewLog("WorldBank"))
	imf := source.NewIMF(cfg.Sources.IMFURL, httpClient, resolver, notify.NewLog("IMF"))
	dc := source.NewDataCommons(cfg.Sources.DataCommonsURL, httpClient, resolver, notify.NewLog("DataCommons"))

	mode := fetch.DispatchLenient
	if cfg.Fetch.StrictDispatch {
		mode = fetch.DispatchStrict
	}
	facade := fetch.NewFromSources(wb, imf, dc, fetch.Options{
		Mode:                 mode,
		TranslateLegacyCodes: cfg.Fetch.TranslateLegacyCodes,
	}, notify.NewLog("Fetch"))

	cached := fetch.NewCachedFetcher(facade, fetch.NewTTLCache(cfg.Cache.TTL, cfg.Cache.MaxEntries))

	var snapshots postgres.SnapshotRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("Failed to prepare snapshot schema: %v", err)
		}
		snapshots = postgres.NewSnapshotRepository(db)
		log.Println("[Main] snapshot persistence enabled")
	} else {
		log.Println("[Main] DATABASE_URL not set, snapshot persistence disabled")
	}

	svc := dashboard.NewService(cached, notify.NewLog("Dashboard"))

	app := ui.NewApp(svc, cached, snapshots)
	log.Fatal(app.Start(ui.Config{Port: cfg.Server.Port}))
}
