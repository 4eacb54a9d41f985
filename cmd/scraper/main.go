package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/apetre/climatico-scraper/internal/browser"
	"github.com/apetre/climatico-scraper/internal/config"
	"github.com/apetre/climatico-scraper/internal/crawler"
	"github.com/apetre/climatico-scraper/internal/database"
	"github.com/apetre/climatico-scraper/internal/export"
	"github.com/apetre/climatico-scraper/internal/extractor"
	"github.com/apetre/climatico-scraper/internal/observability"
	"github.com/apetre/climatico-scraper/internal/pages"
	"github.com/apetre/climatico-scraper/pkg/logger"
)

func main() {
	var (
		startURL    = flag.String("url", "", "First listing page URL (overrides CRAWL_START_URL)")
		sourcesDir  = flag.String("sources", "", "Directory for page captures (overrides PAGE_SOURCES_DIR)")
		exportDir   = flag.String("export", "", "Directory for export units (overrides EXPORT_DIR)")
		headless    = flag.Bool("headless", true, "Run browser in headless mode")
		skipCrawl   = flag.Bool("skip-crawl", false, "Skip crawling, extract from existing captures")
		skipExtract = flag.Bool("skip-extract", false, "Skip extraction, only capture pages")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *startURL != "" {
		cfg.Crawl.StartURL = *startURL
	}
	if *sourcesDir != "" {
		cfg.Crawl.SourcesDir = *sourcesDir
	}
	if *exportDir != "" {
		cfg.Crawl.ExportDir = *exportDir
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logg := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	logg.Info("Starting climatico catalog scraper", "start_url", cfg.Crawl.StartURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logg.Info("Shutdown signal received")
		cancel()
	}()

	if cfg.Metrics.Enabled {
		observability.Serve(cfg.Metrics.Port)
	}

	// Directory setup is a startup concern; the pipeline itself never
	// creates its roots.
	if err := os.MkdirAll(cfg.Crawl.SourcesDir, 0755); err != nil {
		logg.Error("Failed to create page sources directory", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Crawl.ExportDir, 0755); err != nil {
		logg.Error("Failed to create export directory", "error", err)
		os.Exit(1)
	}

	var db *database.DB
	if cfg.Database.URL != "" {
		db, err = database.New(ctx, cfg.Database.URL)
		if err != nil {
			logg.Error("Failed to connect journal database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			logg.Error("Failed to prepare journal schema", "error", err)
			os.Exit(1)
		}
	}

	var run *database.CrawlRun
	if db != nil {
		if run, err = db.StartCrawlRun(ctx, cfg.Crawl.StartURL); err != nil {
			logg.Error("Failed to journal crawl run", "error", err)
			run = nil
		}
	}

	pagesCaptured := 0
	if !*skipCrawl {
		pagesCaptured, err = crawlListing(ctx, cfg, *headless)
		if err != nil {
			logg.Error("Crawl failed", "error", err, "pages_captured", pagesCaptured)
			finishRun(ctx, db, run, pagesCaptured, 0, database.RunStatusFailed)
			os.Exit(1)
		}
		logg.Info("Crawl completed", "pages_captured", pagesCaptured)
	}

	productsExported := 0
	if !*skipExtract {
		productsExported, err = extractAndExport(ctx, cfg, db)
		if err != nil {
			logg.Error("Extraction failed", "error", err, "products_exported", productsExported)
			finishRun(ctx, db, run, pagesCaptured, productsExported, database.RunStatusFailed)
			os.Exit(1)
		}
		logg.Info("Export completed", "products_exported", productsExported)
	}

	finishRun(ctx, db, run, pagesCaptured, productsExported, database.RunStatusCompleted)
	logg.Info("Terminating application")
}

func crawlListing(ctx context.Context, cfg *config.Config, headless bool) (int, error) {
	opts := browser.DefaultOptions()
	opts.Headless = headless && cfg.Browser.Headless
	opts.Timeout = cfg.Browser.Timeout
	opts.ViewportWidth = cfg.Browser.ViewportWidth
	opts.ViewportHeight = cfg.Browser.ViewportHeight
	opts.AcceptLanguage = cfg.Browser.AcceptLanguage
	opts.TimezoneID = cfg.Browser.TimezoneID
	opts.Locale = cfg.Browser.Locale

	session, err := browser.New(opts)
	if err != nil {
		return 0, err
	}
	defer session.Close()

	store := pages.NewStore(cfg.Crawl.SourcesDir)
	c := crawler.New(session, store, nil)

	return c.CrawlListing(ctx, cfg.Crawl.StartURL)
}

func extractAndExport(ctx context.Context, cfg *config.Config, db *database.DB) (int, error) {
	ex, err := extractor.New(cfg.Crawl.SourcesDir, cfg.Crawl.ExportDir)
	if err != nil {
		return 0, err
	}

	products, err := ex.Extract(ctx)
	if err != nil {
		return 0, err
	}

	mapper := export.NewMapper(cfg.Crawl.ExportDir)

	exported := 0
	for i := range products {
		if err := ctx.Err(); err != nil {
			return exported, err
		}

		if err := mapper.ToExport(products[i]); err != nil {
			return exported, err
		}
		exported++

		if db != nil {
			if err := db.UpsertProduct(ctx, &products[i]); err != nil {
				// Journal failures never abort the export.
				slog.Error("Failed to journal product", "product_code", products[i].ProductCode, "error", err)
			}
		}
	}

	return exported, nil
}

func finishRun(ctx context.Context, db *database.DB, run *database.CrawlRun, pgs, products int, status string) {
	if db == nil || run == nil {
		return
	}
	// The run outcome is still worth journaling after a cancellation.
	if errors.Is(ctx.Err(), context.Canceled) {
		ctx = context.Background()
	}
	if err := db.FinishCrawlRun(ctx, run, pgs, products, status); err != nil {
		slog.Error("Failed to finish journaled crawl run", "error", err)
	}
}
