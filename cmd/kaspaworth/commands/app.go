package commands

import (
	"fmt"
	"log"

	"KaspaWorth/internal/cache"
	"KaspaWorth/internal/catalog"
	"KaspaWorth/internal/collector"
	"KaspaWorth/internal/config"
	"KaspaWorth/internal/i18n"
	"KaspaWorth/internal/metrics"
	"KaspaWorth/internal/pricing"
	"KaspaWorth/internal/render"
	"KaspaWorth/internal/widget"
)

// app is the dependency graph shared by the subcommands.
type app struct {
	store   cache.Store
	metrics *metrics.Metrics
	widget  *widget.Widget
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("[WARN] close cache store: %v", err)
	}
}

// newApp wires the widget from cfg. A nil fetcher means the configured
// price API.
func newApp(cfg *config.Config, fetcher collector.Fetcher) (*app, error) {
	bundle, err := i18n.Load()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if fetcher == nil {
		fetcher = collector.NewKaspaFetcher(cfg.PriceSource.URL, cfg.PriceSource.UserAgent, cfg.Proxy, cfg.PriceSource.Timeout)
	}
	log.Printf("[INFO] price source: %s", fetcher.Name())

	store := openStore(cfg)
	pc := cache.NewPriceCache(store)
	m := metrics.New()

	ref := pricing.NewRefresher(fetcher, pc, cfg.Cache.TTL)
	ref.Observer = m

	w := widget.New(widget.Options{
		Bundle:          bundle,
		Renderer:        render.New(catalog.Items, cfg.Rates()),
		Refresher:       ref,
		Cache:           pc,
		DefaultCurrency: cfg.Currency(),
		Location:        loc,
		Telemetry:       m,
	})
	return &app{store: store, metrics: m, widget: w}, nil
}

// openStore opens the configured cache backend, falling back to memory when
// the backend cannot be opened.
func openStore(cfg *config.Config) cache.Store {
	var (
		store cache.Store
		err   error
	)
	switch cfg.Cache.Backend {
	case config.BackendSQLite:
		store, err = cache.NewSQLiteStore(cfg.Cache.SQLitePath)
	case config.BackendFile:
		store, err = cache.NewFileStore(cfg.Cache.FilePath)
	default:
		return cache.NewMemoryStore()
	}
	if err != nil {
		log.Printf("[WARN] init %s cache failed, using memory: %v", cfg.Cache.Backend, err)
		return cache.NewMemoryStore()
	}
	log.Printf("[INFO] price cache: %s", cfg.Cache.Backend)
	return store
}
