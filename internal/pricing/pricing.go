// Package pricing decides, once per cycle, which KAS price the widget shows.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"KaspaWorth/internal/cache"
	"KaspaWorth/internal/collector"
	"KaspaWorth/internal/model"
)

// Outcome is how a refresh cycle ended.
type Outcome string

const (
	OutcomeCacheHit Outcome = "cache_hit" // fresh cache, no request made
	OutcomeFetched  Outcome = "fetched"
	OutcomeFallback Outcome = "fallback" // request failed, stale cache shown
	OutcomeEmpty    Outcome = "empty"    // request failed, nothing cached
)

// Result is the product of one refresh cycle.
type Result struct {
	Outcome  Outcome
	Snapshot *model.PriceSnapshot // nil only for OutcomeEmpty
	Status   model.Status
	Err      error
}

// Observer receives refresh telemetry. A nil Observer is allowed.
type Observer interface {
	ObserveRefresh(outcome, status string)
	ObserveFetch(seconds float64)
}

// Refresher runs the cache-then-network decision.
type Refresher struct {
	Fetcher  collector.Fetcher
	Cache    *cache.PriceCache
	TTL      time.Duration
	Now      func() time.Time
	Observer Observer
}

// NewRefresher creates a Refresher using the wall clock.
func NewRefresher(f collector.Fetcher, c *cache.PriceCache, ttl time.Duration) *Refresher {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Refresher{Fetcher: f, Cache: c, TTL: ttl, Now: time.Now}
}

// Refresh never fails: every error ends in a Fallback or Empty result.
func (r *Refresher) Refresh(ctx context.Context) Result {
	res := r.refresh(ctx)
	if r.Observer != nil {
		r.Observer.ObserveRefresh(string(res.Outcome), string(res.Status))
	}
	return res
}

func (r *Refresher) refresh(ctx context.Context) Result {
	now := r.Now()
	cached, haveCache := r.Cache.Load()

	if haveCache && cache.IsFresh(cached, now.UnixMilli(), r.TTL) {
		log.Printf("[INFO] using cached price (less than %s old)", r.TTL)
		return Result{Outcome: OutcomeCacheHit, Snapshot: &cached, Status: model.StatusCached}
	}

	log.Printf("[INFO] fetching price from %s", r.Fetcher.Name())
	start := time.Now()
	price, err := r.Fetcher.FetchPrice(ctx)
	if r.Observer != nil {
		r.Observer.ObserveFetch(time.Since(start).Seconds())
	}
	if err == nil && !(price > 0) {
		// never cache a price the widget cannot divide by
		err = fmt.Errorf("%w: price %v is not positive", collector.ErrMalformedPayload, price)
	}
	if err == nil {
		snap := model.NewSnapshot(price, now)
		if err := r.Cache.Save(snap); err != nil {
			log.Printf("[WARN] persist price: %v", err)
		}
		log.Printf("[INFO] price updated from %s and cached: %v", r.Fetcher.Name(), price)
		return Result{Outcome: OutcomeFetched, Snapshot: &snap, Status: model.StatusFresh}
	}

	status := model.StatusAPILoadingError
	if errors.Is(err, collector.ErrMalformedPayload) {
		status = model.StatusAPIDataError
		log.Printf("[ERROR] unexpected API data: %v", err)
	} else {
		log.Printf("[ERROR] fetch price: %v", err)
	}

	if !haveCache {
		return Result{Outcome: OutcomeEmpty, Status: model.StatusNoData, Err: err}
	}
	log.Printf("[INFO] API error, using cached price from %s", cached.Time().Format(time.RFC3339))
	return Result{Outcome: OutcomeFallback, Snapshot: &cached, Status: status, Err: err}
}
