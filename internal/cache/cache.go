// Package cache stores the last known KAS price and its timestamp.
package cache

import (
	"log"
	"math"
	"strconv"
	"time"

	"KaspaWorth/internal/model"
)

// DefaultTTL is how long a cached price is used without asking the network.
const DefaultTTL = 15 * time.Minute

// Entry keys, one per field.
const (
	KeyPrice     = "kaspaPrice"
	KeyTimestamp = "kaspaPriceTimestamp"
)

// PriceCache reads and writes PriceSnapshots as two text entries.
type PriceCache struct {
	store Store
}

func NewPriceCache(store Store) *PriceCache {
	return &PriceCache{store: store}
}

// Load returns the stored snapshot. A missing or unparsable entry yields
// ok == false; store errors are logged and treated the same way.
func (c *PriceCache) Load() (model.PriceSnapshot, bool) {
	rawPrice, ok := c.get(KeyPrice)
	if !ok {
		return model.PriceSnapshot{}, false
	}
	rawTS, ok := c.get(KeyTimestamp)
	if !ok {
		return model.PriceSnapshot{}, false
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		log.Printf("[WARN] cached price %q is not a number, ignoring", rawPrice)
		return model.PriceSnapshot{}, false
	}
	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		log.Printf("[WARN] cached timestamp %q is not a number, ignoring", rawTS)
		return model.PriceSnapshot{}, false
	}
	return model.PriceSnapshot{ValueUSD: price, ObservedAtMs: ts}, true
}

func (c *PriceCache) get(key string) (string, bool) {
	v, ok, err := c.store.Get(key)
	if err != nil {
		log.Printf("[WARN] read cache %s: %v", key, err)
		return "", false
	}
	return v, ok
}

// Save overwrites both entries with s.
func (c *PriceCache) Save(s model.PriceSnapshot) error {
	if err := c.store.Set(KeyPrice, strconv.FormatFloat(s.ValueUSD, 'f', -1, 64)); err != nil {
		return err
	}
	return c.store.Set(KeyTimestamp, strconv.FormatInt(s.ObservedAtMs, 10))
}

// IsFresh reports whether s was observed less than ttl before nowMs.
func IsFresh(s model.PriceSnapshot, nowMs int64, ttl time.Duration) bool {
	return nowMs-s.ObservedAtMs < ttl.Milliseconds()
}
