package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupportedCurrency is returned when a display currency is not USD or EUR.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency is a display currency code.
type Currency string

const (
	USD Currency = "USD" // base currency, catalog values are quoted in it
	EUR Currency = "EUR"
)

// Currencies lists the selectable display currencies in selector order.
var Currencies = []Currency{USD, EUR}

// ParseCurrency accepts a currency code in any letter case.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case USD, EUR:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
}

// Symbol returns the sign shown in front of fiat amounts.
func (c Currency) Symbol() string {
	if c == EUR {
		return "€"
	}
	return "$"
}

// UnitKAS is the unit label shown next to item quantities.
const UnitKAS = "KAS"

// PriceSnapshot is a KAS price in USD paired with the time it was observed.
type PriceSnapshot struct {
	ValueUSD     float64 `json:"value_usd"`
	ObservedAtMs int64   `json:"observed_at_ms"`
}

// NewSnapshot stamps a price with t.
func NewSnapshot(valueUSD float64, t time.Time) PriceSnapshot {
	return PriceSnapshot{ValueUSD: valueUSD, ObservedAtMs: t.UnixMilli()}
}

// Time returns the observation time.
func (p PriceSnapshot) Time() time.Time {
	return time.UnixMilli(p.ObservedAtMs)
}

// Available reports whether the price can be used as a divisor.
func (p PriceSnapshot) Available() bool {
	return p.ValueUSD > 0
}
