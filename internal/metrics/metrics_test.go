package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRefresh(t *testing.T) {
	m := New()
	m.ObserveRefresh("fetched", "fresh")
	m.ObserveRefresh("fetched", "fresh")
	m.ObserveRefresh("fallback", "api_loading_error")

	if got := testutil.ToFloat64(m.refreshTotal.WithLabelValues("fetched", "fresh")); got != 2 {
		t.Errorf("expected 2 fetched, got %v", got)
	}
	if got := testutil.ToFloat64(m.refreshTotal.WithLabelValues("fallback", "api_loading_error")); got != 1 {
		t.Errorf("expected 1 fallback, got %v", got)
	}
}

func TestSetPrice(t *testing.T) {
	m := New()
	m.SetPrice(0.25, 1_500_000)
	if got := testutil.ToFloat64(m.price); got != 0.25 {
		t.Errorf("expected price 0.25, got %v", got)
	}
	if got := testutil.ToFloat64(m.lastUpdate); got != 1500 {
		t.Errorf("expected 1500s, got %v", got)
	}
}
