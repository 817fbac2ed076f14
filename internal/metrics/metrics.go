// Package metrics exposes price refresh counters for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for one widget instance.
type Metrics struct {
	registry *prometheus.Registry

	refreshTotal  *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	price         prometheus.Gauge
	lastUpdate    prometheus.Gauge
	viewChanges   *prometheus.CounterVec
}

// New registers the widget collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.refreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kaspaworth",
		Name:      "refresh_total",
		Help:      "Price refresh cycles by outcome and status",
	}, []string{"outcome", "status"})
	m.fetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "kaspaworth",
		Name:      "fetch_duration_seconds",
		Help:      "Time spent calling the price endpoint",
		Buckets:   prometheus.DefBuckets,
	})
	m.price = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "kaspaworth",
		Name:      "price_usd",
		Help:      "Displayed KAS price in USD",
	})
	m.lastUpdate = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "kaspaworth",
		Name:      "price_observed_timestamp_seconds",
		Help:      "Unix time the displayed price was observed",
	})
	m.viewChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kaspaworth",
		Name:      "session_changes_total",
		Help:      "User language and currency selections",
	}, []string{"kind", "value"})

	m.registry.MustRegister(
		m.refreshTotal, m.fetchDuration, m.price, m.lastUpdate, m.viewChanges,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRefresh(outcome, status string) {
	m.refreshTotal.WithLabelValues(outcome, status).Inc()
}

func (m *Metrics) ObserveFetch(seconds float64) {
	m.fetchDuration.Observe(seconds)
}

// SetPrice records the price now on display and its observation time.
func (m *Metrics) SetPrice(valueUSD float64, observedAtMs int64) {
	m.price.Set(valueUSD)
	m.lastUpdate.Set(float64(observedAtMs) / 1000)
}

func (m *Metrics) ObserveSessionChange(kind, value string) {
	m.viewChanges.WithLabelValues(kind, value).Inc()
}
