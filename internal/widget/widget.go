// Package widget owns the session: the selected language and currency, the
// price on display and the view derived from them.
package widget

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"KaspaWorth/internal/cache"
	"KaspaWorth/internal/formatter"
	"KaspaWorth/internal/i18n"
	"KaspaWorth/internal/model"
	"KaspaWorth/internal/pricing"
	"KaspaWorth/internal/render"
)

// Sink receives every new view. Publish is called with the widget locked,
// in change order, and must not call back into the widget.
type Sink interface {
	Publish(v model.View)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(model.View)

func (f SinkFunc) Publish(v model.View) { f(v) }

// Telemetry is the subset of metrics the widget reports to.
type Telemetry interface {
	SetPrice(valueUSD float64, observedAtMs int64)
	ObserveSessionChange(kind, value string)
}

// Options configures a Widget. Bundle, Renderer, Refresher and Cache are
// required.
type Options struct {
	Bundle          *i18n.Bundle
	Renderer        *render.Renderer
	Refresher       *pricing.Refresher
	Cache           *cache.PriceCache
	DefaultCurrency model.Currency
	Location        *time.Location
	Telemetry       Telemetry
	Rand            *rand.Rand
	Now             func() time.Time
}

// Widget is the single session context shared by the refresh job and the UI
// adapters. All state changes are serialized by mu; network I/O runs
// outside it.
type Widget struct {
	bundle    *i18n.Bundle
	renderer  *render.Renderer
	refresher *pricing.Refresher
	cache     *cache.PriceCache
	telemetry Telemetry
	loc       *time.Location
	now       func() time.Time
	rnd       *rand.Rand

	flight singleflight.Group

	mu            sync.Mutex
	session       model.SessionState
	price         *model.PriceSnapshot
	status        model.Status
	lastUpdatedMs int64
	labels        map[string]string
	names         map[string]string
	direction     string
	quote         i18n.Quote
	view          model.View
	sinks         []Sink
}

// New creates a widget showing the default language with no price yet.
func New(opts Options) *Widget {
	w := &Widget{
		bundle:    opts.Bundle,
		renderer:  opts.Renderer,
		refresher: opts.Refresher,
		cache:     opts.Cache,
		telemetry: opts.Telemetry,
		loc:       opts.Location,
		now:       opts.Now,
		rnd:       opts.Rand,
		status:    model.StatusLoading,
		labels:    make(map[string]string),
		names:     make(map[string]string),
		direction: i18n.Direction(i18n.DefaultLanguage),
	}
	if w.loc == nil {
		w.loc = time.Local
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.rnd == nil {
		w.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cur := opts.DefaultCurrency
	if cur == "" {
		cur = model.USD
	}
	w.session = model.SessionState{Language: i18n.DefaultLanguage, Currency: cur}

	// Baseline content, overwritten only where a translation exists.
	w.seedDefaults()
	w.renderLocked()
	return w
}

func (w *Widget) seedDefaults() {
	for _, key := range labelKeys {
		if v, ok := w.bundle.Label(i18n.DefaultLanguage, key); ok {
			w.labels[key] = v
		}
	}
	for _, it := range w.renderer.Items {
		if v, ok := w.bundle.ItemName(i18n.DefaultLanguage, it.ID); ok {
			w.names[it.ID] = v
		} else {
			w.names[it.ID] = it.ID
		}
	}
}

var labelKeys = []string{
	"title", "subtitle", "kaspaPriceTitle", "lastUpdated", "languageLabel",
	"currencyLabel", "quoteTitle", "notAvailable", "noData", "apiDataError",
	"apiLoadingError", "footer",
}

// AddSink registers s and immediately publishes the current view to it.
func (w *Widget) AddSink(s Sink) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sinks = append(w.sinks, s)
	s.Publish(w.view)
}

// Init selects the language matching a runtime locale and paints.
func (w *Widget) Init(locale string) {
	lang := w.bundle.Detect(locale)
	log.Printf("[INFO] locale %q -> language %s", locale, lang)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.session.Language = lang
	w.applyTranslationsLocked()
	w.publishLocked()
}

// RefreshPrice runs one fetch cycle and applies its result. Concurrent calls
// share the in-flight cycle instead of starting another.
func (w *Widget) RefreshPrice(ctx context.Context) pricing.Result {
	v, _, _ := w.flight.Do("refresh", func() (any, error) {
		res := w.refresher.Refresh(ctx)
		w.apply(res)
		return res, nil
	})
	return v.(pricing.Result)
}

// apply stores a cycle's result; the last one to arrive wins.
func (w *Widget) apply(res pricing.Result) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if res.Snapshot != nil {
		snap := *res.Snapshot
		w.price = &snap
		w.lastUpdatedMs = snap.ObservedAtMs
		if w.telemetry != nil {
			w.telemetry.SetPrice(snap.ValueUSD, snap.ObservedAtMs)
		}
	}
	// An empty cycle keeps the last price and its timestamp on screen; only
	// the status moves to no_data.
	w.status = res.Status
	w.renderLocked()
	w.publishLocked()
}

// SetLanguage switches the display language without fetching.
func (w *Widget) SetLanguage(lang string) error {
	if lang == "" {
		return fmt.Errorf("empty language")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.session.Language = lang
	w.applyTranslationsLocked()
	if w.lastUpdatedMs == 0 {
		if snap, ok := w.cache.Load(); ok {
			w.lastUpdatedMs = snap.ObservedAtMs
		} else if w.status != model.StatusNoData {
			w.lastUpdatedMs = w.now().UnixMilli()
		}
		w.renderLocked()
	}
	if w.telemetry != nil {
		// one series per table, whatever clients post
		label := lang
		if !w.bundle.Has(lang) {
			label = "other"
		}
		w.telemetry.ObserveSessionChange("language", label)
	}
	w.publishLocked()
	return nil
}

// SetCurrency switches the display currency without fetching. Unsupported
// codes leave the session unchanged.
func (w *Widget) SetCurrency(code string) error {
	cur, err := model.ParseCurrency(code)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.session.Currency = cur
	w.renderLocked()
	if w.telemetry != nil {
		w.telemetry.ObserveSessionChange("currency", string(cur))
	}
	w.publishLocked()
	return nil
}

// View returns the current view.
func (w *Widget) View() model.View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view
}

// Session returns the current selection.
func (w *Widget) Session() model.SessionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session
}

// Languages lists the selectable languages.
func (w *Widget) Languages() []string {
	return w.bundle.Languages()
}

func (w *Widget) applyTranslationsLocked() {
	lang := w.session.Language
	for key := range w.labels {
		if v, ok := w.bundle.Label(lang, key); ok {
			w.labels[key] = v
		}
	}
	for id := range w.names {
		if v, ok := w.bundle.ItemName(lang, id); ok {
			w.names[id] = v
		}
	}
	w.direction = i18n.Direction(lang)
	w.quote, _ = i18n.PickQuote(w.bundle.Quotes(lang), w.rnd)
	w.renderLocked()
}

func (w *Widget) renderLocked() {
	out := w.renderer.Render(render.Input{
		Price:   w.price,
		Session: w.session,
		Status:  w.status,
		Names:   w.names,
		Labels:  w.labels,
	})

	labels := make(map[string]string, len(w.labels))
	for k, v := range w.labels {
		labels[k] = v
	}
	v := model.View{
		Language:    w.session.Language,
		Direction:   w.direction,
		Currency:    w.session.Currency,
		Status:      w.status,
		PriceText:   out.PriceText,
		LastUpdated: w.lastUpdatedLocked(),
		Labels:      labels,
		Items:       out.Items,
	}
	if w.quote.Text != "" {
		v.QuoteText = `"` + w.quote.Text + `"`
		v.QuoteAuthor = "- " + w.quote.Author
	}
	w.view = v
}

func (w *Widget) lastUpdatedLocked() string {
	prefix := w.labels["lastUpdated"]
	if w.lastUpdatedMs > 0 {
		t := time.UnixMilli(w.lastUpdatedMs).In(w.loc)
		return prefix + " " + formatter.DateTime(w.session.Language, t)
	}
	if w.status == model.StatusNoData {
		return prefix + " " + w.labels["kaspaPriceTitle"] + ": " + w.labels["noData"]
	}
	return ""
}

func (w *Widget) publishLocked() {
	for _, s := range w.sinks {
		s.Publish(w.view)
	}
}
