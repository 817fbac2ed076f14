// Package render turns a price, a session and the catalog into display text.
package render

import (
	"KaspaWorth/internal/catalog"
	"KaspaWorth/internal/formatter"
	"KaspaWorth/internal/model"
)

// NotAvailable is shown when no label overrides it.
const NotAvailable = "N/A"

// Input is everything one render pass depends on.
type Input struct {
	Price   *model.PriceSnapshot // nil when no price is known
	Session model.SessionState
	Status  model.Status
	Names   map[string]string // item ID -> display name
	Labels  map[string]string
}

// Output is the computed display, ready for a UI adapter.
type Output struct {
	PriceText string
	Items     []model.ItemView
}

// Renderer computes item equivalents. It holds no mutable state.
type Renderer struct {
	Items []model.CatalogItem
	Rates catalog.Rates
}

func New(items []model.CatalogItem, rates catalog.Rates) *Renderer {
	return &Renderer{Items: items, Rates: rates}
}

var statusLabels = map[model.Status]string{
	model.StatusAPIDataError:    "apiDataError",
	model.StatusAPILoadingError: "apiLoadingError",
	model.StatusNoData:          "noData",
}

// Render builds one Output. It never divides by a non-positive price.
func (r *Renderer) Render(in Input) Output {
	lang := in.Session.Language
	na := label(in.Labels, "notAvailable", NotAvailable)
	out := Output{Items: make([]model.ItemView, 0, len(r.Items))}

	if in.Price == nil || !in.Price.Available() {
		reason := na
		if key, ok := statusLabels[in.Status]; ok {
			reason = label(in.Labels, key, reason)
		}
		out.PriceText = label(in.Labels, "kaspaPriceTitle", "Kaspa Price") + ": " + reason
		for _, it := range r.Items {
			out.Items = append(out.Items, model.ItemView{
				ID:       it.ID,
				Name:     name(in.Names, it.ID),
				Quantity: na,
				Fiat:     na,
			})
		}
		return out
	}

	price := in.Price.ValueUSD
	out.PriceText = formatter.Money(lang, model.USD, price, 4)
	for _, it := range r.Items {
		fiat := catalog.FiatValue(it, in.Session.Currency, r.Rates)
		qty := fiat / price
		out.Items = append(out.Items, model.ItemView{
			ID:            it.ID,
			Name:          name(in.Names, it.ID),
			Quantity:      formatter.Number(lang, qty, 2),
			Fiat:          formatter.Money(lang, in.Session.Currency, fiat, 0),
			Unit:          model.UnitKAS,
			QuantityValue: qty,
			FiatValue:     fiat,
			Available:     true,
		})
	}
	return out
}

func label(labels map[string]string, key, fallback string) string {
	if v, ok := labels[key]; ok && v != "" {
		return v
	}
	return fallback
}

func name(names map[string]string, id string) string {
	if v, ok := names[id]; ok {
		return v
	}
	return id
}
