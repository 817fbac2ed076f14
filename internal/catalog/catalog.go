package catalog

import "KaspaWorth/internal/model"

// USDToEURRate converts catalog USD values for EUR display (approx. July 2025).
const USDToEURRate = 0.92

// Rates maps a display currency to its multiplier from USD.
type Rates map[model.Currency]float64

// DefaultRates holds the fixed conversion rates.
var DefaultRates = Rates{
	model.USD: 1,
	model.EUR: USDToEURRate,
}

func housing(id string, usd, eur float64) model.CatalogItem {
	return model.CatalogItem{
		ID:           id,
		BaseValueUSD: usd,
		Category:     model.CategoryHousing,
		Overrides:    map[model.Currency]float64{model.EUR: eur},
	}
}

func item(id string, usd float64) model.CatalogItem {
	return model.CatalogItem{ID: id, BaseValueUSD: usd, Category: model.CategoryGeneral}
}

// Items is the display order of the catalog. Values are mid-2024 estimates.
var Items = []model.CatalogItem{
	item("privateIsland", 15000000),
	item("privateJet", 8000000),
	housing("luxuryHouse", 1500000, 2000000),
	item("yacht", 5000000),
	item("luxuryCar", 250000),
	item("goldKg", 108000), // ~$2300/oz * 32.15 oz
	item("bitcoin", 110000),
	housing("mediumHouse", 400000, 500000),
	item("electricCar", 50000),
	item("gamingPc", 3000),
	item("watch", 15000),
	item("designerHandbag", 5000),
	item("silverKg", 1250),
	item("computer", 1200),
	item("smartphone", 1000),
	housing("smallHouse", 200000, 250000),
	item("fineDiningMeal", 300),
	item("pizza", 20),
	item("coffee", 6),
}

// FiatValue returns the item's price in cur.
//
// Housing items use their per-currency market price when one is defined;
// everything else is the USD value times the currency's rate. A currency
// without a rate is treated as USD.
func FiatValue(it model.CatalogItem, cur model.Currency, rates Rates) float64 {
	if cur == model.USD {
		return it.BaseValueUSD
	}
	if it.Category == model.CategoryHousing {
		if v, ok := it.Override(cur); ok {
			return v
		}
	}
	rate, ok := rates[cur]
	if !ok {
		return it.BaseValueUSD
	}
	return it.BaseValueUSD * rate
}
