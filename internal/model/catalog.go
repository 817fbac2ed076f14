package model

// Category groups catalog items that share pricing rules.
type Category string

const (
	CategoryGeneral Category = "general"
	// CategoryHousing items carry market prices per currency instead of a
	// converted USD value.
	CategoryHousing Category = "housing"
)

// CatalogItem is a real-world item priced in USD.
type CatalogItem struct {
	ID           string
	BaseValueUSD float64
	Category     Category
	Overrides    map[Currency]float64
}

// Override returns the item's fixed price in cur, if one is defined.
func (it CatalogItem) Override(cur Currency) (float64, bool) {
	v, ok := it.Overrides[cur]
	return v, ok
}
