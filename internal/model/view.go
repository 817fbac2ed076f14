package model

// ItemView is the computed display of one catalog item.
type ItemView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Quantity      string  `json:"quantity"`
	Fiat          string  `json:"fiat"`
	Unit          string  `json:"unit,omitempty"`
	QuantityValue float64 `json:"quantity_value"`
	FiatValue     float64 `json:"fiat_value"`
	Available     bool    `json:"available"`
}

// View is everything a UI surface needs to paint the widget.
type View struct {
	Language    string            `json:"language"`
	Direction   string            `json:"direction"`
	Currency    Currency          `json:"currency"`
	Status      Status            `json:"status"`
	PriceText   string            `json:"price_text"`
	LastUpdated string            `json:"last_updated"`
	QuoteText   string            `json:"quote_text"`
	QuoteAuthor string            `json:"quote_author"`
	Labels      map[string]string `json:"labels"`
	Items       []ItemView        `json:"items"`
}
