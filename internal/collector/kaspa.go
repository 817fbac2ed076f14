package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultKaspaURL is the public Kaspa REST price endpoint.
const DefaultKaspaURL = "https://api.kaspa.org/info/price"

// KaspaFetcher implements Fetcher against an endpoint returning
// {"price": <number>, ...}.
type KaspaFetcher struct {
	URL       string
	UserAgent string
	Client    *http.Client
}

// NewKaspaFetcher creates a fetcher with optional proxy support.
func NewKaspaFetcher(endpoint, userAgent, proxyURL string, timeout time.Duration) *KaspaFetcher {
	if endpoint == "" {
		endpoint = DefaultKaspaURL
	}
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &KaspaFetcher{
		URL:       endpoint,
		UserAgent: userAgent,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *KaspaFetcher) Name() string { return "kaspa-api" }

func (f *KaspaFetcher) FetchPrice(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch price: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return 0, &StatusError{Code: resp.StatusCode}
	}
	return parsePrice(body)
}

// parsePrice extracts a positive numeric "price" field. Invalid JSON is
// reported as a plain decode error; valid JSON without a usable price wraps
// ErrMalformedPayload.
func parsePrice(body []byte) (float64, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return 0, fmt.Errorf("decode price: %w", err)
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: body is %T, want object", ErrMalformedPayload, data)
	}
	raw, ok := obj["price"]
	if !ok {
		return 0, fmt.Errorf("%w: missing price", ErrMalformedPayload)
	}
	price, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: price is %T", ErrMalformedPayload, raw)
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: price %v is not positive", ErrMalformedPayload, price)
	}
	return price, nil
}
