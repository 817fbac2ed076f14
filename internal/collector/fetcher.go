package collector

import (
	"context"
	"errors"
	"fmt"
)

// ErrMalformedPayload means the endpoint answered but the body had no
// numeric price.
var ErrMalformedPayload = errors.New("malformed price payload")

// StatusError is a non-2xx response from the price endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("HTTP error! status: %d", e.Code) }

// Fetcher retrieves the current KAS price in USD.
type Fetcher interface {
	FetchPrice(ctx context.Context) (float64, error)
	Name() string
}
