package collector

import (
	"context"
	"sync/atomic"
)

// MockFetcher returns a fixed price or error for development and testing.
type MockFetcher struct {
	Price float64
	Err   error
	calls atomic.Int64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPrice(_ context.Context) (float64, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Price, nil
}

// Calls returns how many times FetchPrice ran.
func (m *MockFetcher) Calls() int64 { return m.calls.Load() }
