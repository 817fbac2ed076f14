package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serve(t *testing.T, status int, body string) *KaspaFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewKaspaFetcher(srv.URL, "kaspaworth-test", "", 5*time.Second)
}

func TestFetchPrice_OK(t *testing.T) {
	f := serve(t, http.StatusOK, `{"price": 0.0873, "volume": 12}`)
	p, err := f.FetchPrice(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 0.0873 {
		t.Errorf("expected 0.0873, got %v", p)
	}
}

func TestFetchPrice_Malformed(t *testing.T) {
	bodies := []string{
		`{"volume": 12}`,
		`{"price": "0.08"}`,
		`{"price": null}`,
		`{"price": 0}`,
		`{"price": -0.5}`,
		`[1, 2]`,
		`null`,
	}
	for _, body := range bodies {
		f := serve(t, http.StatusOK, body)
		_, err := f.FetchPrice(context.Background())
		if !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("%s: expected ErrMalformedPayload, got %v", body, err)
		}
	}
}

func TestFetchPrice_HTTPError(t *testing.T) {
	f := serve(t, http.StatusServiceUnavailable, `{"price": 1}`)
	_, err := f.FetchPrice(context.Background())
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected StatusError 503, got %v", err)
	}
	if errors.Is(err, ErrMalformedPayload) {
		t.Error("status error must not be classified as malformed payload")
	}
}

func TestFetchPrice_InvalidJSONIsNotMalformed(t *testing.T) {
	f := serve(t, http.StatusOK, `<html>oops</html>`)
	_, err := f.FetchPrice(context.Background())
	if err == nil || errors.Is(err, ErrMalformedPayload) {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestFetchPrice_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	f := NewKaspaFetcher(url, "", "", time.Second)
	if _, err := f.FetchPrice(context.Background()); err == nil {
		t.Error("expected transport error")
	}
}
