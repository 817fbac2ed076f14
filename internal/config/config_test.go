package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"KaspaWorth/internal/collector"
	"KaspaWorth/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PriceSource.URL != collector.DefaultKaspaURL {
		t.Errorf("url = %q", cfg.PriceSource.URL)
	}
	if cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("ttl = %s, want 15m", cfg.Cache.TTL)
	}
	if cfg.Refresh.Interval != cfg.Cache.TTL {
		t.Errorf("interval = %s, want ttl", cfg.Refresh.Interval)
	}
	if cfg.Cache.Backend != BackendSQLite {
		t.Errorf("backend = %q", cfg.Cache.Backend)
	}
	if cfg.Currency() != model.USD {
		t.Errorf("currency = %s", cfg.Currency())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
price_source:
  url: http://localhost:9000/price
cache:
  backend: FILE
  ttl: 5m
display:
  default_currency: eur
  eur_rate: 0.9
  timezone: Europe/Berlin
`)
	t.Setenv("LISTEN_ADDRESS", "127.0.0.1:9999")
	t.Setenv("PRICE_CACHE_TTL", "30m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PriceSource.URL != "http://localhost:9000/price" {
		t.Errorf("url = %q", cfg.PriceSource.URL)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("ttl = %s, want env override 30m", cfg.Cache.TTL)
	}
	if cfg.Server.ListenAddress != "127.0.0.1:9999" {
		t.Errorf("listen = %q", cfg.Server.ListenAddress)
	}
	if cfg.Currency() != model.EUR {
		t.Errorf("currency = %s", cfg.Currency())
	}
	if got := cfg.Rates()[model.EUR]; got != 0.9 {
		t.Errorf("eur rate = %v", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadBadTTLEnv(t *testing.T) {
	t.Setenv("PRICE_CACHE_TTL", "soon")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for bad PRICE_CACHE_TTL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"currency", func(c *Config) { c.Display.DefaultCurrency = "GBP" }},
		{"rate", func(c *Config) { c.Display.EURRate = -1 }},
		{"ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"timezone", func(c *Config) { c.Display.Timezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "cache: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
