package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"KaspaWorth/internal/cache"
	"KaspaWorth/internal/catalog"
	"KaspaWorth/internal/collector"
	"KaspaWorth/internal/model"
)

// Cache backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	PriceSource struct {
		URL       string        `yaml:"url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"price_source"`
	Cache struct {
		Backend    string        `yaml:"backend"`
		SQLitePath string        `yaml:"sqlite_path"`
		FilePath   string        `yaml:"file_path"`
		TTL        time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Refresh struct {
		Interval time.Duration `yaml:"interval"`
		Cron     string        `yaml:"cron"`
	} `yaml:"refresh"`
	Server struct {
		ListenAddress   string        `yaml:"listen_address"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Display struct {
		DefaultCurrency string  `yaml:"default_currency"`
		EURRate         float64 `yaml:"eur_rate"`
		Timezone        string  `yaml:"timezone"`
	} `yaml:"display"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KASPA_API_URL"); v != "" {
		cfg.PriceSource.URL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDRESS"); v != "" {
		cfg.Server.ListenAddress = v
	}
	if v := os.Getenv("PRICE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PRICE_CACHE_TTL: %w", err)
		}
		cfg.Cache.TTL = ttl
	}
	if v := os.Getenv("DEFAULT_CURRENCY"); v != "" {
		cfg.Display.DefaultCurrency = v
	}

	// Defaults
	if cfg.PriceSource.URL == "" {
		cfg.PriceSource.URL = collector.DefaultKaspaURL
	}
	if cfg.PriceSource.UserAgent == "" {
		cfg.PriceSource.UserAgent = "KaspaWorth/1.0"
	}
	if cfg.PriceSource.Timeout == 0 {
		cfg.PriceSource.Timeout = 15 * time.Second
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = BackendSQLite
	}
	cfg.Cache.Backend = strings.ToLower(cfg.Cache.Backend)
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/kaspaworth.db"
	}
	if cfg.Cache.FilePath == "" {
		cfg.Cache.FilePath = "data/price_cache.json"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = cache.DefaultTTL
	}
	if cfg.Refresh.Interval == 0 {
		cfg.Refresh.Interval = cfg.Cache.TTL
	}
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Display.DefaultCurrency == "" {
		cfg.Display.DefaultCurrency = string(model.USD)
	}
	if cfg.Display.EURRate == 0 {
		cfg.Display.EURRate = catalog.USDToEURRate
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.PriceSource.URL == "" {
		return fmt.Errorf("price_source.url is required")
	}
	switch c.Cache.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("cache.backend must be sqlite, file or memory, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Refresh.Interval <= 0 && c.Refresh.Cron == "" {
		return fmt.Errorf("refresh.interval must be positive")
	}
	if _, err := model.ParseCurrency(c.Display.DefaultCurrency); err != nil {
		return fmt.Errorf("display.default_currency: %w", err)
	}
	if c.Display.EURRate <= 0 {
		return fmt.Errorf("display.eur_rate must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("display.timezone: %w", err)
	}
	return nil
}

// Currency returns the configured default currency.
func (c *Config) Currency() model.Currency {
	cur, err := model.ParseCurrency(c.Display.DefaultCurrency)
	if err != nil {
		return model.USD
	}
	return cur
}

// Rates returns the conversion table for the configured EUR rate.
func (c *Config) Rates() catalog.Rates {
	return catalog.Rates{model.USD: 1, model.EUR: c.Display.EURRate}
}

// Location resolves display.timezone; empty means the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}
