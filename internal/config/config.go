package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when fields are omitted from the config file.
const (
	DefaultLiquipediaBaseURL   = "https://liquipedia.net/dota2"
	DefaultLiquipediaRateLimit = 2.0
	DefaultOpenDotaBaseURL     = "https://api.opendota.com/api"
	DefaultOpenDotaRateLimit   = 1.0
	DefaultUserAgent           = "dotafeed/1.0 (github.com/pfrederiksen/dotafeed)"
	DefaultCacheDir            = ".cache"
	DefaultCacheTTL            = time.Hour
)

// Config is the top-level configuration for the collector.
type Config struct {
	Sources SourcesConfig `yaml:"data_sources"`
	Cache   CacheConfig   `yaml:"cache"`
}

// SourcesConfig holds per-source settings.
type SourcesConfig struct {
	Liquipedia LiquipediaConfig `yaml:"liquipedia"`
	OpenDota   OpenDotaConfig   `yaml:"opendota"`
}

// LiquipediaConfig configures the wiki scraper.
type LiquipediaConfig struct {
	Enabled   bool    `yaml:"enabled"`
	BaseURL   string  `yaml:"base_url"`
	RateLimit float64 `yaml:"rate_limit"` // minimum seconds between requests
	UserAgent string  `yaml:"user_agent"`
}

// OpenDotaConfig configures the match telemetry API client.
type OpenDotaConfig struct {
	Enabled   bool    `yaml:"enabled"`
	BaseURL   string  `yaml:"base_url"`
	APIKey    string  `yaml:"api_key"`
	RateLimit float64 `yaml:"rate_limit"` // minimum seconds between requests
}

// CacheConfig configures the on-disk page cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	TTL     string `yaml:"ttl"` // Go duration string, e.g. "1h"
}

// Interval returns the minimum request interval for the scraper.
func (c LiquipediaConfig) Interval() time.Duration {
	return time.Duration(c.RateLimit * float64(time.Second))
}

// Interval returns the minimum request interval for the API client.
func (c OpenDotaConfig) Interval() time.Duration {
	return time.Duration(c.RateLimit * float64(time.Second))
}

// FreshFor returns the cache freshness window, falling back to the default
// when TTL is empty or unparseable.
func (c CacheConfig) FreshFor() time.Duration {
	if c.TTL == "" {
		return DefaultCacheTTL
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d <= 0 {
		return DefaultCacheTTL
	}
	return d
}

// Default returns a configuration with both sources enabled and all defaults
// filled in. Used when no config file is present.
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			Liquipedia: LiquipediaConfig{
				Enabled:   true,
				BaseURL:   DefaultLiquipediaBaseURL,
				RateLimit: DefaultLiquipediaRateLimit,
				UserAgent: DefaultUserAgent,
			},
			OpenDota: OpenDotaConfig{
				Enabled:   true,
				BaseURL:   DefaultOpenDotaBaseURL,
				RateLimit: DefaultOpenDotaRateLimit,
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     DefaultCacheDir,
		},
	}
}

// Load reads and parses a YAML config file. Fields omitted from the file keep
// their default values; the OpenDota API key falls back to the
// OPENDOTA_API_KEY environment variable.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults restores defaults for fields that were explicitly set to
// empty values in the file.
func (c *Config) applyDefaults() {
	if c.Sources.Liquipedia.BaseURL == "" {
		c.Sources.Liquipedia.BaseURL = DefaultLiquipediaBaseURL
	}
	if c.Sources.Liquipedia.RateLimit <= 0 {
		c.Sources.Liquipedia.RateLimit = DefaultLiquipediaRateLimit
	}
	if c.Sources.Liquipedia.UserAgent == "" {
		c.Sources.Liquipedia.UserAgent = DefaultUserAgent
	}
	if c.Sources.OpenDota.BaseURL == "" {
		c.Sources.OpenDota.BaseURL = DefaultOpenDotaBaseURL
	}
	if c.Sources.OpenDota.RateLimit <= 0 {
		c.Sources.OpenDota.RateLimit = DefaultOpenDotaRateLimit
	}
	if c.Sources.OpenDota.APIKey == "" {
		c.Sources.OpenDota.APIKey = os.Getenv("OPENDOTA_API_KEY")
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = DefaultCacheDir
	}
}
