package config

import (
	"os"
	"time"
)

// EnvAPIBaseURL is the environment override point for the API base address.
const EnvAPIBaseURL = "HAUL_API_URL"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: base address of the marketplace REST backend, including
//     the /api prefix.
//   - RequestTimeout: overall per-request timeout of the HTTP client.
//   - DatabasePath: sqlite file backing the durable local store.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "haul.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
}
