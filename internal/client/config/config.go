package config

import (
	"time"

	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/filex"
)

// Config holds runtime settings for the rentpred CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the rent-estimation API.
//   - HealthPath: path probed by the online status watcher.
//   - SessionDBPath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single API call.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	HealthPath          string
	SessionDBPath       string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.HealthPath = client.DefaultHealthPath
	c.SessionDBPath = filex.DefaultStatePath("session.db")
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and ./.env), a config file (if given) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	args := osArgs()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
