package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/rentpred/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short and long forms):
//
//	-a, -api-url string        base URL of the rent-estimation API
//	-i, -check-interval int    online check interval in seconds
//	-d, -session-db string     path of the session database
//	-t, -timeout int           request timeout in seconds
//	-l, -log-level string      log level
//
// Flags the set does not define (-c, test flags) are skipped by
// flagx.ParseKnown. Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("rentpred", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	interval := int(cfg.OnlineCheckInterval / time.Second)
	timeout := int(cfg.RequestTimeout / time.Second)

	for _, name := range []string{"a", "api-url"} {
		fs.StringVar(&cfg.APIBaseURL, name, cfg.APIBaseURL, "base URL of the API")
	}
	for _, name := range []string{"i", "check-interval"} {
		fs.IntVar(&interval, name, interval, "online check interval (in seconds)")
	}
	for _, name := range []string{"d", "session-db"} {
		fs.StringVar(&cfg.SessionDBPath, name, cfg.SessionDBPath, "session database file")
	}
	for _, name := range []string{"t", "timeout"} {
		fs.IntVar(&timeout, name, timeout, "request timeout (in seconds)")
	}
	for _, name := range []string{"l", "log-level"} {
		fs.StringVar(&cfg.LogLevel, name, cfg.LogLevel, "log level (debug, info, warn, error)")
	}

	if err := flagx.ParseKnown(fs, args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(interval) * time.Second
	cfg.RequestTimeout = time.Duration(timeout) * time.Second
}

func osArgs() []string {
	return os.Args[1:]
}
