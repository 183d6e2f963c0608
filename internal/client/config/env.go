package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "RENTPRED_"

// parseEnv overlays Config with RENTPRED_* environment variables. Unless
// RENTPRED_ENV is "production", envFile is loaded first; variables already
// set in the process environment win over the file. A missing file is not
// an error.
//
// Panics on an unreadable env file or an unparsable duration.
func parseEnv(cfg *Config, envFile string) {
	if os.Getenv(envPrefix+"ENV") != "production" && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	setString(&cfg.APIBaseURL, "API_URL")
	setString(&cfg.HealthPath, "HEALTH_PATH")
	setString(&cfg.SessionDBPath, "SESSION_DB")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setDuration(&cfg.RequestTimeout, "REQUEST_TIMEOUT")
	setDuration(&cfg.OnlineCheckInterval, "ONLINE_CHECK_INTERVAL")
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
