package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/rentpred/internal/flagx"
	"github.com/dmitrijs2005/rentpred/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// It relies on timex.Duration so files can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type FileConfig struct {
	APIBaseURL          string         `json:"api_base_url" yaml:"api_base_url"`
	HealthPath          string         `json:"health_path" yaml:"health_path"`
	SessionDBPath       string         `json:"session_db_path" yaml:"session_db_path"`
	RequestTimeout      timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays Config with values loaded from a config file.
//
// The path comes from -c, -config or --config (flagx.ConfigFileFlag). Files
// ending in .yaml or .yml are read as YAML, anything else as JSON. Only
// fields present in the file are copied.
//
// Panics on read or unmarshal errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.HealthPath != "" {
		cfg.HealthPath = fc.HealthPath
	}
	if fc.SessionDBPath != "" {
		cfg.SessionDBPath = fc.SessionDBPath
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
