package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":          "http://www.example:9000",
		"online_check_interval": "10s",
	})

	t.Run("loads JSON from flags", func(t *testing.T) {
		args := []string{"-config", pathFlag}

		cfg := &Config{LogLevel: "warn"}
		parseFile(cfg, args)

		assert.Equal(t, "http://www.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, "warn", cfg.LogLevel, "absent fields keep their value")
	})

	t.Run("loads YAML by extension", func(t *testing.T) {
		yml := filepath.Join(dir, "cfg.yml")
		require.NoError(t, os.WriteFile(yml, []byte("session_db_path: /var/lib/rentpred.db\nrequest_timeout: 2500000000\n"), 0o600))
		args := []string{"--config=" + yml}

		cfg := &Config{}
		parseFile(cfg, args)

		assert.Equal(t, "/var/lib/rentpred.db", cfg.SessionDBPath)
		assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("no config flag leaves cfg alone", func(t *testing.T) {
		args := []string{"-a", "http://flag:1"}

		cfg := &Config{
			APIBaseURL:          "http://defaults:1234",
			OnlineCheckInterval: 42 * time.Second,
		}
		parseFile(cfg, args)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseFile(&Config{}, []string{"-config", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(dir, "nope.yaml")}) })
	})
}
