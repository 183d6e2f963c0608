// Package config loads runtime configuration for the rentpred CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed RENTPRED_, optionally seeded from ./.env
//     (see parseEnv). The .env file is skipped when RENTPRED_ENV=production.
//  3. Optional JSON or YAML file (see parseFile) selected via -c, -config or
//     --config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the rent-estimation API
//	-i int      online status check interval (seconds)
//	-d string   session database file
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	RENTPRED_API_URL, RENTPRED_HEALTH_PATH, RENTPRED_SESSION_DB,
//	RENTPRED_REQUEST_TIMEOUT ("10s"), RENTPRED_ONLINE_CHECK_INTERVAL ("5s"),
//	RENTPRED_LOG_LEVEL
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	api_base_url: http://localhost:8000
//	online_check_interval: 5s
//	request_timeout: 15s
//	session_db_path: /home/me/.config/rentpred/session.db
//	log_level: info
package config
