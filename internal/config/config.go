// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the Vibe-app
// backend. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the key-value persistence substrate settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Oracle holds settings for the external generative scoring API.
	Oracle Oracle `envPrefix:"ORACLE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the settings of the key-value persistence substrate backing
// the profile store.
type Storage struct {
	// Driver selects the SQL driver: "sqlite3" (default) or "pgx".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For sqlite3 this is a file path
	// (e.g. "vibe.db"); for pgx a PostgreSQL connection string.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Oracle holds connection settings for the external generative scoring API.
// The oracle is a consumed interface only: it may be slow, may error, and its
// outcomes never touch persisted state.
type Oracle struct {
	// BaseURL is the API root, e.g. "https://generativelanguage.googleapis.com".
	// Env: ORACLE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates requests to the generative API.
	// Env: ORACLE_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the generative model identifier used for vibe analysis.
	// Env: ORACLE_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds a single oracle call. Calls are never retried and
	// never cancelled once issued (fire-to-completion).
	// Env: ORACLE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// WarmupQueueSize bounds the number of freshly registered profiles
	// waiting for the auto-match warmup worker. Zero selects the default.
	// Env: WORKERS_WARMUP_QUEUE_SIZE
	WarmupQueueSize int `env:"WARMUP_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
