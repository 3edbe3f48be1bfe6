// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package config

// Fallback values applied by validate when a setting is absent from every
// configuration source. They keep a bare `vibe-server` invocation working
// out of the box.
const (
	defaultHTTPAddress = "localhost:8080"
	defaultDriver      = "sqlite3"
	defaultDSN         = "vibe.db"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults for
// settings that may legitimately be absent.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultDriver
	}
	if cfg.Storage.Driver != "sqlite3" && cfg.Storage.Driver != "pgx" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DSN == "" {
		if cfg.Storage.Driver != "sqlite3" {
			return ErrInvalidStorageConfigs
		}
		cfg.Storage.DSN = defaultDSN
	}

	// The oracle is optional: without a key the vibe endpoints report
	// upstream unavailability, everything else keeps working.
	if cfg.Oracle.APIKey != "" && cfg.Oracle.Model == "" {
		return ErrInvalidOracleConfigs
	}

	return nil
}
