package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or a pgx driver without a DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidOracleConfigs indicates invalid oracle settings
	// (for example, an API key without a model identifier).
	ErrInvalidOracleConfigs = errors.New("invalid oracle configuration")
)
