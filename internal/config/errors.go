package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are absent. Both are fatal at startup: the process
// must not begin serving traffic without them.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token signing key is not configured")

	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
)
