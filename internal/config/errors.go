package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRetentionConfigs indicates invalid retention settings
	// (non-positive retention window, warning window not inside the
	// retention window, or a non-positive sweep interval).
	ErrInvalidRetentionConfigs = errors.New("invalid retention configuration")

	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
