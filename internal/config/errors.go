package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listen address or port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPinataConfigs indicates a malformed pinning service URL or
	// a negative request timeout.
	ErrInvalidPinataConfigs = errors.New("invalid pinata configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
