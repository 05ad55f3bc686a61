package config

import "errors"

// Validation errors returned when a role-specific config view is incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an empty endpoint or a relative endpoint with no base
	// address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing download or upload
	// directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid development server settings
	// (for example, a non-positive upload limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
