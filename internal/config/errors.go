package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings (empty
	// address or negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
