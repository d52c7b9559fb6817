package config

import "errors"

// Sentinel kinds for configuration failures.
var (
	// ErrLoadConfig wraps failures reading the HOOPSIGHT_CONFIG file or
	// the env layer.
	ErrLoadConfig = errors.New("load config failed")

	// ErrInvalidConfig wraps settings that fail validation, like an
	// empty roster_path or a non-positive results timeout.
	ErrInvalidConfig = errors.New("invalid config")
)
