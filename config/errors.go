package config

import "errors"

// Sentinel errors for configuration loading and validation.
var (
	// ErrInvalidConfig indicates a loaded Config failed Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
