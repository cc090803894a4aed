package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidEnvironment indicates an unrecognised APP_ENVIRONMENT
	// value (only "development" and "production" are accepted).
	ErrInvalidEnvironment = errors.New("invalid environment configuration")
	// ErrInvalidStorageConfigs indicates incomplete database settings
	// (for example, missing host or database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrMissingCaptchaSecret indicates a production run without a real
	// hCaptcha secret key configured.
	ErrMissingCaptchaSecret = errors.New("missing hCaptcha secret in production")
)
