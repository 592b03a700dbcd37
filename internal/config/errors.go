package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidFormat is returned for an output format other than html,
	// markdown, json or text.
	ErrInvalidFormat = errors.New("invalid output format: must be html, markdown, json or text")

	// ErrInvalidServer is returned when the local wiki server is not an
	// absolute http or https URL.
	ErrInvalidServer = errors.New("invalid server: must be an absolute http or https URL")

	// ErrInvalidProxy is returned for a proxy URL that cannot be used.
	ErrInvalidProxy = errors.New("invalid proxy URL")
)
