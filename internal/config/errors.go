package config

import "errors"

// Validation errors returned by the view constructors when required
// configuration groups are incomplete or invalid.
var (
	// ErrPlaceholderConfig indicates that the auth or consumer URL is still
	// the placeholder from the sample env file (or empty). The smoke client
	// treats this as "not configured yet" and returns early without making
	// any request.
	ErrPlaceholderConfig = errors.New("placeholder configuration")

	// ErrInvalidAuthConfigs indicates missing client credentials
	// (API key or API secret).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidAdapterConfigs indicates invalid outbound transport settings
	// (for example, a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidServerConfigs indicates invalid stub server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
