package service

import "errors"

var (
	// ErrAuthenticateOnServer wraps any failure of the client-credentials
	// grant against the auth service.
	ErrAuthenticateOnServer = errors.New("authentication on auth service failed")

	// ErrFetchSummary wraps any failure of the summary fetch from the
	// consumer service.
	ErrFetchSummary = errors.New("patient summary fetch failed")

	// ErrUnsupportedGrantType is returned by the stub when the token
	// request carries a grant type other than client_credentials.
	ErrUnsupportedGrantType = errors.New("unsupported grant type")

	// ErrInvalidClientCredentials is returned by the stub when the
	// client id/secret pair does not match the configured values.
	ErrInvalidClientCredentials = errors.New("invalid client credentials")

	// ErrTokenIsExpired is returned by the stub when a presented bearer
	// token has passed its expiry.
	ErrTokenIsExpired = errors.New("token is expired")
)
