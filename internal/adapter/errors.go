package adapter

import "errors"

// Sentinel errors mapped from upstream HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrEmptyAccessToken indicates a 2xx token response whose body carried
	// no access_token value.
	ErrEmptyAccessToken = errors.New("empty access token in auth response")

	// ErrNoToken indicates an authenticated call was attempted before a
	// token was obtained.
	ErrNoToken = errors.New("no bearer token set")
)
