// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Default values applied by the view constructors when a field was not set
// by any configuration source.
const (
	// DefaultPatientID is the placeholder patient identifier used when no
	// real simpl_id has been provided. Swap it for a real one via
	// PCC_PATIENT_ID or -patient-id.
	DefaultPatientID = "test-simpl-id"

	// DefaultRequestTimeout bounds every outbound HTTP request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultServerAddress is where the stub server listens when no address
	// has been configured.
	DefaultServerAddress = "localhost:8080"

	// DefaultTokenIssuer is the "iss" claim the stub server embeds in
	// issued tokens.
	DefaultTokenIssuer = "pcc-stub"

	// DefaultTokenDuration is the stub token lifetime.
	DefaultTokenDuration = time.Hour
)

// StructuredConfig is the top-level configuration container for the
// pcc-smoke and pcc-stub binaries. It aggregates all sub-configurations and
// is populated by merging values from a .env.local file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the auth-service base URL and the client-credentials pair.
	// The env names carry over from the original integration worksheet, so
	// an existing .env.local keeps working unchanged.
	Auth Auth

	// Consumer holds the consumer-service base URL.
	Consumer Consumer

	// Smoke holds smoke-run parameters such as the patient identifier.
	Smoke Smoke

	// Adapter holds settings for the outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds listen address and token settings for the stub server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds everything needed to talk to the auth service.
type Auth struct {
	// URL is the auth-service base URL.
	// Env: AUTH_SERVICE_URL
	URL string `env:"AUTH_SERVICE_URL"`

	// APIKey is the OAuth2 client identifier.
	// Env: PCC_API_KEY
	APIKey string `env:"PCC_API_KEY"`

	// APISecret is the OAuth2 client secret. Must be kept confidential.
	// Env: PCC_API_SECRET
	APISecret string `env:"PCC_API_SECRET"`
}

// Consumer holds the downstream REST service location.
type Consumer struct {
	// URL is the consumer-service base URL.
	// Env: CONSUMER_SERVICE_URL
	URL string `env:"CONSUMER_SERVICE_URL"`
}

// Smoke holds parameters of a single smoke run.
type Smoke struct {
	// PatientID is the simpl_id whose summary is fetched.
	// Env: PCC_PATIENT_ID
	PatientID string `env:"PCC_PATIENT_ID"`
}

// Adapter holds settings for the outbound HTTP transport layer.
type Adapter struct {
	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and token settings for the stub server.
type Server struct {
	// HTTPAddress is the TCP address on which the stub server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the secret key used to sign and verify stub-issued
	// JWT tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every authenticated request.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "1h", "30m").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables (with .env.local loaded beforehand)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
