package config

import (
	"fmt"
	"time"
)

// ClientAuth holds auth-service settings used by the smoke client.
type ClientAuth struct {
	// URL is the auth-service base URL.
	URL string
	// APIKey is the OAuth2 client identifier.
	APIKey string
	// APISecret is the OAuth2 client secret.
	APISecret string
}

// ClientConsumer holds consumer-service settings used by the smoke client.
type ClientConsumer struct {
	// URL is the consumer-service base URL.
	URL string
}

// ClientSmoke holds smoke-run parameters.
type ClientSmoke struct {
	// PatientID is the simpl_id to fetch the summary for.
	PatientID string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level smoke-client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Auth contains auth-service settings and credentials.
	Auth ClientAuth
	// Consumer contains the consumer-service location.
	Consumer ClientConsumer
	// Smoke contains smoke-run parameters.
	Smoke ClientSmoke
	// Adapter contains client transport timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the smoke client, fills in defaults for the patient ID and
// request timeout, and validates the resulting [ClientConfig].
//
// A returned [ErrPlaceholderConfig] means the environment still carries
// sample URLs; callers should print guidance and return without calling any
// service.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Auth: ClientAuth{
			URL:       cfg.Auth.URL,
			APIKey:    cfg.Auth.APIKey,
			APISecret: cfg.Auth.APISecret,
		},
		Consumer: ClientConsumer{
			URL: cfg.Consumer.URL,
		},
		Smoke: ClientSmoke{
			PatientID: cfg.Smoke.PatientID,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if clientCfg.Smoke.PatientID == "" {
		clientCfg.Smoke.PatientID = DefaultPatientID
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
