package config

import (
	"fmt"
	"time"
)

// ServerConfig is the stub-server configuration assembled from
// [StructuredConfig]. The stub validates incoming client credentials against
// the same API key/secret pair the smoke client sends, so both binaries can
// share one .env.local.
type ServerConfig struct {
	// HTTPAddress is the TCP address the stub server listens on.
	HTTPAddress string
	// TokenSignKey signs and verifies stub-issued tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of stub-issued tokens.
	TokenIssuer string
	// TokenDuration is the stub token lifetime.
	TokenDuration time.Duration
	// APIKey is the client id the stub accepts.
	APIKey string
	// APISecret is the client secret the stub accepts.
	APISecret string
}

// GetServerConfig builds and validates a stub-server config view from the
// merged structured configuration, filling in development defaults for every
// unset field so the stub runs out of the box.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.Server.TokenSignKey,
		TokenIssuer:   cfg.Server.TokenIssuer,
		TokenDuration: cfg.Server.TokenDuration,
		APIKey:        cfg.Auth.APIKey,
		APISecret:     cfg.Auth.APISecret,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.TokenSignKey == "" {
		// local development only; the stub never guards real data
		serverCfg.TokenSignKey = "pcc-stub-dev-key"
	}
	if serverCfg.TokenIssuer == "" {
		serverCfg.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.TokenDuration == 0 {
		serverCfg.TokenDuration = DefaultTokenDuration
	}

	return serverCfg, serverCfg.validate()
}
