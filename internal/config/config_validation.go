// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// placeholderHost is the sample host shipped in the env template. A URL that
// still points at it means the operator has not filled in real endpoints.
const placeholderHost = "api.example.com"

func isPlaceholderURL(rawURL string) bool {
	return rawURL == "" || strings.Contains(rawURL, placeholderHost)
}

func (cfg *ClientConfig) validate() error {
	if isPlaceholderURL(cfg.Auth.URL) || isPlaceholderURL(cfg.Consumer.URL) {
		return ErrPlaceholderConfig
	}

	if cfg.Auth.APIKey == "" || cfg.Auth.APISecret == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
