// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "pcc-stub"
	testClientID = "key123"
	testSignKey  = "test-sign-key"
)

// ── GenerateJWTToken ─────────────────────────────────────────────────────────

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testClientID, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testClientID, token.ClientID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		clientID string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", testClientID, time.Hour, testSignKey},
		{"empty client id", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, testClientID, 0, testSignKey},
		{"empty sign key", testIssuer, testClientID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.clientID, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

// ── ValidateAndParseJWTToken ─────────────────────────────────────────────────

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testClientID, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)

	require.NoError(t, err)
	assert.Equal(t, testClientID, parsed.ClientID)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testClientID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testClientID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testClientID, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)

	require.Error(t, err)
}

// ── ParseBearerToken ─────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expected    string
		expectError bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"padded header", "  Bearer token123  ", "token123", false},
		{"missing token", "Bearer", "", true},
		{"empty header", "", "", true},
		{"empty token part", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

// ── PeekTokenClaims ──────────────────────────────────────────────────────────

func TestPeekTokenClaims_JWT(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testClientID, time.Hour, testSignKey)
	require.NoError(t, err)

	issuer, expiresAt, err := PeekTokenClaims(issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, testIssuer, issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}

func TestPeekTokenClaims_OpaqueToken(t *testing.T) {
	_, _, err := PeekTokenClaims("just-an-opaque-string")

	require.Error(t, err)
}
