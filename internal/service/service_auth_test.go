package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
)

func newTestAuthService() AuthService {
	cfg := &config.ServerConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pcc-stub",
		TokenDuration: time.Hour,
		APIKey:        "key123",
		APISecret:     "secret456",
	}
	return NewAuthService(cfg, logger.Nop())
}

// ── IssueToken ───────────────────────────────────────────────────────────────

func TestAuthService_IssueToken_Success(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.IssueToken(context.Background(), "client_credentials", "key123", "secret456")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestAuthService_IssueToken_UnsupportedGrantType(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.IssueToken(context.Background(), "authorization_code", "key123", "secret456")

	assert.ErrorIs(t, err, ErrUnsupportedGrantType)
}

func TestAuthService_IssueToken_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name         string
		clientID     string
		clientSecret string
	}{
		{name: "wrong id", clientID: "someone-else", clientSecret: "secret456"},
		{name: "wrong secret", clientID: "key123", clientSecret: "guess"},
		{name: "both empty", clientID: "", clientSecret: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.IssueToken(context.Background(), "client_credentials", tt.clientID, tt.clientSecret)
			assert.ErrorIs(t, err, ErrInvalidClientCredentials)
		})
	}
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_Roundtrip(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.IssueToken(ctx, "client_credentials", "key123", "secret456")
	require.NoError(t, err)

	token, err := svc.ParseToken(ctx, resp.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, "key123", token.ClientID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.Error(t, err)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	cfg := &config.ServerConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pcc-stub",
		TokenDuration: -time.Minute,
		APIKey:        "key123",
		APISecret:     "secret456",
	}
	svc := NewAuthService(cfg, logger.Nop())
	ctx := context.Background()

	resp, err := svc.IssueToken(ctx, "client_credentials", "key123", "secret456")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, resp.AccessToken)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}
