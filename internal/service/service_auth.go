package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/utils"
	"github.com/vineetdaniels2108/facility-analysis/models"
)

const grantTypeClientCredentials = "client_credentials"

type authService struct {
	cfg    *config.ServerConfig
	logger *logger.Logger
}

func NewAuthService(cfg *config.ServerConfig, logger *logger.Logger) AuthService {
	return &authService{cfg: cfg, logger: logger}
}

// IssueToken implements [AuthService].
func (a *authService) IssueToken(ctx context.Context, grantType, clientID, clientSecret string) (models.TokenResponse, error) {
	if grantType != grantTypeClientCredentials {
		return models.TokenResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedGrantType, grantType)
	}

	if !credentialsMatch(clientID, clientSecret, a.cfg.APIKey, a.cfg.APISecret) {
		return models.TokenResponse{}, ErrInvalidClientCredentials
	}

	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, clientID, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		ExpiresIn:   int64(a.cfg.TokenDuration.Seconds()),
	}, nil
}

// ParseToken implements [AuthService].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	return token, nil
}

func credentialsMatch(gotID, gotSecret, wantID, wantSecret string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(gotID), []byte(wantID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(gotSecret), []byte(wantSecret)) == 1
	return idOK && secretOK
}
