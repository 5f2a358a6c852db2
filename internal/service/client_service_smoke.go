package service

import (
	"context"
	"fmt"

	"github.com/vineetdaniels2108/facility-analysis/internal/adapter"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/utils"
	"github.com/vineetdaniels2108/facility-analysis/models"
)

type clientSmokeService struct {
	adapter adapter.PCCAdapter
	logger  *logger.Logger
}

func NewClientSmokeService(pccAdapter adapter.PCCAdapter, logger *logger.Logger) ClientSmokeService {
	return &clientSmokeService{adapter: pccAdapter, logger: logger}
}

// Run implements [ClientSmokeService].
func (s *clientSmokeService) Run(ctx context.Context, simplID string) (models.SmokeReport, error) {
	tokenResp, err := s.adapter.Authenticate(ctx)
	if err != nil {
		return models.SmokeReport{}, fmt.Errorf("%w: %w", ErrAuthenticateOnServer, err)
	}

	s.logTokenMetadata(tokenResp)

	summary, err := s.adapter.PatientSummary(ctx, simplID)
	if err != nil {
		return models.SmokeReport{}, fmt.Errorf("%w: %w", ErrFetchSummary, err)
	}

	return models.SmokeReport{Token: tokenResp, Summary: summary}, nil
}

// logTokenMetadata records what can be said about the obtained token without
// ever logging the credential itself. JWT claims are read unverified; the
// auth service may equally return an opaque token.
func (s *clientSmokeService) logTokenMetadata(tokenResp models.TokenResponse) {
	issuer, expiresAt, err := utils.PeekTokenClaims(tokenResp.AccessToken)
	if err != nil {
		s.logger.Info().
			Int("token_length", len(tokenResp.AccessToken)).
			Int64("expires_in", tokenResp.ExpiresIn).
			Msg("authenticated with opaque token")
		return
	}

	s.logger.Info().
		Str("issuer", issuer).
		Time("expires_at", expiresAt).
		Msg("authenticated")
}
