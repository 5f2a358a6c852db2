package service

import (
	"context"
	"encoding/json"

	"github.com/vineetdaniels2108/facility-analysis/models"
)

// AuthService issues and validates the bearer tokens served by the stub.
type AuthService interface {
	// IssueToken performs the server side of the client-credentials grant.
	// Returns [ErrUnsupportedGrantType] for any grant other than
	// client_credentials and [ErrInvalidClientCredentials] when the id or
	// secret does not match the configured pair.
	IssueToken(ctx context.Context, grantType, clientID, clientSecret string) (models.TokenResponse, error)

	// ParseToken validates a presented bearer token (signature, issuer,
	// expiry) and returns the parsed token with its client id. Returns
	// [ErrTokenIsExpired] for an expired token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SummaryService resolves patient summaries for the stub's consumer
// endpoint.
type SummaryService interface {
	// GetSummary returns the summary document for simplID, or a wrapped
	// [store.ErrNoSummaryWasFound] when the patient is not in the roster.
	GetSummary(ctx context.Context, simplID string) (json.RawMessage, error)
}
