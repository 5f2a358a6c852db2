package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/utils"
	"github.com/vineetdaniels2108/facility-analysis/models"
)

const traceIDHeader = "X-Trace-ID"

type httpPCCAdapter struct {
	authClient     *utils.HTTPClient
	consumerClient *utils.HTTPClient

	apiKey    string
	apiSecret string
	token     string

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewHTTPPCCAdapter constructs an HTTP/REST implementation of [PCCAdapter].
// It normalises and validates both base URLs, configures one underlying HTTP
// client per service with the resolved base URL and request timeout, and
// attaches a fresh trace ID to every outbound request.
//
// Returns an error if either base URL is empty or cannot be parsed as a
// valid URL.
func NewHTTPPCCAdapter(authCfg config.ClientAuth, consumerCfg config.ClientConsumer, adapterCfg config.ClientAdapter, logger *logger.Logger) (PCCAdapter, error) {
	authBaseURL, err := normalizeBaseURL(authCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth service address: %w", err)
	}

	consumerBaseURL, err := normalizeBaseURL(consumerCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid consumer service address: %w", err)
	}

	authClient := utils.NewHTTPClient()
	authClient.
		SetBaseURL(authBaseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	consumerClient := utils.NewHTTPClient()
	consumerClient.
		SetBaseURL(consumerBaseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpPCCAdapter{
		authClient:     authClient,
		consumerClient: consumerClient,
		apiKey:         authCfg.APIKey,
		apiSecret:      authCfg.APISecret,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PCCAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpPCCAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [PCCAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpPCCAdapter) Token() string {
	return h.token
}

// Authenticate implements [PCCAdapter]. It POSTs the form-encoded
// client-credentials grant to POST /api/v1/auth/token on the auth service.
// On success the access token from the response body is stored via SetToken.
// Returns an error if the request fails, the server returns a non-2xx
// status, or the response carries no access token.
func (h *httpPCCAdapter) Authenticate(ctx context.Context) (models.TokenResponse, error) {
	h.logger.Info().Str("base_url", h.authClient.BaseURL).Msg("authenticating")

	var tokenResp models.TokenResponse

	resp, err := h.authClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader(traceIDHeader, h.uuid.Generate()).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     h.apiKey,
			"client_secret": h.apiSecret,
		}).
		SetResult(&tokenResp).
		Post("/api/v1/auth/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	if tokenResp.AccessToken == "" {
		return models.TokenResponse{}, ErrEmptyAccessToken
	}

	h.SetToken(tokenResp.AccessToken)
	return tokenResp, nil
}

// PatientSummary implements [PCCAdapter]. It GETs
// GET /api/v1/pcc/{simplID}/summary on the consumer service with the stored
// bearer token and returns the response body verbatim. Returns [ErrNoToken]
// if Authenticate has not succeeded yet, or a mapped error if the request
// fails.
func (h *httpPCCAdapter) PatientSummary(ctx context.Context, simplID string) (models.PatientSummary, error) {
	if h.Token() == "" {
		return models.PatientSummary{}, ErrNoToken
	}

	h.logger.Info().Str("simpl_id", simplID).Msg("fetching patient summary")

	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/v1/pcc/" + url.PathEscape(simplID) + "/summary")
	if err != nil {
		return models.PatientSummary{}, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PatientSummary{}, err
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return models.PatientSummary{SimplID: simplID, Body: body}, nil
}

func (h *httpPCCAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.consumerClient.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.uuid.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
