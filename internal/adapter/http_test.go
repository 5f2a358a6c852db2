// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/models"
)

// newTestAdapter creates an httpPCCAdapter pointed at the given test servers
func newTestAdapter(t *testing.T, authURL, consumerURL string) *httpPCCAdapter {
	t.Helper()
	authCfg := config.ClientAuth{URL: authURL, APIKey: "key123", APISecret: "secret456"}
	consumerCfg := config.ClientConsumer{URL: consumerURL}
	adapterCfg := config.ClientAdapter{RequestTimeout: 5 * time.Second}

	a, err := NewHTTPPCCAdapter(authCfg, consumerCfg, adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPCCAdapter)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/token", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		assert.NotEmpty(t, r.Header.Get("X-Trace-ID"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "key123", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret456", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	got, err := a.Authenticate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.EqualValues(t, 3600, got.ExpiresIn)
	assert.Equal(t, "tok-abc", a.Token())
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid client credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	_, err := a.Authenticate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid client credentials", apiErr.Body)
	assert.Empty(t, a.Token())
}

func TestAuthenticate_EmptyAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	_, err := a.Authenticate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

func TestAuthenticate_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	_, err := a.Authenticate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── PatientSummary ───────────────────────────────────────────────────────────

func TestPatientSummary_Success(t *testing.T) {
	const summaryBody = `{"patient":{"id":"patient-42","name":"Alice"},"conditions":[]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/pcc/patient-42/summary", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(summaryBody))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	a.SetToken("tok-abc")

	got, err := a.PatientSummary(context.Background(), "patient-42")

	require.NoError(t, err)
	assert.Equal(t, "patient-42", got.SimplID)
	assert.JSONEq(t, summaryBody, string(got.Body))
}

func TestPatientSummary_NoToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", "http://localhost:1")

	_, err := a.PatientSummary(context.Background(), "patient-42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestPatientSummary_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("unknown patient"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	a.SetToken("tok-abc")

	_, err := a.PatientSummary(context.Background(), "nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatientSummary_EscapesPathSegment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pcc/a%2Fb/summary", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, srv.URL)
	a.SetToken("tok-abc")

	_, err := a.PatientSummary(context.Background(), "a/b")

	require.NoError(t, err)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPPCCAdapter_InvalidURLs(t *testing.T) {
	adapterCfg := config.ClientAdapter{RequestTimeout: time.Second}

	_, err := NewHTTPPCCAdapter(config.ClientAuth{URL: ""}, config.ClientConsumer{URL: "http://ok"}, adapterCfg, logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPPCCAdapter(config.ClientAuth{URL: "http://ok"}, config.ClientConsumer{URL: "   "}, adapterCfg, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{"already normalized", "http://localhost:8080", "http://localhost:8080", false},
		{"missing scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash stripped", "https://auth.simplhealth.com/", "https://auth.simplhealth.com", false},
		{"padded", "  http://localhost:8080  ", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"only scheme", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
