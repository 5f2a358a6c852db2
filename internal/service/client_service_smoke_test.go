// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineetdaniels2108/facility-analysis/internal/adapter"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/mock"
	"github.com/vineetdaniels2108/facility-analysis/models"
	"go.uber.org/mock/gomock"
)

func newTestSmokeSvc(t *testing.T, ctrl *gomock.Controller) (*clientSmokeService, *mock.MockPCCAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockPCCAdapter(ctrl)
	svc := NewClientSmokeService(mockAdapter, logger.Nop()).(*clientSmokeService)
	return svc, mockAdapter
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestClientSmokeService_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSmokeSvc(t, ctrl)
	ctx := context.Background()

	tokenResp := models.TokenResponse{AccessToken: "tok-abc", TokenType: "Bearer", ExpiresIn: 3600}
	summary := models.PatientSummary{SimplID: "patient-42", Body: []byte(`{"patient":{}}`)}

	mockAdapter.EXPECT().Authenticate(ctx).Return(tokenResp, nil)
	mockAdapter.EXPECT().PatientSummary(ctx, "patient-42").Return(summary, nil)

	report, err := svc.Run(ctx, "patient-42")

	require.NoError(t, err)
	assert.Equal(t, tokenResp, report.Token)
	assert.Equal(t, summary, report.Summary)
}

func TestClientSmokeService_Run_AuthFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSmokeSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Authenticate(ctx).Return(models.TokenResponse{}, adapter.ErrUnauthorized)
	// PatientSummary must never be called when authentication failed

	_, err := svc.Run(ctx, "patient-42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthenticateOnServer)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientSmokeService_Run_SummaryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSmokeSvc(t, ctrl)
	ctx := context.Background()

	tokenResp := models.TokenResponse{AccessToken: "tok-abc"}
	mockAdapter.EXPECT().Authenticate(ctx).Return(tokenResp, nil)
	mockAdapter.EXPECT().PatientSummary(ctx, "nobody").Return(models.PatientSummary{}, adapter.ErrNotFound)

	_, err := svc.Run(ctx, "nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchSummary)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientSmokeService_Run_CarriesAPIErrorBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSmokeSvc(t, ctrl)
	ctx := context.Background()

	apiErr := &models.APIError{StatusCode: 401, Body: "invalid client credentials"}
	mockAdapter.EXPECT().Authenticate(ctx).Return(models.TokenResponse{}, errors.Join(adapter.ErrUnauthorized, apiErr))

	_, err := svc.Run(ctx, "patient-42")

	require.Error(t, err)

	var got *models.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "invalid client credentials", got.Body)
}
