// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for talking to the
// PointClickCare-style integration services.
//
// The primary abstraction is [PCCAdapter], which decouples the smoke service
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPCCAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
// The failed response body is carried alongside as a [models.APIError],
// retrievable with [errors.As].
package adapter

import (
	"context"

	"github.com/vineetdaniels2108/facility-analysis/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pcc_adapter_mock.go -package=mock

// PCCAdapter defines transport-agnostic communication with the auth and
// consumer services. Implementations are responsible for serialisation,
// authorization header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type PCCAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Authenticate.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Authenticate performs the client-credentials grant against the auth
	// service. On success it stores the returned access token via SetToken
	// and returns the full token response. Returns an error if the request
	// fails, the server responds with a non-2xx status, or the response
	// carries no access token.
	Authenticate(ctx context.Context) (models.TokenResponse, error)

	// PatientSummary fetches the summary resource for simplID from the
	// consumer service using the stored bearer token. The response body is
	// returned verbatim. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	PatientSummary(ctx context.Context, simplID string) (models.PatientSummary, error)
}
