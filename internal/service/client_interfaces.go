// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/vineetdaniels2108/facility-analysis/models"
)

// ClientSmokeService runs the full smoke sequence: authenticate against the
// auth service, then fetch one patient summary from the consumer service
// with the obtained bearer token.
type ClientSmokeService interface {
	// Run executes the two-call sequence for simplID and returns the
	// combined report. The sequence is strictly sequential; the token lives
	// only for the duration of this call chain. Returns a wrapped
	// [ErrAuthenticateOnServer] or [ErrFetchSummary] depending on which
	// call failed.
	Run(ctx context.Context, simplID string) (models.SmokeReport, error)
}
