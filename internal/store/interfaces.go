// Package store holds the stub server's data access layer.
//
// The stub intentionally keeps everything in memory: it exists so the smoke
// client has two working endpoints to run against, not to persist anything.
package store

import (
	"context"
	"encoding/json"
)

// SummaryRepository provides read access to patient summary documents.
type SummaryRepository interface {
	// GetSummary returns the summary document for simplID.
	// Returns [ErrNoSummaryWasFound] for an unknown patient.
	GetSummary(ctx context.Context, simplID string) (json.RawMessage, error)
}
