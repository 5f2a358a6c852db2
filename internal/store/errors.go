package store

import "errors"

var (
	// ErrNoSummaryWasFound indicates that the requested simpl_id is not in
	// the stub's roster.
	ErrNoSummaryWasFound = errors.New("no summary was found")
)
