// SPDX-License-Identifier: Apache-2.0

package models

import "fmt"

// APIError carries the HTTP status code and response body of a failed
// upstream call. The smoke client treats every non-2xx response uniformly:
// the error is printed together with the body (when present) and the run
// ends without a non-zero exit.
type APIError struct {
	// StatusCode is the HTTP status returned by the upstream service.
	StatusCode int

	// Body is the trimmed response body, empty when the service sent none.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}

	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}
