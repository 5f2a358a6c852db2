// SPDX-License-Identifier: Apache-2.0

package models

import (
	"bytes"
	"encoding/json"
)

// PatientSummary is a single patient-summary resource fetched from the
// consumer service. The document body is kept verbatim: the program never
// interprets or validates the payload, it only relays it to the console.
type PatientSummary struct {
	// SimplID is the patient identifier the summary was requested for.
	SimplID string `json:"simpl_id"`

	// Body is the raw JSON document exactly as returned by the consumer
	// service.
	Body json.RawMessage `json:"body"`
}

// Indent returns the summary body re-indented for console output. If the
// body is not valid JSON it is returned unchanged, so a malformed upstream
// payload is still visible to the operator.
func (p PatientSummary) Indent() string {
	var out bytes.Buffer
	if err := json.Indent(&out, p.Body, "", "  "); err != nil {
		return string(p.Body)
	}

	return out.String()
}
