// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// summaryRepository is an in-memory [SummaryRepository] seeded with a small
// roster of canned patient summaries. Reads never mutate the map, so no
// locking is needed.
type summaryRepository struct {
	byID map[string]json.RawMessage
}

// NewSummaryRepository returns a repository pre-seeded with the default
// smoke roster. The "test-simpl-id" entry matches the placeholder patient id
// the smoke client falls back to, so a zero-config run succeeds end to end.
func NewSummaryRepository() SummaryRepository {
	return &summaryRepository{byID: defaultRoster()}
}

// GetSummary implements [SummaryRepository].
func (r *summaryRepository) GetSummary(_ context.Context, simplID string) (json.RawMessage, error) {
	summary, ok := r.byID[simplID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSummaryWasFound, simplID)
	}

	return summary, nil
}

func defaultRoster() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		"test-simpl-id": json.RawMessage(`{
			"patient": {
				"simpl_id": "test-simpl-id",
				"name": "Edith Moreno",
				"birth_date": "1941-06-02",
				"gender": "female",
				"facility": "Willow Creek Care Center"
			},
			"conditions": [
				{"code": "I10", "display": "Essential hypertension", "onset": "2015-09-20"},
				{"code": "E11.9", "display": "Type 2 diabetes mellitus", "onset": "2018-02-11"}
			],
			"medications": [
				{"name": "Lisinopril", "dose": "10 mg", "frequency": "daily"},
				{"name": "Metformin", "dose": "500 mg", "frequency": "twice daily"}
			],
			"allergies": [
				{"substance": "Penicillin", "reaction": "rash"}
			]
		}`),
		"patient-42": json.RawMessage(`{
			"patient": {
				"simpl_id": "patient-42",
				"name": "Harold Finch",
				"birth_date": "1952-11-30",
				"gender": "male",
				"facility": "Willow Creek Care Center"
			},
			"conditions": [
				{"code": "M17.11", "display": "Unilateral primary osteoarthritis, right knee", "onset": "2020-05-04"}
			],
			"medications": [
				{"name": "Acetaminophen", "dose": "650 mg", "frequency": "as needed"}
			],
			"allergies": []
		}`),
	}
}
