package models

// SmokeReport is the result of one full smoke run: the token obtained from
// the auth service and the summary fetched with it. Both values are
// transient; nothing is persisted between runs.
type SmokeReport struct {
	// Token is the auth service response the run authenticated with.
	Token TokenResponse

	// Summary is the patient summary fetched from the consumer service.
	Summary PatientSummary
}
