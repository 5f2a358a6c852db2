package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/vineetdaniels2108/facility-analysis/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true)
)

// renderer writes the smoke run outcome to a console stream. Log output goes
// to stderr elsewhere; the renderer owns stdout so the report can be piped.
type renderer struct {
	out io.Writer
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

// Report prints the fetched summary document with a short preamble listing
// which patient it belongs to and what token was used.
func (r *renderer) Report(report models.SmokeReport) {
	fmt.Fprintln(r.out, titleStyle.Render("--- Patient Summary ---"))
	fmt.Fprintln(r.out, labelStyle.Render(fmt.Sprintf("simpl_id: %s", report.Summary.SimplID)))
	if report.Token.ExpiresIn > 0 {
		fmt.Fprintln(r.out, labelStyle.Render(fmt.Sprintf("token: %s, expires in %ds", report.Token.TokenType, report.Token.ExpiresIn)))
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, report.Summary.Indent())
}

// APIError prints an upstream rejection. The raw response body is shown so
// the operator can see exactly what the service said.
func (r *renderer) APIError(stage string, apiErr *models.APIError) {
	fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("API Error during %s: HTTP %d", stage, apiErr.StatusCode)))
	if apiErr.Body != "" {
		fmt.Fprintln(r.out, apiErr.Body)
	}
}

// RequestFailed prints a failure that produced no HTTP response, such as a
// refused connection or a timed-out request.
func (r *renderer) RequestFailed(stage string, err error) {
	fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("Request failed during %s", stage)))
	fmt.Fprintln(r.out, err.Error())
}

// Guidance prints setup instructions shown when the environment still
// carries the sample placeholder URLs.
func (r *renderer) Guidance() {
	fmt.Fprintln(r.out, titleStyle.Render("Configuration needed"))
	fmt.Fprintln(r.out, "The service URLs still point at the sample host.")
	fmt.Fprintln(r.out, "Set the following environment variables (or a .env.local file) and re-run:")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, labelStyle.Render("  AUTH_SERVICE_URL      auth service base URL"))
	fmt.Fprintln(r.out, labelStyle.Render("  CONSUMER_SERVICE_URL  consumer service base URL"))
	fmt.Fprintln(r.out, labelStyle.Render("  PCC_API_KEY           OAuth2 client id"))
	fmt.Fprintln(r.out, labelStyle.Render("  PCC_API_SECRET        OAuth2 client secret"))
	fmt.Fprintln(r.out, labelStyle.Render("  PCC_PATIENT_ID        patient simpl_id (optional)"))
}
