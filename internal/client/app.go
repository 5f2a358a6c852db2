package client

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/service"
	"github.com/vineetdaniels2108/facility-analysis/models"
)

// App is the smoke-client application. One Run performs a single
// authenticate-then-fetch pass and prints the result to stdout.
type App struct {
	services *service.ClientServices
	cfg      *config.ClientConfig
	renderer *renderer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger) *App {
	return &App{
		services: services,
		cfg:      cfg,
		renderer: newRenderer(os.Stdout),
		logger:   logger,
	}
}

// Run executes the smoke pass. Any request failure, whether an upstream
// rejection or a network error, is a valid smoke outcome: it is printed and
// Run returns nil so the process exits normally. Errors are reserved for
// wiring problems surfaced before the first request.
func (a *App) Run() error {
	ctx := context.Background()

	report, err := a.services.SmokeService.Run(ctx, a.cfg.Smoke.PatientID)
	if err != nil {
		var apiErr *models.APIError
		if errors.As(err, &apiErr) {
			a.logger.Err(err).Int("status", apiErr.StatusCode).Msg("smoke run rejected by upstream service")
			a.renderer.APIError(stageOf(err), apiErr)
			return nil
		}

		a.logger.Err(err).Msg("smoke run failed before receiving a response")
		a.renderer.RequestFailed(stageOf(err), err)
		return nil
	}

	a.renderer.Report(report)

	return nil
}

// stageOf names the smoke stage an error came from, for the console report.
func stageOf(err error) string {
	switch {
	case errors.Is(err, service.ErrAuthenticateOnServer):
		return "authentication"
	case errors.Is(err, service.ErrFetchSummary):
		return "summary fetch"
	default:
		return "smoke run"
	}
}

// PrintGuidance writes configuration instructions to out. It is called when
// the loaded configuration still carries the sample placeholder URLs.
func PrintGuidance(out io.Writer) {
	newRenderer(out).Guidance()
}
