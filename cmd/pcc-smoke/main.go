package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vineetdaniels2108/facility-analysis/internal/adapter"
	"github.com/vineetdaniels2108/facility-analysis/internal/client"
	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pcc-smoke")
	cfg, err := config.GetClientConfig()
	if err != nil {
		if errors.Is(err, config.ErrPlaceholderConfig) {
			client.PrintGuidance(os.Stdout)
			return
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	pccAdapter, err := adapter.NewHTTPPCCAdapter(cfg.Auth, cfg.Consumer, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create pcc adapter")
	}

	services := service.NewClientServices(pccAdapter, log)

	app := client.NewApp(services, cfg, log)

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("smoke run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
