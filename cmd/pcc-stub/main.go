package main

import (
	"fmt"

	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	myHTTP "github.com/vineetdaniels2108/facility-analysis/internal/handler/http"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/server"
	"github.com/vineetdaniels2108/facility-analysis/internal/service"
	"github.com/vineetdaniels2108/facility-analysis/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pcc-stub")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.HTTPAddress).Msg("received configs")

	summaries := store.NewSummaryRepository()

	services := service.NewServices(cfg, summaries, log)

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
