package service

import (
	"github.com/vineetdaniels2108/facility-analysis/internal/config"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/store"
)

// Services aggregates the stub server's service layer.
type Services struct {
	AuthService    AuthService
	SummaryService SummaryService
}

func NewServices(cfg *config.ServerConfig, summaries store.SummaryRepository, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(cfg, logger),
		SummaryService: NewSummaryService(summaries, logger),
	}
}
