package service

import (
	"github.com/vineetdaniels2108/facility-analysis/internal/adapter"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
)

type ClientServices struct {
	SmokeService ClientSmokeService
}

func NewClientServices(pccAdapter adapter.PCCAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SmokeService: NewClientSmokeService(pccAdapter, logger),
	}
}
