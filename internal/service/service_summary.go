package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/store"
)

type summaryService struct {
	summaries store.SummaryRepository
	logger    *logger.Logger
}

func NewSummaryService(summaries store.SummaryRepository, logger *logger.Logger) SummaryService {
	return &summaryService{summaries: summaries, logger: logger}
}

// GetSummary implements [SummaryService].
func (s *summaryService) GetSummary(ctx context.Context, simplID string) (json.RawMessage, error) {
	summary, err := s.summaries.GetSummary(ctx, simplID)
	if err != nil {
		return nil, fmt.Errorf("get summary for %q: %w", simplID, err)
	}

	return summary, nil
}
