package usecase

import (
	"context"
	"fmt"
	"time"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

// PPDAService rebuilds the pressing tables. It owns only gold_ppda_*.
type PPDAService struct {
	repo    dw.GoldRepository
	zoneX   float64
	metrics *metrics.Manager
	logger  *logging.Logger
}

func NewPPDAService(repo dw.GoldRepository, metricsManager *metrics.Manager, logger *logging.Logger) *PPDAService {
	return &PPDAService{
		repo:    repo,
		zoneX:   dw.PressZoneX,
		metrics: metricsManager,
		logger:  logging.OrDefault(logger).Named("ppda"),
	}
}

func (s *PPDAService) Build(ctx context.Context) (AggregateResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.PPDAService.Build")
	defer span.End()

	start := time.Now()
	counts, err := s.repo.RebuildPPDA(ctx, s.zoneX)
	if err != nil {
		return AggregateResult{}, fmt.Errorf("rebuild ppda tables: %w", err)
	}
	return finishAggregate(ctx, s.logger, s.metrics, "ppda build finished", counts, start), nil
}
