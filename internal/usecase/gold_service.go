package usecase

import (
	"context"
	"fmt"
	"time"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

type AggregateResult struct {
	Tables     dw.TableCounts `json:"tables"`
	DurationMs int64          `json:"duration_ms"`
}

// GoldService rebuilds the per-match gold tables from silver.
type GoldService struct {
	repo    dw.GoldRepository
	metrics *metrics.Manager
	logger  *logging.Logger
}

func NewGoldService(repo dw.GoldRepository, metricsManager *metrics.Manager, logger *logging.Logger) *GoldService {
	return &GoldService{
		repo:    repo,
		metrics: metricsManager,
		logger:  logging.OrDefault(logger).Named("gold"),
	}
}

func (s *GoldService) Build(ctx context.Context) (AggregateResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.GoldService.Build")
	defer span.End()

	start := time.Now()
	counts, err := s.repo.RebuildGold(ctx)
	if err != nil {
		return AggregateResult{}, fmt.Errorf("rebuild gold tables: %w", err)
	}
	return finishAggregate(ctx, s.logger, s.metrics, "gold build finished", counts, start), nil
}

func finishAggregate(ctx context.Context, logger *logging.Logger, m *metrics.Manager, msg string, counts dw.TableCounts, start time.Time) AggregateResult {
	for table, rows := range counts {
		m.SetTableRows(table, rows)
	}
	result := AggregateResult{Tables: counts, DurationMs: time.Since(start).Milliseconds()}
	logger.InfoContext(ctx, msg, "tables", len(counts), "rows", counts.Total(), "duration_ms", result.DurationMs)
	return result
}
