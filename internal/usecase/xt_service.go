package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-analytics/internal/domain/xt"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

type XTResult struct {
	Actions     int     `json:"actions"`
	Shots       int     `json:"shots"`
	Players     int     `json:"players"`
	Iterations  int     `json:"iterations"`
	Converged   bool    `json:"converged"`
	MaxDelta    float64 `json:"max_delta"`
	RowsWritten int64   `json:"rows_written"`
	DurationMs  int64   `json:"duration_ms"`
}

// XTService solves the expected-threat surface and values player actions.
type XTService struct {
	repo       xt.Repository
	options    xt.SolveOptions
	minMatches int
	metrics    *metrics.Manager
	logger     *logging.Logger
}

func NewXTService(repo xt.Repository, options xt.SolveOptions, metricsManager *metrics.Manager, logger *logging.Logger) *XTService {
	return &XTService{
		repo:       repo,
		options:    options,
		minMatches: xt.MinMatchesPlayed,
		metrics:    metricsManager,
		logger:     logging.OrDefault(logger).Named("xt"),
	}
}

func (s *XTService) Build(ctx context.Context) (XTResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.XTService.Build")
	defer span.End()

	start := time.Now()
	actions, err := s.repo.ListActions(ctx)
	if err != nil {
		return XTResult{}, fmt.Errorf("list xt actions: %w", err)
	}
	shots, err := s.repo.ListShots(ctx)
	if err != nil {
		return XTResult{}, fmt.Errorf("list xt shots: %w", err)
	}

	grid := xt.Solve(xt.Count(actions, shots), s.options)
	s.metrics.SetXTSolve(grid.Iterations, grid.Converged)
	if !grid.Converged {
		s.logger.WarnContext(ctx, "xt value iteration did not converge",
			"iterations", grid.Iterations,
			"max_delta", grid.MaxDelta,
			"tolerance", s.options.Tolerance,
		)
	}

	players := xt.AggregatePlayers(&grid, actions, s.minMatches)
	rows, err := s.repo.ReplaceXT(ctx, &grid, players)
	if err != nil {
		return XTResult{}, fmt.Errorf("replace xt tables: %w", err)
	}

	result := XTResult{
		Actions:     len(actions),
		Shots:       len(shots),
		Players:     len(players),
		Iterations:  grid.Iterations,
		Converged:   grid.Converged,
		MaxDelta:    grid.MaxDelta,
		RowsWritten: rows,
		DurationMs:  time.Since(start).Milliseconds(),
	}
	s.logger.InfoContext(ctx, "xt build finished",
		"actions", result.Actions,
		"shots", result.Shots,
		"players", result.Players,
		"iterations", result.Iterations,
		"converged", result.Converged,
	)
	return result, nil
}
