package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	"github.com/riskibarqy/football-analytics/internal/domain/schema"
	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

type SilverResult struct {
	Tables        dw.TableCounts `json:"tables"`
	SkippedEvents int            `json:"skipped_events"`
	DurationMs    int64          `json:"duration_ms"`
}

// SilverService rebuilds every dimension and fact table from bronze.
type SilverService struct {
	bronze  raw.SnapshotStore
	repo    dw.SilverRepository
	metrics *metrics.Manager
	logger  *logging.Logger
}

func NewSilverService(bronze raw.SnapshotStore, repo dw.SilverRepository, metricsManager *metrics.Manager, logger *logging.Logger) *SilverService {
	return &SilverService{
		bronze:  bronze,
		repo:    repo,
		metrics: metricsManager,
		logger:  logging.OrDefault(logger).Named("silver"),
	}
}

// Build reads all bronze layers, builds every row in memory, then replaces
// the silver tables in one transaction. Nothing is written when any layer
// fails to load or has no artifacts.
func (s *SilverService) Build(ctx context.Context) (SilverResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.SilverService.Build")
	defer span.End()

	start := time.Now()

	competitionBatches, err := s.load(ctx, raw.LayerCompetitions, schema.Competitions)
	if err != nil {
		return SilverResult{}, err
	}
	matchBatches, err := s.load(ctx, raw.LayerMatches, schema.Matches)
	if err != nil {
		return SilverResult{}, err
	}
	eventBatches, err := s.load(ctx, raw.LayerEvents, schema.Events)
	if err != nil {
		return SilverResult{}, err
	}
	lineupBatches, err := s.load(ctx, raw.LayerLineups, schema.Lineups)
	if err != nil {
		return SilverResult{}, err
	}

	snapshot := &dw.SilverSnapshot{
		Competitions: buildCompetitions(competitionBatches),
		Matches:      buildMatches(matchBatches),
	}
	snapshot.Teams = buildTeams(snapshot.Matches)

	teamIDs := make(map[string]int64, len(snapshot.Teams))
	for _, t := range snapshot.Teams {
		teamIDs[t.TeamName] = t.TeamID
	}

	var facts eventFacts
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		facts = buildEventFacts(eventBatches, teamIDs)
		return ctx.Err()
	})
	p.Go(func(ctx context.Context) error {
		snapshot.Lineups = buildLineups(lineupBatches)
		snapshot.Players = buildPlayers(snapshot.Lineups)
		return ctx.Err()
	})
	if err := p.Wait(); err != nil {
		return SilverResult{}, fmt.Errorf("build silver facts: %w", err)
	}

	snapshot.Events = facts.events
	snapshot.Passes = facts.passes
	snapshot.Shots = facts.shots
	snapshot.Carries = facts.carries
	snapshot.FreezeFrames = facts.freezeFrames
	if facts.skipped > 0 {
		s.logger.WarnContext(ctx, "events without id skipped", "count", facts.skipped)
	}

	counts, err := s.repo.ReplaceSilver(ctx, snapshot)
	if err != nil {
		return SilverResult{}, fmt.Errorf("replace silver tables: %w", err)
	}
	for table, rows := range counts {
		s.metrics.SetTableRows(table, rows)
	}

	result := SilverResult{
		Tables:        counts,
		SkippedEvents: facts.skipped,
		DurationMs:    time.Since(start).Milliseconds(),
	}
	s.logger.InfoContext(ctx, "silver build finished",
		"rows", counts.Total(),
		"matches", len(snapshot.Matches),
		"events", len(snapshot.Events),
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

func (s *SilverService) load(ctx context.Context, layer raw.Layer, mapping schema.Mapping) ([]silverBatch, error) {
	units, err := s.bronze.List(ctx, layer)
	if err != nil {
		return nil, fmt.Errorf("list bronze %s: %w", layer, err)
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBronze, layer)
	}

	out := make([]silverBatch, 0, len(units))
	for _, unit := range units {
		records, err := s.bronze.Read(ctx, unit)
		if err != nil {
			return nil, fmt.Errorf("read bronze %s: %w", unit, err)
		}
		out = append(out, newSilverBatch(unit, records, mapping))
	}
	return out, nil
}
