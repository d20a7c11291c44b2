package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-analytics/internal/domain/coerce"
	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	"github.com/riskibarqy/football-analytics/internal/domain/schema"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

const (
	bronzeStatusWritten = "written"
	bronzeStatusSkipped = "skipped"
	bronzeStatusFailed  = "failed"

	defaultBronzeWorkers = 8
)

type BronzeInput struct {
	// Seasons limits ingestion; empty means every season the source has.
	Seasons    []raw.SeasonKey
	Force      bool
	MaxWorkers int
}

type BronzeResult struct {
	UnitCount    int                `json:"unit_count"`
	WrittenCount int                `json:"written_count"`
	SkippedCount int                `json:"skipped_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Units        []BronzeUnitResult `json:"units"`
}

type BronzeUnitResult struct {
	Layer      string `json:"layer"`
	Key        string `json:"key"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

func (r *BronzeResult) add(rows []BronzeUnitResult) {
	for _, row := range rows {
		r.UnitCount++
		switch row.Status {
		case bronzeStatusWritten:
			r.WrittenCount++
		case bronzeStatusSkipped:
			r.SkippedCount++
		default:
			r.FailedCount++
		}
	}
	r.Units = append(r.Units, rows...)
}

// BronzeService snapshots raw documents into per-unit bronze artifacts.
type BronzeService struct {
	source  raw.Source
	store   raw.SnapshotStore
	metrics *metrics.Manager
	logger  *logging.Logger
}

func NewBronzeService(source raw.Source, store raw.SnapshotStore, metricsManager *metrics.Manager, logger *logging.Logger) *BronzeService {
	return &BronzeService{
		source:  source,
		store:   store,
		metrics: metricsManager,
		logger:  logging.OrDefault(logger).Named("bronze"),
	}
}

// Ingest writes the competitions list, then matches per season, then events
// and lineups per match found in the match artifacts. A failed unit is
// reported and does not stop its siblings.
func (s *BronzeService) Ingest(ctx context.Context, input BronzeInput) (BronzeResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.BronzeService.Ingest")
	defer span.End()

	if input.MaxWorkers < 0 {
		return BronzeResult{}, fmt.Errorf("%w: max workers must be >= 0", ErrInvalidInput)
	}

	result := BronzeResult{Units: make([]BronzeUnitResult, 0)}
	result.add([]BronzeUnitResult{s.runUnit(ctx, raw.CompetitionsUnit(), input.Force)})

	seasons := input.Seasons
	if len(seasons) == 0 {
		discovered, err := s.source.Seasons(ctx)
		if err != nil {
			return result, fmt.Errorf("list source seasons: %w", err)
		}
		seasons = discovered
	}

	matchUnits := make([]raw.Unit, 0, len(seasons))
	for _, key := range seasons {
		matchUnits = append(matchUnits, raw.MatchesUnit(key))
	}
	rows, workers, err := s.runUnits(ctx, matchUnits, input.Force, input.MaxWorkers)
	if err != nil {
		return result, err
	}
	result.add(rows)
	result.WorkerCount = max(result.WorkerCount, workers)

	matchIDs, err := s.matchIDs(ctx, matchUnits)
	if err != nil {
		return result, err
	}

	perMatch := make([]raw.Unit, 0, len(matchIDs)*2)
	for _, id := range matchIDs {
		perMatch = append(perMatch, raw.EventsUnit(id), raw.LineupsUnit(id))
	}
	rows, workers, err = s.runUnits(ctx, perMatch, input.Force, input.MaxWorkers)
	if err != nil {
		return result, err
	}
	result.add(rows)
	result.WorkerCount = max(result.WorkerCount, workers)

	s.logger.InfoContext(ctx, "bronze ingest finished",
		"units", result.UnitCount,
		"written", result.WrittenCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func normalizeWorkerCount(requested, tasks int) int {
	if requested <= 0 {
		requested = defaultBronzeWorkers
	}
	if tasks > 0 && requested > tasks {
		return tasks
	}
	return max(requested, 1)
}

func (s *BronzeService) runUnits(ctx context.Context, units []raw.Unit, force bool, maxWorkers int) ([]BronzeUnitResult, int, error) {
	if len(units) == 0 {
		return nil, 0, nil
	}

	workerCount := normalizeWorkerCount(maxWorkers, len(units))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan BronzeUnitResult, len(units))
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, unit := range units {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			row := s.runUnit(ctx, unit, force)
			if row.Status == bronzeStatusFailed {
				failed.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, workerCount, fmt.Errorf("submit unit to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]BronzeUnitResult, 0, len(units))
	for row := range results {
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		return out[i].Key < out[j].Key
	})

	if n := failed.Load(); n > 0 {
		s.logger.WarnContext(ctx, "bronze units failed", "failed", n, "total", len(units))
	}
	return out, workerCount, nil
}

func (s *BronzeService) runUnit(ctx context.Context, unit raw.Unit, force bool) BronzeUnitResult {
	start := time.Now()
	row := BronzeUnitResult{Layer: string(unit.Layer), Key: unit.Key()}
	defer func() {
		row.DurationMs = time.Since(start).Milliseconds()
		s.metrics.IncBronzeUnit(row.Layer, row.Status)
	}()

	if !force {
		exists, err := s.store.Exists(ctx, unit)
		if err != nil {
			row.Status, row.Message = bronzeStatusFailed, err.Error()
			return row
		}
		if exists {
			s.logger.DebugContext(ctx, "bronze unit exists, skipping", "unit", unit.String())
			row.Status = bronzeStatusSkipped
			return row
		}
	}

	records, err := s.fetch(ctx, unit)
	if err != nil {
		row.Status, row.Message = bronzeStatusFailed, err.Error()
		if errors.Is(err, raw.ErrSourceMissing) {
			s.logger.WarnContext(ctx, "raw document missing", "unit", unit.String(), "error", err)
		} else {
			s.logger.ErrorContext(ctx, "bronze unit fetch failed", "unit", unit.String(), "error", err)
		}
		return row
	}

	if err := s.store.Write(ctx, unit, records); err != nil {
		row.Status, row.Message = bronzeStatusFailed, err.Error()
		s.logger.ErrorContext(ctx, "bronze unit write failed", "unit", unit.String(), "error", err)
		return row
	}

	row.Status = bronzeStatusWritten
	row.Records = len(records)
	return row
}

func (s *BronzeService) fetch(ctx context.Context, unit raw.Unit) ([]*raw.Record, error) {
	switch unit.Layer {
	case raw.LayerCompetitions:
		data, err := s.source.Competitions(ctx)
		if err != nil {
			return nil, err
		}
		return raw.DecodeRecords(data)
	case raw.LayerMatches:
		data, err := s.source.Matches(ctx, raw.SeasonKey{CompetitionID: unit.CompetitionID, SeasonID: unit.SeasonID})
		if err != nil {
			return nil, err
		}
		return raw.DecodeRecords(data)
	case raw.LayerEvents:
		data, err := s.source.Events(ctx, unit.MatchID)
		if err != nil {
			return nil, err
		}
		records, err := raw.DecodeRecords(data)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			rec.Put(string(schema.EventMatchID), unit.MatchID)
		}
		return records, nil
	case raw.LayerLineups:
		data, err := s.source.Lineups(ctx, unit.MatchID)
		if err != nil {
			return nil, err
		}
		return raw.ExplodeLineups(unit.MatchID, data)
	default:
		return nil, fmt.Errorf("unknown bronze layer %q", unit.Layer)
	}
}

// matchIDs reads match ids back from the match artifacts, so skipped seasons
// still contribute their matches. Seasons whose artifact failed are ignored.
func (s *BronzeService) matchIDs(ctx context.Context, units []raw.Unit) ([]int64, error) {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, unit := range units {
		exists, err := s.store.Exists(ctx, unit)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", unit, err)
		}
		if !exists {
			continue
		}
		records, err := s.store.Read(ctx, unit)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", unit, err)
		}
		resolver := schema.Matches.ResolveRecords(records)
		for _, rec := range records {
			id := coerce.Int(resolver.Get(rec, schema.MatchID))
			if id == nil {
				continue
			}
			if _, dup := seen[*id]; dup {
				continue
			}
			seen[*id] = struct{}{}
			out = append(out, *id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
