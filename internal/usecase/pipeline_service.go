package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/id"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

const (
	StageBronze  = "bronze"
	StageSilver  = "silver"
	StageGold    = "gold"
	StagePPDA    = "ppda"
	StageXGTrain = "xg-train"
	StageXGApply = "xg-apply"
	StageXT      = "xt"
)

// StageOrder is the canonical execution order; requested stages always run
// in this order regardless of how they were listed.
var StageOrder = []string{StageBronze, StageSilver, StageGold, StagePPDA, StageXGTrain, StageXGApply, StageXT}

type BronzeIngester interface {
	Ingest(ctx context.Context, input BronzeInput) (BronzeResult, error)
}

type SilverBuilder interface {
	Build(ctx context.Context) (SilverResult, error)
}

type AggregateBuilder interface {
	Build(ctx context.Context) (AggregateResult, error)
}

type XGModeler interface {
	Train(ctx context.Context) (XGTrainResult, error)
	Apply(ctx context.Context) (XGApplyResult, error)
}

type XTBuilder interface {
	Build(ctx context.Context) (XTResult, error)
}

// CacheInvalidator drops cached read results once a stage replaces tables.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context)
}

type PipelineStages struct {
	Bronze BronzeIngester
	Silver SilverBuilder
	Gold   AggregateBuilder
	PPDA   AggregateBuilder
	XG     XGModeler
	XT     XTBuilder
}

type RunInput struct {
	// Stages empty means every stage.
	Stages     []string `validate:"omitempty,dive,oneof=bronze silver gold ppda xg-train xg-apply xt"`
	Seasons    []raw.SeasonKey
	Force      bool
	MaxWorkers int `validate:"gte=0,lte=256"`
}

type StageResult struct {
	RunID       string `json:"run_id"`
	Stage       string `json:"stage"`
	Status      string `json:"status"`
	RowsWritten int64  `json:"rows_written"`
	DurationMs  int64  `json:"duration_ms"`
	Error       string `json:"error,omitempty"`
	Detail      any    `json:"detail,omitempty"`
}

type RunResult struct {
	Stages []StageResult `json:"stages"`
}

// PipelineService runs stages in order and records each execution in
// pipeline_runs. The first failing stage stops the run.
type PipelineService struct {
	stages    PipelineStages
	runs      dw.RunRepository
	ids       id.Generator
	cache     CacheInvalidator
	validator *validator.Validate
	metrics   *metrics.Manager
	logger    *logging.Logger
	now       func() time.Time
}

func NewPipelineService(
	stages PipelineStages,
	runs dw.RunRepository,
	ids id.Generator,
	cache CacheInvalidator,
	metricsManager *metrics.Manager,
	logger *logging.Logger,
) *PipelineService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &PipelineService{
		stages:    stages,
		runs:      runs,
		ids:       ids,
		cache:     cache,
		validator: validator.New(),
		metrics:   metricsManager,
		logger:    logging.OrDefault(logger).Named("pipeline"),
		now:       time.Now,
	}
}

func (s *PipelineService) Run(ctx context.Context, input RunInput) (RunResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.PipelineService.Run", attribute.Int("pipeline.requested_stages", len(input.Stages)))
	defer span.End()

	if err := s.validator.StructCtx(ctx, input); err != nil {
		return RunResult{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	requested := make(map[string]bool, len(input.Stages))
	for _, stage := range input.Stages {
		requested[stage] = true
	}

	result := RunResult{Stages: make([]StageResult, 0, len(StageOrder))}
	for _, stage := range StageOrder {
		if len(requested) > 0 && !requested[stage] {
			continue
		}
		row, err := s.runStage(ctx, stage, input)
		result.Stages = append(result.Stages, row)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *PipelineService) runStage(ctx context.Context, stage string, input RunInput) (StageResult, error) {
	runID, err := s.ids.NewID()
	if err != nil {
		return StageResult{Stage: stage, Status: dw.RunStatusFailed}, fmt.Errorf("%w: %s: %w", ErrStageFailed, stage, err)
	}

	start := s.now().UTC()
	row := StageResult{RunID: runID, Stage: stage, Status: dw.RunStatusRunning}
	if err := s.runs.StartRun(ctx, dw.PipelineRun{RunID: runID, Stage: stage, Status: dw.RunStatusRunning, StartedAt: start}); err != nil {
		row.Status = dw.RunStatusFailed
		return row, fmt.Errorf("%w: %s: record start: %w", ErrStageFailed, stage, err)
	}

	logger := s.logger.With("stage", stage, "run_id", runID)
	logger.InfoContext(ctx, "stage started")

	rows, detail, stageErr := s.execute(ctx, stage, input)
	elapsed := s.now().UTC().Sub(start)
	row.RowsWritten, row.Detail, row.DurationMs = rows, detail, elapsed.Milliseconds()

	var message *string
	row.Status = dw.RunStatusSucceeded
	if stageErr != nil {
		row.Status = dw.RunStatusFailed
		row.Error = stageErr.Error()
		message = &row.Error
	}
	s.metrics.ObserveStage(stage, row.Status, elapsed, rows)

	if err := s.runs.FinishRun(ctx, runID, row.Status, rows, message, s.now().UTC()); err != nil {
		logger.WarnContext(ctx, "record stage finish failed", "error", err)
	}

	if stageErr != nil {
		logger.ErrorContext(ctx, "stage failed", "error", stageErr, "duration_ms", row.DurationMs)
		return row, fmt.Errorf("%w: %s: %w", ErrStageFailed, stage, stageErr)
	}

	if s.cache != nil {
		s.cache.InvalidateAll(ctx)
	}
	logger.InfoContext(ctx, "stage finished", "rows", rows, "duration_ms", row.DurationMs)
	return row, nil
}

func (s *PipelineService) execute(ctx context.Context, stage string, input RunInput) (int64, any, error) {
	switch stage {
	case StageBronze:
		if s.stages.Bronze == nil {
			return 0, nil, fmt.Errorf("%w: bronze stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.Bronze.Ingest(ctx, BronzeInput{Seasons: input.Seasons, Force: input.Force, MaxWorkers: input.MaxWorkers})
		return int64(out.WrittenCount), out, err
	case StageSilver:
		if s.stages.Silver == nil {
			return 0, nil, fmt.Errorf("%w: silver stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.Silver.Build(ctx)
		return out.Tables.Total(), out, err
	case StageGold:
		if s.stages.Gold == nil {
			return 0, nil, fmt.Errorf("%w: gold stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.Gold.Build(ctx)
		return out.Tables.Total(), out, err
	case StagePPDA:
		if s.stages.PPDA == nil {
			return 0, nil, fmt.Errorf("%w: ppda stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.PPDA.Build(ctx)
		return out.Tables.Total(), out, err
	case StageXGTrain:
		if s.stages.XG == nil {
			return 0, nil, fmt.Errorf("%w: xg stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.XG.Train(ctx)
		return int64(out.Samples), out, err
	case StageXGApply:
		if s.stages.XG == nil {
			return 0, nil, fmt.Errorf("%w: xg stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.XG.Apply(ctx)
		return out.Updated, out, err
	case StageXT:
		if s.stages.XT == nil {
			return 0, nil, fmt.Errorf("%w: xt stage not configured", ErrDependencyUnavailable)
		}
		out, err := s.stages.XT.Build(ctx)
		return out.RowsWritten, out, err
	default:
		return 0, nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, stage)
	}
}
