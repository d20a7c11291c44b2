package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-analytics/internal/domain/xg"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

type XGTrainResult struct {
	Samples    int                `json:"samples"`
	Goals      int                `json:"goals"`
	Iterations int                `json:"iterations"`
	CV         xg.CrossValidation `json:"cross_validation"`
	Evaluation xg.Evaluation      `json:"evaluation"`
	DurationMs int64              `json:"duration_ms"`
}

type XGApplyResult struct {
	Shots      int     `json:"shots"`
	Updated    int64   `json:"updated"`
	TotalXG    float64 `json:"total_xg"`
	DurationMs int64   `json:"duration_ms"`
}

// XGService trains the shot model and writes its scores back to fact_shots.
type XGService struct {
	shots   xg.ShotRepository
	models  xg.ModelStore
	minAUC  float64
	options xg.TrainOptions
	metrics *metrics.Manager
	logger  *logging.Logger
}

// NewXGService builds the service. A minROCAUC of 0 disables the quality gate.
func NewXGService(shots xg.ShotRepository, models xg.ModelStore, minROCAUC float64, metricsManager *metrics.Manager, logger *logging.Logger) *XGService {
	return &XGService{
		shots:   shots,
		models:  models,
		minAUC:  minROCAUC,
		options: xg.DefaultTrainOptions(),
		metrics: metricsManager,
		logger:  logging.OrDefault(logger).Named("xg"),
	}
}

// Train fits the model on fact_shots and persists it. A model that fails
// the quality gate is never saved.
func (s *XGService) Train(ctx context.Context) (XGTrainResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.XGService.Train")
	defer span.End()

	start := time.Now()
	shots, err := s.shots.ListShots(ctx)
	if err != nil {
		return XGTrainResult{}, fmt.Errorf("list shots: %w", err)
	}

	model, err := xg.Train(ctx, shots, s.options)
	if err != nil {
		return XGTrainResult{}, fmt.Errorf("train xg model: %w", err)
	}
	s.metrics.SetXGCrossValidation(model.CV.ROCAUCMean, model.CV.LogLossMean)

	evaluation, err := xg.Evaluate(&model, shots)
	if err != nil {
		return XGTrainResult{}, fmt.Errorf("evaluate xg model: %w", err)
	}
	model.Evaluation = &evaluation

	if s.minAUC > 0 && model.CV.ROCAUCMean < s.minAUC {
		s.logger.WarnContext(ctx, "xg model rejected",
			"cv_roc_auc", model.CV.ROCAUCMean,
			"min_roc_auc", s.minAUC,
		)
		return XGTrainResult{}, fmt.Errorf("%w: cv roc auc %.4f < %.4f", ErrQualityGate, model.CV.ROCAUCMean, s.minAUC)
	}

	if err := s.models.Save(ctx, model); err != nil {
		return XGTrainResult{}, fmt.Errorf("save xg model: %w", err)
	}

	result := XGTrainResult{
		Samples:    model.Samples,
		Goals:      model.Goals,
		Iterations: model.Iterations,
		CV:         model.CV,
		Evaluation: evaluation,
		DurationMs: time.Since(start).Milliseconds(),
	}
	s.logger.InfoContext(ctx, "xg model trained",
		"samples", result.Samples,
		"goals", result.Goals,
		"cv_roc_auc", model.CV.ROCAUCMean,
		"cv_roc_auc_std", model.CV.ROCAUCStd,
		"cv_log_loss", model.CV.LogLossMean,
		"log_loss", evaluation.Model.LogLoss,
		"brier", evaluation.Model.Brier,
	)
	return result, nil
}

// Apply loads the persisted model and rewrites fact_shots.xg_model for every
// shot.
func (s *XGService) Apply(ctx context.Context) (XGApplyResult, error) {
	ctx, span := startStageSpan(ctx, "usecase.XGService.Apply")
	defer span.End()

	start := time.Now()
	model, err := s.models.Load(ctx)
	if err != nil {
		return XGApplyResult{}, fmt.Errorf("%w: load xg model: %w", ErrDependencyUnavailable, err)
	}

	shots, err := s.shots.ListShots(ctx)
	if err != nil {
		return XGApplyResult{}, fmt.Errorf("list shots: %w", err)
	}
	scores, err := model.ScoreAll(shots)
	if err != nil {
		return XGApplyResult{}, fmt.Errorf("score shots: %w", err)
	}

	updated, err := s.shots.ReplaceModelXG(ctx, scores)
	if err != nil {
		return XGApplyResult{}, fmt.Errorf("replace model xg: %w", err)
	}

	result := XGApplyResult{Shots: len(shots), Updated: updated, DurationMs: time.Since(start).Milliseconds()}
	for _, sc := range scores {
		result.TotalXG += sc.XG
	}
	s.logger.InfoContext(ctx, "xg model applied", "shots", result.Shots, "updated", updated, "total_xg", result.TotalXG)
	return result, nil
}
