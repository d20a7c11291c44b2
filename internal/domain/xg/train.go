package xg

import (
	"context"
	"math"
	"time"

	crerr "github.com/cockroachdb/errors"
)

type TrainOptions struct {
	Fit   FitOptions
	Folds int
	Seed  int64
	Now   func() time.Time
}

func DefaultTrainOptions() TrainOptions {
	return TrainOptions{Fit: DefaultFitOptions(), Folds: 5, Seed: 42, Now: time.Now}
}

// TrainingSet returns the shots the model learns from: located non-penalty
// shots, with their feature rows and labels.
func TrainingSet(shots []Shot) ([]Shot, [][]float64, []float64) {
	kept := make([]Shot, 0, len(shots))
	rows := make([][]float64, 0, len(shots))
	labels := make([]float64, 0, len(shots))
	for _, s := range shots {
		if s.IsPenalty() {
			continue
		}
		f, ok := BuildFeatures(s)
		if !ok {
			continue
		}
		kept = append(kept, s)
		rows = append(rows, append([]float64(nil), f[:]...))
		labels = append(labels, indicator(s.IsGoal))
	}
	return kept, rows, labels
}

// Train cross-validates, then refits on every training shot. Nothing is
// returned unless both classes can fill every fold.
func Train(ctx context.Context, shots []Shot, opts TrainOptions) (Model, error) {
	if opts.Folds == 0 {
		opts.Folds = 5
	}
	if opts.Fit.C == 0 {
		opts.Fit = DefaultFitOptions()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	_, rows, y := TrainingSet(shots)
	if len(rows) == 0 {
		return Model{}, crerr.Wrap(ErrInsufficientData, "no located non-penalty shots")
	}
	goals := 0
	for _, label := range y {
		goals += int(label)
	}
	if goals == 0 || goals == len(y) {
		return Model{}, crerr.Wrapf(ErrInsufficientData, "single class in %d shots", len(y))
	}

	cv, err := CrossValidate(ctx, rows, y, opts.Folds, opts.Seed, opts.Fit)
	if err != nil {
		return Model{}, crerr.Wrap(err, "cross validate")
	}

	scaler := FitScaler(rows)
	clf, iterations, err := FitLogistic(scaler.TransformAll(rows), y, opts.Fit)
	if err != nil {
		return Model{}, crerr.Wrap(err, "fit final model")
	}

	return Model{
		Version:      modelVersion,
		FeatureNames: append([]string(nil), FeatureNames...),
		Scaler:       scaler,
		Classifier:   clf,
		C:            opts.Fit.C,
		TrainedAt:    opts.Now().UTC(),
		Samples:      len(rows),
		Goals:        goals,
		Iterations:   iterations,
		CV:           cv,
	}, nil
}

// Evaluation is diagnostic only; it never blocks persisting a model.
type Evaluation struct {
	Samples     int              `json:"samples"`
	Goals       int              `json:"goals"`
	TotalXG     float64          `json:"total_xg"`
	Model       Summary          `json:"model"`
	Reference   *Summary         `json:"reference,omitempty"`
	Correlation *float64         `json:"correlation,omitempty"`
	Calibration []CalibrationBin `json:"calibration"`
}

const calibrationBins = 10

// Evaluate scores the training shots with m. Reference metrics and the
// correlation use the shots that carry a statsbomb xG.
func Evaluate(m *Model, shots []Shot) (Evaluation, error) {
	if !m.Fit() {
		return Evaluation{}, ErrModelNotFit
	}
	kept, rows, y := TrainingSet(shots)
	if len(rows) == 0 {
		return Evaluation{}, crerr.Wrap(ErrInsufficientData, "no shots to evaluate")
	}

	p := make([]float64, len(rows))
	out := Evaluation{Samples: len(rows)}
	for i, row := range rows {
		p[i] = m.Classifier.Probability(m.Scaler.Transform(row))
		out.TotalXG += p[i]
		out.Goals += int(y[i])
	}
	out.Model = Summarize(y, p)
	out.Calibration = Reliability(y, p, calibrationBins)

	var refY, refP, ours []float64
	for i, s := range kept {
		if s.StatsbombXG == nil || math.IsNaN(*s.StatsbombXG) {
			continue
		}
		refY = append(refY, y[i])
		refP = append(refP, *s.StatsbombXG)
		ours = append(ours, p[i])
	}
	if len(refP) > 0 {
		if ref := Summarize(refY, refP); ref.finite() {
			out.Reference = &ref
		}
		if corr := Pearson(ours, refP); !math.IsNaN(corr) {
			out.Correlation = &corr
		}
	}
	return out, nil
}
