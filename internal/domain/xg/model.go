package xg

import (
	"errors"
	"time"
)

var (
	// ErrInsufficientData means the shots cannot support a stratified fit.
	ErrInsufficientData = errors.New("insufficient training data")
	ErrModelNotFit      = errors.New("model is not fit")
)

// PenaltyXG is the fixed scoring rate assigned to penalties.
const PenaltyXG = 0.76

// Shot is the subset of a fact_shots row the model reads.
type Shot struct {
	EventID       string
	MatchID       int64
	X             *float64
	Y             *float64
	BodyPart      string
	ShotType      string
	IsFirstTime   bool
	UnderPressure bool
	IsGoal        bool
	StatsbombXG   *float64
}

func (s Shot) IsPenalty() bool {
	return s.ShotType == "Penalty"
}

func (s Shot) HasLocation() bool {
	return s.X != nil && s.Y != nil
}

// Score is one model probability for one shot.
type Score struct {
	EventID string
	XG      float64
}

// Model is the persisted scaler and classifier pair. Both are always saved
// and loaded together.
type Model struct {
	Version      int               `json:"version"`
	FeatureNames []string          `json:"feature_names"`
	Scaler       Scaler            `json:"scaler"`
	Classifier   Classifier        `json:"classifier"`
	C            float64           `json:"c"`
	TrainedAt    time.Time         `json:"trained_at"`
	Samples      int               `json:"samples"`
	Goals        int               `json:"goals"`
	Iterations   int               `json:"iterations"`
	CV           CrossValidation   `json:"cross_validation"`
	Evaluation   *Evaluation       `json:"evaluation,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

const modelVersion = 1

// Fit reports whether the model carries a usable scaler and classifier.
func (m *Model) Fit() bool {
	return m != nil &&
		len(m.Classifier.Coef) == NumFeatures &&
		len(m.Scaler.Mean) == NumFeatures &&
		len(m.Scaler.Scale) == NumFeatures
}

// Predict returns the goal probability for a shot with a location.
func (m *Model) Predict(f Features) (float64, error) {
	if !m.Fit() {
		return 0, ErrModelNotFit
	}
	return m.Classifier.Probability(m.Scaler.Transform(f[:])), nil
}

// Score applies the scoring policy: penalties score PenaltyXG wherever they
// were taken, other shots without a location score 0, the rest come from the
// classifier.
func (m *Model) Score(s Shot) (float64, error) {
	if !m.Fit() {
		return 0, ErrModelNotFit
	}
	if s.IsPenalty() {
		return PenaltyXG, nil
	}
	features, ok := BuildFeatures(s)
	if !ok {
		return 0, nil
	}
	return m.Predict(features)
}

// ScoreAll scores every shot in order.
func (m *Model) ScoreAll(shots []Shot) ([]Score, error) {
	out := make([]Score, 0, len(shots))
	for _, s := range shots {
		p, err := m.Score(s)
		if err != nil {
			return nil, err
		}
		out = append(out, Score{EventID: s.EventID, XG: p})
	}
	return out, nil
}
