package xg

import "context"

// ShotRepository reads shots and owns fact_shots.xg_model.
type ShotRepository interface {
	ListShots(ctx context.Context) ([]Shot, error)
	// ReplaceModelXG rewrites xg_model for every shot; shots missing from
	// scores get 0.
	ReplaceModelXG(ctx context.Context, scores []Score) (int64, error)
}

// ModelStore persists one model artifact.
type ModelStore interface {
	Save(ctx context.Context, m Model) error
	Load(ctx context.Context) (Model, error)
}
