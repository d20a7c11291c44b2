package xt

import "context"

type ActionKind string

const (
	ActionPass  ActionKind = "pass"
	ActionCarry ActionKind = "carry"
)

// Action is a located pass or carry. Carries are always completed.
type Action struct {
	Kind       ActionKind
	EventID    string
	MatchID    int64
	PlayerID   *int64
	PlayerName string
	StartX     float64
	StartY     float64
	EndX       float64
	EndY       float64
	Completed  bool
}

type Shot struct {
	X      float64
	Y      float64
	IsGoal bool
}

// PlayerValue is the xT a player added across completed actions.
type PlayerValue struct {
	PlayerID      int64
	PlayerName    string
	TotalXTAdded  float64
	XTPasses      float64
	XTCarries     float64
	ActionsCount  int
	MatchesPlayed int
	XTPerMatch    float64
}

// Repository reads model inputs and replaces the xT tables.
type Repository interface {
	ListActions(ctx context.Context) ([]Action, error)
	ListShots(ctx context.Context) ([]Shot, error)
	ReplaceXT(ctx context.Context, grid *Grid, players []PlayerValue) (int64, error)
}
