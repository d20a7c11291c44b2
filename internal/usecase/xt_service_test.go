package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/xt"
	xtmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/xt"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

func xtFixture() ([]xt.Action, []xt.Shot) {
	playmaker, casual := int64(7), int64(8)
	actions := make([]xt.Action, 0)
	for match := int64(1); match <= 3; match++ {
		actions = append(actions,
			xt.Action{Kind: xt.ActionPass, MatchID: match, PlayerID: &playmaker, PlayerName: "Seven", StartX: 60, StartY: 40, EndX: 105, EndY: 40, Completed: true},
			xt.Action{Kind: xt.ActionCarry, MatchID: match, PlayerID: &playmaker, PlayerName: "Seven", StartX: 90, StartY: 40, EndX: 110, EndY: 40, Completed: true},
		)
	}
	actions = append(actions,
		xt.Action{Kind: xt.ActionPass, MatchID: 1, PlayerID: &casual, PlayerName: "Eight", StartX: 20, StartY: 40, EndX: 60, EndY: 40, Completed: true},
		xt.Action{Kind: xt.ActionPass, MatchID: 1, PlayerID: &casual, PlayerName: "Eight", StartX: 20, StartY: 40, EndX: 100, EndY: 70, Completed: false},
	)
	shots := []xt.Shot{
		{X: 110, Y: 40, IsGoal: true},
		{X: 110, Y: 40, IsGoal: false},
		{X: 106, Y: 40, IsGoal: false},
	}
	return actions, shots
}

func TestXTService_BuildPersistsGridAndPlayers(t *testing.T) {
	ctx := context.Background()
	actions, shots := xtFixture()
	repo := xtmock.NewRepository(t)
	repo.On("ListActions", mock.Anything).Return(actions, nil).Once()
	repo.On("ListShots", mock.Anything).Return(shots, nil).Once()
	repo.On("ReplaceXT", mock.Anything,
		mock.MatchedBy(func(g *xt.Grid) bool { return g != nil && g.Converged }),
		mock.MatchedBy(func(players []xt.PlayerValue) bool {
			return len(players) == 1 && players[0].PlayerID == 7 && players[0].MatchesPlayed == 3 && players[0].ActionsCount == 6
		}),
	).Return(int64(xt.NumZones+1), nil).Once()

	result, err := NewXTService(repo, xt.DefaultSolveOptions(), nil, logging.NewNop()).Build(ctx)
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Players)
	assert.Equal(t, len(actions), result.Actions)
	assert.EqualValues(t, xt.NumZones+1, result.RowsWritten)
}

func TestXTService_BuildReportsNonConvergence(t *testing.T) {
	actions, shots := xtFixture()
	repo := xtmock.NewRepository(t)
	repo.On("ListActions", mock.Anything).Return(actions, nil).Once()
	repo.On("ListShots", mock.Anything).Return(shots, nil).Once()
	repo.On("ReplaceXT", mock.Anything, mock.Anything, mock.Anything).Return(int64(xt.NumZones), nil).Once()

	result, err := NewXTService(repo, xt.SolveOptions{MaxIterations: 1, Tolerance: 1e-12}, nil, logging.NewNop()).Build(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 1, result.Iterations)
	assert.Positive(t, result.MaxDelta)
}
