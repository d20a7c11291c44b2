package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	warehousemock "github.com/riskibarqy/football-analytics/internal/mocks/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/cache"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

func newQueryService(t *testing.T) (*QueryService, *warehousemock.QueryRepository) {
	t.Helper()
	repo := warehousemock.NewQueryRepository(t)
	return NewQueryService(repo, cache.NewStore(time.Minute), logging.NewNop()), repo
}

func TestQueryService_MatchSummaryIsCached(t *testing.T) {
	ctx := context.Background()
	service, repo := newQueryService(t)
	pct := 66.7
	repo.On("GetMatch", mock.Anything, int64(1)).Return(dw.Match{MatchID: 1}, true, nil).Once()
	repo.On("TeamStatsByMatch", mock.Anything, int64(1)).Return([]dw.TeamStats{{MatchID: 1, PassCompletionPct: &pct}}, nil).Once()
	repo.On("PPDAByMatch", mock.Anything, int64(1)).Return([]dw.PPDAMatch{{MatchID: 1, PPDA: 3}}, nil).Once()

	first, err := service.MatchSummary(ctx, 1)
	require.NoError(t, err)
	second, err := service.MatchSummary(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, 66.7, *first.TeamStats[0].PassCompletionPct, 1e-9)
	assert.InDelta(t, 3.0, first.PPDA[0].PPDA, 1e-9)
}

func TestQueryService_InvalidateAllReloads(t *testing.T) {
	ctx := context.Background()
	service, repo := newQueryService(t)
	repo.On("ListCompetitions", mock.Anything).Return([]dw.Competition{{CompetitionID: 11, SeasonID: 90}}, nil).Twice()

	_, err := service.ListCompetitions(ctx)
	require.NoError(t, err)
	_, err = service.ListCompetitions(ctx)
	require.NoError(t, err)

	service.InvalidateAll(ctx)
	got, err := service.ListCompetitions(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestQueryService_MissingMatch(t *testing.T) {
	service, repo := newQueryService(t)
	repo.On("GetMatch", mock.Anything, int64(404)).Return(dw.Match{}, false, nil).Once()

	_, err := service.XGTimeline(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "XGTimeline", mock.Anything, mock.Anything)
}

func TestQueryService_InvalidInput(t *testing.T) {
	ctx := context.Background()
	service, _ := newQueryService(t)

	_, err := service.ShotMap(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.PassNetwork(ctx, 1, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.Formation(ctx, -1, 2)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.ListMatches(ctx, 0, 90)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.PPDARanking(ctx, 11, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.PlayerXT(ctx, -5)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestQueryService_FormationSplitsStarters(t *testing.T) {
	service, repo := newQueryService(t)
	rows := make([]dw.FormationPosition, 0, 14)
	for i := 0; i < 14; i++ {
		pid := int64(i + 1)
		rows = append(rows, dw.FormationPosition{MatchID: 1, PlayerID: &pid, Touches: int64(100 - i)})
	}
	repo.On("GetMatch", mock.Anything, int64(1)).Return(dw.Match{MatchID: 1}, true, nil).Once()
	repo.On("Formation", mock.Anything, int64(1), int64(2)).Return(rows, nil).Once()

	got, err := service.Formation(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, got.Starters, 11)
	assert.Len(t, got.Substitutes, 3)
	assert.EqualValues(t, 12, *got.Substitutes[0].PlayerID)
}

func TestQueryService_PassNetworkAndPlayerXT(t *testing.T) {
	ctx := context.Background()
	service, repo := newQueryService(t)
	repo.On("GetMatch", mock.Anything, int64(1)).Return(dw.Match{MatchID: 1}, true, nil).Once()
	repo.On("PassNetworkNodes", mock.Anything, int64(1), int64(100)).Return([]dw.PassNetworkNode{{MatchID: 1, PassCount: 2}}, nil).Once()
	repo.On("PassNetworkEdges", mock.Anything, int64(1), int64(100)).Return([]dw.PassNetworkEdge{{MatchID: 1, PassCount: 2}}, nil).Once()
	repo.On("TopXTPlayers", mock.Anything, defaultPlayerXTLimit).Return([]dw.XTPlayer{{PlayerID: 7}}, nil).Once()

	network, err := service.PassNetwork(ctx, 1, 100)
	require.NoError(t, err)
	assert.Len(t, network.Nodes, 1)
	assert.Len(t, network.Edges, 1)

	players, err := service.PlayerXT(ctx, 0)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.EqualValues(t, 7, players[0].PlayerID)
}
