package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	warehousemock "github.com/riskibarqy/football-analytics/internal/mocks/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
)

func TestGoldService_Build(t *testing.T) {
	ctx := context.Background()
	repo := warehousemock.NewGoldRepository(t)
	repo.On("RebuildGold", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(dw.TableCounts{dw.TableShotMap: 3, dw.TableTeamStats: 2}, nil).
		Once()

	manager := metrics.NewManager(metrics.WithNamespace("test"))
	result, err := NewGoldService(repo, manager, logging.NewNop()).Build(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, result.Tables.Total())
}

func TestGoldService_BuildWrapsRepositoryError(t *testing.T) {
	repo := warehousemock.NewGoldRepository(t)
	repo.On("RebuildGold", mock.Anything).Return(nil, errors.New("ctas failed")).Once()

	_, err := NewGoldService(repo, nil, logging.NewNop()).Build(context.Background())
	require.ErrorContains(t, err, "rebuild gold tables: ctas failed")
}
