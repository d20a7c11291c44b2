package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	"github.com/riskibarqy/football-analytics/internal/infrastructure/repository/bronze"
	rawmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/raw"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const (
	competitionsDoc = `[{"competition_id": 11, "season_id": 90, "competition_name": "La Liga", "season_name": "2020/2021", "country_name": "Spain", "competition_gender": "male"}]`
	matchesDoc      = `[
		{"match_id": 1, "match_date": "2021-01-01", "competition": {"competition_id": 11}, "season": {"season_id": 90},
		 "home_team": {"home_team_id": 100, "home_team_name": "Home"}, "away_team": {"away_team_id": 200, "away_team_name": "Away"},
		 "home_score": 1, "away_score": 0},
		{"match_id": 2, "match_date": "2021-01-08", "competition": {"competition_id": 11}, "season": {"season_id": 90},
		 "home_team": {"home_team_id": 200, "home_team_name": "Away"}, "away_team": {"away_team_id": 100, "away_team_name": "Home"},
		 "home_score": 0, "away_score": 0}
	]`
	eventsDoc  = `[{"id": "e1", "index": 1, "period": 1, "type": {"name": "Pass"}, "team": {"id": 100, "name": "Home"}, "location": [50, 40], "pass": {"end_location": [60, 40]}}]`
	lineupsDoc = `[{"team_id": 100, "team_name": "Home", "lineup": [{"player_id": 9, "player_name": "Nine", "jersey_number": 9, "positions": []}]}]`
)

var season = raw.SeasonKey{CompetitionID: 11, SeasonID: 90}

func newBronzeStore(t *testing.T) *bronze.Store {
	t.Helper()
	store, err := bronze.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func expectFullSource(source *rawmock.Source) {
	source.On("Competitions", mock.Anything).Return([]byte(competitionsDoc), nil).Once()
	source.On("Matches", mock.Anything, season).Return([]byte(matchesDoc), nil).Once()
	for _, id := range []int64{1, 2} {
		source.On("Events", mock.Anything, id).Return([]byte(eventsDoc), nil).Once()
		source.On("Lineups", mock.Anything, id).Return([]byte(lineupsDoc), nil).Once()
	}
}

func TestBronzeService_IngestWritesEveryUnit(t *testing.T) {
	ctx := context.Background()
	source := rawmock.NewSource(t)
	store := newBronzeStore(t)

	source.On("Seasons", mock.Anything).Return([]raw.SeasonKey{season}, nil).Once()
	expectFullSource(source)

	service := NewBronzeService(source, store, nil, logging.NewNop())
	result, err := service.Ingest(ctx, BronzeInput{MaxWorkers: 2})
	require.NoError(t, err)

	assert.Equal(t, 6, result.UnitCount)
	assert.Equal(t, 6, result.WrittenCount)
	assert.Zero(t, result.FailedCount)
	assert.Equal(t, 2, result.WorkerCount)

	events, err := store.Read(ctx, raw.EventsUnit(2))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2", fmt.Sprint(events[0].Value("match_id")))

	lineups, err := store.Read(ctx, raw.LineupsUnit(1))
	require.NoError(t, err)
	require.Len(t, lineups, 1)
	assert.Nil(t, lineups[0].Value("position"))
}

func TestBronzeService_IngestSkipsExistingUnlessForced(t *testing.T) {
	ctx := context.Background()
	source := rawmock.NewSource(t)
	store := newBronzeStore(t)
	expectFullSource(source)

	service := NewBronzeService(source, store, nil, logging.NewNop())
	input := BronzeInput{Seasons: []raw.SeasonKey{season}}

	_, err := service.Ingest(ctx, input)
	require.NoError(t, err)

	again, err := service.Ingest(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 6, again.SkippedCount)
	assert.Zero(t, again.WrittenCount)

	expectFullSource(source)
	input.Force = true
	forced, err := service.Ingest(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 6, forced.WrittenCount)
}

func TestBronzeService_IngestReportsFailedUnits(t *testing.T) {
	ctx := context.Background()
	source := rawmock.NewSource(t)
	store := newBronzeStore(t)

	source.On("Competitions", mock.Anything).Return([]byte(competitionsDoc), nil).Once()
	source.On("Matches", mock.Anything, season).Return([]byte(matchesDoc), nil).Once()
	source.On("Events", mock.Anything, int64(1)).Return([]byte(eventsDoc), nil).Once()
	source.On("Events", mock.Anything, int64(2)).Return(nil, fmt.Errorf("events/2.json: %w", raw.ErrSourceMissing)).Once()
	source.On("Lineups", mock.Anything, mock.AnythingOfType("int64")).Return([]byte(lineupsDoc), nil).Twice()

	service := NewBronzeService(source, store, nil, logging.NewNop())
	result, err := service.Ingest(ctx, BronzeInput{Seasons: []raw.SeasonKey{season}})
	require.NoError(t, err)

	assert.Equal(t, 5, result.WrittenCount)
	assert.Equal(t, 1, result.FailedCount)

	var failed BronzeUnitResult
	for _, u := range result.Units {
		if u.Status == bronzeStatusFailed {
			failed = u
		}
	}
	assert.Equal(t, "events", failed.Layer)
	assert.Equal(t, "2", failed.Key)
	assert.Contains(t, failed.Message, raw.ErrSourceMissing.Error())

	exists, err := store.Exists(ctx, raw.EventsUnit(2))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBronzeService_IngestRejectsNegativeWorkers(t *testing.T) {
	service := NewBronzeService(rawmock.NewSource(t), rawmock.NewSnapshotStore(t), nil, logging.NewNop())
	_, err := service.Ingest(context.Background(), BronzeInput{MaxWorkers: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeWorkerCount(t *testing.T) {
	assert.Equal(t, defaultBronzeWorkers, normalizeWorkerCount(0, 100))
	assert.Equal(t, 3, normalizeWorkerCount(8, 3))
	assert.Equal(t, 4, normalizeWorkerCount(4, 0))
}
