package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	rawmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/raw"
	warehousemock "github.com/riskibarqy/football-analytics/internal/mocks/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const (
	silverEventsDoc = `[
		{"id": "e1", "index": 1, "period": 1, "minute": 0, "second": 5, "type": {"name": "Pass"},
		 "team": {"id": 100, "name": "Home"}, "player": {"id": 1, "name": "One"}, "location": [50, 40],
		 "pass": {"end_location": [60, 40], "recipient": {"id": 2, "name": "Two"}, "length": 10}},
		{"id": "e2", "index": 2, "period": 1, "minute": 0, "second": 9, "type": {"name": "Pass"},
		 "team": {"id": 100, "name": "Home"}, "player": {"id": 2, "name": "Two"}, "location": [60, 40],
		 "pass": {"end_location": [70, 10], "outcome": {"name": "Incomplete"}, "type": {"name": "Throw-in"}}},
		{"id": "e3", "index": 3, "period": 1, "minute": 10, "second": 0, "type": {"name": "Shot"},
		 "team": {"id": 100, "name": "Home"}, "player": {"id": 1, "name": "One"}, "location": [108, 40], "under_pressure": true,
		 "shot": {"statsbomb_xg": 0.3, "end_location": [120, 40, 1.2], "outcome": {"name": "Goal"}, "body_part": {"name": "Head"},
		  "freeze_frame": [{"location": [118, 40], "teammate": false, "player": {"id": 5, "name": "Keeper"}, "position": {"name": "Goalkeeper"}}]}},
		{"id": "e4", "index": 4, "period": 2, "minute": 50, "second": 0, "type": {"name": "Carry"},
		 "team": {"name": "Away"}, "player": {"id": 3, "name": "Three"}, "location": [30, 30], "carry": {"end_location": [40, 35]}},
		{"index": 5, "type": {"name": "Half End"}}
	]`
	silverLineupsDoc = `[
		{"team_id": 100, "team_name": "Home", "lineup": [
			{"player_id": 1, "player_name": "One", "jersey_number": 9, "country": {"name": "Spain"}, "positions": [
				{"position_id": 23, "position": "Center Forward", "from": "00:00", "to": "60:00", "from_period": 1, "to_period": 2, "start_reason": "Starting XI", "end_reason": "Tactical Shift"},
				{"position_id": 17, "position": "Right Wing", "from": "60:00", "to": null, "from_period": 2, "to_period": null, "start_reason": "Tactical Shift", "end_reason": "Final Whistle"}
			]},
			{"player_id": 2, "player_name": "Two", "jersey_number": 8, "positions": []}
		]},
		{"team_id": 200, "team_name": "Away", "lineup": [
			{"player_id": 3, "player_name": "Three", "jersey_number": 7, "positions": [
				{"position_id": 21, "position": "Left Wing", "from": "50:00", "from_period": 2, "start_reason": "Substitution - On"}
			]}
		]}
	]`
)

func decode(t *testing.T, doc string) []*raw.Record {
	t.Helper()
	records, err := raw.DecodeRecords([]byte(doc))
	require.NoError(t, err)
	return records
}

func expectBronze(t *testing.T, store *rawmock.SnapshotStore) {
	t.Helper()
	events := decode(t, silverEventsDoc)
	for _, rec := range events {
		rec.Put("match_id", int64(1))
	}
	lineups, err := raw.ExplodeLineups(1, []byte(silverLineupsDoc))
	require.NoError(t, err)

	layers := map[raw.Unit][]*raw.Record{
		raw.CompetitionsUnit():  decode(t, competitionsDoc),
		raw.MatchesUnit(season): decode(t, matchesDoc),
		raw.EventsUnit(1):       events,
		raw.LineupsUnit(1):      lineups,
	}
	for unit, records := range layers {
		store.On("List", mock.Anything, unit.Layer).Return([]raw.Unit{unit}, nil).Once()
		store.On("Read", mock.Anything, unit).Return(records, nil).Once()
	}
}

func findEvent[T any](rows []T, id func(T) string, want string) T {
	for _, row := range rows {
		if id(row) == want {
			return row
		}
	}
	var zero T
	return zero
}

func TestSilverService_BuildNormalizesBronze(t *testing.T) {
	ctx := context.Background()
	store := rawmock.NewSnapshotStore(t)
	repo := warehousemock.NewSilverRepository(t)
	expectBronze(t, store)

	var snap *dw.SilverSnapshot
	repo.On("ReplaceSilver", mock.Anything, mock.AnythingOfType("*warehouse.SilverSnapshot")).
		Run(func(args mock.Arguments) { snap = args.Get(1).(*dw.SilverSnapshot) }).
		Return(dw.TableCounts{dw.TableFactEvents: 4, dw.TableFactPasses: 2}, nil).
		Once()

	service := NewSilverService(store, repo, nil, logging.NewNop())
	result, err := service.Build(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 1, result.SkippedEvents)
	assert.EqualValues(t, 6, result.Tables.Total())

	require.Len(t, snap.Competitions, 1)
	assert.Equal(t, "La Liga", *snap.Competitions[0].CompetitionName)

	require.Len(t, snap.Matches, 2)
	assert.EqualValues(t, 100, *snap.Matches[0].HomeTeamSourceID)
	assert.EqualValues(t, 11, *snap.Matches[0].CompetitionID)

	require.Len(t, snap.Teams, 2)
	assert.Equal(t, dw.Team{TeamID: 1, TeamName: "Away", SourceTeamID: snap.Teams[0].SourceTeamID}, snap.Teams[0])
	assert.EqualValues(t, 200, *snap.Teams[0].SourceTeamID)
	assert.Equal(t, "Home", snap.Teams[1].TeamName)
	assert.EqualValues(t, 2, snap.Teams[1].TeamID)

	require.Len(t, snap.Events, 4)
	eventID := func(e dw.Event) string { return e.EventID }
	assert.EqualValues(t, 100, *findEvent(snap.Events, eventID, "e1").TeamID)
	assert.EqualValues(t, 1, *findEvent(snap.Events, eventID, "e4").TeamID, "team without source id falls back to rank")
	assert.True(t, findEvent(snap.Events, eventID, "e3").UnderPressure)

	passID := func(p dw.Pass) string { return p.EventID }
	require.Len(t, snap.Passes, 2)
	assert.True(t, findEvent(snap.Passes, passID, "e1").IsCompleted)
	incomplete := findEvent(snap.Passes, passID, "e2")
	assert.False(t, incomplete.IsCompleted)
	assert.Equal(t, "Throw-in", *incomplete.PassType)

	require.Len(t, snap.Shots, 1)
	shot := snap.Shots[0]
	assert.True(t, shot.IsGoal)
	assert.InDelta(t, 0.3, *shot.XG, 1e-9)
	assert.InDelta(t, 1.2, *shot.EndLocationZ, 1e-9)
	assert.Equal(t, "Head", *shot.BodyPart)
	assert.Nil(t, shot.XGModel)

	require.Len(t, snap.FreezeFrames, 1)
	frame := snap.FreezeFrames[0]
	assert.Equal(t, "e3", frame.EventID)
	assert.EqualValues(t, 5, *frame.PlayerID)
	assert.Equal(t, "Goalkeeper", *frame.Position)
	assert.False(t, frame.IsTeammate)

	require.Len(t, snap.Carries, 1)
	assert.InDelta(t, 40, *snap.Carries[0].EndLocationX, 1e-9)

	require.Len(t, snap.Lineups, 4)
	assert.EqualValues(t, 0, snap.Lineups[0].IntervalIndex)
	assert.True(t, snap.Lineups[0].IsStarter)
	assert.EqualValues(t, 1, snap.Lineups[1].IntervalIndex)
	assert.False(t, snap.Lineups[1].IsStarter)
	assert.Nil(t, snap.Lineups[2].Position)
	assert.False(t, snap.Lineups[2].IsStarter)
	assert.False(t, snap.Lineups[3].IsStarter)

	require.Len(t, snap.Players, 3)
	assert.Equal(t, "Spain", *snap.Players[0].Country)
}

func TestSilverService_BuildFailsBeforeWriting(t *testing.T) {
	store := rawmock.NewSnapshotStore(t)
	repo := warehousemock.NewSilverRepository(t)
	store.On("List", mock.Anything, raw.LayerCompetitions).Return(nil, errors.New("disk gone")).Once()

	service := NewSilverService(store, repo, nil, logging.NewNop())
	_, err := service.Build(context.Background())
	require.ErrorContains(t, err, "disk gone")
	repo.AssertNotCalled(t, "ReplaceSilver", mock.Anything, mock.Anything)
}

func TestSilverService_BuildRejectsEmptyBronzeLayer(t *testing.T) {
	for _, empty := range raw.Layers {
		t.Run(string(empty), func(t *testing.T) {
			store := rawmock.NewSnapshotStore(t)
			repo := warehousemock.NewSilverRepository(t)

			layers := map[raw.Layer]raw.Unit{
				raw.LayerCompetitions: raw.CompetitionsUnit(),
				raw.LayerMatches:      raw.MatchesUnit(season),
				raw.LayerEvents:       raw.EventsUnit(1),
				raw.LayerLineups:      raw.LineupsUnit(1),
			}
			for _, layer := range raw.Layers {
				if layer == empty {
					store.On("List", mock.Anything, layer).Return(nil, nil).Once()
					break
				}
				unit := layers[layer]
				store.On("List", mock.Anything, layer).Return([]raw.Unit{unit}, nil).Once()
				store.On("Read", mock.Anything, unit).Return([]*raw.Record{}, nil).Once()
			}

			_, err := NewSilverService(store, repo, nil, logging.NewNop()).Build(context.Background())
			require.ErrorIs(t, err, ErrNoBronze)
			assert.ErrorContains(t, err, string(empty))
			repo.AssertNotCalled(t, "ReplaceSilver", mock.Anything, mock.Anything)
		})
	}
}

func TestBuildFreezeFrames_BarePositionString(t *testing.T) {
	shot := dw.Event{EventID: "s1", MatchID: 7}
	frames := []frameSource{
		{event: shot, record: raw.FlattenMap(map[string]any{
			"player":   map[string]any{"id": 5.0, "name": "Keeper"},
			"position": "Goalkeeper",
			"location": []any{118.0, 40.0},
			"teammate": false,
		})},
		{event: shot, record: raw.FlattenMap(map[string]any{
			"player":   map[string]any{"id": 6.0, "name": "Back"},
			"position": "Left Back",
			"location": []any{110.0, 30.0},
			"teammate": true,
		})},
	}

	rows := buildFreezeFrames(frames)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Position)
	assert.Equal(t, "Goalkeeper", *rows[0].Position)
	assert.Equal(t, int64(5), *rows[0].PlayerID)
	assert.Equal(t, "Left Back", *rows[1].Position)
	assert.True(t, rows[1].IsTeammate)
	assert.Equal(t, int64(7), rows[1].MatchID)
}

func TestBuildTeams_RankIsSortedNamePosition(t *testing.T) {
	name := func(s string) *string { return &s }
	teams := buildTeams([]dw.Match{
		{MatchID: 1, HomeTeam: name("Zeta"), AwayTeam: name("Alpha")},
		{MatchID: 2, HomeTeam: name("Mid"), AwayTeam: name("Zeta")},
		{MatchID: 3, HomeTeam: name(""), AwayTeam: nil},
	})
	require.Len(t, teams, 3)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, []string{teams[0].TeamName, teams[1].TeamName, teams[2].TeamName})
	assert.Equal(t, []int64{1, 2, 3}, []int64{teams[0].TeamID, teams[1].TeamID, teams[2].TeamID})
}
