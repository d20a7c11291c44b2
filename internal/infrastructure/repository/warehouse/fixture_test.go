package warehouse

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const (
	testMatchID = int64(1)
	homeID      = int64(100)
	awayID      = int64(200)
)

func ptr[T any](v T) *T {
	return &v
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "warehouse.db"), WithLogger(logging.NewNop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, MigrateUp(store))
	return store
}

func event(id string, index int64, typ string, teamID int64, team string, playerID int64, player string, x, y float64) dw.Event {
	return dw.Event{
		EventID:    id,
		MatchID:    testMatchID,
		EventIndex: ptr(index),
		Period:     ptr(int64(1)),
		Minute:     ptr(index),
		Second:     ptr(int64(0)),
		Type:       ptr(typ),
		PlayerID:   ptr(playerID),
		Player:     ptr(player),
		TeamID:     ptr(teamID),
		Team:       ptr(team),
		LocationX:  ptr(x),
		LocationY:  ptr(y),
	}
}

func pass(ev dw.Event, recipientID int64, endX, endY float64, outcome *string) dw.Pass {
	return dw.Pass{
		Event:        ev,
		RecipientID:  ptr(recipientID),
		Recipient:    ptr("Recipient"),
		EndLocationX: ptr(endX),
		EndLocationY: ptr(endY),
		Outcome:      outcome,
		IsCompleted:  outcome == nil,
	}
}

// sampleSnapshot is one match between Home (source id 100) and Away (200).
//
// Home: three passes in the press zone (two completed 1->2), a goal, a carry.
// Away: one throw-in in its own half, a saved shot, a pressure, a tackle in
// the zone and an interception outside it.
func sampleSnapshot() *dw.SilverSnapshot {
	p1 := event("p1", 1, dw.EventTypePass, homeID, "Home", 1, "Striker", 50, 40)
	p2 := event("p2", 2, dw.EventTypePass, homeID, "Home", 1, "Striker", 60, 30)
	p3 := event("p3", 3, dw.EventTypePass, homeID, "Home", 1, "Striker", 90, 40)
	s1 := event("s1", 4, dw.EventTypeShot, homeID, "Home", 1, "Striker", 110, 40)
	c1 := event("c1", 5, dw.EventTypeCarry, homeID, "Home", 2, "Winger", 40, 40)
	a1 := event("a1", 6, dw.EventTypePass, awayID, "Away", 3, "Keeper", 30, 40)
	s2 := event("s2", 7, dw.EventTypeShot, awayID, "Away", 3, "Keeper", 100, 30)
	pr := event("pr", 8, dw.EventTypePressure, awayID, "Away", 3, "Keeper", 60, 40)
	tk := event("tk", 9, dw.EventTypeTackle, awayID, "Away", 3, "Keeper", 70, 30)
	in := event("in", 10, dw.EventTypeInterception, awayID, "Away", 3, "Keeper", 20, 30)

	throwIn := pass(a1, 4, 40, 40, nil)
	throwIn.PassType = ptr("Throw-in")

	return &dw.SilverSnapshot{
		Competitions: []dw.Competition{{CompetitionID: 11, SeasonID: 90, CompetitionName: ptr("La Liga"), SeasonName: ptr("2020/2021")}},
		Matches: []dw.Match{{
			MatchID: testMatchID, CompetitionID: ptr(int64(11)), SeasonID: ptr(int64(90)),
			HomeTeam: ptr("Home"), AwayTeam: ptr("Away"),
			HomeTeamSourceID: ptr(homeID), AwayTeamSourceID: ptr(awayID),
			HomeScore: ptr(int64(1)), AwayScore: ptr(int64(0)),
		}},
		Teams: []dw.Team{
			{TeamID: 1, TeamName: "Away", SourceTeamID: ptr(awayID)},
			{TeamID: 2, TeamName: "Home", SourceTeamID: ptr(homeID)},
		},
		Players: []dw.Player{{PlayerID: 1, PlayerName: ptr("Striker")}},
		Events:  []dw.Event{p1, p2, p3, s1, c1, a1, s2, pr, tk, in},
		Passes: []dw.Pass{
			pass(p1, 2, 70, 40, nil),
			pass(p2, 2, 80, 30, nil),
			pass(p3, 2, 100, 40, ptr("Incomplete")),
			throwIn,
		},
		Shots: []dw.Shot{
			{Event: s1, XG: ptr(0.3), Outcome: ptr(dw.ShotOutcomeGoal), IsGoal: true},
			{Event: s2, XG: ptr(0.1), Outcome: ptr("Saved")},
		},
		Carries: []dw.Carry{{Event: c1, EndLocationX: ptr(55.0), EndLocationY: ptr(40.0)}},
		Lineups: []dw.Lineup{
			{MatchID: testMatchID, TeamID: ptr(homeID), PlayerID: ptr(int64(1)), JerseyNumber: ptr(int64(9)),
				Position: ptr("Center Forward"), StartReason: ptr(dw.StartReasonXI), IntervalIndex: 0, IsStarter: true},
			{MatchID: testMatchID, TeamID: ptr(homeID), PlayerID: ptr(int64(1)), JerseyNumber: ptr(int64(9)),
				Position: ptr("Right Wing"), StartReason: ptr("Tactical Shift"), IntervalIndex: 1},
		},
	}
}

func loadSample(t *testing.T, store *Store) {
	t.Helper()
	_, err := NewSilverRepository(store).ReplaceSilver(context.Background(), sampleSnapshot())
	require.NoError(t, err)
}
