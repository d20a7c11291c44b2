package warehouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/domain/xg"
	"github.com/riskibarqy/football-analytics/internal/domain/xt"
)

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn")
	require.Error(t, err)

	_, err = Open(context.Background(), DriverSQLite, " ")
	require.Error(t, err)
}

func TestReplaceSilver_CreatesEveryTable(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	counts, err := NewSilverRepository(store).ReplaceSilver(ctx, sampleSnapshot())
	require.NoError(t, err)

	assert.Equal(t, int64(10), counts[dw.TableFactEvents])
	assert.Equal(t, int64(4), counts[dw.TableFactPasses])
	assert.Equal(t, int64(2), counts[dw.TableFactShots])
	assert.Equal(t, int64(0), counts[dw.TableFreezeFrames])
	for _, table := range dw.SilverTables {
		exists, err := store.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	var zColumns int
	require.NoError(t, store.Get(ctx, &zColumns, "SELECT COUNT(*) FROM pragma_table_info('fact_shots') WHERE name = ?", dw.ColumnEndLocation))
	assert.Zero(t, zColumns, "all-null end_location_z is dropped")

	var completed int
	require.NoError(t, store.Get(ctx, &completed, "SELECT COUNT(*) FROM fact_passes WHERE is_completed = TRUE"))
	assert.Equal(t, 3, completed)
}

func TestReplaceSilver_StableTeamIDsSurviveRebuilds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewSilverRepository(store)
	repo.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	snap := sampleSnapshot()
	_, err := repo.ReplaceSilver(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Teams[0].StableTeamID)
	assert.Equal(t, int64(2), snap.Teams[1].StableTeamID)

	rebuilt := sampleSnapshot()
	rebuilt.Teams = []dw.Team{
		{TeamID: 1, TeamName: "Aardvark"},
		{TeamID: 2, TeamName: "Away"},
		{TeamID: 3, TeamName: "Home"},
	}
	_, err = repo.ReplaceSilver(ctx, rebuilt)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, []int64{
		rebuilt.Teams[0].StableTeamID, rebuilt.Teams[1].StableTeamID, rebuilt.Teams[2].StableTeamID,
	})

	registry, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, registry, 3)
	assert.Equal(t, "Aardvark", registry[2].TeamName)

	var dimTeams []dw.Team
	require.NoError(t, store.Select(ctx, &dimTeams, "SELECT * FROM dim_team ORDER BY team_id"))
	require.Len(t, dimTeams, 3)
	assert.Equal(t, int64(3), dimTeams[0].StableTeamID)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)

	boom := errors.New("boom")
	err := store.InTx(ctx, func(ctx context.Context, tx *Tx) error {
		if _, err := tx.ReplaceWithRows(ctx, dw.TableFactEvents, []dw.Event{}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, store.Get(ctx, &n, "SELECT COUNT(*) FROM fact_events"))
	assert.Equal(t, 10, n)
}

func TestInTx_RollsBackOnPanic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)

	require.Panics(t, func() {
		_ = store.InTx(ctx, func(ctx context.Context, tx *Tx) error {
			if err := tx.DropTable(ctx, dw.TableFactShots); err != nil {
				return err
			}
			panic("stage crashed")
		})
	})

	exists, err := store.TableExists(ctx, dw.TableFactShots)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRebuildGold(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)

	counts, err := NewGoldRepository(store).RebuildGold(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[dw.TableXGTimeline])
	assert.Equal(t, int64(1), counts[dw.TablePassNetworkEdges])
	assert.Equal(t, int64(2), counts[dw.TableTeamStats])

	q := NewQueryRepository(store)

	stats, err := q.TeamStatsByMatch(ctx, testMatchID)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	away, home := stats[0], stats[1]
	assert.Equal(t, "Home", *home.TeamName)
	assert.Equal(t, int64(1), home.TotalShots)
	assert.Equal(t, int64(1), home.ShotsOnTarget)
	assert.Equal(t, int64(1), home.Goals)
	assert.InDelta(t, 0.3, home.TotalXG, 1e-9)
	assert.Equal(t, int64(3), home.TotalPasses)
	assert.Equal(t, int64(2), home.CompletedPasses)
	require.NotNil(t, home.PassCompletionPct)
	assert.InDelta(t, 66.7, *home.PassCompletionPct, 1e-9)
	assert.Equal(t, int64(1), home.TotalCarries)
	assert.Equal(t, int64(0), away.Goals)
	assert.Equal(t, int64(1), away.ShotsOnTarget)
	assert.Equal(t, int64(1), away.TotalPressures)
	require.NotNil(t, away.PassCompletionPct)
	assert.InDelta(t, 100.0, *away.PassCompletionPct, 1e-9)

	timeline, err := q.XGTimeline(ctx, testMatchID)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	for _, p := range timeline {
		require.NotNil(t, p.XG)
		assert.InDelta(t, *p.XG, p.CumulativeXG, 1e-9)
	}

	edges, err := q.PassNetworkEdges(ctx, testMatchID, homeID)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, int64(2), edges[0].PassCount)
	assert.InDelta(t, 55.0, edges[0].AvgStartX, 1e-9)
	assert.InDelta(t, 75.0, edges[0].AvgEndX, 1e-9)

	nodes, err := q.PassNetworkNodes(ctx, testMatchID, homeID)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, int64(2), nodes[0].PassCount)

	formation, err := q.Formation(ctx, testMatchID, homeID)
	require.NoError(t, err)
	require.Len(t, formation, 2)
	striker := formation[0]
	assert.Equal(t, int64(3), striker.Touches)
	assert.InDelta(t, 200.0/3, striker.AvgX, 1e-9)
	require.NotNil(t, striker.JerseyNumber)
	assert.Equal(t, int64(9), *striker.JerseyNumber)
	assert.Equal(t, "Center Forward", *striker.Position)
	assert.Nil(t, formation[1].JerseyNumber)

	shots, err := q.ShotMap(ctx, testMatchID)
	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.True(t, shots[0].IsGoal)
}

func TestRebuildGold_CumulativeXGIsRunningTotal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot()
	for _, extra := range []struct {
		id     string
		index  int64
		second int64
		xg     *float64
	}{
		{id: "s3", index: 11, second: 10, xg: ptr(0.2)},
		{id: "s4", index: 12, second: 10},
		{id: "s5", index: 13, second: 30, xg: ptr(0.05)},
	} {
		ev := event(extra.id, extra.index, dw.EventTypeShot, homeID, "Home", 1, "Striker", 105, 40)
		ev.Minute = ptr(int64(20))
		ev.Second = ptr(extra.second)
		snap.Events = append(snap.Events, ev)
		snap.Shots = append(snap.Shots, dw.Shot{Event: ev, XG: extra.xg, Outcome: ptr("Off T")})
	}
	_, err := NewSilverRepository(store).ReplaceSilver(ctx, snap)
	require.NoError(t, err)

	_, err = NewGoldRepository(store).RebuildGold(ctx)
	require.NoError(t, err)

	timeline, err := NewQueryRepository(store).XGTimeline(ctx, testMatchID)
	require.NoError(t, err)

	var ids []string
	var cumulative []float64
	for _, p := range timeline {
		if *p.TeamID != homeID {
			continue
		}
		ids = append(ids, p.EventID)
		cumulative = append(cumulative, p.CumulativeXG)
	}
	require.Equal(t, []string{"s1", "s3", "s4", "s5"}, ids)
	require.Len(t, cumulative, 4)
	assert.InDelta(t, 0.3, cumulative[0], 1e-9)
	assert.InDelta(t, 0.5, cumulative[1], 1e-9)
	assert.InDelta(t, 0.5, cumulative[2], 1e-9)
	assert.InDelta(t, 0.55, cumulative[3], 1e-9)
	for i := 1; i < len(cumulative); i++ {
		assert.GreaterOrEqual(t, cumulative[i], cumulative[i-1])
	}
}

func TestRebuildPPDA(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)

	counts, err := NewGoldRepository(store).RebuildPPDA(ctx, dw.PressZoneX)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[dw.TablePPDAMatch])
	assert.Equal(t, int64(2), counts[dw.TablePPDATeam])

	q := NewQueryRepository(store)
	rows, err := q.PPDAByMatch(ctx, testMatchID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	away, home := rows[0], rows[1]
	assert.Equal(t, homeID, *away.OpponentTeamID)
	assert.Equal(t, int64(3), away.OpponentPasses)
	assert.Equal(t, int64(1), away.DefActions)
	assert.InDelta(t, 3.0, away.PPDA, 1e-9)

	assert.Equal(t, int64(0), home.OpponentPasses)
	assert.Equal(t, int64(0), home.DefActions)
	assert.Zero(t, home.PPDA)

	ranking, err := q.PPDARanking(ctx, 11, 90)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, homeID, *ranking[0].TeamID)
	assert.Equal(t, int64(1), ranking[1].Matches)
	assert.InDelta(t, 3.0, ranking[1].AvgPPDA, 1e-9)
}

func TestXGRepository_ReplaceModelXG(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)
	repo := NewXGRepository(store)

	shots, err := repo.ListShots(ctx)
	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, "s1", shots[0].EventID)
	assert.True(t, shots[0].IsGoal)
	require.NotNil(t, shots[0].X)
	assert.Equal(t, 110.0, *shots[0].X)

	updated, err := repo.ReplaceModelXG(ctx, []xg.Score{{EventID: "s1", XG: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	var values []float64
	require.NoError(t, store.Select(ctx, &values, "SELECT xg_model FROM fact_shots ORDER BY event_id"))
	assert.Equal(t, []float64{0.5, 0}, values)

	exists, err := store.TableExists(ctx, dw.TableShotXGStage)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestXTRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)
	repo := NewXTRepository(store)

	actions, err := repo.ListActions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 4, "the throw-in is excluded")
	assert.Equal(t, xt.ActionPass, actions[0].Kind)
	assert.False(t, actions[2].Completed)
	assert.Equal(t, xt.ActionCarry, actions[3].Kind)
	assert.True(t, actions[3].Completed)

	shots, err := repo.ListShots(ctx)
	require.NoError(t, err)
	require.Len(t, shots, 2)

	grid := xt.Solve(xt.Count(actions, shots), xt.DefaultSolveOptions())
	players := xt.AggregatePlayers(&grid, actions, 1)
	require.NotEmpty(t, players)

	written, err := repo.ReplaceXT(ctx, &grid, players)
	require.NoError(t, err)
	assert.Equal(t, int64(xt.NumZones+len(players)), written)

	top, err := NewQueryRepository(store).TopXTPlayers(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, players[0].PlayerID, top[0].PlayerID)
}

func TestRunRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewRunRepository(store)
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StartRun(ctx, dw.PipelineRun{RunID: "r1", Stage: "silver", Status: dw.RunStatusRunning, StartedAt: started}))
	require.NoError(t, repo.StartRun(ctx, dw.PipelineRun{RunID: "r2", Stage: "gold", Status: dw.RunStatusRunning, StartedAt: started.Add(time.Minute)}))
	require.NoError(t, repo.FinishRun(ctx, "r1", dw.RunStatusSucceeded, 42, nil, started.Add(30*time.Second)))
	require.NoError(t, repo.FinishRun(ctx, "r2", dw.RunStatusFailed, 0, ptr("no silver"), started.Add(2*time.Minute)))
	require.Error(t, repo.FinishRun(ctx, "missing", dw.RunStatusFailed, 0, nil, started))

	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r2", runs[0].RunID)
	require.NotNil(t, runs[0].ErrorMessage)
	assert.Equal(t, "no silver", *runs[0].ErrorMessage)
	assert.Equal(t, int64(42), runs[1].RowsWritten)
	require.NotNil(t, runs[1].FinishedAt)
	assert.True(t, runs[1].FinishedAt.Equal(started.Add(30*time.Second)))
}

func TestQueryRepository_Matches(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadSample(t, store)
	q := NewQueryRepository(store)

	comps, err := q.ListCompetitions(ctx)
	require.NoError(t, err)
	require.Len(t, comps, 1)

	matches, err := q.ListMatches(ctx, 11, 90)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m, ok, err := q.GetMatch(ctx, testMatchID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Home", *m.HomeTeam)

	_, ok, err = q.GetMatch(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	pressures, err := q.PressureEvents(ctx, testMatchID)
	require.NoError(t, err)
	require.Len(t, pressures, 1)
	assert.Equal(t, "pr", pressures[0].EventID)
}
