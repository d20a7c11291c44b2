package bronze

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	unit := raw.EventsUnit(3788741)

	records, err := raw.DecodeRecords([]byte(`[
		{"id": "a", "type": {"name": "Pass"}, "location": [60, 40]},
		{"id": "b", "type": {"name": "Shot"}, "shot": {"statsbomb_xg": 0.12}}
	]`))
	require.NoError(t, err)

	exists, err := s.Exists(ctx, unit)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Write(ctx, unit, records))

	exists, err = s.Exists(ctx, unit)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.Read(ctx, unit)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, records[0].Keys(), got[0].Keys())
	assert.Equal(t, "Shot", got[1].Value("type.name"))
	assert.Equal(t, json.Number("0.12"), got[1].Value("shot.statsbomb_xg"))
}

func TestStore_WriteIsDeterministic(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	unit := raw.MatchesUnit(raw.SeasonKey{CompetitionID: 11, SeasonID: 90})

	records, err := raw.DecodeRecords([]byte(`[{"match_id": 1, "home_team": {"home_team_name": "A"}}]`))
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, unit, records))
	first, err := os.ReadFile(s.Path(unit))
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, unit, records))
	second, err := os.ReadFile(s.Path(unit))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_EmptyArtifact(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	unit := raw.LineupsUnit(7)

	require.NoError(t, s.Write(ctx, unit, nil))
	got, err := s.Read(ctx, unit)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_ListSortedByFileName(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, id := range []int64{30, 100, 2} {
		require.NoError(t, s.Write(ctx, raw.EventsUnit(id), nil))
	}

	units, err := s.List(ctx, raw.LayerEvents)
	require.NoError(t, err)
	assert.Equal(t, []raw.Unit{raw.EventsUnit(100), raw.EventsUnit(2), raw.EventsUnit(30)}, units)

	units, err = s.List(ctx, raw.LayerLineups)
	require.NoError(t, err)
	assert.Empty(t, units)
}
