package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
)

func TestResolve_NestedVariant(t *testing.T) {
	records, err := raw.DecodeRecords([]byte(`[
		{"id": "a", "type": {"name": "Pass"}, "team": {"id": 1, "name": "Home"}, "pass": {"end_location": [10, 20]}}
	]`))
	require.NoError(t, err)

	r := Events.ResolveRecords(records)
	assert.Equal(t, VariantNested, r.Variant())
	assert.Equal(t, "Pass", r.Get(records[0], EventType))
	assert.Equal(t, "Home", r.Get(records[0], EventTeam))
	assert.NotNil(t, r.Get(records[0], PassEndLocation))
	assert.Nil(t, r.Get(records[0], ShotStatsbombXG))

	col, ok := r.Column(EventTeamID)
	require.True(t, ok)
	assert.Equal(t, "team.id", col)
}

func TestResolve_FlatVariant(t *testing.T) {
	rec := raw.NewRecord(4)
	rec.Set("id", "a")
	rec.Set("type", "Shot")
	rec.Set("team", "Away")
	rec.Set("shot_statsbomb_xg", 0.3)

	r := Events.Resolve(rec.Keys())
	assert.Equal(t, VariantFlat, r.Variant())
	assert.Equal(t, "Shot", r.Get(rec, EventType))
	assert.Equal(t, 0.3, r.Get(rec, ShotStatsbombXG))
	assert.Nil(t, r.Get(rec, EventTeamID))

	_, ok := r.Column(EventTeamID)
	assert.False(t, ok)
}

func TestResolve_FlatSpellingWinsWhenBothPresent(t *testing.T) {
	r := Matches.Resolve([]string{"home_team", "home_team.home_team_name", "competition.competition_id"})
	col, ok := r.Column(MatchHomeTeam)
	require.True(t, ok)
	assert.Equal(t, "home_team", col)

	col, ok = r.Column(MatchCompetitionID)
	require.True(t, ok)
	assert.Equal(t, "competition.competition_id", col)
}

func TestNewMapping_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		NewMapping(Entry{Field: "a", Flat: "a"}, Entry{Field: "a", Nested: "b"})
	})
}

func TestMappingsCoverCanonicalFields(t *testing.T) {
	for _, m := range []Mapping{Events, Matches, Competitions, Lineups, FreezeFrames} {
		for _, f := range m.Fields() {
			sources, ok := m.Sources(f)
			require.True(t, ok)
			assert.NotEmpty(t, sources[VariantFlat], "flat spelling for %s", f)
			assert.NotEmpty(t, sources[VariantNested], "nested spelling for %s", f)
		}
	}
}

func TestFreezeFrames_PositionSpellings(t *testing.T) {
	bare := FreezeFrames.Resolve([]string{"player.id", "player.name", "position", "location", "teammate"})
	col, ok := bare.Column(FramePosition)
	require.True(t, ok)
	assert.Equal(t, "position", col)

	object := FreezeFrames.Resolve([]string{"player.id", "player.name", "position.name", "location", "teammate"})
	col, ok = object.Column(FramePosition)
	require.True(t, ok)
	assert.Equal(t, "position.name", col)
	assert.Equal(t, VariantNested, object.Variant())
}
