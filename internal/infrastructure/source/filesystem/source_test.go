package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSource_ReadsLayout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "competitions", "competitions.json"), `[]`)
	writeFile(t, filepath.Join(root, "matches", "11", "90.json"), `[{"match_id": 1}]`)
	writeFile(t, filepath.Join(root, "matches", "11", "4.json"), `[]`)
	writeFile(t, filepath.Join(root, "matches", "2", "27.json"), `[]`)
	writeFile(t, filepath.Join(root, "matches", "2", "notes.txt"), `x`)
	writeFile(t, filepath.Join(root, "matches", "misc", "1.json"), `[]`)
	writeFile(t, filepath.Join(root, "events", "1.json"), `[{"id": "e"}]`)

	src := NewSource(root)
	ctx := context.Background()

	data, err := src.Competitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	seasons, err := src.Seasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []raw.SeasonKey{
		{CompetitionID: 2, SeasonID: 27},
		{CompetitionID: 11, SeasonID: 4},
		{CompetitionID: 11, SeasonID: 90},
	}, seasons)

	data, err = src.Matches(ctx, raw.SeasonKey{CompetitionID: 11, SeasonID: 90})
	require.NoError(t, err)
	assert.Contains(t, string(data), "match_id")

	_, err = src.Events(ctx, 1)
	require.NoError(t, err)

	_, err = src.Lineups(ctx, 1)
	require.ErrorIs(t, err, raw.ErrSourceMissing)
}

func TestSource_PrefersRootCompetitionsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "competitions.json"), `[1]`)
	writeFile(t, filepath.Join(root, "competitions", "competitions.json"), `[2]`)

	data, err := NewSource(root).Competitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(data))
}

func TestSource_MissingEverything(t *testing.T) {
	src := NewSource(t.TempDir())

	_, err := src.Competitions(context.Background())
	require.ErrorIs(t, err, raw.ErrSourceMissing)

	seasons, err := src.Seasons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seasons)
}
