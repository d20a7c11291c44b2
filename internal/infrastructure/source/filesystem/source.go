// Package filesystem reads raw StatsBomb open-data style JSON documents from
// a local directory tree.
package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
)

// Source serves documents laid out as
//
//	competitions.json (or competitions/competitions.json)
//	matches/<competition_id>/<season_id>.json
//	events/<match_id>.json
//	lineups/<match_id>.json
type Source struct {
	root string
}

func NewSource(root string) *Source {
	return &Source{root: root}
}

func (s *Source) Competitions(ctx context.Context) ([]byte, error) {
	primary := filepath.Join(s.root, "competitions.json")
	data, err := s.read(ctx, primary)
	if errors.Is(err, raw.ErrSourceMissing) {
		return s.read(ctx, filepath.Join(s.root, "competitions", "competitions.json"))
	}
	return data, err
}

func (s *Source) Matches(ctx context.Context, key raw.SeasonKey) ([]byte, error) {
	return s.read(ctx, filepath.Join(s.root, "matches",
		strconv.FormatInt(key.CompetitionID, 10), strconv.FormatInt(key.SeasonID, 10)+".json"))
}

func (s *Source) Events(ctx context.Context, matchID int64) ([]byte, error) {
	return s.read(ctx, filepath.Join(s.root, "events", strconv.FormatInt(matchID, 10)+".json"))
}

func (s *Source) Lineups(ctx context.Context, matchID int64) ([]byte, error) {
	return s.read(ctx, filepath.Join(s.root, "lineups", strconv.FormatInt(matchID, 10)+".json"))
}

// Seasons lists every matches/<cid>/<sid>.json present, sorted. Entries that
// are not numeric are ignored.
func (s *Source) Seasons(ctx context.Context) ([]raw.SeasonKey, error) {
	dir := filepath.Join(s.root, "matches")
	competitions, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, crerr.Wrapf(err, "list %s", dir)
	}

	out := make([]raw.SeasonKey, 0)
	for _, c := range competitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !c.IsDir() {
			continue
		}
		cid, err := strconv.ParseInt(c.Name(), 10, 64)
		if err != nil {
			continue
		}
		seasons, err := os.ReadDir(filepath.Join(dir, c.Name()))
		if err != nil {
			return nil, crerr.Wrapf(err, "list seasons of competition %d", cid)
		}
		for _, f := range seasons {
			name, ok := strings.CutSuffix(f.Name(), ".json")
			if f.IsDir() || !ok {
				continue
			}
			sid, err := strconv.ParseInt(name, 10, 64)
			if err != nil {
				continue
			}
			out = append(out, raw.SeasonKey{CompetitionID: cid, SeasonID: sid})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CompetitionID != out[j].CompetitionID {
			return out[i].CompetitionID < out[j].CompetitionID
		}
		return out[i].SeasonID < out[j].SeasonID
	})
	return out, nil
}

func (s *Source) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, crerr.Wrapf(raw.ErrSourceMissing, "%s", path)
		}
		return nil, crerr.Wrapf(err, "read %s", path)
	}
	return data, nil
}
