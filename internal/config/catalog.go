package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Competition is one entry of the competitions catalog (config/competitions.yaml).
type Competition struct {
	CompetitionID int64  `koanf:"competition_id"`
	SeasonID      int64  `koanf:"season_id"`
	Name          string `koanf:"name"`
	Enabled       bool   `koanf:"enabled"`
}

// LoadCatalog reads the competitions catalog and returns enabled entries
// ordered by (competition_id, season_id). A missing file surfaces as an
// error wrapping fs.ErrNotExist.
func LoadCatalog(path string) ([]Competition, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("competitions catalog path is empty")
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load competitions catalog %s: %w", path, err)
	}

	var all []Competition
	if err := k.UnmarshalWithConf("competitions", &all, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode competitions catalog %s: %w", path, err)
	}

	seen := make(map[[2]int64]struct{}, len(all))
	out := make([]Competition, 0, len(all))
	for i, item := range all {
		if item.CompetitionID <= 0 || item.SeasonID <= 0 {
			return nil, fmt.Errorf("competitions[%d]: competition_id and season_id must be > 0", i)
		}
		if !item.Enabled {
			continue
		}
		key := [2]int64{item.CompetitionID, item.SeasonID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CompetitionID != out[j].CompetitionID {
			return out[i].CompetitionID < out[j].CompetitionID
		}
		return out[i].SeasonID < out[j].SeasonID
	})
	return out, nil
}
