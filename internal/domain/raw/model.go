package raw

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSourceMissing marks a raw document that the source does not have.
var ErrSourceMissing = errors.New("raw source record missing")

type Layer string

const (
	LayerCompetitions Layer = "competitions"
	LayerMatches      Layer = "matches"
	LayerEvents       Layer = "events"
	LayerLineups      Layer = "lineups"
)

// Layers lists bronze layers in ingestion order.
var Layers = []Layer{LayerCompetitions, LayerMatches, LayerEvents, LayerLineups}

type SeasonKey struct {
	CompetitionID int64
	SeasonID      int64
}

// Unit is one bronze snapshot artifact.
type Unit struct {
	Layer         Layer
	CompetitionID int64
	SeasonID      int64
	MatchID       int64
}

func CompetitionsUnit() Unit {
	return Unit{Layer: LayerCompetitions}
}

func MatchesUnit(key SeasonKey) Unit {
	return Unit{Layer: LayerMatches, CompetitionID: key.CompetitionID, SeasonID: key.SeasonID}
}

func EventsUnit(matchID int64) Unit {
	return Unit{Layer: LayerEvents, MatchID: matchID}
}

func LineupsUnit(matchID int64) Unit {
	return Unit{Layer: LayerLineups, MatchID: matchID}
}

// Key is the artifact base name within its layer.
func (u Unit) Key() string {
	switch u.Layer {
	case LayerCompetitions:
		return "competitions"
	case LayerMatches:
		return strconv.FormatInt(u.CompetitionID, 10) + "_" + strconv.FormatInt(u.SeasonID, 10)
	default:
		return strconv.FormatInt(u.MatchID, 10)
	}
}

func (u Unit) String() string {
	return string(u.Layer) + "/" + u.Key()
}

// ParseUnit is the inverse of Unit.Key for a given layer.
func ParseUnit(layer Layer, key string) (Unit, error) {
	switch layer {
	case LayerCompetitions:
		return CompetitionsUnit(), nil
	case LayerMatches:
		var cid, sid int64
		if _, err := fmt.Sscanf(key, "%d_%d", &cid, &sid); err != nil {
			return Unit{}, fmt.Errorf("parse matches unit %q: %w", key, err)
		}
		return MatchesUnit(SeasonKey{CompetitionID: cid, SeasonID: sid}), nil
	case LayerEvents, LayerLineups:
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return Unit{}, fmt.Errorf("parse %s unit %q: %w", layer, key, err)
		}
		return Unit{Layer: layer, MatchID: id}, nil
	default:
		return Unit{}, fmt.Errorf("unknown bronze layer %q", layer)
	}
}
