package raw

import (
	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

var numberDecoder = sonic.Config{UseNumber: true}.Froze()

type lineupTeamDoc struct {
	TeamID   any               `json:"team_id"`
	TeamName any               `json:"team_name"`
	Lineup   []lineupPlayerDoc `json:"lineup"`
}

type lineupPlayerDoc struct {
	PlayerID     any                 `json:"player_id"`
	PlayerName   any                 `json:"player_name"`
	JerseyNumber any                 `json:"jersey_number"`
	Country      any                 `json:"country"`
	Positions    []lineupPositionDoc `json:"positions"`
}

type lineupPositionDoc struct {
	PositionID  any `json:"position_id"`
	Position    any `json:"position"`
	From        any `json:"from"`
	To          any `json:"to"`
	FromPeriod  any `json:"from_period"`
	ToPeriod    any `json:"to_period"`
	StartReason any `json:"start_reason"`
	EndReason   any `json:"end_reason"`
}

// LineupColumns is the column order of exploded lineup records.
var LineupColumns = []string{
	"match_id", "team_id", "team_name", "player_id", "player_name", "jersey_number",
	"country", "position_id", "position", "from_time", "to_time", "from_period",
	"to_period", "start_reason", "end_reason",
}

// ExplodeLineups emits one record per (player, position interval). A player
// without intervals still yields one record with null position fields.
func ExplodeLineups(matchID int64, data []byte) ([]*Record, error) {
	var teams []lineupTeamDoc
	if err := numberDecoder.Unmarshal(data, &teams); err != nil {
		return nil, crerr.Wrapf(err, "decode lineups of match %d", matchID)
	}

	out := make([]*Record, 0, len(teams)*16)
	for _, team := range teams {
		for _, player := range team.Lineup {
			positions := player.Positions
			if len(positions) == 0 {
				positions = []lineupPositionDoc{{}}
			}
			for _, pos := range positions {
				rec := NewRecord(len(LineupColumns))
				rec.Set("match_id", matchID)
				rec.Set("team_id", team.TeamID)
				rec.Set("team_name", team.TeamName)
				rec.Set("player_id", player.PlayerID)
				rec.Set("player_name", player.PlayerName)
				rec.Set("jersey_number", player.JerseyNumber)
				rec.Set("country", countryName(player.Country))
				rec.Set("position_id", pos.PositionID)
				rec.Set("position", pos.Position)
				rec.Set("from_time", pos.From)
				rec.Set("to_time", pos.To)
				rec.Set("from_period", pos.FromPeriod)
				rec.Set("to_period", pos.ToPeriod)
				rec.Set("start_reason", pos.StartReason)
				rec.Set("end_reason", pos.EndReason)
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

func countryName(v any) any {
	if m, ok := v.(map[string]any); ok {
		return m["name"]
	}
	return v
}
