package warehouse

import (
	"strconv"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

var defensiveActionTypes = []string{
	dw.EventTypeTackle,
	dw.EventTypeInterception,
	dw.EventTypeFoulCommitted,
	dw.EventTypeBallRecovery,
}

// ppdaMatchSQL pairs every team with its opponent in each match. The
// denominator is floored at one action so the ratio is always finite;
// def_actions keeps the true count.
func ppdaMatchSQL(zoneX float64) string {
	zone := strconv.FormatFloat(zoneX, 'f', -1, 64)
	defActions := "COALESCE(d.def_actions, 0)"
	oppPasses := "COALESCE(p.passes, 0)"
	return `WITH teams AS (` + teamNames + `),
		zone_passes AS (
			SELECT match_id, team_id, COUNT(*) AS passes
			FROM fact_events
			WHERE type = ` + lit(dw.EventTypePass) + ` AND location_x > ` + zone + `
			GROUP BY match_id, team_id
		),
		zone_defence AS (
			SELECT match_id, team_id, COUNT(*) AS def_actions
			FROM fact_events
			WHERE type IN (` + qb.QuoteList(defensiveActionTypes...) + `) AND location_x > ` + zone + `
			GROUP BY match_id, team_id
		)
		SELECT
			t.match_id,
			t.team_id,
			t.team_name,
			o.team_id AS opponent_team_id,
			o.team_name AS opponent_team_name,
			` + asInt(oppPasses) + ` AS opponent_passes,
			` + asInt(defActions) + ` AS def_actions,
			` + roundTo(asFloat(oppPasses)+" / CASE WHEN "+defActions+" = 0 THEN 1 ELSE "+defActions+" END", 2) + ` AS ppda
		FROM teams t
		JOIN teams o ON o.match_id = t.match_id AND o.team_id <> t.team_id
		LEFT JOIN zone_passes p ON p.match_id = t.match_id AND p.team_id = o.team_id
		LEFT JOIN zone_defence d ON d.match_id = t.match_id AND d.team_id = t.team_id`
}

func ppdaTeamSQL() string {
	return `SELECT
			m.competition_id,
			m.season_id,
			p.team_id,
			MAX(p.team_name) AS team_name,
			` + roundTo("AVG(p.ppda)", 2) + ` AS avg_ppda,
			` + asInt("COUNT(DISTINCT p.match_id)") + ` AS matches,
			` + asInt("SUM(p.def_actions)") + ` AS total_def_actions,
			` + asInt("SUM(p.opponent_passes)") + ` AS total_opponent_passes
		FROM ` + dw.TablePPDAMatch + ` p
		JOIN dim_match m ON m.match_id = p.match_id
		GROUP BY m.competition_id, m.season_id, p.team_id`
}

// PPDAMaterializations must run in order: the team table reads the match
// table.
func PPDAMaterializations(zoneX float64) []Materialization {
	return []Materialization{
		{Table: dw.TablePPDAMatch, Query: ppdaMatchSQL(zoneX)},
		{Table: dw.TablePPDATeam, Query: ppdaTeamSQL()},
	}
}
