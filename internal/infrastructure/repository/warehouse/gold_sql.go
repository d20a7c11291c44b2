package warehouse

import (
	"strconv"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

// Materialization is one CREATE TABLE AS SELECT target. Queries run on both
// PostgreSQL and SQLite, so they avoid engine-specific functions and inline
// their literals.
type Materialization struct {
	Table string
	Query string
}

func asFloat(expr string) string {
	return "CAST(" + expr + " AS DOUBLE PRECISION)"
}

func asInt(expr string) string {
	return "CAST(" + expr + " AS BIGINT)"
}

// roundTo rounds through NUMERIC because PostgreSQL has no two-argument
// ROUND for double precision.
func roundTo(expr string, digits int) string {
	return asFloat("ROUND(CAST(" + expr + " AS NUMERIC), " + strconv.Itoa(digits) + ")")
}

var (
	lit = qb.QuoteLiteral

	teamNames = `SELECT match_id, team_id, MAX(team) AS team_name
		FROM fact_events
		WHERE team_id IS NOT NULL
		GROUP BY match_id, team_id`
)

func xgTimelineSQL() string {
	return `SELECT
			s.match_id,
			s.team_id,
			s.team AS team_name,
			s.event_id,
			s.event_index,
			s.period,
			s.minute,
			s.second,
			s.player,
			s.xg,
			s.is_goal,
			s.outcome,
			SUM(CASE WHEN s.xg IS NULL OR s.xg < 0 THEN ` + asFloat("0") + ` ELSE s.xg END) OVER (
				PARTITION BY s.match_id, s.team_id
				ORDER BY s.period, s.minute, s.second, s.event_index
				ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW
			) AS cumulative_xg
		FROM fact_shots s`
}

func passNetworkNodesSQL() string {
	return `SELECT
			p.match_id,
			p.team_id,
			p.player_id,
			MAX(p.player) AS player_name,
			AVG(p.location_x) AS avg_x,
			AVG(p.location_y) AS avg_y,
			COUNT(*) AS pass_count
		FROM fact_passes p
		WHERE p.is_completed = TRUE
			AND p.player_id IS NOT NULL
			AND p.location_x IS NOT NULL
			AND p.location_y IS NOT NULL
		GROUP BY p.match_id, p.team_id, p.player_id`
}

func passNetworkEdgesSQL() string {
	return `SELECT
			p.match_id,
			p.team_id,
			p.player_id AS passer_id,
			MAX(p.player) AS passer_name,
			p.recipient_id,
			MAX(p.recipient) AS recipient_name,
			COUNT(*) AS pass_count,
			AVG(p.location_x) AS avg_start_x,
			AVG(p.location_y) AS avg_start_y,
			AVG(p.end_location_x) AS avg_end_x,
			AVG(p.end_location_y) AS avg_end_y
		FROM fact_passes p
		WHERE p.is_completed = TRUE
			AND p.recipient_id IS NOT NULL
			AND p.player_id IS NOT NULL
			AND p.location_x IS NOT NULL
			AND p.end_location_x IS NOT NULL
		GROUP BY p.match_id, p.team_id, p.player_id, p.recipient_id
		HAVING COUNT(*) >= 2`
}

func shotMapSQL() string {
	return `SELECT
			s.event_id,
			s.match_id,
			s.team_id,
			s.team AS team_name,
			s.player_id,
			s.player AS player_name,
			s.minute,
			s.second,
			s.period,
			s.location_x,
			s.location_y,
			s.xg,
			s.outcome,
			s.is_goal,
			s.body_part,
			s.shot_type,
			s.technique
		FROM fact_shots s`
}

// formationSQL weights each player's mean pass and carry start location by
// its touch count, then takes jersey and position from the first lineup
// interval.
func formationSQL() string {
	return `WITH touches AS (
			SELECT match_id, team_id, player_id,
				AVG(location_x) AS avg_x,
				AVG(location_y) AS avg_y,
				COUNT(*) AS touch_count,
				MAX(player) AS player_name
			FROM fact_passes
			WHERE location_x IS NOT NULL AND location_y IS NOT NULL AND player_id IS NOT NULL
			GROUP BY match_id, team_id, player_id
			UNION ALL
			SELECT match_id, team_id, player_id,
				AVG(location_x) AS avg_x,
				AVG(location_y) AS avg_y,
				COUNT(*) AS touch_count,
				MAX(player) AS player_name
			FROM fact_carries
			WHERE location_x IS NOT NULL AND location_y IS NOT NULL AND player_id IS NOT NULL
			GROUP BY match_id, team_id, player_id
		),
		combined AS (
			SELECT match_id, team_id, player_id,
				MAX(player_name) AS player_name,
				SUM(avg_x * touch_count) / SUM(touch_count) AS avg_x,
				SUM(avg_y * touch_count) / SUM(touch_count) AS avg_y,
				` + asInt("SUM(touch_count)") + ` AS touches
			FROM touches
			GROUP BY match_id, team_id, player_id
		)
		SELECT
			c.match_id,
			c.team_id,
			c.player_id,
			c.player_name,
			l.jersey_number,
			l.position,
			c.avg_x,
			c.avg_y,
			c.touches
		FROM combined c
		LEFT JOIN fact_lineups l
			ON l.match_id = c.match_id
			AND l.player_id = c.player_id
			AND l.interval_index = 0`
}

func teamStatsSQL() string {
	onTarget := qb.QuoteList(dw.ShotOutcomeGoal, "Saved", "Saved To Post")
	return `WITH teams AS (` + teamNames + `),
		shots AS (
			SELECT match_id, team_id,
				COUNT(*) AS total_shots,
				SUM(CASE WHEN outcome IN (` + onTarget + `) THEN 1 ELSE 0 END) AS shots_on_target,
				SUM(CASE WHEN is_goal = TRUE THEN 1 ELSE 0 END) AS goals,
				SUM(CASE WHEN xg IS NULL THEN ` + asFloat("0") + ` ELSE xg END) AS total_xg
			FROM fact_shots
			GROUP BY match_id, team_id
		),
		passes AS (
			SELECT match_id, team_id,
				COUNT(*) AS total_passes,
				SUM(CASE WHEN is_completed = TRUE THEN 1 ELSE 0 END) AS completed_passes
			FROM fact_passes
			GROUP BY match_id, team_id
		),
		carries AS (
			SELECT match_id, team_id, COUNT(*) AS total_carries
			FROM fact_carries
			GROUP BY match_id, team_id
		),
		pressures AS (
			SELECT match_id, team_id, COUNT(*) AS total_pressures
			FROM fact_events
			WHERE type = ` + lit(dw.EventTypePressure) + `
			GROUP BY match_id, team_id
		)
		SELECT
			t.match_id,
			t.team_id,
			t.team_name,
			` + asInt("COALESCE(s.total_shots, 0)") + ` AS total_shots,
			` + asInt("COALESCE(s.shots_on_target, 0)") + ` AS shots_on_target,
			` + asInt("COALESCE(s.goals, 0)") + ` AS goals,
			` + roundTo("COALESCE(s.total_xg, 0)", 3) + ` AS total_xg,
			` + asInt("COALESCE(p.total_passes, 0)") + ` AS total_passes,
			` + asInt("COALESCE(p.completed_passes, 0)") + ` AS completed_passes,
			` + roundTo("100 * "+asFloat("p.completed_passes")+" / NULLIF(p.total_passes, 0)", 1) + ` AS pass_completion_pct,
			` + asInt("COALESCE(c.total_carries, 0)") + ` AS total_carries,
			` + asInt("COALESCE(pr.total_pressures, 0)") + ` AS total_pressures
		FROM teams t
		LEFT JOIN shots s ON s.match_id = t.match_id AND s.team_id = t.team_id
		LEFT JOIN passes p ON p.match_id = t.match_id AND p.team_id = t.team_id
		LEFT JOIN carries c ON c.match_id = t.match_id AND c.team_id = t.team_id
		LEFT JOIN pressures pr ON pr.match_id = t.match_id AND pr.team_id = t.team_id`
}

// GoldMaterializations lists the gold tables. None reads another, so their
// order is free.
func GoldMaterializations() []Materialization {
	return []Materialization{
		{Table: dw.TableXGTimeline, Query: xgTimelineSQL()},
		{Table: dw.TablePassNetworkNodes, Query: passNetworkNodesSQL()},
		{Table: dw.TablePassNetworkEdges, Query: passNetworkEdgesSQL()},
		{Table: dw.TableShotMap, Query: shotMapSQL()},
		{Table: dw.TableFormationPosition, Query: formationSQL()},
		{Table: dw.TableTeamStats, Query: teamStatsSQL()},
	}
}
