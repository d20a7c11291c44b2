package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

// QueryRepository serves the read-only views over silver and gold tables.
type QueryRepository struct {
	store *Store
}

func NewQueryRepository(store *Store) *QueryRepository {
	return &QueryRepository{store: store}
}

func (r *QueryRepository) selectRows(ctx context.Context, dest any, what string, b *qb.SelectBuilder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return fmt.Errorf("build select %s query: %w", what, err)
	}
	if err := r.store.Select(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("select %s: %w", what, err)
	}
	return nil
}

func (r *QueryRepository) ListCompetitions(ctx context.Context) ([]dw.Competition, error) {
	var out []dw.Competition
	err := r.selectRows(ctx, &out, "competitions", qb.Select("*").
		From(dw.TableDimCompetition).
		OrderBy("competition_name", "season_name", "competition_id", "season_id"))
	return out, err
}

func (r *QueryRepository) ListMatches(ctx context.Context, competitionID, seasonID int64) ([]dw.Match, error) {
	var out []dw.Match
	err := r.selectRows(ctx, &out, "matches", qb.Select("*").
		From(dw.TableDimMatch).
		Where(qb.Eq("competition_id", competitionID), qb.Eq("season_id", seasonID)).
		OrderBy("match_date", "kick_off", "match_id"))
	return out, err
}

func (r *QueryRepository) GetMatch(ctx context.Context, matchID int64) (dw.Match, bool, error) {
	query, args, err := qb.Select("*").
		From(dw.TableDimMatch).
		Where(qb.Eq("match_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return dw.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var out dw.Match
	if err := r.store.Get(ctx, &out, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dw.Match{}, false, nil
		}
		return dw.Match{}, false, fmt.Errorf("select match %d: %w", matchID, err)
	}
	return out, true, nil
}

func (r *QueryRepository) TeamStatsByMatch(ctx context.Context, matchID int64) ([]dw.TeamStats, error) {
	var out []dw.TeamStats
	err := r.selectRows(ctx, &out, "team stats", qb.Select("*").
		From(dw.TableTeamStats).
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_name", "team_id"))
	return out, err
}

func (r *QueryRepository) PPDAByMatch(ctx context.Context, matchID int64) ([]dw.PPDAMatch, error) {
	var out []dw.PPDAMatch
	err := r.selectRows(ctx, &out, "match ppda", qb.Select("*").
		From(dw.TablePPDAMatch).
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_name", "team_id"))
	return out, err
}

func (r *QueryRepository) XGTimeline(ctx context.Context, matchID int64) ([]dw.XGTimelinePoint, error) {
	var out []dw.XGTimelinePoint
	err := r.selectRows(ctx, &out, "xg timeline", qb.Select("*").
		From(dw.TableXGTimeline).
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_id", "period", "minute", "second", "event_index"))
	return out, err
}

func (r *QueryRepository) ShotMap(ctx context.Context, matchID int64) ([]dw.ShotMapPoint, error) {
	var out []dw.ShotMapPoint
	err := r.selectRows(ctx, &out, "shot map", qb.Select("*").
		From(dw.TableShotMap).
		Where(qb.Eq("match_id", matchID)).
		OrderBy("period", "minute", "second", "event_id"))
	return out, err
}

func (r *QueryRepository) PassNetworkNodes(ctx context.Context, matchID, teamID int64) ([]dw.PassNetworkNode, error) {
	var out []dw.PassNetworkNode
	err := r.selectRows(ctx, &out, "pass network nodes", qb.Select("*").
		From(dw.TablePassNetworkNodes).
		Where(qb.Eq("match_id", matchID), qb.Eq("team_id", teamID)).
		OrderBy("pass_count DESC", "player_id"))
	return out, err
}

func (r *QueryRepository) PassNetworkEdges(ctx context.Context, matchID, teamID int64) ([]dw.PassNetworkEdge, error) {
	var out []dw.PassNetworkEdge
	err := r.selectRows(ctx, &out, "pass network edges", qb.Select("*").
		From(dw.TablePassNetworkEdges).
		Where(qb.Eq("match_id", matchID), qb.Eq("team_id", teamID)).
		OrderBy("pass_count DESC", "passer_id", "recipient_id"))
	return out, err
}

func (r *QueryRepository) Formation(ctx context.Context, matchID, teamID int64) ([]dw.FormationPosition, error) {
	var out []dw.FormationPosition
	err := r.selectRows(ctx, &out, "formation", qb.Select("*").
		From(dw.TableFormationPosition).
		Where(qb.Eq("match_id", matchID), qb.Eq("team_id", teamID)).
		OrderBy("touches DESC", "player_id"))
	return out, err
}

func (r *QueryRepository) TopXTPlayers(ctx context.Context, limit int) ([]dw.XTPlayer, error) {
	var out []dw.XTPlayer
	err := r.selectRows(ctx, &out, "xt players", qb.Select("*").
		From(dw.TableXTPlayer).
		OrderBy("total_xt_added DESC", "player_id").
		Limit(limit))
	return out, err
}

// PPDARanking lists teams by average PPDA, most intense press first.
func (r *QueryRepository) PPDARanking(ctx context.Context, competitionID, seasonID int64) ([]dw.PPDATeam, error) {
	var out []dw.PPDATeam
	err := r.selectRows(ctx, &out, "ppda ranking", qb.Select("*").
		From(dw.TablePPDATeam).
		Where(qb.Eq("competition_id", competitionID), qb.Eq("season_id", seasonID)).
		OrderBy("avg_ppda", "team_id"))
	return out, err
}

func (r *QueryRepository) PressureEvents(ctx context.Context, matchID int64) ([]dw.PressureEvent, error) {
	var out []dw.PressureEvent
	err := r.selectRows(ctx, &out, "pressure events", qb.Select(
		"event_id", "match_id", "team_id", "team", "player_id", "player", "period",
		"minute", "second", "location_x", "location_y", "duration",
	).
		From(dw.TableFactEvents).
		Where(qb.Eq("match_id", matchID), qb.Eq("type", dw.EventTypePressure)).
		OrderBy("period", "minute", "second", "event_index"))
	return out, err
}
