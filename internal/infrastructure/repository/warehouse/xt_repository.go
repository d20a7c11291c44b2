package warehouse

import (
	"context"
	"fmt"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/domain/xt"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

// Set-piece restarts are not open-play ball progression.
var excludedPassTypes = []any{"Kick Off", "Goal Kick", "Corner", "Throw-in"}

type actionRow struct {
	EventID      string  `db:"event_id"`
	MatchID      int64   `db:"match_id"`
	PlayerID     *int64  `db:"player_id"`
	Player       *string `db:"player"`
	LocationX    float64 `db:"location_x"`
	LocationY    float64 `db:"location_y"`
	EndLocationX float64 `db:"end_location_x"`
	EndLocationY float64 `db:"end_location_y"`
	IsCompleted  bool    `db:"is_completed"`
}

type shotLocationRow struct {
	LocationX float64 `db:"location_x"`
	LocationY float64 `db:"location_y"`
	IsGoal    bool    `db:"is_goal"`
}

type XTRepository struct {
	store *Store
}

func NewXTRepository(store *Store) *XTRepository {
	return &XTRepository{store: store}
}

func located(prefix string) []qb.Condition {
	return []qb.Condition{
		qb.IsNotNull(prefix + "location_x"),
		qb.IsNotNull(prefix + "location_y"),
		qb.IsNotNull(prefix + "end_location_x"),
		qb.IsNotNull(prefix + "end_location_y"),
	}
}

func (r *XTRepository) ListActions(ctx context.Context) ([]xt.Action, error) {
	passFilter := append([]qb.Condition{
		qb.Expr("(pass_type IS NULL OR pass_type NOT IN (?, ?, ?, ?))", excludedPassTypes...),
	}, located("")...)
	passQuery, passArgs, err := qb.Select(
		"event_id", "match_id", "player_id", "player", "location_x", "location_y",
		"end_location_x", "end_location_y", "is_completed",
	).
		From(dw.TableFactPasses).
		Where(passFilter...).
		OrderBy("match_id", "event_index", "event_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select xt passes query: %w", err)
	}

	carryQuery, carryArgs, err := qb.Select(
		"event_id", "match_id", "player_id", "player", "location_x", "location_y",
		"end_location_x", "end_location_y", "TRUE AS is_completed",
	).
		From(dw.TableFactCarries).
		Where(located("")...).
		OrderBy("match_id", "event_index", "event_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select xt carries query: %w", err)
	}

	var passes, carries []actionRow
	if err := r.store.Select(ctx, &passes, passQuery, passArgs...); err != nil {
		return nil, fmt.Errorf("select xt passes: %w", err)
	}
	if err := r.store.Select(ctx, &carries, carryQuery, carryArgs...); err != nil {
		return nil, fmt.Errorf("select xt carries: %w", err)
	}

	out := make([]xt.Action, 0, len(passes)+len(carries))
	for _, row := range passes {
		out = append(out, row.action(xt.ActionPass))
	}
	for _, row := range carries {
		out = append(out, row.action(xt.ActionCarry))
	}
	return out, nil
}

func (row actionRow) action(kind xt.ActionKind) xt.Action {
	return xt.Action{
		Kind:       kind,
		EventID:    row.EventID,
		MatchID:    row.MatchID,
		PlayerID:   row.PlayerID,
		PlayerName: derefString(row.Player),
		StartX:     row.LocationX,
		StartY:     row.LocationY,
		EndX:       row.EndLocationX,
		EndY:       row.EndLocationY,
		Completed:  kind == xt.ActionCarry || row.IsCompleted,
	}
}

func (r *XTRepository) ListShots(ctx context.Context) ([]xt.Shot, error) {
	query, args, err := qb.Select("location_x", "location_y", "is_goal").
		From(dw.TableFactShots).
		Where(qb.IsNotNull("location_x"), qb.IsNotNull("location_y")).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select xt shots query: %w", err)
	}

	var rows []shotLocationRow
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select xt shots: %w", err)
	}

	out := make([]xt.Shot, 0, len(rows))
	for _, row := range rows {
		out = append(out, xt.Shot{X: row.LocationX, Y: row.LocationY, IsGoal: row.IsGoal})
	}
	return out, nil
}

// ReplaceXT writes the zone surface and the player table in one transaction.
func (r *XTRepository) ReplaceXT(ctx context.Context, grid *xt.Grid, players []xt.PlayerValue) (int64, error) {
	if grid == nil {
		return 0, fmt.Errorf("xt grid is required")
	}

	zones := make([]dw.XTZone, 0, xt.NumZones)
	for z := 0; z < xt.NumZones; z++ {
		row, col := xt.Cell(z)
		x, y := xt.Origin(z)
		zones = append(zones, dw.XTZone{
			ZoneIndex:  int64(z),
			GridRow:    int64(row),
			GridCol:    int64(col),
			ZoneXStart: x,
			ZoneYStart: y,
			PShot:      xt.Round(grid.PShot[z], 5),
			PMove:      xt.Round(grid.PMove[z], 5),
			PGoal:      xt.Round(grid.PGoal[z], 5),
			XTValue:    xt.Round(grid.Values[z], 5),
		})
	}

	rows := make([]dw.XTPlayer, 0, len(players))
	for _, p := range players {
		var name *string
		if p.PlayerName != "" {
			name = &p.PlayerName
		}
		rows = append(rows, dw.XTPlayer{
			PlayerID:      p.PlayerID,
			PlayerName:    name,
			TotalXTAdded:  xt.Round(p.TotalXTAdded, 4),
			XTPasses:      xt.Round(p.XTPasses, 4),
			XTCarries:     xt.Round(p.XTCarries, 4),
			ActionsCount:  int64(p.ActionsCount),
			MatchesPlayed: int64(p.MatchesPlayed),
			XTPerMatch:    xt.Round(p.XTPerMatch, 4),
		})
	}

	var written int64
	err := r.store.InTx(ctx, func(ctx context.Context, tx *Tx) error {
		n, err := tx.ReplaceWithRows(ctx, dw.TableXTGrid, zones)
		if err != nil {
			return err
		}
		written += n
		n, err = tx.ReplaceWithRows(ctx, dw.TableXTPlayer, rows, WithModel(dw.XTPlayer{}))
		if err != nil {
			return err
		}
		written += n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("replace xt tables: %w", err)
	}
	return written, nil
}
