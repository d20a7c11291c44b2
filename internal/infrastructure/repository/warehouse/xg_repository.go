package warehouse

import (
	"context"
	"fmt"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/domain/xg"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

type shotFeatureRow struct {
	EventID       string   `db:"event_id"`
	MatchID       int64    `db:"match_id"`
	LocationX     *float64 `db:"location_x"`
	LocationY     *float64 `db:"location_y"`
	BodyPart      *string  `db:"body_part"`
	ShotType      *string  `db:"shot_type"`
	IsFirstTime   bool     `db:"is_first_time"`
	UnderPressure bool     `db:"under_pressure"`
	IsGoal        bool     `db:"is_goal"`
	XG            *float64 `db:"xg"`
}

// XGRepository reads shot features and is the only writer of
// fact_shots.xg_model.
type XGRepository struct {
	store *Store
}

func NewXGRepository(store *Store) *XGRepository {
	return &XGRepository{store: store}
}

func (r *XGRepository) ListShots(ctx context.Context) ([]xg.Shot, error) {
	query, args, err := qb.Select(
		"event_id", "match_id", "location_x", "location_y", "body_part", "shot_type",
		"is_first_time", "under_pressure", "is_goal", "xg",
	).
		From(dw.TableFactShots).
		OrderBy("match_id", "event_index", "event_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select shots query: %w", err)
	}

	var rows []shotFeatureRow
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select shots: %w", err)
	}

	out := make([]xg.Shot, 0, len(rows))
	for _, row := range rows {
		out = append(out, xg.Shot{
			EventID:       row.EventID,
			MatchID:       row.MatchID,
			X:             row.LocationX,
			Y:             row.LocationY,
			BodyPart:      derefString(row.BodyPart),
			ShotType:      derefString(row.ShotType),
			IsFirstTime:   row.IsFirstTime,
			UnderPressure: row.UnderPressure,
			IsGoal:        row.IsGoal,
			StatsbombXG:   row.XG,
		})
	}
	return out, nil
}

// ReplaceModelXG stages scores, rewrites xg_model for every shot from the
// stage (0 when a shot has no score) and drops the stage, all in one
// transaction.
func (r *XGRepository) ReplaceModelXG(ctx context.Context, scores []xg.Score) (int64, error) {
	staged := make([]dw.ShotXG, 0, len(scores))
	for _, s := range scores {
		staged = append(staged, dw.ShotXG{EventID: s.EventID, XGModel: s.XG})
	}

	var updated int64
	err := r.store.InTx(ctx, func(ctx context.Context, tx *Tx) error {
		if _, err := tx.ReplaceWithRows(ctx, dw.TableShotXGStage, staged, WithModel(dw.ShotXG{})); err != nil {
			return err
		}

		query, args, err := qb.Update(dw.TableFactShots).
			SetExpr("xg_model", "COALESCE((SELECT st.xg_model FROM "+dw.TableShotXGStage+" st WHERE st.event_id = "+dw.TableFactShots+".event_id), 0)").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update xg_model query: %w", err)
		}
		res, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update xg_model: %w", err)
		}
		if updated, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("read updated shot count: %w", err)
		}

		return tx.DropTable(ctx, dw.TableShotXGStage)
	})
	if err != nil {
		return 0, fmt.Errorf("replace model xg: %w", err)
	}
	return updated, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
