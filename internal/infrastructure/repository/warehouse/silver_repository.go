package warehouse

import (
	"context"
	"fmt"
	"time"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

type SilverRepository struct {
	store *Store
	now   func() time.Time
}

func NewSilverRepository(store *Store) *SilverRepository {
	return &SilverRepository{store: store, now: time.Now}
}

type silverTable struct {
	name  string
	rows  any
	model any
	opts  []ReplaceOption
}

func (r *SilverRepository) ReplaceSilver(ctx context.Context, snap *dw.SilverSnapshot) (dw.TableCounts, error) {
	if snap == nil {
		return nil, fmt.Errorf("silver snapshot is required")
	}

	counts := make(dw.TableCounts, len(dw.SilverTables))
	err := r.store.InTx(ctx, func(ctx context.Context, tx *Tx) error {
		if err := r.registerTeams(ctx, tx, snap.Teams); err != nil {
			return err
		}

		tables := []silverTable{
			{name: dw.TableDimCompetition, rows: snap.Competitions, model: dw.Competition{}},
			{name: dw.TableDimMatch, rows: snap.Matches, model: dw.Match{}},
			{name: dw.TableDimTeam, rows: snap.Teams, model: dw.Team{}},
			{name: dw.TableDimPlayer, rows: snap.Players, model: dw.Player{}},
			{name: dw.TableFactEvents, rows: snap.Events, model: dw.Event{}},
			{name: dw.TableFactPasses, rows: snap.Passes, model: dw.Pass{}},
			{name: dw.TableFactShots, rows: snap.Shots, model: dw.Shot{},
				opts: []ReplaceOption{DropColumnIfAllNull(dw.ColumnEndLocation)}},
			{name: dw.TableFactCarries, rows: snap.Carries, model: dw.Carry{}},
			{name: dw.TableFactLineups, rows: snap.Lineups, model: dw.Lineup{}},
			{name: dw.TableFreezeFrames, rows: snap.FreezeFrames, model: dw.FreezeFrame{}},
		}
		for _, t := range tables {
			opts := append([]ReplaceOption{WithModel(t.model)}, t.opts...)
			n, err := tx.ReplaceWithRows(ctx, t.name, t.rows, opts...)
			if err != nil {
				return err
			}
			counts[t.name] = n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("replace silver tables: %w", err)
	}

	return counts, nil
}

// registerTeams appends unseen team names to team_registry in name order and
// copies every stable id onto teams.
func (r *SilverRepository) registerTeams(ctx context.Context, tx *Tx, teams []dw.Team) error {
	query, args, err := qb.Select("team_name", "stable_team_id", "first_seen_at").
		From(dw.TableTeamRegistry).
		OrderBy("stable_team_id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select team registry query: %w", err)
	}

	var registered []dw.RegisteredTeam
	if err := tx.Select(ctx, &registered, query, args...); err != nil {
		return fmt.Errorf("select team registry: %w", err)
	}

	ids := make(map[string]int64, len(registered))
	var maxID int64
	for _, t := range registered {
		ids[t.TeamName] = t.StableTeamID
		maxID = max(maxID, t.StableTeamID)
	}

	seenAt := r.now().UTC()
	insert := qb.InsertInto(dw.TableTeamRegistry).Columns("team_name", "stable_team_id", "first_seen_at")
	added := 0
	for i := range teams {
		id, ok := ids[teams[i].TeamName]
		if !ok {
			maxID++
			id = maxID
			ids[teams[i].TeamName] = id
			insert = insert.Values(teams[i].TeamName, id, seenAt)
			added++
		}
		teams[i].StableTeamID = id
	}
	if added == 0 {
		return nil
	}

	query, args, err = insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team registry query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team registry: %w", err)
	}
	return nil
}

// ListTeams returns the registry in stable id order.
func (r *SilverRepository) ListTeams(ctx context.Context) ([]dw.RegisteredTeam, error) {
	query, args, err := qb.Select("team_name", "stable_team_id", "first_seen_at").
		From(dw.TableTeamRegistry).
		OrderBy("stable_team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team registry query: %w", err)
	}

	var out []dw.RegisteredTeam
	if err := r.store.Select(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select team registry: %w", err)
	}
	return out, nil
}
