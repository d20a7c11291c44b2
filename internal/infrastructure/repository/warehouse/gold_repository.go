package warehouse

import (
	"context"
	"fmt"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
)

// GoldRepository rebuilds the SQL-derived aggregate tables from silver.
type GoldRepository struct {
	store *Store
}

func NewGoldRepository(store *Store) *GoldRepository {
	return &GoldRepository{store: store}
}

func (r *GoldRepository) RebuildGold(ctx context.Context) (dw.TableCounts, error) {
	return r.materialize(ctx, "gold", GoldMaterializations())
}

func (r *GoldRepository) RebuildPPDA(ctx context.Context, zoneX float64) (dw.TableCounts, error) {
	return r.materialize(ctx, "ppda", PPDAMaterializations(zoneX))
}

func (r *GoldRepository) materialize(ctx context.Context, stage string, items []Materialization) (dw.TableCounts, error) {
	counts := make(dw.TableCounts, len(items))
	err := r.store.InTx(ctx, func(ctx context.Context, tx *Tx) error {
		for _, item := range items {
			n, err := tx.ReplaceWithQuery(ctx, item.Table, item.Query)
			if err != nil {
				return err
			}
			counts[item.Table] = n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rebuild %s tables: %w", stage, err)
	}
	return counts, nil
}
