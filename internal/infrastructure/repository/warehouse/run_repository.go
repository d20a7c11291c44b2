package warehouse

import (
	"context"
	"fmt"
	"time"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

// RunRepository keeps the pipeline_runs ledger. Rows are written outside the
// stage transactions so a failed stage still leaves its record.
type RunRepository struct {
	store *Store
}

func NewRunRepository(store *Store) *RunRepository {
	return &RunRepository{store: store}
}

func (r *RunRepository) StartRun(ctx context.Context, run dw.PipelineRun) error {
	query, args, err := qb.InsertInto(dw.TablePipelineRuns).
		Columns("run_id", "stage", "status", "started_at", "rows_written").
		Values(run.RunID, run.Stage, run.Status, run.StartedAt.UTC(), run.RowsWritten).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert pipeline run query: %w", err)
	}

	if _, err := r.store.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert pipeline run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *RunRepository) FinishRun(ctx context.Context, runID, status string, rowsWritten int64, errMessage *string, finishedAt time.Time) error {
	query, args, err := qb.Update(dw.TablePipelineRuns).
		Set("status", status).
		Set("finished_at", finishedAt.UTC()).
		Set("rows_written", rowsWritten).
		Set("error_message", errMessage).
		Where(qb.Eq("run_id", runID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update pipeline run query: %w", err)
	}

	res, err := r.store.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update pipeline run %s: %w", runID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update pipeline run %s: run not found", runID)
	}
	return nil
}

// ListRuns returns the latest runs first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]dw.PipelineRun, error) {
	query, args, err := qb.Select("run_id", "stage", "status", "started_at", "finished_at", "rows_written", "error_message").
		From(dw.TablePipelineRuns).
		OrderBy("started_at DESC", "run_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select pipeline runs query: %w", err)
	}

	var out []dw.PipelineRun
	if err := r.store.Select(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select pipeline runs: %w", err)
	}
	return out, nil
}
