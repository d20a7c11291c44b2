package warehouse

import "time"

const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// PipelineRun records one stage execution.
type PipelineRun struct {
	RunID        string     `db:"run_id"`
	Stage        string     `db:"stage"`
	Status       string     `db:"status"`
	StartedAt    time.Time  `db:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"`
	RowsWritten  int64      `db:"rows_written"`
	ErrorMessage *string    `db:"error_message"`
}

// RegisteredTeam is one team_registry entry.
type RegisteredTeam struct {
	TeamName     string    `db:"team_name"`
	StableTeamID int64     `db:"stable_team_id"`
	FirstSeenAt  time.Time `db:"first_seen_at"`
}
