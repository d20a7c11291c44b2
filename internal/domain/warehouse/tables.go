// Package warehouse holds the row models of every dimension, fact and gold
// table, plus the table names the stages own.
package warehouse

const (
	TableDimCompetition = "dim_competition"
	TableDimMatch       = "dim_match"
	TableDimTeam        = "dim_team"
	TableDimPlayer      = "dim_player"

	TableFactEvents   = "fact_events"
	TableFactPasses   = "fact_passes"
	TableFactShots    = "fact_shots"
	TableFactCarries  = "fact_carries"
	TableFactLineups  = "fact_lineups"
	TableFreezeFrames = "bridge_shot_freeze_frame"

	TableXGTimeline        = "gold_xg_timeline"
	TablePassNetworkNodes  = "gold_pass_network_nodes"
	TablePassNetworkEdges  = "gold_pass_network_edges"
	TableShotMap           = "gold_shot_map"
	TableFormationPosition = "gold_formation_positions"
	TableTeamStats         = "gold_team_stats"
	TablePPDAMatch         = "gold_ppda_match"
	TablePPDATeam          = "gold_ppda_team"
	TableXTGrid            = "gold_xt_grid"
	TableXTPlayer          = "gold_xt_player"

	TableTeamRegistry = "team_registry"
	TablePipelineRuns = "pipeline_runs"

	// TableShotXGStage is a scratch table, alive only inside the xG apply
	// transaction.
	TableShotXGStage = "stage_shot_xg_model"
)

// Event type tags used by the fact filters and aggregates.
const (
	EventTypePass          = "Pass"
	EventTypeShot          = "Shot"
	EventTypeCarry         = "Carry"
	EventTypePressure      = "Pressure"
	EventTypeTackle        = "Tackle"
	EventTypeInterception  = "Interception"
	EventTypeFoulCommitted = "Foul Committed"
	EventTypeBallRecovery  = "Ball Recovery"
)

// PressZoneX is the x beyond which passes and defensive actions count for
// PPDA: the 60% of pitch length nearest the opponent's goal.
const PressZoneX = 48.0

const (
	ShotOutcomeGoal   = "Goal"
	ShotTypePenalty   = "Penalty"
	ShotTypeOpenPlay  = "Open Play"
	BodyPartHead      = "Head"
	StartReasonXI     = "Starting XI"
	ColumnEndLocation = "end_location_z"
)

// SilverTables lists the tables rebuilt by the silver stage, in build order.
var SilverTables = []string{
	TableDimCompetition,
	TableDimMatch,
	TableDimTeam,
	TableDimPlayer,
	TableFactEvents,
	TableFactPasses,
	TableFactShots,
	TableFactCarries,
	TableFactLineups,
	TableFreezeFrames,
}

// GoldTables lists the tables rebuilt by the gold stage.
var GoldTables = []string{
	TableXGTimeline,
	TablePassNetworkNodes,
	TablePassNetworkEdges,
	TableShotMap,
	TableFormationPosition,
	TableTeamStats,
}
