package warehouse

type XGTimelinePoint struct {
	MatchID      int64    `db:"match_id"`
	TeamID       *int64   `db:"team_id"`
	TeamName     *string  `db:"team_name"`
	EventID      string   `db:"event_id"`
	EventIndex   *int64   `db:"event_index"`
	Period       *int64   `db:"period"`
	Minute       *int64   `db:"minute"`
	Second       *int64   `db:"second"`
	Player       *string  `db:"player"`
	XG           *float64 `db:"xg"`
	IsGoal       bool     `db:"is_goal"`
	Outcome      *string  `db:"outcome"`
	CumulativeXG float64  `db:"cumulative_xg"`
}

type PassNetworkNode struct {
	MatchID    int64   `db:"match_id"`
	TeamID     *int64  `db:"team_id"`
	PlayerID   *int64  `db:"player_id"`
	PlayerName *string `db:"player_name"`
	AvgX       float64 `db:"avg_x"`
	AvgY       float64 `db:"avg_y"`
	PassCount  int64   `db:"pass_count"`
}

type PassNetworkEdge struct {
	MatchID       int64   `db:"match_id"`
	TeamID        *int64  `db:"team_id"`
	PasserID      *int64  `db:"passer_id"`
	PasserName    *string `db:"passer_name"`
	RecipientID   *int64  `db:"recipient_id"`
	RecipientName *string `db:"recipient_name"`
	PassCount     int64   `db:"pass_count"`
	AvgStartX     float64 `db:"avg_start_x"`
	AvgStartY     float64 `db:"avg_start_y"`
	AvgEndX       float64 `db:"avg_end_x"`
	AvgEndY       float64 `db:"avg_end_y"`
}

type ShotMapPoint struct {
	EventID    string   `db:"event_id"`
	MatchID    int64    `db:"match_id"`
	TeamID     *int64   `db:"team_id"`
	TeamName   *string  `db:"team_name"`
	PlayerID   *int64   `db:"player_id"`
	PlayerName *string  `db:"player_name"`
	Minute     *int64   `db:"minute"`
	Second     *int64   `db:"second"`
	Period     *int64   `db:"period"`
	LocationX  *float64 `db:"location_x"`
	LocationY  *float64 `db:"location_y"`
	XG         *float64 `db:"xg"`
	Outcome    *string  `db:"outcome"`
	IsGoal     bool     `db:"is_goal"`
	BodyPart   *string  `db:"body_part"`
	ShotType   *string  `db:"shot_type"`
	Technique  *string  `db:"technique"`
}

type FormationPosition struct {
	MatchID      int64   `db:"match_id"`
	TeamID       *int64  `db:"team_id"`
	PlayerID     *int64  `db:"player_id"`
	PlayerName   *string `db:"player_name"`
	JerseyNumber *int64  `db:"jersey_number"`
	Position     *string `db:"position"`
	AvgX         float64 `db:"avg_x"`
	AvgY         float64 `db:"avg_y"`
	Touches      int64   `db:"touches"`
}

type TeamStats struct {
	MatchID           int64    `db:"match_id"`
	TeamID            *int64   `db:"team_id"`
	TeamName          *string  `db:"team_name"`
	TotalShots        int64    `db:"total_shots"`
	ShotsOnTarget     int64    `db:"shots_on_target"`
	Goals             int64    `db:"goals"`
	TotalXG           float64  `db:"total_xg"`
	TotalPasses       int64    `db:"total_passes"`
	CompletedPasses   int64    `db:"completed_passes"`
	PassCompletionPct *float64 `db:"pass_completion_pct"`
	TotalCarries      int64    `db:"total_carries"`
	TotalPressures    int64    `db:"total_pressures"`
}

type PPDAMatch struct {
	MatchID          int64   `db:"match_id"`
	TeamID           *int64  `db:"team_id"`
	TeamName         *string `db:"team_name"`
	OpponentTeamID   *int64  `db:"opponent_team_id"`
	OpponentTeamName *string `db:"opponent_team_name"`
	OpponentPasses   int64   `db:"opponent_passes"`
	DefActions       int64   `db:"def_actions"`
	PPDA             float64 `db:"ppda"`
}

type PPDATeam struct {
	CompetitionID       *int64  `db:"competition_id"`
	SeasonID            *int64  `db:"season_id"`
	TeamID              *int64  `db:"team_id"`
	TeamName            *string `db:"team_name"`
	AvgPPDA             float64 `db:"avg_ppda"`
	Matches             int64   `db:"matches"`
	TotalDefActions     int64   `db:"total_def_actions"`
	TotalOpponentPasses int64   `db:"total_opponent_passes"`
}

type XTZone struct {
	ZoneIndex  int64   `db:"zone_index"`
	GridRow    int64   `db:"grid_row"`
	GridCol    int64   `db:"grid_col"`
	ZoneXStart float64 `db:"zone_x_start"`
	ZoneYStart float64 `db:"zone_y_start"`
	PShot      float64 `db:"p_shot"`
	PMove      float64 `db:"p_move"`
	PGoal      float64 `db:"p_goal"`
	XTValue    float64 `db:"xt_value"`
}

type XTPlayer struct {
	PlayerID      int64   `db:"player_id"`
	PlayerName    *string `db:"player_name"`
	TotalXTAdded  float64 `db:"total_xt_added"`
	XTPasses      float64 `db:"xt_passes"`
	XTCarries     float64 `db:"xt_carries"`
	ActionsCount  int64   `db:"actions_count"`
	MatchesPlayed int64   `db:"matches_played"`
	XTPerMatch    float64 `db:"xt_per_match"`
}

// ShotXG is one row of the xG apply staging table.
type ShotXG struct {
	EventID string  `db:"event_id"`
	XGModel float64 `db:"xg_model"`
}

// PressureEvent is a read projection of fact_events rows of type Pressure.
type PressureEvent struct {
	EventID   string   `db:"event_id"`
	MatchID   int64    `db:"match_id"`
	TeamID    *int64   `db:"team_id"`
	Team      *string  `db:"team"`
	PlayerID  *int64   `db:"player_id"`
	Player    *string  `db:"player"`
	Period    *int64   `db:"period"`
	Minute    *int64   `db:"minute"`
	Second    *int64   `db:"second"`
	LocationX *float64 `db:"location_x"`
	LocationY *float64 `db:"location_y"`
	Duration  *float64 `db:"duration"`
}
