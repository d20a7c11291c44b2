package warehouse

type Competition struct {
	CompetitionID     int64   `db:"competition_id"`
	SeasonID          int64   `db:"season_id"`
	CompetitionName   *string `db:"competition_name"`
	SeasonName        *string `db:"season_name"`
	CountryName       *string `db:"country_name"`
	CompetitionGender *string `db:"competition_gender"`
}

type Match struct {
	MatchID          int64   `db:"match_id"`
	CompetitionID    *int64  `db:"competition_id"`
	SeasonID         *int64  `db:"season_id"`
	MatchDate        *string `db:"match_date"`
	KickOff          *string `db:"kick_off"`
	HomeTeam         *string `db:"home_team"`
	AwayTeam         *string `db:"away_team"`
	HomeTeamSourceID *int64  `db:"home_team_source_id"`
	AwayTeamSourceID *int64  `db:"away_team_source_id"`
	HomeScore        *int64  `db:"home_score"`
	AwayScore        *int64  `db:"away_score"`
	Stadium          *string `db:"stadium"`
	Referee          *string `db:"referee"`
	CompetitionStage *string `db:"competition_stage"`
	MatchWeek        *int64  `db:"match_week"`
}

// Team ids are the 1-based rank of the name among sorted distinct names, so
// they only hold within one rebuild. StableTeamID comes from team_registry
// and never changes once assigned.
type Team struct {
	TeamID       int64  `db:"team_id"`
	TeamName     string `db:"team_name"`
	SourceTeamID *int64 `db:"source_team_id"`
	StableTeamID int64  `db:"stable_team_id"`
}

type Player struct {
	PlayerID   int64   `db:"player_id"`
	PlayerName *string `db:"player_name"`
	Country    *string `db:"country"`
}

// Event is the generic event row; the specialised fact rows embed it.
type Event struct {
	EventID          string   `db:"event_id"`
	MatchID          int64    `db:"match_id"`
	EventIndex       *int64   `db:"event_index"`
	Period           *int64   `db:"period"`
	Timestamp        *string  `db:"timestamp"`
	Minute           *int64   `db:"minute"`
	Second           *int64   `db:"second"`
	Type             *string  `db:"type"`
	PlayerID         *int64   `db:"player_id"`
	Player           *string  `db:"player"`
	TeamID           *int64   `db:"team_id"`
	Team             *string  `db:"team"`
	LocationX        *float64 `db:"location_x"`
	LocationY        *float64 `db:"location_y"`
	Duration         *float64 `db:"duration"`
	UnderPressure    bool     `db:"under_pressure"`
	Out              bool     `db:"out"`
	PlayPattern      *string  `db:"play_pattern"`
	Possession       *int64   `db:"possession"`
	PossessionTeamID *int64   `db:"possession_team_id"`
	PossessionTeam   *string  `db:"possession_team"`
	Position         *string  `db:"position"`
}

type Pass struct {
	Event
	RecipientID   *int64   `db:"recipient_id"`
	Recipient     *string  `db:"recipient"`
	EndLocationX  *float64 `db:"end_location_x"`
	EndLocationY  *float64 `db:"end_location_y"`
	Length        *float64 `db:"length"`
	Angle         *float64 `db:"angle"`
	Height        *string  `db:"height"`
	BodyPart      *string  `db:"body_part"`
	PassType      *string  `db:"pass_type"`
	Technique     *string  `db:"technique"`
	Outcome       *string  `db:"outcome"`
	IsCompleted   bool     `db:"is_completed"`
	IsCross       bool     `db:"is_cross"`
	IsSwitch      bool     `db:"is_switch"`
	IsThroughBall bool     `db:"is_through_ball"`
	IsShotAssist  bool     `db:"is_shot_assist"`
	IsGoalAssist  bool     `db:"is_goal_assist"`
}

type Shot struct {
	Event
	EndLocationX *float64 `db:"end_location_x"`
	EndLocationY *float64 `db:"end_location_y"`
	EndLocationZ *float64 `db:"end_location_z"`
	XG           *float64 `db:"xg"`
	XGModel      *float64 `db:"xg_model"`
	Outcome      *string  `db:"outcome"`
	IsGoal       bool     `db:"is_goal"`
	BodyPart     *string  `db:"body_part"`
	ShotType     *string  `db:"shot_type"`
	Technique    *string  `db:"technique"`
	IsFirstTime  bool     `db:"is_first_time"`
	KeyPassID    *string  `db:"key_pass_id"`
}

type Carry struct {
	Event
	EndLocationX *float64 `db:"end_location_x"`
	EndLocationY *float64 `db:"end_location_y"`
}

// Lineup is one position interval of one player. IntervalIndex is 0 for the
// player's first interval and for the placeholder row of a player without any.
type Lineup struct {
	MatchID       int64   `db:"match_id"`
	TeamID        *int64  `db:"team_id"`
	TeamName      *string `db:"team_name"`
	PlayerID      *int64  `db:"player_id"`
	PlayerName    *string `db:"player_name"`
	JerseyNumber  *int64  `db:"jersey_number"`
	Country       *string `db:"country"`
	PositionID    *int64  `db:"position_id"`
	Position      *string `db:"position"`
	FromTime      *string `db:"from_time"`
	ToTime        *string `db:"to_time"`
	FromPeriod    *int64  `db:"from_period"`
	ToPeriod      *int64  `db:"to_period"`
	StartReason   *string `db:"start_reason"`
	EndReason     *string `db:"end_reason"`
	IntervalIndex int64   `db:"interval_index"`
	IsStarter     bool    `db:"is_starter"`
}

type FreezeFrame struct {
	EventID    string   `db:"event_id"`
	MatchID    int64    `db:"match_id"`
	PlayerID   *int64   `db:"player_id"`
	PlayerName *string  `db:"player_name"`
	Position   *string  `db:"position"`
	LocationX  *float64 `db:"location_x"`
	LocationY  *float64 `db:"location_y"`
	IsTeammate bool     `db:"is_teammate"`
}
