package schema

// Event fields.
const (
	EventID               Field = "id"
	EventMatchID          Field = "match_id"
	EventIndex            Field = "index"
	EventPeriod           Field = "period"
	EventTimestamp        Field = "timestamp"
	EventMinute           Field = "minute"
	EventSecond           Field = "second"
	EventType             Field = "type"
	EventPossession       Field = "possession"
	EventPossessionTeam   Field = "possession_team"
	EventPossessionTeamID Field = "possession_team_id"
	EventPlayPattern      Field = "play_pattern"
	EventTeam             Field = "team"
	EventTeamID           Field = "team_id"
	EventPlayer           Field = "player"
	EventPlayerID         Field = "player_id"
	EventPosition         Field = "position"
	EventLocation         Field = "location"
	EventDuration         Field = "duration"
	EventUnderPressure    Field = "under_pressure"
	EventOut              Field = "out"

	PassRecipient   Field = "pass_recipient"
	PassRecipientID Field = "pass_recipient_id"
	PassLength      Field = "pass_length"
	PassAngle       Field = "pass_angle"
	PassHeight      Field = "pass_height"
	PassEndLocation Field = "pass_end_location"
	PassOutcome     Field = "pass_outcome"
	PassBodyPart    Field = "pass_body_part"
	PassType        Field = "pass_type"
	PassTechnique   Field = "pass_technique"
	PassCross       Field = "pass_cross"
	PassSwitch      Field = "pass_switch"
	PassThroughBall Field = "pass_through_ball"
	PassShotAssist  Field = "pass_shot_assist"
	PassGoalAssist  Field = "pass_goal_assist"

	ShotStatsbombXG  Field = "shot_statsbomb_xg"
	ShotEndLocation  Field = "shot_end_location"
	ShotOutcome      Field = "shot_outcome"
	ShotBodyPart     Field = "shot_body_part"
	ShotType         Field = "shot_type"
	ShotTechnique    Field = "shot_technique"
	ShotFirstTime    Field = "shot_first_time"
	ShotKeyPassID    Field = "shot_key_pass_id"
	ShotFreezeFrame  Field = "shot_freeze_frame"
	CarryEndLocation Field = "carry_end_location"
)

// Match fields.
const (
	MatchID               Field = "match_id"
	MatchCompetitionID    Field = "competition_id"
	MatchSeasonID         Field = "season_id"
	MatchCompetitionName  Field = "competition"
	MatchSeasonName       Field = "season"
	MatchDate             Field = "match_date"
	MatchKickOff          Field = "kick_off"
	MatchHomeTeam         Field = "home_team"
	MatchHomeTeamID       Field = "home_team_id"
	MatchAwayTeam         Field = "away_team"
	MatchAwayTeamID       Field = "away_team_id"
	MatchHomeScore        Field = "home_score"
	MatchAwayScore        Field = "away_score"
	MatchStadium          Field = "stadium"
	MatchReferee          Field = "referee"
	MatchCompetitionStage Field = "competition_stage"
	MatchWeek             Field = "match_week"
)

// Competition fields.
const (
	CompetitionID     Field = "competition_id"
	CompetitionSeason Field = "season_id"
	CompetitionName   Field = "competition_name"
	SeasonName        Field = "season_name"
	CountryName       Field = "country_name"
	CompetitionGender Field = "competition_gender"
)

// Lineup fields.
const (
	LineupMatchID      Field = "match_id"
	LineupTeamID       Field = "team_id"
	LineupTeamName     Field = "team_name"
	LineupPlayerID     Field = "player_id"
	LineupPlayerName   Field = "player_name"
	LineupJerseyNumber Field = "jersey_number"
	LineupCountry      Field = "country"
	LineupPositionID   Field = "position_id"
	LineupPosition     Field = "position"
	LineupFromTime     Field = "from_time"
	LineupToTime       Field = "to_time"
	LineupFromPeriod   Field = "from_period"
	LineupToPeriod     Field = "to_period"
	LineupStartReason  Field = "start_reason"
	LineupEndReason    Field = "end_reason"
)

// Freeze-frame entry fields.
const (
	FramePlayerID   Field = "player_id"
	FramePlayerName Field = "player_name"
	FramePosition   Field = "position"
	FrameLocation   Field = "location"
	FrameTeammate   Field = "teammate"
)
