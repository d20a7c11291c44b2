package schema

// Events covers every known spelling of event columns.
var Events = NewMapping(
	Entry{Field: EventID, Flat: "id", Nested: "id"},
	Entry{Field: EventMatchID, Flat: "match_id", Nested: "match_id"},
	Entry{Field: EventIndex, Flat: "index", Nested: "index"},
	Entry{Field: EventPeriod, Flat: "period", Nested: "period"},
	Entry{Field: EventTimestamp, Flat: "timestamp", Nested: "timestamp"},
	Entry{Field: EventMinute, Flat: "minute", Nested: "minute"},
	Entry{Field: EventSecond, Flat: "second", Nested: "second"},
	Entry{Field: EventType, Flat: "type", Nested: "type.name"},
	Entry{Field: EventPossession, Flat: "possession", Nested: "possession"},
	Entry{Field: EventPossessionTeam, Flat: "possession_team", Nested: "possession_team.name"},
	Entry{Field: EventPossessionTeamID, Flat: "possession_team_id", Nested: "possession_team.id"},
	Entry{Field: EventPlayPattern, Flat: "play_pattern", Nested: "play_pattern.name"},
	Entry{Field: EventTeam, Flat: "team", Nested: "team.name"},
	Entry{Field: EventTeamID, Flat: "team_id", Nested: "team.id"},
	Entry{Field: EventPlayer, Flat: "player", Nested: "player.name"},
	Entry{Field: EventPlayerID, Flat: "player_id", Nested: "player.id"},
	Entry{Field: EventPosition, Flat: "position", Nested: "position.name"},
	Entry{Field: EventLocation, Flat: "location", Nested: "location"},
	Entry{Field: EventDuration, Flat: "duration", Nested: "duration"},
	Entry{Field: EventUnderPressure, Flat: "under_pressure", Nested: "under_pressure"},
	Entry{Field: EventOut, Flat: "out", Nested: "out"},

	Entry{Field: PassRecipient, Flat: "pass_recipient", Nested: "pass.recipient.name"},
	Entry{Field: PassRecipientID, Flat: "pass_recipient_id", Nested: "pass.recipient.id"},
	Entry{Field: PassLength, Flat: "pass_length", Nested: "pass.length"},
	Entry{Field: PassAngle, Flat: "pass_angle", Nested: "pass.angle"},
	Entry{Field: PassHeight, Flat: "pass_height", Nested: "pass.height.name"},
	Entry{Field: PassEndLocation, Flat: "pass_end_location", Nested: "pass.end_location"},
	Entry{Field: PassOutcome, Flat: "pass_outcome", Nested: "pass.outcome.name"},
	Entry{Field: PassBodyPart, Flat: "pass_body_part", Nested: "pass.body_part.name"},
	Entry{Field: PassType, Flat: "pass_type", Nested: "pass.type.name"},
	Entry{Field: PassTechnique, Flat: "pass_technique", Nested: "pass.technique.name"},
	Entry{Field: PassCross, Flat: "pass_cross", Nested: "pass.cross"},
	Entry{Field: PassSwitch, Flat: "pass_switch", Nested: "pass.switch"},
	Entry{Field: PassThroughBall, Flat: "pass_through_ball", Nested: "pass.through_ball"},
	Entry{Field: PassShotAssist, Flat: "pass_shot_assist", Nested: "pass.shot_assist"},
	Entry{Field: PassGoalAssist, Flat: "pass_goal_assist", Nested: "pass.goal_assist"},

	Entry{Field: ShotStatsbombXG, Flat: "shot_statsbomb_xg", Nested: "shot.statsbomb_xg"},
	Entry{Field: ShotEndLocation, Flat: "shot_end_location", Nested: "shot.end_location"},
	Entry{Field: ShotOutcome, Flat: "shot_outcome", Nested: "shot.outcome.name"},
	Entry{Field: ShotBodyPart, Flat: "shot_body_part", Nested: "shot.body_part.name"},
	Entry{Field: ShotType, Flat: "shot_type", Nested: "shot.type.name"},
	Entry{Field: ShotTechnique, Flat: "shot_technique", Nested: "shot.technique.name"},
	Entry{Field: ShotFirstTime, Flat: "shot_first_time", Nested: "shot.first_time"},
	Entry{Field: ShotKeyPassID, Flat: "shot_key_pass_id", Nested: "shot.key_pass_id"},
	Entry{Field: ShotFreezeFrame, Flat: "shot_freeze_frame", Nested: "shot.freeze_frame"},
	Entry{Field: CarryEndLocation, Flat: "carry_end_location", Nested: "carry.end_location"},
)

// Matches covers the flat match listing and the nested API document.
var Matches = NewMapping(
	Entry{Field: MatchID, Flat: "match_id", Nested: "match_id"},
	Entry{Field: MatchCompetitionID, Flat: "competition_id", Nested: "competition.competition_id"},
	Entry{Field: MatchSeasonID, Flat: "season_id", Nested: "season.season_id"},
	Entry{Field: MatchCompetitionName, Flat: "competition", Nested: "competition.competition_name"},
	Entry{Field: MatchSeasonName, Flat: "season", Nested: "season.season_name"},
	Entry{Field: MatchDate, Flat: "match_date", Nested: "match_date"},
	Entry{Field: MatchKickOff, Flat: "kick_off", Nested: "kick_off"},
	Entry{Field: MatchHomeTeam, Flat: "home_team", Nested: "home_team.home_team_name"},
	Entry{Field: MatchHomeTeamID, Flat: "home_team_id", Nested: "home_team.home_team_id"},
	Entry{Field: MatchAwayTeam, Flat: "away_team", Nested: "away_team.away_team_name"},
	Entry{Field: MatchAwayTeamID, Flat: "away_team_id", Nested: "away_team.away_team_id"},
	Entry{Field: MatchHomeScore, Flat: "home_score", Nested: "home_score"},
	Entry{Field: MatchAwayScore, Flat: "away_score", Nested: "away_score"},
	Entry{Field: MatchStadium, Flat: "stadium", Nested: "stadium.name"},
	Entry{Field: MatchReferee, Flat: "referee", Nested: "referee.name"},
	Entry{Field: MatchCompetitionStage, Flat: "competition_stage", Nested: "competition_stage.name"},
	Entry{Field: MatchWeek, Flat: "match_week", Nested: "match_week"},
)

var Competitions = NewMapping(
	Entry{Field: CompetitionID, Flat: "competition_id", Nested: "competition_id"},
	Entry{Field: CompetitionSeason, Flat: "season_id", Nested: "season_id"},
	Entry{Field: CompetitionName, Flat: "competition_name", Nested: "competition_name"},
	Entry{Field: SeasonName, Flat: "season_name", Nested: "season_name"},
	Entry{Field: CountryName, Flat: "country_name", Nested: "country_name"},
	Entry{Field: CompetitionGender, Flat: "competition_gender", Nested: "competition_gender"},
)

var Lineups = NewMapping(
	Entry{Field: LineupMatchID, Flat: "match_id", Nested: "match_id"},
	Entry{Field: LineupTeamID, Flat: "team_id", Nested: "team_id"},
	Entry{Field: LineupTeamName, Flat: "team_name", Nested: "team_name"},
	Entry{Field: LineupPlayerID, Flat: "player_id", Nested: "player_id"},
	Entry{Field: LineupPlayerName, Flat: "player_name", Nested: "player_name"},
	Entry{Field: LineupJerseyNumber, Flat: "jersey_number", Nested: "jersey_number"},
	Entry{Field: LineupCountry, Flat: "country", Nested: "country.name"},
	Entry{Field: LineupPositionID, Flat: "position_id", Nested: "position_id"},
	Entry{Field: LineupPosition, Flat: "position", Nested: "position"},
	Entry{Field: LineupFromTime, Flat: "from_time", Nested: "from"},
	Entry{Field: LineupToTime, Flat: "to_time", Nested: "to"},
	Entry{Field: LineupFromPeriod, Flat: "from_period", Nested: "from_period"},
	Entry{Field: LineupToPeriod, Flat: "to_period", Nested: "to_period"},
	Entry{Field: LineupStartReason, Flat: "start_reason", Nested: "start_reason"},
	Entry{Field: LineupEndReason, Flat: "end_reason", Nested: "end_reason"},
)

// FreezeFrames maps one entry of a shot's freeze frame. Position arrives as
// either a {"name": ...} object or a bare string under "position".
var FreezeFrames = NewMapping(
	Entry{Field: FramePlayerID, Flat: "player_id", Nested: "player.id"},
	Entry{Field: FramePlayerName, Flat: "player_name", Nested: "player.name"},
	Entry{Field: FramePosition, Flat: "position", Nested: "position.name"},
	Entry{Field: FrameLocation, Flat: "location", Nested: "location"},
	Entry{Field: FrameTeammate, Flat: "teammate", Nested: "teammate"},
)
