package usecase

import (
	"sort"

	"github.com/riskibarqy/football-analytics/internal/domain/coerce"
	"github.com/riskibarqy/football-analytics/internal/domain/location"
	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	"github.com/riskibarqy/football-analytics/internal/domain/schema"
	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
)

// silverBatch is one bronze artifact with its schema resolved once.
type silverBatch struct {
	unit     raw.Unit
	records  []*raw.Record
	resolver schema.Resolver
}

func newSilverBatch(unit raw.Unit, records []*raw.Record, mapping schema.Mapping) silverBatch {
	return silverBatch{unit: unit, records: records, resolver: mapping.ResolveRecords(records)}
}

func (b silverBatch) get(rec *raw.Record, f schema.Field) any {
	return b.resolver.Get(rec, f)
}

func buildCompetitions(batches []silverBatch) []dw.Competition {
	seen := make(map[[2]int64]struct{})
	out := make([]dw.Competition, 0)
	for _, b := range batches {
		for _, rec := range b.records {
			cid := coerce.Int(b.get(rec, schema.CompetitionID))
			sid := coerce.Int(b.get(rec, schema.CompetitionSeason))
			if cid == nil || sid == nil {
				continue
			}
			key := [2]int64{*cid, *sid}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, dw.Competition{
				CompetitionID:     *cid,
				SeasonID:          *sid,
				CompetitionName:   coerce.String(b.get(rec, schema.CompetitionName)),
				SeasonName:        coerce.String(b.get(rec, schema.SeasonName)),
				CountryName:       coerce.String(b.get(rec, schema.CountryName)),
				CompetitionGender: coerce.String(b.get(rec, schema.CompetitionGender)),
			})
		}
	}
	return out
}

func buildMatches(batches []silverBatch) []dw.Match {
	seen := make(map[int64]struct{})
	out := make([]dw.Match, 0)
	for _, b := range batches {
		for _, rec := range b.records {
			id := coerce.Int(b.get(rec, schema.MatchID))
			if id == nil {
				continue
			}
			if _, dup := seen[*id]; dup {
				continue
			}
			seen[*id] = struct{}{}

			m := dw.Match{
				MatchID:          *id,
				CompetitionID:    coerce.Int(b.get(rec, schema.MatchCompetitionID)),
				SeasonID:         coerce.Int(b.get(rec, schema.MatchSeasonID)),
				MatchDate:        coerce.String(b.get(rec, schema.MatchDate)),
				KickOff:          coerce.String(b.get(rec, schema.MatchKickOff)),
				HomeTeam:         coerce.String(b.get(rec, schema.MatchHomeTeam)),
				AwayTeam:         coerce.String(b.get(rec, schema.MatchAwayTeam)),
				HomeTeamSourceID: coerce.Int(b.get(rec, schema.MatchHomeTeamID)),
				AwayTeamSourceID: coerce.Int(b.get(rec, schema.MatchAwayTeamID)),
				HomeScore:        coerce.Int(b.get(rec, schema.MatchHomeScore)),
				AwayScore:        coerce.Int(b.get(rec, schema.MatchAwayScore)),
				Stadium:          coerce.String(b.get(rec, schema.MatchStadium)),
				Referee:          coerce.String(b.get(rec, schema.MatchReferee)),
				CompetitionStage: coerce.String(b.get(rec, schema.MatchCompetitionStage)),
				MatchWeek:        coerce.Int(b.get(rec, schema.MatchWeek)),
			}
			if m.CompetitionID == nil && b.unit.Layer == raw.LayerMatches {
				m.CompetitionID, m.SeasonID = &b.unit.CompetitionID, &b.unit.SeasonID
			}
			out = append(out, m)
		}
	}
	return out
}

// buildTeams ranks the distinct home and away names; team_id is the 1-based
// rank. The source id is the first one seen for the name.
func buildTeams(matches []dw.Match) []dw.Team {
	sourceIDs := make(map[string]*int64)
	add := func(name *string, id *int64) {
		if name == nil || *name == "" {
			return
		}
		if current, ok := sourceIDs[*name]; ok && current != nil {
			return
		}
		sourceIDs[*name] = id
	}
	for _, m := range matches {
		add(m.HomeTeam, m.HomeTeamSourceID)
		add(m.AwayTeam, m.AwayTeamSourceID)
	}

	names := make([]string, 0, len(sourceIDs))
	for name := range sourceIDs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dw.Team, 0, len(names))
	for i, name := range names {
		out = append(out, dw.Team{TeamID: int64(i + 1), TeamName: name, SourceTeamID: sourceIDs[name]})
	}
	return out
}

func buildLineups(batches []silverBatch) []dw.Lineup {
	type playerKey struct {
		match, team, player int64
	}
	intervals := make(map[playerKey]int64)

	out := make([]dw.Lineup, 0)
	for _, b := range batches {
		for _, rec := range b.records {
			row := dw.Lineup{
				TeamID:       coerce.Int(b.get(rec, schema.LineupTeamID)),
				TeamName:     coerce.String(b.get(rec, schema.LineupTeamName)),
				PlayerID:     coerce.Int(b.get(rec, schema.LineupPlayerID)),
				PlayerName:   coerce.String(b.get(rec, schema.LineupPlayerName)),
				JerseyNumber: coerce.Int(b.get(rec, schema.LineupJerseyNumber)),
				Country:      coerce.String(b.get(rec, schema.LineupCountry)),
				PositionID:   coerce.Int(b.get(rec, schema.LineupPositionID)),
				Position:     coerce.String(b.get(rec, schema.LineupPosition)),
				FromTime:     coerce.String(b.get(rec, schema.LineupFromTime)),
				ToTime:       coerce.String(b.get(rec, schema.LineupToTime)),
				FromPeriod:   coerce.Int(b.get(rec, schema.LineupFromPeriod)),
				ToPeriod:     coerce.Int(b.get(rec, schema.LineupToPeriod)),
				StartReason:  coerce.String(b.get(rec, schema.LineupStartReason)),
				EndReason:    coerce.String(b.get(rec, schema.LineupEndReason)),
			}
			if id := coerce.Int(b.get(rec, schema.LineupMatchID)); id != nil {
				row.MatchID = *id
			} else {
				row.MatchID = b.unit.MatchID
			}

			if row.StartReason != nil {
				row.IsStarter = *row.StartReason == dw.StartReasonXI
			} else {
				row.IsStarter = row.Position != nil
			}

			key := playerKey{match: row.MatchID, team: derefInt(row.TeamID), player: derefInt(row.PlayerID)}
			row.IntervalIndex = intervals[key]
			intervals[key]++

			out = append(out, row)
		}
	}
	return out
}

// buildPlayers keeps the first lineup row of each player id.
func buildPlayers(lineups []dw.Lineup) []dw.Player {
	seen := make(map[int64]struct{})
	out := make([]dw.Player, 0)
	for _, l := range lineups {
		if l.PlayerID == nil {
			continue
		}
		if _, dup := seen[*l.PlayerID]; dup {
			continue
		}
		seen[*l.PlayerID] = struct{}{}
		out = append(out, dw.Player{PlayerID: *l.PlayerID, PlayerName: l.PlayerName, Country: l.Country})
	}
	return out
}

// eventFacts is every fact derived from event artifacts.
type eventFacts struct {
	events       []dw.Event
	passes       []dw.Pass
	shots        []dw.Shot
	carries      []dw.Carry
	freezeFrames []dw.FreezeFrame
	skipped      int
}

// buildEventFacts fills team_id from the source team id, falling back to the
// dim_team rank id of the team name.
func buildEventFacts(batches []silverBatch, teamIDs map[string]int64) eventFacts {
	var facts eventFacts
	for _, b := range batches {
		frames := make([]frameSource, 0)
		for _, rec := range b.records {
			ev, ok := buildEvent(b, rec, teamIDs)
			if !ok {
				facts.skipped++
				continue
			}
			facts.events = append(facts.events, ev)

			switch coerce.Text(ev.Type) {
			case dw.EventTypePass:
				facts.passes = append(facts.passes, buildPass(b, rec, ev))
			case dw.EventTypeShot:
				facts.shots = append(facts.shots, buildShot(b, rec, ev))
				if entries, ok := b.get(rec, schema.ShotFreezeFrame).([]any); ok {
					for _, entry := range entries {
						if m, ok := entry.(map[string]any); ok {
							frames = append(frames, frameSource{event: ev, record: raw.FlattenMap(m)})
						}
					}
				}
			case dw.EventTypeCarry:
				x, y := location.Unpack(b.get(rec, schema.CarryEndLocation))
				facts.carries = append(facts.carries, dw.Carry{Event: ev, EndLocationX: x, EndLocationY: y})
			}
		}
		facts.freezeFrames = append(facts.freezeFrames, buildFreezeFrames(frames)...)
	}
	return facts
}

func buildEvent(b silverBatch, rec *raw.Record, teamIDs map[string]int64) (dw.Event, bool) {
	id := coerce.String(b.get(rec, schema.EventID))
	if id == nil {
		return dw.Event{}, false
	}

	ev := dw.Event{
		EventID:          *id,
		EventIndex:       coerce.Int(b.get(rec, schema.EventIndex)),
		Period:           coerce.Int(b.get(rec, schema.EventPeriod)),
		Timestamp:        coerce.String(b.get(rec, schema.EventTimestamp)),
		Minute:           coerce.Int(b.get(rec, schema.EventMinute)),
		Second:           coerce.Int(b.get(rec, schema.EventSecond)),
		Type:             coerce.String(b.get(rec, schema.EventType)),
		PlayerID:         coerce.Int(b.get(rec, schema.EventPlayerID)),
		Player:           coerce.String(b.get(rec, schema.EventPlayer)),
		TeamID:           coerce.Int(b.get(rec, schema.EventTeamID)),
		Team:             coerce.String(b.get(rec, schema.EventTeam)),
		Duration:         coerce.Float(b.get(rec, schema.EventDuration)),
		UnderPressure:    coerce.Bool(b.get(rec, schema.EventUnderPressure)),
		Out:              coerce.Bool(b.get(rec, schema.EventOut)),
		PlayPattern:      coerce.String(b.get(rec, schema.EventPlayPattern)),
		Possession:       coerce.Int(b.get(rec, schema.EventPossession)),
		PossessionTeamID: coerce.Int(b.get(rec, schema.EventPossessionTeamID)),
		PossessionTeam:   coerce.String(b.get(rec, schema.EventPossessionTeam)),
		Position:         coerce.String(b.get(rec, schema.EventPosition)),
	}
	ev.LocationX, ev.LocationY = location.Unpack(b.get(rec, schema.EventLocation))

	if matchID := coerce.Int(b.get(rec, schema.EventMatchID)); matchID != nil {
		ev.MatchID = *matchID
	} else {
		ev.MatchID = b.unit.MatchID
	}
	if ev.TeamID == nil && ev.Team != nil {
		if rank, ok := teamIDs[*ev.Team]; ok {
			ev.TeamID = &rank
		}
	}
	return ev, true
}

func buildPass(b silverBatch, rec *raw.Record, ev dw.Event) dw.Pass {
	p := dw.Pass{
		Event:         ev,
		RecipientID:   coerce.Int(b.get(rec, schema.PassRecipientID)),
		Recipient:     coerce.String(b.get(rec, schema.PassRecipient)),
		Length:        coerce.Float(b.get(rec, schema.PassLength)),
		Angle:         coerce.Float(b.get(rec, schema.PassAngle)),
		Height:        coerce.String(b.get(rec, schema.PassHeight)),
		BodyPart:      coerce.String(b.get(rec, schema.PassBodyPart)),
		PassType:      coerce.String(b.get(rec, schema.PassType)),
		Technique:     coerce.String(b.get(rec, schema.PassTechnique)),
		Outcome:       coerce.String(b.get(rec, schema.PassOutcome)),
		IsCross:       coerce.Bool(b.get(rec, schema.PassCross)),
		IsSwitch:      coerce.Bool(b.get(rec, schema.PassSwitch)),
		IsThroughBall: coerce.Bool(b.get(rec, schema.PassThroughBall)),
		IsShotAssist:  coerce.Bool(b.get(rec, schema.PassShotAssist)),
		IsGoalAssist:  coerce.Bool(b.get(rec, schema.PassGoalAssist)),
	}
	p.EndLocationX, p.EndLocationY = location.Unpack(b.get(rec, schema.PassEndLocation))
	p.IsCompleted = p.Outcome == nil
	return p
}

func buildShot(b silverBatch, rec *raw.Record, ev dw.Event) dw.Shot {
	s := dw.Shot{
		Event:       ev,
		XG:          coerce.Float(b.get(rec, schema.ShotStatsbombXG)),
		Outcome:     coerce.String(b.get(rec, schema.ShotOutcome)),
		BodyPart:    coerce.String(b.get(rec, schema.ShotBodyPart)),
		ShotType:    coerce.String(b.get(rec, schema.ShotType)),
		Technique:   coerce.String(b.get(rec, schema.ShotTechnique)),
		IsFirstTime: coerce.Bool(b.get(rec, schema.ShotFirstTime)),
		KeyPassID:   coerce.String(b.get(rec, schema.ShotKeyPassID)),
	}
	s.EndLocationX, s.EndLocationY, s.EndLocationZ = location.Unpack3(b.get(rec, schema.ShotEndLocation))
	s.IsGoal = coerce.Text(s.Outcome) == dw.ShotOutcomeGoal
	return s
}

type frameSource struct {
	event  dw.Event
	record *raw.Record
}

// buildFreezeFrames resolves the frame schema once over all frames of a batch.
func buildFreezeFrames(frames []frameSource) []dw.FreezeFrame {
	if len(frames) == 0 {
		return nil
	}
	records := make([]*raw.Record, 0, len(frames))
	for _, f := range frames {
		records = append(records, f.record)
	}
	resolver := schema.FreezeFrames.ResolveRecords(records)

	out := make([]dw.FreezeFrame, 0, len(frames))
	for _, f := range frames {
		row := dw.FreezeFrame{
			EventID:    f.event.EventID,
			MatchID:    f.event.MatchID,
			PlayerID:   coerce.Int(resolver.Get(f.record, schema.FramePlayerID)),
			PlayerName: coerce.String(resolver.Get(f.record, schema.FramePlayerName)),
			Position:   coerce.String(resolver.Get(f.record, schema.FramePosition)),
			IsTeammate: coerce.Bool(resolver.Get(f.record, schema.FrameTeammate)),
		}
		row.LocationX, row.LocationY = location.Unpack(resolver.Get(f.record, schema.FrameLocation))
		out = append(out, row)
	}
	return out
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
