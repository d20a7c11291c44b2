package warehouse

import (
	"context"
	"time"
)

// TableCounts maps a rebuilt table to its row count.
type TableCounts map[string]int64

func (c TableCounts) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}

// SilverSnapshot is every silver row of one rebuild, built in memory before
// anything is written.
type SilverSnapshot struct {
	Competitions []Competition
	Matches      []Match
	Teams        []Team
	Players      []Player
	Events       []Event
	Passes       []Pass
	Shots        []Shot
	Carries      []Carry
	Lineups      []Lineup
	FreezeFrames []FreezeFrame
}

type SilverRepository interface {
	// ReplaceSilver registers new team names, fills Teams[i].StableTeamID and
	// replaces every silver table in one transaction.
	ReplaceSilver(ctx context.Context, snap *SilverSnapshot) (TableCounts, error)
}

type GoldRepository interface {
	RebuildGold(ctx context.Context) (TableCounts, error)
	RebuildPPDA(ctx context.Context, zoneX float64) (TableCounts, error)
}

type RunRepository interface {
	StartRun(ctx context.Context, run PipelineRun) error
	FinishRun(ctx context.Context, runID, status string, rowsWritten int64, errMessage *string, finishedAt time.Time) error
	ListRuns(ctx context.Context, limit int) ([]PipelineRun, error)
}

type TeamRegistry interface {
	ListTeams(ctx context.Context) ([]RegisteredTeam, error)
}

// QueryRepository is the read side over silver and gold tables.
type QueryRepository interface {
	ListCompetitions(ctx context.Context) ([]Competition, error)
	ListMatches(ctx context.Context, competitionID, seasonID int64) ([]Match, error)
	GetMatch(ctx context.Context, matchID int64) (Match, bool, error)
	TeamStatsByMatch(ctx context.Context, matchID int64) ([]TeamStats, error)
	PPDAByMatch(ctx context.Context, matchID int64) ([]PPDAMatch, error)
	XGTimeline(ctx context.Context, matchID int64) ([]XGTimelinePoint, error)
	ShotMap(ctx context.Context, matchID int64) ([]ShotMapPoint, error)
	PassNetworkNodes(ctx context.Context, matchID, teamID int64) ([]PassNetworkNode, error)
	PassNetworkEdges(ctx context.Context, matchID, teamID int64) ([]PassNetworkEdge, error)
	Formation(ctx context.Context, matchID, teamID int64) ([]FormationPosition, error)
	TopXTPlayers(ctx context.Context, limit int) ([]XTPlayer, error)
	PPDARanking(ctx context.Context, competitionID, seasonID int64) ([]PPDATeam, error)
	PressureEvents(ctx context.Context, matchID int64) ([]PressureEvent, error)
}
