package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	dw "github.com/riskibarqy/football-analytics/internal/domain/warehouse"
	"github.com/riskibarqy/football-analytics/internal/platform/cache"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const (
	defaultPlayerXTLimit = 20
	maxPlayerXTLimit     = 500
	formationStarters    = 11
)

type MatchSummary struct {
	Match     dw.Match       `json:"match"`
	TeamStats []dw.TeamStats `json:"team_stats"`
	PPDA      []dw.PPDAMatch `json:"ppda"`
}

type PassNetwork struct {
	Nodes []dw.PassNetworkNode `json:"nodes"`
	Edges []dw.PassNetworkEdge `json:"edges"`
}

type Formation struct {
	Starters    []dw.FormationPosition `json:"starters"`
	Substitutes []dw.FormationPosition `json:"substitutes"`
}

// QueryService is the cached read side over silver and gold tables.
type QueryService struct {
	repo   dw.QueryRepository
	cache  *cache.Store
	logger *logging.Logger
}

// NewQueryService builds the service; a nil store disables caching.
func NewQueryService(repo dw.QueryRepository, cacheStore *cache.Store, logger *logging.Logger) *QueryService {
	return &QueryService{
		repo:   repo,
		cache:  cacheStore,
		logger: logging.OrDefault(logger).Named("query"),
	}
}

func (s *QueryService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Clear(ctx)
	s.logger.DebugContext(ctx, "query cache cleared")
}

func (s *QueryService) ListCompetitions(ctx context.Context) ([]dw.Competition, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.ListCompetitions")
	defer span.End()

	return cache.Load(ctx, s.cache, "competitions", s.repo.ListCompetitions)
}

func (s *QueryService) ListMatches(ctx context.Context, competitionID, seasonID int64) ([]dw.Match, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.ListMatches",
		attribute.Int64("football.competition_id", competitionID),
		attribute.Int64("football.season_id", seasonID),
	)
	defer span.End()

	if competitionID <= 0 || seasonID < 0 {
		return nil, fmt.Errorf("%w: competition id and season id are required", ErrInvalidInput)
	}
	key := fmt.Sprintf("matches:%d:%d", competitionID, seasonID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]dw.Match, error) {
		return s.repo.ListMatches(ctx, competitionID, seasonID)
	})
}

// MatchSummary joins the match row with its team stats and match PPDA.
func (s *QueryService) MatchSummary(ctx context.Context, matchID int64) (MatchSummary, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.MatchSummary", matchAttr(matchID))
	defer span.End()

	match, err := s.requireMatch(ctx, matchID)
	if err != nil {
		return MatchSummary{}, err
	}
	key := fmt.Sprintf("match-summary:%d", matchID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (MatchSummary, error) {
		stats, err := s.repo.TeamStatsByMatch(ctx, matchID)
		if err != nil {
			return MatchSummary{}, fmt.Errorf("get team stats: %w", err)
		}
		ppda, err := s.repo.PPDAByMatch(ctx, matchID)
		if err != nil {
			return MatchSummary{}, fmt.Errorf("get match ppda: %w", err)
		}
		return MatchSummary{Match: match, TeamStats: stats, PPDA: ppda}, nil
	})
}

func (s *QueryService) XGTimeline(ctx context.Context, matchID int64) ([]dw.XGTimelinePoint, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.XGTimeline", matchAttr(matchID))
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return cache.Load(ctx, s.cache, fmt.Sprintf("xg-timeline:%d", matchID), func(ctx context.Context) ([]dw.XGTimelinePoint, error) {
		return s.repo.XGTimeline(ctx, matchID)
	})
}

func (s *QueryService) ShotMap(ctx context.Context, matchID int64) ([]dw.ShotMapPoint, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.ShotMap", matchAttr(matchID))
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return cache.Load(ctx, s.cache, fmt.Sprintf("shot-map:%d", matchID), func(ctx context.Context) ([]dw.ShotMapPoint, error) {
		return s.repo.ShotMap(ctx, matchID)
	})
}

func (s *QueryService) PassNetwork(ctx context.Context, matchID, teamID int64) (PassNetwork, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.PassNetwork", matchAttr(matchID))
	defer span.End()

	if teamID <= 0 {
		return PassNetwork{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return PassNetwork{}, err
	}
	key := fmt.Sprintf("pass-network:%d:%d", matchID, teamID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (PassNetwork, error) {
		nodes, err := s.repo.PassNetworkNodes(ctx, matchID, teamID)
		if err != nil {
			return PassNetwork{}, err
		}
		edges, err := s.repo.PassNetworkEdges(ctx, matchID, teamID)
		if err != nil {
			return PassNetwork{}, err
		}
		return PassNetwork{Nodes: nodes, Edges: edges}, nil
	})
}

// Formation splits players into the 11 with the most touches and the rest.
func (s *QueryService) Formation(ctx context.Context, matchID, teamID int64) (Formation, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.Formation", matchAttr(matchID))
	defer span.End()

	if teamID <= 0 {
		return Formation{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return Formation{}, err
	}
	key := fmt.Sprintf("formation:%d:%d", matchID, teamID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (Formation, error) {
		rows, err := s.repo.Formation(ctx, matchID, teamID)
		if err != nil {
			return Formation{}, err
		}
		split := min(formationStarters, len(rows))
		return Formation{
			Starters:    append([]dw.FormationPosition{}, rows[:split]...),
			Substitutes: append([]dw.FormationPosition{}, rows[split:]...),
		}, nil
	})
}

// PlayerXT returns the top players by total xT added. A zero limit uses the
// default.
func (s *QueryService) PlayerXT(ctx context.Context, limit int) ([]dw.XTPlayer, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.PlayerXT")
	defer span.End()

	if limit < 0 || limit > maxPlayerXTLimit {
		return nil, fmt.Errorf("%w: limit must be within [0, %d]", ErrInvalidInput, maxPlayerXTLimit)
	}
	if limit == 0 {
		limit = defaultPlayerXTLimit
	}
	return cache.Load(ctx, s.cache, fmt.Sprintf("player-xt:%d", limit), func(ctx context.Context) ([]dw.XTPlayer, error) {
		return s.repo.TopXTPlayers(ctx, limit)
	})
}

func (s *QueryService) PPDARanking(ctx context.Context, competitionID, seasonID int64) ([]dw.PPDATeam, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.PPDARanking")
	defer span.End()

	if competitionID <= 0 || seasonID < 0 {
		return nil, fmt.Errorf("%w: competition id and season id are required", ErrInvalidInput)
	}
	key := fmt.Sprintf("ppda-ranking:%d:%d", competitionID, seasonID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]dw.PPDATeam, error) {
		return s.repo.PPDARanking(ctx, competitionID, seasonID)
	})
}

func (s *QueryService) PressureEvents(ctx context.Context, matchID int64) ([]dw.PressureEvent, error) {
	ctx, span := startStageSpan(ctx, "usecase.QueryService.PressureEvents", matchAttr(matchID))
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return cache.Load(ctx, s.cache, fmt.Sprintf("pressures:%d", matchID), func(ctx context.Context) ([]dw.PressureEvent, error) {
		return s.repo.PressureEvents(ctx, matchID)
	})
}

// requireMatch rejects non-positive ids and ids with no dim_match row.
func (s *QueryService) requireMatch(ctx context.Context, matchID int64) (dw.Match, error) {
	if matchID <= 0 {
		return dw.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	return cache.Load(ctx, s.cache, fmt.Sprintf("match:%d", matchID), func(ctx context.Context) (dw.Match, error) {
		match, exists, err := s.repo.GetMatch(ctx, matchID)
		if err != nil {
			return dw.Match{}, fmt.Errorf("get match: %w", err)
		}
		if !exists {
			return dw.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
		}
		return match, nil
	})
}
