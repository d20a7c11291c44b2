package xt

import (
	"math"
	"sort"
)

// MinMatchesPlayed is the fewest distinct matches a player needs to be ranked.
const MinMatchesPlayed = 3

type playerTotals struct {
	value   PlayerValue
	matches map[int64]struct{}
}

// AggregatePlayers sums xT added per player over completed actions and keeps
// players with at least minMatches distinct matches. Output is ordered by
// total descending, then player id.
func AggregatePlayers(g *Grid, actions []Action, minMatches int) []PlayerValue {
	byPlayer := make(map[int64]*playerTotals)
	for _, a := range actions {
		if a.PlayerID == nil {
			continue
		}
		added, ok := g.Added(a)
		if !ok {
			continue
		}

		t, exists := byPlayer[*a.PlayerID]
		if !exists {
			t = &playerTotals{
				value:   PlayerValue{PlayerID: *a.PlayerID},
				matches: make(map[int64]struct{}),
			}
			byPlayer[*a.PlayerID] = t
		}
		if t.value.PlayerName == "" {
			t.value.PlayerName = a.PlayerName
		}
		t.value.TotalXTAdded += added
		switch a.Kind {
		case ActionPass:
			t.value.XTPasses += added
		case ActionCarry:
			t.value.XTCarries += added
		}
		t.value.ActionsCount++
		t.matches[a.MatchID] = struct{}{}
	}

	out := make([]PlayerValue, 0, len(byPlayer))
	for _, t := range byPlayer {
		t.value.MatchesPlayed = len(t.matches)
		if t.value.MatchesPlayed < minMatches {
			continue
		}
		t.value.XTPerMatch = t.value.TotalXTAdded / float64(t.value.MatchesPlayed)
		out = append(out, t.value)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalXTAdded != out[j].TotalXTAdded {
			return out[i].TotalXTAdded > out[j].TotalXTAdded
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
