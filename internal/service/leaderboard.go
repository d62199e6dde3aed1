package service

import (
	"fmt"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// leaderboardGroup collapses concurrent identical rankings into one
// computation.
var leaderboardGroup singleflight.Group

// Leaderboard categories.
const (
	BoardOverall   = "overall"
	BoardGold      = "gold"
	BoardMilitary  = "military"
	BoardTerritory = "territory"
)

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	CivilizationID uint          `json:"civilization_id"`
	Name           string        `json:"name"`
	Ideology       game.Ideology `json:"ideology"`
	Score          int           `json:"score"`
}

// Leaderboard ranks every civilization in the requested category.
func (s *Service) Leaderboard(category string, limit int) ([]LeaderboardEntry, error) {
	key := fmt.Sprintf("%s:%d", category, limit)
	v, err, _ := leaderboardGroup.Do(key, func() (interface{}, error) {
		return s.computeLeaderboard(category, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]LeaderboardEntry), nil
}

func (s *Service) computeLeaderboard(category string, limit int) ([]LeaderboardEntry, error) {
	civs, err := s.repo.ListCivilizations()
	if err != nil {
		return nil, err
	}

	score := func(c *game.Civilization) int {
		switch category {
		case BoardGold:
			return c.Resources.Gold
		case BoardMilitary:
			return c.Military.Soldiers*10 + c.Military.Spies*5
		case BoardTerritory:
			return c.Territory.LandSize
		default:
			return s.eng.LeaderboardScore(c)
		}
	}

	entries := make([]LeaderboardEntry, 0, len(civs))
	for i := range civs {
		c := &civs[i]
		entries = append(entries, LeaderboardEntry{
			CivilizationID: c.ID,
			Name:           c.Name,
			Ideology:       c.Ideology,
			Score:          score(c),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
