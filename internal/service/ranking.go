package service

import (
	"context"

	"github.com/forgo/ascend/api/internal/model"
)

// Leaderboard sizes
const (
	HunterRankingLimit = 100
	GuildRankingLimit  = 50
)

// RankingService builds the public leaderboards
type RankingService struct {
	hunterRepo HunterRepository
	guildRepo  GuildRepository
}

// NewRankingService creates a new ranking service
func NewRankingService(hunterRepo HunterRepository, guildRepo GuildRepository) *RankingService {
	return &RankingService{hunterRepo: hunterRepo, guildRepo: guildRepo}
}

// HunterRankEntry is one row of the hunter leaderboard
type HunterRankEntry struct {
	ID              string     `json:"id"`
	HunterName      string     `json:"hunter_name"`
	Level           int        `json:"level"`
	Rank            model.Rank `json:"rank"`
	Title           string     `json:"title"`
	QuestsCompleted int        `json:"quests_completed"`
	Streak          int        `json:"streak"`
	Position        int        `json:"position"`
}

// GuildRankEntry is one row of the guild leaderboard
type GuildRankEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	TotalLevel  int    `json:"total_level"`
	LeaderName  string `json:"leader_name"`
	Position    int    `json:"position"`
}

// Hunters returns the top hunters by level. Ties are ordered by id.
func (s *RankingService) Hunters(ctx context.Context) ([]HunterRankEntry, error) {
	hunters, err := s.hunterRepo.ListTopByLevel(ctx, HunterRankingLimit)
	if err != nil {
		return nil, err
	}

	out := make([]HunterRankEntry, 0, len(hunters))
	for i, h := range hunters {
		out = append(out, HunterRankEntry{
			ID:              h.ID,
			HunterName:      h.HunterName,
			Level:           h.Level,
			Rank:            h.Rank,
			Title:           h.Title,
			QuestsCompleted: h.QuestsCompleted,
			Streak:          h.Streak,
			Position:        i + 1,
		})
	}
	return out, nil
}

// Guilds returns the top guilds by total level. Ties are ordered by id.
func (s *RankingService) Guilds(ctx context.Context) ([]GuildRankEntry, error) {
	guilds, err := s.guildRepo.ListTopByTotalLevel(ctx, GuildRankingLimit)
	if err != nil {
		return nil, err
	}

	out := make([]GuildRankEntry, 0, len(guilds))
	for i, g := range guilds {
		out = append(out, GuildRankEntry{
			ID:          g.ID,
			Name:        g.Name,
			MemberCount: g.MemberCount,
			TotalLevel:  g.TotalLevel,
			LeaderName:  g.LeaderName,
			Position:    i + 1,
		})
	}
	return out, nil
}
