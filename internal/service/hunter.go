package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/progression"
)

// HunterService handles profile reads and stat allocation
type HunterService struct {
	hunterRepo HunterRepository
	catalog    *catalog.Catalog
	locks      *HunterLocks
	events     EventRecorder
	now        func() time.Time
}

// HunterServiceConfig holds configuration for the hunter service
type HunterServiceConfig struct {
	HunterRepo HunterRepository
	Catalog    *catalog.Catalog
	Locks      *HunterLocks
	Events     EventRecorder
	Now        func() time.Time
}

// NewHunterService creates a new hunter service
func NewHunterService(cfg HunterServiceConfig) *HunterService {
	s := &HunterService{
		hunterRepo: cfg.HunterRepo,
		catalog:    cfg.Catalog,
		locks:      cfg.Locks,
		events:     recorderOrNop(cfg.Events),
		now:        cfg.Now,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.locks == nil {
		s.locks = NewHunterLocks()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Profile is the hunter document plus derived values
type Profile struct {
	*model.Hunter
	ExpToNext     int         `json:"exp_to_next"`
	ShadowBonuses model.Stats `json:"shadow_bonuses"`
}

// HunterStats is the statistics projection of a hunter
type HunterStats struct {
	Level                int                `json:"level"`
	QuestsCompleted      int                `json:"quests_completed"`
	Streak               int                `json:"streak"`
	BestStreak           int                `json:"best_streak"`
	TotalReps            int                `json:"total_reps"`
	DungeonsCompleted    map[model.Rank]int `json:"dungeons_completed"`
	BossesDefeated       int                `json:"bosses_defeated"`
	ShadowsCollected     int                `json:"shadows_collected"`
	AchievementsUnlocked int                `json:"achievements_unlocked"`
	TotalAchievements    int                `json:"total_achievements"`
	DaysSinceStart       int                `json:"days_since_start"`
}

// StatUpgradeResult is returned after allocating stat points
type StatUpgradeResult struct {
	StatName             model.StatName        `json:"stat_name"`
	NewValue             int                   `json:"new_value"`
	StatPointsLeft       int                   `json:"stat_points"`
	Message              string                `json:"message"`
	AchievementsUnlocked []catalog.Achievement `json:"achievements_unlocked"`
}

// Profile returns the hunter with experience to next level and shadow bonuses
func (s *HunterService) Profile(ctx context.Context, hunterID string) (*Profile, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Hunter:        h,
		ExpToNext:     progression.ExperienceRequired(h.Level),
		ShadowBonuses: s.catalog.ShadowBonuses(h.Shadows),
	}, nil
}

// Stats returns the hunter's statistics
func (s *HunterService) Stats(ctx context.Context, hunterID string) (*HunterStats, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	days := 0
	if !h.CreatedOn.IsZero() {
		days = max(0, int(s.now().Sub(h.CreatedOn).Hours()/24))
	}

	return &HunterStats{
		Level:                h.Level,
		QuestsCompleted:      h.QuestsCompleted,
		Streak:               h.Streak,
		BestStreak:           h.BestStreak,
		TotalReps:            h.TotalReps,
		DungeonsCompleted:    h.DungeonsCompleted,
		BossesDefeated:       len(h.BossesDefeated),
		ShadowsCollected:     len(h.Shadows),
		AchievementsUnlocked: len(h.Achievements),
		TotalAchievements:    len(s.catalog.Achievements()),
		DaysSinceStart:       days,
	}, nil
}

// UpgradeStat moves unallocated stat points into one attribute
func (s *HunterService) UpgradeStat(ctx context.Context, hunterID string, stat model.StatName, points int) (*StatUpgradeResult, error) {
	if !stat.IsValid() {
		return nil, ErrInvalidStat
	}
	if points < 1 {
		return nil, ErrInvalidPoints
	}

	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	if h.StatPoints < points {
		return nil, &InsufficientError{
			Resource: "stat_points",
			Required: points,
			Current:  h.StatPoints,
			Err:      ErrInsufficientStatPoints,
		}
	}

	h.StatPoints -= points
	h.Stats.Add(stat, points)
	achievements := unlockAchievements(h, ActionContext{}, s.catalog)

	if err := s.hunterRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	s.events.AchievementsUnlocked(len(achievements))
	slog.Info("stat upgraded",
		slog.String("hunter_id", h.ID),
		slog.String("stat", string(stat)),
		slog.Int("points", points),
	)

	value, _ := h.Stats.Get(stat)
	return &StatUpgradeResult{
		StatName:             stat,
		NewValue:             value,
		StatPointsLeft:       h.StatPoints,
		Message:              fmt.Sprintf("%s aumentada en %d", stat, points),
		AchievementsUnlocked: achievements,
	}, nil
}
