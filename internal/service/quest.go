package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/progression"
	"github.com/google/uuid"
)

// Quest offer constants
const (
	DungeonTimeLimitHours = 48
	dailyExpBase          = 25
	dailyExpPerLevel      = 2
	dailyGoldBase         = 10
	dailyGoldPerLevel     = 1
	sungJinwooLevel       = 50
)

// DailyQuestRepository defines the interface for daily quest storage
type DailyQuestRepository interface {
	GetForDate(ctx context.Context, userID, date string) (*model.DailyQuest, error)
	GetByQuestID(ctx context.Context, userID, questID string) (*model.DailyQuest, error)
	Create(ctx context.Context, q *model.DailyQuest) error
	Complete(ctx context.Context, q *model.DailyQuest, h *model.Hunter) error
}

// QuestService handles quest generation, completion and failure
type QuestService struct {
	hunterRepo HunterRepository
	dailyRepo  DailyQuestRepository
	catalog    *catalog.Catalog
	locks      *HunterLocks
	events     EventRecorder
	now        func() time.Time
	randIntN   func(n int) int
}

// QuestServiceConfig holds configuration for the quest service
type QuestServiceConfig struct {
	HunterRepo HunterRepository
	DailyRepo  DailyQuestRepository
	Catalog    *catalog.Catalog
	Locks      *HunterLocks
	Events     EventRecorder
	// Now defaults to time.Now
	Now func() time.Time
	// RandIntN picks a punishment template; defaults to math/rand/v2.IntN
	RandIntN func(n int) int
}

// NewQuestService creates a new quest service
func NewQuestService(cfg QuestServiceConfig) *QuestService {
	s := &QuestService{
		hunterRepo: cfg.HunterRepo,
		dailyRepo:  cfg.DailyRepo,
		catalog:    cfg.Catalog,
		locks:      cfg.Locks,
		events:     recorderOrNop(cfg.Events),
		now:        cfg.Now,
		randIntN:   cfg.RandIntN,
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
	if s.randIntN == nil {
		s.randIntN = rand.IntN
	}
	return s
}

// Daily returns the hunter's quest for the current UTC date, creating it on
// first fetch. An existing quest is returned unchanged.
func (s *QuestService) Daily(ctx context.Context, hunterID string) (*model.DailyQuest, error) {
	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := now.Format(model.DateLayout)

	existing, err := s.dailyRepo.GetForDate(ctx, h.ID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	q := newDailyQuest(h, s.catalog, now)
	if err := s.dailyRepo.Create(ctx, q); err != nil {
		if !errors.Is(err, database.ErrDuplicate) {
			return nil, err
		}
		// Another instance won the race; serve the stored quest
		existing, err := s.dailyRepo.GetForDate(ctx, h.ID, today)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("daily quest for %s vanished after duplicate insert", today)
		}
		return existing, nil
	}

	slog.Debug("daily quest created", slog.String("hunter_id", h.ID), slog.String("date", today))
	return q, nil
}

// SpecialQuests lists the dungeons unlocked at the hunter's level.
func (s *QuestService) SpecialQuests(ctx context.Context, hunterID string) ([]model.QuestOffer, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	offers := make([]model.QuestOffer, 0)
	for _, d := range s.catalog.Dungeons() {
		if h.Level < d.MinLevel {
			continue
		}
		offers = append(offers, model.QuestOffer{
			ID:             d.ID,
			Name:           d.Name,
			Description:    d.Description,
			QuestType:      model.QuestKindDungeon,
			Exercises:      trainingExercises(s.catalog, h.Level, d.Multiplier),
			ExpReward:      d.Exp,
			GoldReward:     d.Gold,
			TimeLimitHours: DungeonTimeLimitHours,
			Difficulty:     d.Difficulty,
			MinLevel:       d.MinLevel,
		})
	}
	return offers, nil
}

// WeeklyBosses lists the bosses unlocked at the hunter's level.
func (s *QuestService) WeeklyBosses(ctx context.Context, hunterID string) ([]model.QuestOffer, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	offers := make([]model.QuestOffer, 0)
	for _, b := range s.catalog.Bosses() {
		if h.Level < b.MinLevel {
			continue
		}
		offers = append(offers, model.QuestOffer{
			ID:              b.ID,
			Name:            b.Name,
			Description:     b.Description,
			QuestType:       model.QuestKindBoss,
			Exercises:       trainingExercises(s.catalog, h.Level, b.Multiplier),
			ExpReward:       b.Exp,
			GoldReward:      b.Gold,
			Difficulty:      b.Difficulty,
			MinLevel:        b.MinLevel,
			ShadowReward:    b.Shadow,
			AlreadyDefeated: h.HasDefeated(b.ID),
		})
	}
	return offers, nil
}

// SpecialMissions lists the missions unlocked at the hunter's level with
// progress toward each.
func (s *QuestService) SpecialMissions(ctx context.Context, hunterID string) ([]model.MissionOffer, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	offers := make([]model.MissionOffer, 0)
	for _, m := range s.catalog.Missions() {
		if h.Level < m.MinLevel {
			continue
		}
		progress, target, met := missionProgress(h, m.Requirement)
		completed := h.HasCompletedMission(m.ID)
		offers = append(offers, model.MissionOffer{
			ID:           m.ID,
			Name:         m.Name,
			Description:  m.Description,
			QuestType:    model.QuestKindMission,
			MinLevel:     m.MinLevel,
			ExpReward:    m.Exp,
			GoldReward:   m.Gold,
			ShadowReward: m.Shadow,
			IsCompleted:  completed,
			Progress:     progress,
			Target:       target,
			CanComplete:  met && !completed,
		})
	}
	return offers, nil
}

// Punishments returns the hunter's pending punishment quests.
func (s *QuestService) Punishments(ctx context.Context, hunterID string) ([]model.PunishmentQuest, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	return h.PunishmentQuests, nil
}

// TrainingStarted is the result of StartTraining
type TrainingStarted struct {
	QuestID   string    `json:"quest_id"`
	StartTime time.Time `json:"start_time"`
}

// StartTraining records when the hunter began a quest. The timestamp is
// advisory and cleared on completion or failure.
func (s *QuestService) StartTraining(ctx context.Context, hunterID, questID string) (*TrainingStarted, error) {
	if questID == "" {
		return nil, ErrQuestIDRequired
	}

	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	start := s.now().UTC()
	h.TrainingStartTime = &start
	if err := s.hunterRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	return &TrainingStarted{
		QuestID:   questID,
		StartTime: start,
	}, nil
}

// newDailyQuest builds the quest for the hunter's current level.
func newDailyQuest(h *model.Hunter, cat *catalog.Catalog, now time.Time) *model.DailyQuest {
	desc := fmt.Sprintf("Completa el entrenamiento básico. Nivel %d", h.Level)
	if h.Level >= sungJinwooLevel {
		desc += " - ENTRENAMIENTO SUNG JIN-WOO"
	}

	return &model.DailyQuest{
		ID:             uuid.NewString(),
		UserID:         h.ID,
		Date:           now.Format(model.DateLayout),
		Name:           model.DailyQuestName,
		Description:    desc,
		QuestType:      model.QuestKindDaily,
		Exercises:      trainingExercises(cat, h.Level, 1),
		ExpReward:      dailyExpBase + dailyExpPerLevel*h.Level,
		GoldReward:     dailyGoldBase + dailyGoldPerLevel*h.Level,
		TimeLimitHours: model.DailyTimeLimitHours,
		Difficulty:     progression.RankFor(h.Level),
		Deadline:       now.Add(model.DailyTimeLimitHours * time.Hour),
	}
}

// trainingExercises scales the daily templates to the level and multiplier.
func trainingExercises(cat *catalog.Catalog, level int, multiplier float64) []model.Exercise {
	templates := cat.Exercises()
	out := make([]model.Exercise, 0, len(templates))
	for _, t := range templates {
		intensity := progression.TrainingIntensity(level, t.Base, t.Max)
		out = append(out, model.Exercise{
			Name: t.Name,
			Reps: progression.ScaledTarget(intensity, multiplier),
			Unit: t.Unit,
			Stat: t.Stat,
		})
	}
	return out
}

// missionProgress measures the hunter against a mission requirement.
func missionProgress(h *model.Hunter, req catalog.Requirement) (progress, target int, met bool) {
	switch req.Type {
	case catalog.RequirementStreak, catalog.RequirementNoFailStreak:
		progress, target = h.Streak, req.Value
	case catalog.RequirementLevel:
		progress, target = h.Level, req.Value
	case catalog.RequirementRank:
		progress, target = h.Rank.Ordinal(), req.Rank.Ordinal()
	case catalog.RequirementDungeonRank:
		progress, target = h.DungeonsCompleted[req.Rank], 1
	case catalog.RequirementDungeonCount:
		progress, target = h.DungeonsCompleted[req.Rank], req.Value
	case catalog.RequirementTotalReps:
		progress, target = h.TotalReps, req.Value
	default:
		return 0, 0, false
	}
	return progress, target, progress >= target
}

// loadHunter reads a fresh hunter snapshot
func loadHunter(ctx context.Context, repo HunterRepository, hunterID string) (*model.Hunter, error) {
	h, err := repo.GetByID(ctx, hunterID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHunterNotFound
	}
	return h, nil
}
