package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/progression"
)

// CompletionResult is returned when a quest is completed
type CompletionResult struct {
	QuestType            model.QuestKind       `json:"quest_type"`
	ExpGained            int                   `json:"exp_gained"`
	GoldGained           int                   `json:"gold_gained"`
	NewLevel             int                   `json:"new_level"`
	NewExp               int                   `json:"new_exp"`
	ExpToNext            int                   `json:"exp_to_next"`
	NewRank              model.Rank            `json:"new_rank"`
	StatPointsGained     int                   `json:"stat_points_gained"`
	LevelUp              bool                  `json:"level_up"`
	AchievementsUnlocked []catalog.Achievement `json:"achievements_unlocked"`
	ShadowEarned         *catalog.Shadow       `json:"shadow_earned"`
	RepsGained           int                   `json:"reps_gained"`
}

// resolvedQuest is a quest id resolved by lookup, tagged with its kind.
type resolvedQuest struct {
	kind       model.QuestKind
	daily      *model.DailyQuest
	dungeon    *catalog.Dungeon
	boss       *catalog.Boss
	mission    *catalog.Mission
	punishment int
}

// questReward is what dispatch grants before the shared progression step.
type questReward struct {
	exp    int
	gold   int
	reps   int
	shadow string
}

// Complete resolves the quest id, applies its kind-specific rules and then
// the shared rewards: experience cascade, stat points, rank, gold, counters
// and achievements. The hunter is saved once; a daily completion writes the
// quest flag in the same transaction.
func (s *QuestService) Complete(ctx context.Context, hunterID, questID string) (*CompletionResult, error) {
	if questID == "" {
		return nil, ErrQuestIDRequired
	}

	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	quest, err := s.resolveQuest(ctx, h, questID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	reward, err := s.dispatch(h, quest, now)
	if err != nil {
		return nil, err
	}

	prevLevel := h.Level
	lu := progression.ApplyExperience(h.Level, h.Experience, reward.exp)
	h.Level = lu.Level
	h.Experience = lu.Experience
	h.StatPoints += lu.StatPoints()
	h.Rank = progression.RankFor(h.Level)
	h.Gold += reward.gold
	h.QuestsCompleted++
	h.TotalReps += reward.reps

	achievements := unlockAchievements(h, ActionContext{DailyCompleted: quest.kind == model.QuestKindDaily}, s.catalog)

	if quest.kind == model.QuestKindDaily {
		err = s.dailyRepo.Complete(ctx, quest.daily, h)
	} else {
		err = s.hunterRepo.Save(ctx, h)
	}
	if err != nil {
		return nil, err
	}

	s.events.QuestCompleted(string(quest.kind), lu.LevelsGained)
	s.events.AchievementsUnlocked(len(achievements))
	slog.Info("quest completed",
		slog.String("hunter_id", h.ID),
		slog.String("quest_id", questID),
		slog.String("quest_type", string(quest.kind)),
		slog.Int("exp_gained", reward.exp),
		slog.Int("new_level", h.Level),
	)

	result := &CompletionResult{
		QuestType:            quest.kind,
		ExpGained:            reward.exp,
		GoldGained:           reward.gold,
		NewLevel:             h.Level,
		NewExp:               h.Experience,
		ExpToNext:            progression.ExperienceRequired(h.Level),
		NewRank:              h.Rank,
		StatPointsGained:     lu.StatPoints(),
		LevelUp:              h.Level > prevLevel,
		AchievementsUnlocked: achievements,
		RepsGained:           reward.reps,
	}
	if reward.shadow != "" {
		if sh, ok := s.catalog.Shadow(reward.shadow); ok {
			result.ShadowEarned = sh
		}
	}
	return result, nil
}

// resolveQuest finds what a quest id names: a catalog entry, one of the
// hunter's pending punishments, or one of the hunter's daily quests.
func (s *QuestService) resolveQuest(ctx context.Context, h *model.Hunter, questID string) (*resolvedQuest, error) {
	if kind, ok := s.catalog.QuestKind(questID); ok {
		q := &resolvedQuest{kind: kind}
		switch kind {
		case model.QuestKindDungeon:
			q.dungeon, _ = s.catalog.Dungeon(questID)
		case model.QuestKindBoss:
			q.boss, _ = s.catalog.Boss(questID)
		case model.QuestKindMission:
			q.mission, _ = s.catalog.Mission(questID)
		}
		return q, nil
	}

	if idx := h.FindPunishment(questID); idx >= 0 {
		return &resolvedQuest{kind: model.QuestKindPunishment, punishment: idx}, nil
	}

	daily, err := s.dailyRepo.GetByQuestID(ctx, h.ID, questID)
	if err != nil {
		return nil, err
	}
	if daily != nil {
		return &resolvedQuest{kind: model.QuestKindDaily, daily: daily}, nil
	}

	return nil, ErrQuestNotFound
}

// dispatch applies the kind-specific rules to the hunter and returns the
// base reward. Nothing is mutated when it returns an error.
func (s *QuestService) dispatch(h *model.Hunter, q *resolvedQuest, now time.Time) (questReward, error) {
	switch q.kind {
	case model.QuestKindDaily:
		return completeDaily(h, q.daily, now)

	case model.QuestKindDungeon:
		d := q.dungeon
		if h.Level < d.MinLevel {
			return questReward{}, &LevelGateError{Required: d.MinLevel, Current: h.Level}
		}
		reps := model.TotalReps(trainingExercises(s.catalog, h.Level, d.Multiplier))
		h.DungeonsCompleted[d.Difficulty]++
		return questReward{exp: d.Exp, gold: d.Gold, reps: reps}, nil

	case model.QuestKindBoss:
		b := q.boss
		if h.Level < b.MinLevel {
			return questReward{}, &LevelGateError{Required: b.MinLevel, Current: h.Level}
		}
		reward := questReward{
			exp:  b.Exp,
			gold: b.Gold,
			reps: model.TotalReps(trainingExercises(s.catalog, h.Level, b.Multiplier)),
		}
		h.MarkBossDefeated(b.ID)
		if b.Shadow != "" && h.AddShadow(b.Shadow) {
			reward.shadow = b.Shadow
		}
		return reward, nil

	case model.QuestKindMission:
		// Requirement progress is advisory listing data; completion only
		// rejects a mission that was already claimed.
		m := q.mission
		if h.HasCompletedMission(m.ID) {
			return questReward{}, ErrQuestAlreadyCompleted
		}
		reward := questReward{exp: m.Exp, gold: m.Gold}
		h.MarkMissionCompleted(m.ID)
		if m.Shadow != "" && h.AddShadow(m.Shadow) {
			reward.shadow = m.Shadow
		}
		return reward, nil

	case model.QuestKindPunishment:
		p := h.PunishmentQuests[q.punishment]
		h.PunishmentQuests = append(h.PunishmentQuests[:q.punishment], h.PunishmentQuests[q.punishment+1:]...)
		return questReward{exp: p.ExpReward, reps: model.TotalReps(p.Exercises)}, nil
	}

	return questReward{}, ErrQuestNotFound
}

// completeDaily marks the daily quest done and advances the streak.
func completeDaily(h *model.Hunter, q *model.DailyQuest, now time.Time) (questReward, error) {
	if q.IsCompleted {
		return questReward{}, ErrQuestAlreadyCompleted
	}
	today := now.Format(model.DateLayout)
	if q.Date < today {
		return questReward{}, ErrQuestExpired
	}

	q.IsCompleted = true
	for i := range q.Exercises {
		q.Exercises[i].Completed = true
	}

	h.Streak = nextStreak(h.Streak, h.LastQuestDate, now)
	h.BestStreak = max(h.BestStreak, h.Streak)
	h.LastQuestDate = today
	h.TrainingStartTime = nil

	return questReward{
		exp:  q.ExpReward,
		gold: q.GoldReward,
		reps: model.TotalReps(q.Exercises),
	}, nil
}

// nextStreak continues the streak from yesterday, keeps it for a second
// completion today and otherwise restarts it at 1.
func nextStreak(streak int, lastDate string, now time.Time) int {
	today := now.Format(model.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.DateLayout)

	switch lastDate {
	case today:
		return streak
	case yesterday:
		return streak + 1
	}
	return 1
}
