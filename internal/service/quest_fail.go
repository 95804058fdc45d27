package service

import (
	"context"
	"log/slog"

	"github.com/forgo/ascend/api/internal/model"
	"github.com/google/uuid"
)

// Failure penalty
const (
	failPenaltyPercent = 15
	punishmentIDPrefix = "punishment_"
)

// FailResult is returned when a quest is failed
type FailResult struct {
	ExpLost            int                   `json:"exp_lost"`
	PunishmentAssigned string                `json:"punishment_assigned"`
	Punishment         model.PunishmentQuest `json:"punishment"`
	StreakProtected    bool                  `json:"streak_protected"`
	Streak             int                   `json:"streak"`
	Message            string                `json:"message"`
}

// Fail records a failed quest. A streak shield absorbs the streak reset;
// either way the hunter loses 15% of current experience and gets a random
// punishment quest. The quest id is required but not resolved.
func (s *QuestService) Fail(ctx context.Context, hunterID, questID string) (*FailResult, error) {
	if questID == "" {
		return nil, ErrQuestIDRequired
	}

	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	protected := false
	if h.StreakShields > 0 {
		h.StreakShields--
		protected = true
	} else {
		h.Streak = 0
	}

	penalty := max(0, h.Experience*failPenaltyPercent/100)
	h.Experience -= penalty
	h.TrainingStartTime = nil

	punishment := s.newPunishment()
	h.PunishmentQuests = append(h.PunishmentQuests, punishment)

	if err := s.hunterRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	s.events.QuestFailed(protected)
	slog.Info("quest failed",
		slog.String("hunter_id", h.ID),
		slog.String("quest_id", questID),
		slog.Bool("streak_protected", protected),
		slog.String("punishment_id", punishment.ID),
	)

	message := "[SISTEMA] Has fallado la misión. Se te ha asignado un castigo."
	if protected {
		message += " Tu racha ha sido protegida por el Escudo de Racha."
	} else {
		message += " Tu racha se ha reiniciado."
	}

	return &FailResult{
		ExpLost:            penalty,
		PunishmentAssigned: punishment.Name,
		Punishment:         punishment,
		StreakProtected:    protected,
		Streak:             h.Streak,
		Message:            message,
	}, nil
}

// newPunishment instantiates a uniformly random punishment template.
func (s *QuestService) newPunishment() model.PunishmentQuest {
	templates := s.catalog.Punishments()
	t := templates[s.randIntN(len(templates))]

	exercises := make([]model.Exercise, len(t.Exercises))
	copy(exercises, t.Exercises)

	return model.PunishmentQuest{
		ID:        punishmentIDPrefix + uuid.NewString()[:8],
		Name:      t.Name,
		Exercises: exercises,
		ExpReward: t.Exp,
		QuestType: model.QuestKindPunishment,
		CreatedAt: s.now().UTC(),
	}
}
