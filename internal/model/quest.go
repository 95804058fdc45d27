package model

import "time"

// QuestKind tags every quest with the rules that govern its completion.
type QuestKind string

const (
	QuestKindDaily      QuestKind = "daily"
	QuestKindDungeon    QuestKind = "dungeon"
	QuestKindBoss       QuestKind = "boss"
	QuestKindMission    QuestKind = "mission"
	QuestKindPunishment QuestKind = "punishment"
)

// Unit is the measure of an exercise target.
type Unit string

const (
	UnitReps           Unit = "reps"
	UnitKilometers     Unit = "km"
	UnitMinutes        Unit = "minutes"
	UnitSprints        Unit = "sprints"
	UnitMinutesPerSide Unit = "minutes_per_side"
)

// KilometerReps is the repetition equivalent of one kilometer.
const KilometerReps = 100

// RepEquivalent converts a quantity of this unit into counted repetitions.
// Time and interval units do not count.
func (u Unit) RepEquivalent(quantity int) int {
	switch u {
	case UnitReps:
		return quantity
	case UnitKilometers:
		return quantity * KilometerReps
	}
	return 0
}

// Exercise is one requirement of a quest.
type Exercise struct {
	Name      string   `json:"name"`
	Reps      int      `json:"reps"`
	Unit      Unit     `json:"unit"`
	Stat      StatName `json:"stat,omitempty"`
	Completed bool     `json:"completed"`
}

// TotalReps sums the repetition equivalent of every exercise.
func TotalReps(exercises []Exercise) int {
	total := 0
	for _, e := range exercises {
		total += e.Unit.RepEquivalent(e.Reps)
	}
	return total
}

// Daily quest constants
const (
	DailyQuestName      = "Entrenamiento Diario del Sistema"
	DailyTimeLimitHours = 24
	DateLayout          = "2006-01-02"
)

// DailyQuest is the persisted per-hunter, per-UTC-date training quest.
type DailyQuest struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Date           string     `json:"date"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	QuestType      QuestKind  `json:"quest_type"`
	Exercises      []Exercise `json:"exercises"`
	ExpReward      int        `json:"exp_reward"`
	GoldReward     int        `json:"gold_reward"`
	TimeLimitHours int        `json:"time_limit_hours"`
	Difficulty     Rank       `json:"difficulty"`
	IsCompleted    bool       `json:"is_completed"`
	Deadline       time.Time  `json:"deadline"`
	CreatedOn      time.Time  `json:"created_on"`
}

// QuestOffer is a catalog quest projected for one hunter: a dungeon or a
// weekly boss with exercise targets scaled to the hunter's level.
type QuestOffer struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	QuestType       QuestKind  `json:"quest_type"`
	Exercises       []Exercise `json:"exercises"`
	ExpReward       int        `json:"exp_reward"`
	GoldReward      int        `json:"gold_reward"`
	TimeLimitHours  int        `json:"time_limit_hours,omitempty"`
	Difficulty      Rank       `json:"difficulty"`
	MinLevel        int        `json:"min_level"`
	ShadowReward    string     `json:"shadow_reward,omitempty"`
	AlreadyDefeated bool       `json:"already_defeated,omitempty"`
}

// MissionOffer is a special mission with the hunter's progress toward it.
type MissionOffer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	QuestType    QuestKind `json:"quest_type"`
	MinLevel     int       `json:"min_level"`
	ExpReward    int       `json:"exp_reward"`
	GoldReward   int       `json:"gold_reward"`
	ShadowReward string    `json:"shadow_reward,omitempty"`
	IsCompleted  bool      `json:"is_completed"`
	Progress     int       `json:"progress"`
	Target       int       `json:"target"`
	CanComplete  bool      `json:"can_complete"`
}

// PunishmentQuest is assigned on failure and stored inline on the hunter
// until completed.
type PunishmentQuest struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	ExpReward int        `json:"exp_reward"`
	QuestType QuestKind  `json:"quest_type"`
	CreatedAt time.Time  `json:"created_at"`
}
