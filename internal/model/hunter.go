package model

import (
	"slices"
	"time"
)

// Rank is the hunter rank derived from level, ordered E < D < C < B < A < S.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// Ranks lists every rank in ascending order.
var Ranks = []Rank{RankE, RankD, RankC, RankB, RankA, RankS}

// Ordinal returns 1 for E through 6 for S, and 0 for an unknown rank.
func (r Rank) Ordinal() int {
	return slices.Index(Ranks, r) + 1
}

// IsValid returns true if the rank is one of E, D, C, B, A, S
func (r Rank) IsValid() bool {
	return r.Ordinal() > 0
}

// StatName identifies one of the four hunter attributes.
type StatName string

const (
	StatStrength  StatName = "strength"
	StatEndurance StatName = "endurance"
	StatAgility   StatName = "agility"
	StatVitality  StatName = "vitality"
)

// StatNames lists the attributes in display order.
var StatNames = []StatName{StatStrength, StatEndurance, StatAgility, StatVitality}

// IsValid returns true if the name is one of the four attributes
func (s StatName) IsValid() bool {
	return slices.Contains(StatNames, s)
}

// Stats holds the four hunter attributes.
type Stats struct {
	Strength  int `json:"strength"`
	Endurance int `json:"endurance"`
	Agility   int `json:"agility"`
	Vitality  int `json:"vitality"`
}

// Get returns the value of a named attribute.
func (s Stats) Get(name StatName) (int, bool) {
	switch name {
	case StatStrength:
		return s.Strength, true
	case StatEndurance:
		return s.Endurance, true
	case StatAgility:
		return s.Agility, true
	case StatVitality:
		return s.Vitality, true
	}
	return 0, false
}

// Add increments a named attribute. It reports false for an unknown name.
func (s *Stats) Add(name StatName, n int) bool {
	switch name {
	case StatStrength:
		s.Strength += n
	case StatEndurance:
		s.Endurance += n
	case StatAgility:
		s.Agility += n
	case StatVitality:
		s.Vitality += n
	default:
		return false
	}
	return true
}

// Plus returns the attribute-wise sum of s and o.
func (s Stats) Plus(o Stats) Stats {
	return Stats{
		Strength:  s.Strength + o.Strength,
		Endurance: s.Endurance + o.Endurance,
		Agility:   s.Agility + o.Agility,
		Vitality:  s.Vitality + o.Vitality,
	}
}

// Min returns the lowest attribute value.
func (s Stats) Min() int {
	return min(s.Strength, s.Endurance, s.Agility, s.Vitality)
}

// Max returns the highest attribute value.
func (s Stats) Max() int {
	return max(s.Strength, s.Endurance, s.Agility, s.Vitality)
}

// Registration defaults
const (
	StartingGold  = 100
	StartingStat  = 10
	StartingTitle = "Novato"
)

// Hunter is the complete state of one account: identity, progression,
// economy, collections, streak and pending punishments. It is stored as a
// single document.
type Hunter struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	HunterName string  `json:"hunter_name"`
	Hash       *string `json:"-"`

	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Rank       Rank   `json:"rank"`
	Gold       int    `json:"gold"`
	Title      string `json:"title"`
	Stats      Stats  `json:"stats"`
	StatPoints int    `json:"stat_points"`

	Shadows                  []string     `json:"shadows"`
	Achievements             []string     `json:"achievements"`
	QuestsCompleted          int          `json:"quests_completed"`
	TotalReps                int          `json:"total_reps"`
	DungeonsCompleted        map[Rank]int `json:"dungeons_completed"`
	BossesDefeated           []string     `json:"bosses_defeated"`
	SpecialMissionsCompleted []string     `json:"special_missions_completed"`

	Streak        int    `json:"streak"`
	BestStreak    int    `json:"best_streak"`
	LastQuestDate string `json:"last_quest_date,omitempty"`
	StreakShields int    `json:"streak_shields"`

	TrainingStartTime *time.Time        `json:"training_start_time,omitempty"`
	PunishmentQuests  []PunishmentQuest `json:"punishment_quests"`
	GuildID           *string           `json:"guild_id,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// NewHunter returns a level 1 hunter with registration defaults.
func NewHunter(email, hunterName string) *Hunter {
	h := &Hunter{
		Email:      email,
		HunterName: hunterName,
		Level:      1,
		Rank:       RankE,
		Gold:       StartingGold,
		Title:      StartingTitle,
		Stats: Stats{
			Strength:  StartingStat,
			Endurance: StartingStat,
			Agility:   StartingStat,
			Vitality:  StartingStat,
		},
	}
	h.Normalize()
	return h
}

// Normalize replaces nil collections with empty ones so the document always
// serializes with arrays and a full dungeon counter map.
func (h *Hunter) Normalize() {
	if h.Shadows == nil {
		h.Shadows = []string{}
	}
	if h.Achievements == nil {
		h.Achievements = []string{}
	}
	if h.BossesDefeated == nil {
		h.BossesDefeated = []string{}
	}
	if h.SpecialMissionsCompleted == nil {
		h.SpecialMissionsCompleted = []string{}
	}
	if h.PunishmentQuests == nil {
		h.PunishmentQuests = []PunishmentQuest{}
	}
	if h.DungeonsCompleted == nil {
		h.DungeonsCompleted = make(map[Rank]int, len(Ranks))
	}
	for _, r := range Ranks {
		if _, ok := h.DungeonsCompleted[r]; !ok {
			h.DungeonsCompleted[r] = 0
		}
	}
}

// InGuild returns true if the hunter belongs to a guild
func (h *Hunter) InGuild() bool {
	return h.GuildID != nil && *h.GuildID != ""
}

// HasAchievement returns true if the achievement is unlocked
func (h *Hunter) HasAchievement(id string) bool {
	return slices.Contains(h.Achievements, id)
}

// OwnsShadow returns true if the shadow has been collected
func (h *Hunter) OwnsShadow(id string) bool {
	return slices.Contains(h.Shadows, id)
}

// HasDefeated returns true if the boss is in the defeated set
func (h *Hunter) HasDefeated(bossID string) bool {
	return slices.Contains(h.BossesDefeated, bossID)
}

// HasCompletedMission returns true if the special mission was already claimed
func (h *Hunter) HasCompletedMission(missionID string) bool {
	return slices.Contains(h.SpecialMissionsCompleted, missionID)
}

// AddShadow collects a shadow. It reports false if it was already owned.
func (h *Hunter) AddShadow(id string) bool {
	return addToSet(&h.Shadows, id)
}

// AddAchievement unlocks an achievement. It reports false if already unlocked.
func (h *Hunter) AddAchievement(id string) bool {
	return addToSet(&h.Achievements, id)
}

// MarkBossDefeated adds the boss to the defeated set.
func (h *Hunter) MarkBossDefeated(bossID string) bool {
	return addToSet(&h.BossesDefeated, bossID)
}

// MarkMissionCompleted adds the mission to the completed set.
func (h *Hunter) MarkMissionCompleted(missionID string) bool {
	return addToSet(&h.SpecialMissionsCompleted, missionID)
}

// TotalDungeons sums dungeon clears across every difficulty.
func (h *Hunter) TotalDungeons() int {
	total := 0
	for _, n := range h.DungeonsCompleted {
		total += n
	}
	return total
}

// FindPunishment returns the index of a pending punishment quest, or -1.
func (h *Hunter) FindPunishment(id string) int {
	return slices.IndexFunc(h.PunishmentQuests, func(p PunishmentQuest) bool {
		return p.ID == id
	})
}

func addToSet(set *[]string, id string) bool {
	if slices.Contains(*set, id) {
		return false
	}
	*set = append(*set, id)
	return true
}
