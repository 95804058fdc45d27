package catalog

import (
	"sync"

	"github.com/forgo/ascend/api/internal/model"
)

// ExerciseTemplate is one of the daily training exercises. Targets scale
// from Base at level 1 to Max at level 50.
type ExerciseTemplate struct {
	Name string
	Base int
	Max  int
	Unit model.Unit
	Stat model.StatName
}

// Dungeon is a repeatable special quest unlocked at MinLevel.
type Dungeon struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	MinLevel    int        `json:"min_level"`
	Multiplier  float64    `json:"multiplier"`
	Difficulty  model.Rank `json:"difficulty"`
	Exp         int        `json:"exp"`
	Gold        int        `json:"gold"`
}

// Boss is a weekly boss. Defeating it the first time grants Shadow.
type Boss struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	MinLevel    int        `json:"min_level"`
	Multiplier  float64    `json:"multiplier"`
	Difficulty  model.Rank `json:"difficulty"`
	Exp         int        `json:"exp"`
	Gold        int        `json:"gold"`
	Shadow      string     `json:"shadow"`
}

// RequirementType selects how mission progress is measured.
type RequirementType string

const (
	RequirementStreak       RequirementType = "streak"
	RequirementLevel        RequirementType = "level"
	RequirementRank         RequirementType = "rank"
	RequirementDungeonRank  RequirementType = "dungeon_rank"
	RequirementDungeonCount RequirementType = "dungeon_count"
	RequirementTotalReps    RequirementType = "total_reps"
	RequirementNoFailStreak RequirementType = "no_fail_streak"
)

// Requirement is the goal a hunter must reach before claiming a mission.
// Rank is used by rank, dungeon_rank and dungeon_count requirements.
type Requirement struct {
	Type  RequirementType `json:"type"`
	Value int             `json:"value,omitempty"`
	Rank  model.Rank      `json:"rank,omitempty"`
}

// Mission is a one-time special mission.
type Mission struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MinLevel    int         `json:"min_level"`
	Requirement Requirement `json:"requirement"`
	Exp         int         `json:"exp"`
	Gold        int         `json:"gold"`
	Shadow      string      `json:"shadow,omitempty"`
}

// Rarity grades collectible shadows.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
	RarityDivine    Rarity = "divine"
)

// Shadow is a collectible that adds a permanent stat bonus.
type Shadow struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Rarity    Rarity      `json:"rarity"`
	StatBonus model.Stats `json:"stat_bonus"`
}

// PunishmentTemplate is instantiated when a hunter fails a quest.
type PunishmentTemplate struct {
	Name      string
	Exercises []model.Exercise
	Exp       int
}

// ItemType groups shop items by how they are applied.
type ItemType string

const (
	ItemConsumable ItemType = "consumable"
	ItemTitle      ItemType = "title"
	ItemStatBoost  ItemType = "stat_boost"
)

// Effect is what a shop item grants. Zero fields grant nothing.
type Effect struct {
	Exp          int            `json:"exp,omitempty"`
	Gold         int            `json:"gold,omitempty"`
	StreakShield int            `json:"streak_shield,omitempty"`
	Title        string         `json:"title,omitempty"`
	Stat         model.StatName `json:"stat,omitempty"`
	Value        int            `json:"value,omitempty"`
}

// ShopItem is something a hunter can buy with gold.
type ShopItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Type        ItemType `json:"type"`
	Effect      Effect   `json:"effect"`
}

// Achievement is a one-time unlock that pays RewardGold.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RewardGold  int    `json:"reward_gold"`
	Category    string `json:"category"`
}

// Catalog holds the immutable reference tables and their id indexes.
// Slices and pointers returned by its methods are shared and must not be
// modified.
type Catalog struct {
	exercises    []ExerciseTemplate
	dungeons     []Dungeon
	bosses       []Boss
	missions     []Mission
	shadows      []Shadow
	punishments  []PunishmentTemplate
	shopItems    []ShopItem
	achievements []Achievement

	dungeonByID     map[string]*Dungeon
	bossByID        map[string]*Boss
	missionByID     map[string]*Mission
	shadowByID      map[string]*Shadow
	shopItemByID    map[string]*ShopItem
	achievementByID map[string]*Achievement
	kindByID        map[string]model.QuestKind
}

var loadDefault = sync.OnceValue(func() *Catalog {
	return New(exerciseTable, dungeonTable, bossTable, missionTable, shadowTable,
		punishmentTable, shopTable, achievementTable)
})

// Default returns the process-wide catalog. It is built on first use.
func Default() *Catalog {
	return loadDefault()
}

// New builds a catalog from the given tables and indexes them by id.
func New(
	exercises []ExerciseTemplate,
	dungeons []Dungeon,
	bosses []Boss,
	missions []Mission,
	shadows []Shadow,
	punishments []PunishmentTemplate,
	shopItems []ShopItem,
	achievements []Achievement,
) *Catalog {
	c := &Catalog{
		exercises:       exercises,
		dungeons:        dungeons,
		bosses:          bosses,
		missions:        missions,
		shadows:         shadows,
		punishments:     punishments,
		shopItems:       shopItems,
		achievements:    achievements,
		dungeonByID:     make(map[string]*Dungeon, len(dungeons)),
		bossByID:        make(map[string]*Boss, len(bosses)),
		missionByID:     make(map[string]*Mission, len(missions)),
		shadowByID:      make(map[string]*Shadow, len(shadows)),
		shopItemByID:    make(map[string]*ShopItem, len(shopItems)),
		achievementByID: make(map[string]*Achievement, len(achievements)),
		kindByID:        make(map[string]model.QuestKind, len(dungeons)+len(bosses)+len(missions)),
	}

	for i := range c.dungeons {
		c.dungeonByID[c.dungeons[i].ID] = &c.dungeons[i]
		c.kindByID[c.dungeons[i].ID] = model.QuestKindDungeon
	}
	for i := range c.bosses {
		c.bossByID[c.bosses[i].ID] = &c.bosses[i]
		c.kindByID[c.bosses[i].ID] = model.QuestKindBoss
	}
	for i := range c.missions {
		c.missionByID[c.missions[i].ID] = &c.missions[i]
		c.kindByID[c.missions[i].ID] = model.QuestKindMission
	}
	for i := range c.shadows {
		c.shadowByID[c.shadows[i].ID] = &c.shadows[i]
	}
	for i := range c.shopItems {
		c.shopItemByID[c.shopItems[i].ID] = &c.shopItems[i]
	}
	for i := range c.achievements {
		c.achievementByID[c.achievements[i].ID] = &c.achievements[i]
	}
	return c
}

// Exercises returns the daily exercise templates.
func (c *Catalog) Exercises() []ExerciseTemplate { return c.exercises }

// Dungeons returns every dungeon ordered by minimum level.
func (c *Catalog) Dungeons() []Dungeon { return c.dungeons }

// Bosses returns every weekly boss ordered by minimum level.
func (c *Catalog) Bosses() []Boss { return c.bosses }

// Missions returns every special mission.
func (c *Catalog) Missions() []Mission { return c.missions }

// Shadows returns every collectible shadow.
func (c *Catalog) Shadows() []Shadow { return c.shadows }

// Punishments returns the punishment templates.
func (c *Catalog) Punishments() []PunishmentTemplate { return c.punishments }

// ShopItems returns every item for sale.
func (c *Catalog) ShopItems() []ShopItem { return c.shopItems }

// Achievements returns every achievement.
func (c *Catalog) Achievements() []Achievement { return c.achievements }

// Dungeon looks up a dungeon by id.
func (c *Catalog) Dungeon(id string) (*Dungeon, bool) {
	d, ok := c.dungeonByID[id]
	return d, ok
}

// Boss looks up a weekly boss by id.
func (c *Catalog) Boss(id string) (*Boss, bool) {
	b, ok := c.bossByID[id]
	return b, ok
}

// Mission looks up a special mission by id.
func (c *Catalog) Mission(id string) (*Mission, bool) {
	m, ok := c.missionByID[id]
	return m, ok
}

// Shadow looks up a shadow by id.
func (c *Catalog) Shadow(id string) (*Shadow, bool) {
	s, ok := c.shadowByID[id]
	return s, ok
}

// ShopItem looks up a shop item by id.
func (c *Catalog) ShopItem(id string) (*ShopItem, bool) {
	i, ok := c.shopItemByID[id]
	return i, ok
}

// Achievement looks up an achievement by id.
func (c *Catalog) Achievement(id string) (*Achievement, bool) {
	a, ok := c.achievementByID[id]
	return a, ok
}

// QuestKind reports which kind of catalog quest an id names. Daily and
// punishment quests are per-hunter and never found here.
func (c *Catalog) QuestKind(id string) (model.QuestKind, bool) {
	k, ok := c.kindByID[id]
	return k, ok
}

// ShadowBonuses sums the stat bonuses of the given shadows. Unknown ids are
// ignored.
func (c *Catalog) ShadowBonuses(shadowIDs []string) model.Stats {
	var total model.Stats
	for _, id := range shadowIDs {
		if s, ok := c.shadowByID[id]; ok {
			total = total.Plus(s.StatBonus)
		}
	}
	return total
}
