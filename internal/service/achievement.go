package service

import (
	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/model"
)

// ActionContext describes the action that triggered an achievement check.
// Streak achievements are only considered after a daily completion, guild
// achievements only after the matching guild action.
type ActionContext struct {
	DailyCompleted bool
	GuildCreated   bool
	GuildJoined    bool
}

type threshold struct {
	value int
	id    string
}

var (
	questThresholds = []threshold{
		{1, "first_quest"}, {10, "quests_10"}, {50, "quests_50"},
		{100, "quests_100"}, {500, "quests_500"}, {1000, "quests_1000"},
	}
	levelThresholds = []threshold{
		{10, "level_10"}, {25, "level_25"}, {40, "level_40"}, {50, "level_50"},
		{60, "level_60"}, {80, "level_80"}, {100, "level_100"},
	}
	streakThresholds = []threshold{
		{3, "streak_3"}, {7, "streak_7"}, {14, "streak_14"}, {30, "streak_30"},
		{60, "streak_60"}, {100, "streak_100"}, {365, "streak_365"},
	}
	repThresholds = []threshold{
		{1000, "reps_1000"}, {10000, "reps_10000"}, {100000, "reps_100000"},
	}
	shadowThresholds = []threshold{
		{1, "shadow_first"}, {5, "shadow_5"}, {10, "shadow_10"},
	}
	statThresholds = []threshold{
		{50, "stats_50"}, {100, "stats_100"},
	}
)

// Dungeon clears needed per difficulty
var dungeonRankAchievements = []struct {
	rank  model.Rank
	count int
	id    string
}{
	{model.RankE, 5, "dungeon_e_5"},
	{model.RankD, 5, "dungeon_d_5"},
	{model.RankC, 5, "dungeon_c_5"},
	{model.RankB, 5, "dungeon_b_5"},
	{model.RankA, 5, "dungeon_a_5"},
	{model.RankS, 1, "dungeon_s"},
	{model.RankS, 10, "dungeon_s_10"},
}

// Specific boss kills
var bossAchievements = []struct {
	bossID string
	id     string
}{
	{"boss_igris", "boss_igris"},
	{"boss_ant_king", "boss_beru"},
	{"boss_antares", "boss_antares"},
}

var rarityAchievements = map[catalog.Rarity]string{
	catalog.RarityLegendary: "shadow_legendary",
	catalog.RarityMythic:    "shadow_mythic",
	catalog.RarityDivine:    "shadow_divine",
}

// EvaluateAchievements returns the ids of achievements the hunter now
// satisfies but does not hold yet, in catalog family order. It reads the
// hunter snapshot taken after the action and never mutates it.
func EvaluateAchievements(h *model.Hunter, action ActionContext, cat *catalog.Catalog) []string {
	var out []string
	add := func(id string, ok bool) {
		if ok && !h.HasAchievement(id) {
			out = append(out, id)
		}
	}
	addThresholds := func(value int, ts []threshold) {
		for _, t := range ts {
			add(t.id, value >= t.value)
		}
	}

	addThresholds(h.QuestsCompleted, questThresholds)
	addThresholds(h.Level, levelThresholds)
	if action.DailyCompleted {
		addThresholds(h.Streak, streakThresholds)
	}
	addThresholds(h.TotalReps, repThresholds)

	add("dungeon_first", h.TotalDungeons() > 0)
	for _, d := range dungeonRankAchievements {
		add(d.id, h.DungeonsCompleted[d.rank] >= d.count)
	}

	add("boss_first", len(h.BossesDefeated) > 0)
	for _, b := range bossAchievements {
		add(b.id, h.HasDefeated(b.bossID))
	}
	add("boss_all", defeatedAll(h, cat))

	addThresholds(len(h.Shadows), shadowThresholds)
	for _, rarity := range []catalog.Rarity{catalog.RarityLegendary, catalog.RarityMythic, catalog.RarityDivine} {
		add(rarityAchievements[rarity], ownsRarity(h, cat, rarity))
	}

	addThresholds(h.Stats.Max(), statThresholds)
	add("stats_all_50", h.Stats.Min() >= 50)

	add("guild_create", action.GuildCreated)
	add("guild_join", action.GuildJoined)

	return out
}

// applyAchievements unlocks the given ids on the hunter and pays their gold.
// Ids already held or unknown to the catalog are skipped, so applying the
// same list twice changes nothing.
func applyAchievements(h *model.Hunter, ids []string, cat *catalog.Catalog) []catalog.Achievement {
	unlocked := make([]catalog.Achievement, 0, len(ids))
	for _, id := range ids {
		a, ok := cat.Achievement(id)
		if !ok {
			continue
		}
		if !h.AddAchievement(id) {
			continue
		}
		h.Gold += a.RewardGold
		unlocked = append(unlocked, *a)
	}
	return unlocked
}

// unlockAchievements evaluates and applies in one step.
func unlockAchievements(h *model.Hunter, action ActionContext, cat *catalog.Catalog) []catalog.Achievement {
	return applyAchievements(h, EvaluateAchievements(h, action, cat), cat)
}

func defeatedAll(h *model.Hunter, cat *catalog.Catalog) bool {
	bosses := cat.Bosses()
	if len(bosses) == 0 {
		return false
	}
	for _, b := range bosses {
		if !h.HasDefeated(b.ID) {
			return false
		}
	}
	return true
}

func ownsRarity(h *model.Hunter, cat *catalog.Catalog, rarity catalog.Rarity) bool {
	for _, id := range h.Shadows {
		if s, ok := cat.Shadow(id); ok && s.Rarity == rarity {
			return true
		}
	}
	return false
}
