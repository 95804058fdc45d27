package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/testing/testdb"
	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Persistence
DOMAIN: Hunters, daily quests, guilds

ACCEPTANCE CRITERIA:
===================

AC-REPO-001: Hunter Round Trip
  GIVEN a registered hunter
  WHEN the hunter is saved with progress and read back
  THEN every field matches, including nested punishments

AC-REPO-002: Unique Email And Name
  GIVEN an existing hunter
  WHEN another hunter registers with the same email or name
  THEN the specific duplicate error is returned

AC-REPO-003: One Daily Quest Per Date
  GIVEN a daily quest for today
  WHEN a second quest for the same hunter and date is created
  THEN database.ErrDuplicate is returned

AC-REPO-004: Daily Completion Is Atomic
  WHEN a daily quest is completed
  THEN the quest flag and the hunter rewards are both stored

AC-REPO-005: Guild Membership
  GIVEN a guild with a leader
  WHEN a member joins and leaves
  THEN counters move by one and by the member's level

AC-REPO-006: Disband
  WHEN the leader disbands the guild
  THEN the guild is gone and no hunter references it
*/

func createHunter(t *testing.T, tdb *testdb.TestDB, repo *HunterRepository, name string) *model.Hunter {
	t.Helper()
	h := model.NewHunter(name+"@example.com", name)
	hash := "$2a$12$testhash"
	h.Hash = &hash
	require.NoError(t, repo.Create(tdb.Ctx(), h))
	require.NotEmpty(t, h.ID)
	return h
}

func TestHunterRepository_RoundTrip(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := NewHunterRepository(tdb.DB)
	h := createHunter(t, tdb, repo, "Jinwoo")

	h.Level = 4
	h.Experience = 20
	h.Gold = 250
	h.Stats.Strength = 15
	h.DungeonsCompleted[model.RankD] = 2
	h.AddShadow("shadow_igris")
	h.Streak = 3
	h.LastQuestDate = "2026-03-01"
	h.PunishmentQuests = append(h.PunishmentQuests, model.PunishmentQuest{
		ID:        "punishment_1a2b3c4d",
		Name:      "Castigo",
		Exercises: []model.Exercise{{Name: "Burpees", Reps: 20, Unit: model.UnitReps}},
		ExpReward: 10,
		QuestType: model.QuestKindPunishment,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	})
	require.NoError(t, repo.Save(tdb.Ctx(), h))

	got, err := repo.GetByID(tdb.Ctx(), h.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 4, got.Level)
	assert.Equal(t, 250, got.Gold)
	assert.Equal(t, 15, got.Stats.Strength)
	assert.Equal(t, 2, got.DungeonsCompleted[model.RankD])
	assert.Equal(t, []string{"shadow_igris"}, got.Shadows)
	assert.Equal(t, "2026-03-01", got.LastQuestDate)
	require.Len(t, got.PunishmentQuests, 1)
	assert.Equal(t, "Burpees", got.PunishmentQuests[0].Exercises[0].Name)
	require.NotNil(t, got.Hash)

	byEmail, err := repo.GetByEmail(tdb.Ctx(), "jinwoo@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, h.ID, byEmail.ID)

	missing, err := repo.GetByID(tdb.Ctx(), "hunter:doesnotexist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHunterRepository_Duplicates(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := NewHunterRepository(tdb.DB)
	createHunter(t, tdb, repo, "Jinwoo")

	err := repo.Create(tdb.Ctx(), model.NewHunter("jinwoo@example.com", "Other"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	err = repo.Create(tdb.Ctx(), model.NewHunter("other@example.com", "Jinwoo"))
	assert.ErrorIs(t, err, ErrHunterNameTaken)
}

func TestDailyQuestRepository_CreateAndComplete(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	hunters := NewHunterRepository(tdb.DB)
	quests := NewDailyQuestRepository(tdb.DB)
	h := createHunter(t, tdb, hunters, "Jinwoo")

	q := &model.DailyQuest{
		ID:             uuid.NewString(),
		UserID:         h.ID,
		Date:           "2026-03-01",
		Name:           model.DailyQuestName,
		QuestType:      model.QuestKindDaily,
		Exercises:      []model.Exercise{{Name: "Flexiones", Reps: 10, Unit: model.UnitReps, Stat: model.StatStrength}},
		ExpReward:      27,
		GoldReward:     11,
		TimeLimitHours: model.DailyTimeLimitHours,
		Difficulty:     model.RankE,
		Deadline:       time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, quests.Create(tdb.Ctx(), q))

	dup := *q
	dup.ID = uuid.NewString()
	err := quests.Create(tdb.Ctx(), &dup)
	assert.True(t, errors.Is(err, database.ErrDuplicate), "expected duplicate, got %v", err)

	got, err := quests.GetForDate(tdb.Ctx(), h.ID, "2026-03-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, q.ID, got.ID)
	assert.False(t, got.IsCompleted)

	h.Gold += q.GoldReward
	got.IsCompleted = true
	require.NoError(t, quests.Complete(tdb.Ctx(), got, h))

	done, err := quests.GetByQuestID(tdb.Ctx(), h.ID, q.ID)
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.True(t, done.IsCompleted)

	reloaded, err := hunters.GetByID(tdb.Ctx(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StartingGold+11, reloaded.Gold)

	other, err := quests.GetByQuestID(tdb.Ctx(), "hunter:someoneelse", q.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestGuildRepository_Membership(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	hunters := NewHunterRepository(tdb.DB)
	guilds := NewGuildRepository(tdb.DB)
	leader := createHunter(t, tdb, hunters, "Jinwoo")
	member := createHunter(t, tdb, hunters, "Jinah")
	member.Level = 5
	require.NoError(t, hunters.Save(tdb.Ctx(), member))

	g := &model.Guild{
		Name:        "Ahjin",
		Description: "Gremio",
		LeaderID:    leader.ID,
		LeaderName:  leader.HunterName,
		Members:     []string{leader.ID},
		MemberCount: 1,
		TotalLevel:  leader.Level,
	}
	require.NoError(t, guilds.Create(tdb.Ctx(), g, leader))

	err := guilds.Create(tdb.Ctx(), &model.Guild{Name: "Ahjin"}, member)
	assert.ErrorIs(t, err, ErrGuildNameTaken)

	gid := g.ID
	member.GuildID = &gid
	require.NoError(t, guilds.AddMember(tdb.Ctx(), g, member))

	got, err := guilds.GetByID(tdb.Ctx(), g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.MemberCount)
	assert.Equal(t, 6, got.TotalLevel)
	assert.ElementsMatch(t, []string{leader.ID, member.ID}, got.Members)

	list, err := hunters.ListByGuild(tdb.Ctx(), g.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	member.GuildID = nil
	require.NoError(t, guilds.RemoveMember(tdb.Ctx(), g, member))

	got, err = guilds.GetByID(tdb.Ctx(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MemberCount)
	assert.Equal(t, 1, got.TotalLevel)
	assert.Equal(t, []string{leader.ID}, got.Members)
}

func TestGuildRepository_Disband(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	hunters := NewHunterRepository(tdb.DB)
	guilds := NewGuildRepository(tdb.DB)
	leader := createHunter(t, tdb, hunters, "Jinwoo")
	member := createHunter(t, tdb, hunters, "Jinah")

	g := &model.Guild{Name: "Ahjin", LeaderID: leader.ID, Members: []string{leader.ID}, MemberCount: 1, TotalLevel: 1}
	require.NoError(t, guilds.Create(tdb.Ctx(), g, leader))
	gid := g.ID
	member.GuildID = &gid
	require.NoError(t, guilds.AddMember(tdb.Ctx(), g, member))

	leader.GuildID = nil
	require.NoError(t, guilds.Disband(tdb.Ctx(), g, leader))

	gone, err := guilds.GetByID(tdb.Ctx(), gid)
	require.NoError(t, err)
	assert.Nil(t, gone)

	reloaded, err := hunters.GetByID(tdb.Ctx(), member.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.InGuild())

	top, err := guilds.ListTopByTotalLevel(tdb.Ctx(), 50)
	require.NoError(t, err)
	assert.Empty(t, top)
}
