package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
)

// ============================================================================
// Hunter repository
// ============================================================================

// mockHunterRepo stores clones so every read is a fresh snapshot. Save keeps
// the stored guild reference, like the real repository.
type mockHunterRepo struct {
	mu      sync.Mutex
	hunters map[string]*model.Hunter
	saves   int

	createErr error
	getErr    error
	saveErr   error
}

func newMockHunterRepo() *mockHunterRepo {
	return &mockHunterRepo{hunters: make(map[string]*model.Hunter)}
}

func (m *mockHunterRepo) Create(ctx context.Context, h *model.Hunter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	h.ID = "hunter:" + h.HunterName
	h.CreatedOn = time.Now()
	h.UpdatedOn = h.CreatedOn
	m.hunters[h.ID] = cloneHunter(h)
	return nil
}

func (m *mockHunterRepo) GetByID(ctx context.Context, id string) (*model.Hunter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if h, ok := m.hunters[id]; ok {
		return cloneHunter(h), nil
	}
	return nil, nil
}

func (m *mockHunterRepo) GetByEmail(ctx context.Context, email string) (*model.Hunter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, h := range m.hunters {
		if h.Email == email {
			return cloneHunter(h), nil
		}
	}
	return nil, nil
}

func (m *mockHunterRepo) GetByHunterName(ctx context.Context, name string) (*model.Hunter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, h := range m.hunters {
		if h.HunterName == name {
			return cloneHunter(h), nil
		}
	}
	return nil, nil
}

func (m *mockHunterRepo) Save(ctx context.Context, h *model.Hunter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	stored := cloneHunter(h)
	if prev, ok := m.hunters[h.ID]; ok {
		stored.GuildID = prev.GuildID
	}
	m.hunters[h.ID] = stored
	return nil
}

// saveWithGuild writes the guild reference too; used by guild and daily mocks
func (m *mockHunterRepo) saveWithGuild(h *model.Hunter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.hunters[h.ID] = cloneHunter(h)
}

func (m *mockHunterRepo) ListTopByLevel(ctx context.Context, limit int) ([]*model.Hunter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Hunter, 0, len(m.hunters))
	for _, h := range m.hunters {
		out = append(out, cloneHunter(h))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockHunterRepo) ListByGuild(ctx context.Context, guildID string) ([]*model.Hunter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Hunter
	for _, h := range m.hunters {
		if h.GuildID != nil && *h.GuildID == guildID {
			out = append(out, cloneHunter(h))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// stored returns the persisted hunter without cloning
func (m *mockHunterRepo) stored(id string) *model.Hunter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hunters[id]
}

// put seeds a hunter directly
func (m *mockHunterRepo) put(h *model.Hunter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h.Normalize()
	m.hunters[h.ID] = cloneHunter(h)
}

func cloneHunter(h *model.Hunter) *model.Hunter {
	c := *h
	c.Shadows = slices.Clone(h.Shadows)
	c.Achievements = slices.Clone(h.Achievements)
	c.BossesDefeated = slices.Clone(h.BossesDefeated)
	c.SpecialMissionsCompleted = slices.Clone(h.SpecialMissionsCompleted)
	c.DungeonsCompleted = maps.Clone(h.DungeonsCompleted)
	c.PunishmentQuests = make([]model.PunishmentQuest, len(h.PunishmentQuests))
	for i, p := range h.PunishmentQuests {
		p.Exercises = slices.Clone(p.Exercises)
		c.PunishmentQuests[i] = p
	}
	if h.GuildID != nil {
		gid := *h.GuildID
		c.GuildID = &gid
	}
	if h.TrainingStartTime != nil {
		t := *h.TrainingStartTime
		c.TrainingStartTime = &t
	}
	return &c
}

// ============================================================================
// Daily quest repository
// ============================================================================

type mockDailyRepo struct {
	mu      sync.Mutex
	quests  map[string]*model.DailyQuest // key: user_id|date
	hunters *mockHunterRepo
	creates int

	createErr   error
	completeErr error
}

func newMockDailyRepo(hunters *mockHunterRepo) *mockDailyRepo {
	return &mockDailyRepo{quests: make(map[string]*model.DailyQuest), hunters: hunters}
}

func cloneDaily(q *model.DailyQuest) *model.DailyQuest {
	c := *q
	c.Exercises = slices.Clone(q.Exercises)
	return &c
}

func (m *mockDailyRepo) GetForDate(ctx context.Context, userID, date string) (*model.DailyQuest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q, ok := m.quests[userID+"|"+date]; ok {
		return cloneDaily(q), nil
	}
	return nil, nil
}

func (m *mockDailyRepo) GetByQuestID(ctx context.Context, userID, questID string) (*model.DailyQuest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.quests {
		if q.ID == questID && q.UserID == userID {
			return cloneDaily(q), nil
		}
	}
	return nil, nil
}

func (m *mockDailyRepo) Create(ctx context.Context, q *model.DailyQuest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	key := q.UserID + "|" + q.Date
	if _, ok := m.quests[key]; ok {
		return database.ErrDuplicate
	}
	m.creates++
	q.CreatedOn = time.Now()
	m.quests[key] = cloneDaily(q)
	return nil
}

func (m *mockDailyRepo) Complete(ctx context.Context, q *model.DailyQuest, h *model.Hunter) error {
	m.mu.Lock()
	if m.completeErr != nil {
		m.mu.Unlock()
		return m.completeErr
	}
	m.quests[q.UserID+"|"+q.Date] = cloneDaily(q)
	m.mu.Unlock()

	stored := m.hunters.stored(h.ID)
	c := cloneHunter(h)
	if stored != nil {
		c.GuildID = stored.GuildID
	}
	m.hunters.saveWithGuild(c)
	return nil
}

// put seeds a daily quest directly
func (m *mockDailyRepo) put(q *model.DailyQuest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quests[q.UserID+"|"+q.Date] = cloneDaily(q)
}

// ============================================================================
// Guild repository
// ============================================================================

type mockGuildRepo struct {
	mu      sync.Mutex
	guilds  map[string]*model.Guild
	hunters *mockHunterRepo
	seq     int

	createErr error
}

func newMockGuildRepo(hunters *mockHunterRepo) *mockGuildRepo {
	return &mockGuildRepo{guilds: make(map[string]*model.Guild), hunters: hunters}
}

func cloneGuild(g *model.Guild) *model.Guild {
	c := *g
	c.Members = slices.Clone(g.Members)
	return &c
}

func (m *mockGuildRepo) GetByID(ctx context.Context, id string) (*model.Guild, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.guilds[id]; ok {
		return cloneGuild(g), nil
	}
	return nil, nil
}

func (m *mockGuildRepo) GetByName(ctx context.Context, name string) (*model.Guild, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.guilds {
		if g.Name == name {
			return cloneGuild(g), nil
		}
	}
	return nil, nil
}

func (m *mockGuildRepo) sorted(less func(a, b *model.Guild) bool, limit int) []*model.Guild {
	out := make([]*model.Guild, 0, len(m.guilds))
	for _, g := range m.guilds {
		out = append(out, cloneGuild(g))
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *mockGuildRepo) List(ctx context.Context, limit int) ([]*model.Guild, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(a, b *model.Guild) bool { return a.ID < b.ID }, limit), nil
}

func (m *mockGuildRepo) ListTopByTotalLevel(ctx context.Context, limit int) ([]*model.Guild, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(a, b *model.Guild) bool {
		if a.TotalLevel != b.TotalLevel {
			return a.TotalLevel > b.TotalLevel
		}
		return a.ID < b.ID
	}, limit), nil
}

func (m *mockGuildRepo) Create(ctx context.Context, g *model.Guild, leader *model.Hunter) error {
	m.mu.Lock()
	if m.createErr != nil {
		m.mu.Unlock()
		return m.createErr
	}
	for _, existing := range m.guilds {
		if existing.Name == g.Name {
			m.mu.Unlock()
			return errors.Join(database.ErrDuplicate, errors.New("guild name already taken"))
		}
	}
	m.seq++
	g.ID = "guild:" + string(rune('a'+m.seq-1))
	g.CreatedOn = time.Now()
	m.guilds[g.ID] = cloneGuild(g)
	m.mu.Unlock()

	leader.GuildID = &g.ID
	m.hunters.saveWithGuild(leader)
	return nil
}

func (m *mockGuildRepo) AddMember(ctx context.Context, g *model.Guild, h *model.Hunter) error {
	m.mu.Lock()
	stored := m.guilds[g.ID]
	stored.Members = append(stored.Members, h.ID)
	stored.MemberCount++
	stored.TotalLevel += h.Level
	m.mu.Unlock()

	m.hunters.saveWithGuild(h)
	return nil
}

func (m *mockGuildRepo) RemoveMember(ctx context.Context, g *model.Guild, h *model.Hunter) error {
	m.mu.Lock()
	stored := m.guilds[g.ID]
	stored.Members = slices.DeleteFunc(stored.Members, func(id string) bool { return id == h.ID })
	stored.MemberCount--
	stored.TotalLevel -= h.Level
	m.mu.Unlock()

	m.hunters.saveWithGuild(h)
	return nil
}

func (m *mockGuildRepo) Disband(ctx context.Context, g *model.Guild, leader *model.Hunter) error {
	m.mu.Lock()
	delete(m.guilds, g.ID)
	m.mu.Unlock()

	m.hunters.mu.Lock()
	for _, h := range m.hunters.hunters {
		if h.GuildID != nil && *h.GuildID == g.ID {
			h.GuildID = nil
		}
	}
	m.hunters.mu.Unlock()

	m.hunters.saveWithGuild(leader)
	return nil
}

// ============================================================================
// Other collaborators
// ============================================================================

type fakeSigner struct {
	err error
}

func (f *fakeSigner) Sign(hunterID, hunterName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + hunterID, nil
}

type recordingEvents struct {
	mu           sync.Mutex
	registered   int
	completed    map[string]int
	failed       int
	protected    int
	achievements int
	purchases    []string
	guild        []string
}

func newRecordingEvents() *recordingEvents {
	return &recordingEvents{completed: make(map[string]int)}
}

func (r *recordingEvents) HunterRegistered() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered++
}

func (r *recordingEvents) QuestCompleted(kind string, levelsGained int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[kind]++
}

func (r *recordingEvents) QuestFailed(streakProtected bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
	if streakProtected {
		r.protected++
	}
}

func (r *recordingEvents) AchievementsUnlocked(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.achievements += n
}

func (r *recordingEvents) ItemPurchased(itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, itemID)
}

func (r *recordingEvents) GuildChanged(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guild = append(r.guild, action)
}

// ============================================================================
// Fixtures
// ============================================================================

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// seedHunter stores a fresh level 1 hunter and returns its id
func seedHunter(repo *mockHunterRepo, name string, mutate func(h *model.Hunter)) string {
	h := model.NewHunter(name+"@example.com", name)
	h.ID = "hunter:" + name
	h.CreatedOn = testNow.AddDate(0, 0, -10)
	if mutate != nil {
		mutate(h)
	}
	repo.put(h)
	return h.ID
}
