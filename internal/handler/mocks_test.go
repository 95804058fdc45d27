package handler

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
)

// ============================================================================
// In-memory store
// ============================================================================

// memStore backs the in-memory repositories. Every read returns a copy.
type memStore struct {
	mu      sync.Mutex
	hunters map[string]*model.Hunter
	dailies map[string]*model.DailyQuest // key: user_id|date
	guilds  map[string]*model.Guild
	seq     int
}

func newMemStore() *memStore {
	return &memStore{
		hunters: make(map[string]*model.Hunter),
		dailies: make(map[string]*model.DailyQuest),
		guilds:  make(map[string]*model.Guild),
	}
}

func (s *memStore) nextID(table string) string {
	s.seq++
	return fmt.Sprintf("%s:%04d", table, s.seq)
}

// putHunter seeds a hunter and returns its stored copy
func (s *memStore) putHunter(h *model.Hunter) *model.Hunter {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Normalize()
	if h.ID == "" {
		h.ID = s.nextID("hunter")
	}
	s.hunters[h.ID] = cloneHunter(h)
	return cloneHunter(h)
}

func (s *memStore) hunter(id string) *model.Hunter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.hunters[id]; ok {
		return cloneHunter(h)
	}
	return nil
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
// Hunter repository
// ============================================================================

type memHunterRepo struct{ s *memStore }

func (r memHunterRepo) Create(ctx context.Context, h *model.Hunter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.hunters {
		if existing.Email == h.Email || existing.HunterName == h.HunterName {
			return database.ErrDuplicate
		}
	}
	h.Normalize()
	h.ID = r.s.nextID("hunter")
	h.CreatedOn = time.Now()
	h.UpdatedOn = h.CreatedOn
	r.s.hunters[h.ID] = cloneHunter(h)
	return nil
}

func (r memHunterRepo) GetByID(ctx context.Context, id string) (*model.Hunter, error) {
	return r.s.hunter(id), nil
}

func (r memHunterRepo) find(match func(h *model.Hunter) bool) *model.Hunter {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, h := range r.s.hunters {
		if match(h) {
			return cloneHunter(h)
		}
	}
	return nil
}

func (r memHunterRepo) GetByEmail(ctx context.Context, email string) (*model.Hunter, error) {
	return r.find(func(h *model.Hunter) bool { return h.Email == email }), nil
}

func (r memHunterRepo) GetByHunterName(ctx context.Context, name string) (*model.Hunter, error) {
	return r.find(func(h *model.Hunter) bool { return h.HunterName == name }), nil
}

// Save keeps the stored guild reference, like the real repository
func (r memHunterRepo) Save(ctx context.Context, h *model.Hunter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := cloneHunter(h)
	if prev, ok := r.s.hunters[h.ID]; ok {
		stored.GuildID = prev.GuildID
	}
	r.s.hunters[h.ID] = stored
	return nil
}

func (r memHunterRepo) list(match func(h *model.Hunter) bool) []*model.Hunter {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*model.Hunter, 0, len(r.s.hunters))
	for _, h := range r.s.hunters {
		if match(h) {
			out = append(out, cloneHunter(h))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r memHunterRepo) ListTopByLevel(ctx context.Context, limit int) ([]*model.Hunter, error) {
	out := r.list(func(*model.Hunter) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memHunterRepo) ListByGuild(ctx context.Context, guildID string) ([]*model.Hunter, error) {
	return r.list(func(h *model.Hunter) bool { return h.GuildID != nil && *h.GuildID == guildID }), nil
}

// ============================================================================
// Daily quest repository
// ============================================================================

type memDailyRepo struct{ s *memStore }

func cloneDaily(q *model.DailyQuest) *model.DailyQuest {
	c := *q
	c.Exercises = slices.Clone(q.Exercises)
	return &c
}

func (r memDailyRepo) GetForDate(ctx context.Context, userID, date string) (*model.DailyQuest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if q, ok := r.s.dailies[userID+"|"+date]; ok {
		return cloneDaily(q), nil
	}
	return nil, nil
}

func (r memDailyRepo) GetByQuestID(ctx context.Context, userID, questID string) (*model.DailyQuest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, q := range r.s.dailies {
		if q.ID == questID && q.UserID == userID {
			return cloneDaily(q), nil
		}
	}
	return nil, nil
}

func (r memDailyRepo) Create(ctx context.Context, q *model.DailyQuest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := q.UserID + "|" + q.Date
	if _, ok := r.s.dailies[key]; ok {
		return database.ErrDuplicate
	}
	q.CreatedOn = time.Now()
	r.s.dailies[key] = cloneDaily(q)
	return nil
}

func (r memDailyRepo) Complete(ctx context.Context, q *model.DailyQuest, h *model.Hunter) error {
	r.s.mu.Lock()
	r.s.dailies[q.UserID+"|"+q.Date] = cloneDaily(q)
	r.s.mu.Unlock()
	return memHunterRepo(r).Save(ctx, h)
}

// ============================================================================
// Guild repository
// ============================================================================

type memGuildRepo struct{ s *memStore }

func cloneGuild(g *model.Guild) *model.Guild {
	c := *g
	c.Members = slices.Clone(g.Members)
	return &c
}

func (r memGuildRepo) GetByID(ctx context.Context, id string) (*model.Guild, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.guilds[id]; ok {
		return cloneGuild(g), nil
	}
	return nil, nil
}

func (r memGuildRepo) GetByName(ctx context.Context, name string) (*model.Guild, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.guilds {
		if g.Name == name {
			return cloneGuild(g), nil
		}
	}
	return nil, nil
}

func (r memGuildRepo) sorted(less func(a, b *model.Guild) bool, limit int) []*model.Guild {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*model.Guild, 0, len(r.s.guilds))
	for _, g := range r.s.guilds {
		out = append(out, cloneGuild(g))
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r memGuildRepo) List(ctx context.Context, limit int) ([]*model.Guild, error) {
	return r.sorted(func(a, b *model.Guild) bool { return a.ID < b.ID }, limit), nil
}

func (r memGuildRepo) ListTopByTotalLevel(ctx context.Context, limit int) ([]*model.Guild, error) {
	return r.sorted(func(a, b *model.Guild) bool {
		if a.TotalLevel != b.TotalLevel {
			return a.TotalLevel > b.TotalLevel
		}
		return a.ID < b.ID
	}, limit), nil
}

// saveWithGuild stores the hunter including its guild reference
func (r memGuildRepo) saveWithGuild(h *model.Hunter) {
	r.s.hunters[h.ID] = cloneHunter(h)
}

func (r memGuildRepo) Create(ctx context.Context, g *model.Guild, leader *model.Hunter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.guilds {
		if existing.Name == g.Name {
			return database.ErrDuplicate
		}
	}
	g.ID = r.s.nextID("guild")
	g.CreatedOn = time.Now()
	r.s.guilds[g.ID] = cloneGuild(g)
	gid := g.ID
	leader.GuildID = &gid
	r.saveWithGuild(leader)
	return nil
}

func (r memGuildRepo) AddMember(ctx context.Context, g *model.Guild, h *model.Hunter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := r.s.guilds[g.ID]
	stored.Members = append(stored.Members, h.ID)
	stored.MemberCount++
	stored.TotalLevel += h.Level
	r.saveWithGuild(h)
	return nil
}

func (r memGuildRepo) RemoveMember(ctx context.Context, g *model.Guild, h *model.Hunter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := r.s.guilds[g.ID]
	stored.Members = slices.DeleteFunc(stored.Members, func(id string) bool { return id == h.ID })
	stored.MemberCount--
	stored.TotalLevel -= h.Level
	r.saveWithGuild(h)
	return nil
}

func (r memGuildRepo) Disband(ctx context.Context, g *model.Guild, leader *model.Hunter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.guilds, g.ID)
	for _, h := range r.s.hunters {
		if h.GuildID != nil && *h.GuildID == g.ID {
			h.GuildID = nil
		}
	}
	r.saveWithGuild(leader)
	return nil
}

// ============================================================================
// Other collaborators
// ============================================================================

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }
