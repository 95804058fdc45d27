// Package fixtures provides test data factories for integration testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories write through the real
// repositories and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	hunter := f.CreateHunter(t)
//	guild := f.CreateGuild(t, hunter)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/repository"
)

// DefaultPassword is the password of every fixture hunter unless overridden
const DefaultPassword = "testpass123"

// Factory creates test entities in the database
type Factory struct {
	db      database.Database
	hunters *repository.HunterRepository
	guilds  *repository.GuildRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:      db,
		hunters: repository.NewHunterRepository(db),
		guilds:  repository.NewGuildRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context bounded by the test's lifetime
func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Hunter Fixtures
// ============================================================================

// HunterOpts customizes hunter creation
type HunterOpts struct {
	Email      string
	HunterName string
	Password   string
	Level      int
	Gold       int
	StatPoints int
}

// WithLevel sets the hunter's level
func WithLevel(level int) func(*HunterOpts) {
	return func(o *HunterOpts) { o.Level = level }
}

// WithGold sets the hunter's gold
func WithGold(gold int) func(*HunterOpts) {
	return func(o *HunterOpts) { o.Gold = gold }
}

// WithStatPoints sets the hunter's unallocated stat points
func WithStatPoints(points int) func(*HunterOpts) {
	return func(o *HunterOpts) { o.StatPoints = points }
}

// CreateHunter creates a hunter with optional customizations
func (f *Factory) CreateHunter(t *testing.T, opts ...func(*HunterOpts)) *model.Hunter {
	t.Helper()

	id := randomID()
	o := &HunterOpts{
		Email:      fmt.Sprintf("hunter_%s@test.local", id),
		HunterName: fmt.Sprintf("hunter_%s", id),
		Password:   DefaultPassword,
		Level:      1,
		Gold:       model.StartingGold,
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	h := model.NewHunter(o.Email, o.HunterName)
	hashed := string(hash)
	h.Hash = &hashed
	if err := f.hunters.Create(ctx(t), h); err != nil {
		t.Fatalf("fixtures: failed to create hunter: %v", err)
	}

	if o.Level != h.Level || o.Gold != h.Gold || o.StatPoints != h.StatPoints {
		h.Level = o.Level
		h.Gold = o.Gold
		h.StatPoints = o.StatPoints
		if err := f.hunters.Save(ctx(t), h); err != nil {
			t.Fatalf("fixtures: failed to save hunter: %v", err)
		}
	}

	h.Hash = nil
	return h
}

// ============================================================================
// Guild Fixtures
// ============================================================================

// GuildOpts customizes guild creation
type GuildOpts struct {
	Name        string
	Description string
}

// CreateGuild creates a guild led by the given hunter
func (f *Factory) CreateGuild(t *testing.T, leader *model.Hunter, opts ...func(*GuildOpts)) *model.Guild {
	t.Helper()

	o := &GuildOpts{
		Name:        fmt.Sprintf("guild_%s", randomID()),
		Description: "Test guild",
	}
	for _, fn := range opts {
		fn(o)
	}

	g := &model.Guild{
		Name:        o.Name,
		Description: o.Description,
		LeaderID:    leader.ID,
		LeaderName:  leader.HunterName,
		Members:     []string{leader.ID},
		MemberCount: 1,
		TotalLevel:  leader.Level,
	}
	if err := f.guilds.Create(ctx(t), g, leader); err != nil {
		t.Fatalf("fixtures: failed to create guild: %v", err)
	}
	return g
}

// AddMemberToGuild adds the hunter to the guild
func (f *Factory) AddMemberToGuild(t *testing.T, h *model.Hunter, g *model.Guild) {
	t.Helper()

	gid := g.ID
	h.GuildID = &gid
	if err := f.guilds.AddMember(ctx(t), g, h); err != nil {
		t.Fatalf("fixtures: failed to add guild member: %v", err)
	}
	g.Members = append(g.Members, h.ID)
	g.MemberCount++
	g.TotalLevel += h.Level
}

// ReloadHunter reads the hunter back from the database
func (f *Factory) ReloadHunter(t *testing.T, id string) *model.Hunter {
	t.Helper()

	h, err := f.hunters.GetByID(ctx(t), id)
	if err != nil {
		t.Fatalf("fixtures: failed to load hunter: %v", err)
	}
	if h == nil {
		t.Fatalf("fixtures: hunter %s not found", id)
	}
	return h
}
