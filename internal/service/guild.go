package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
)

// Listing limit for GET /guilds
const GuildListLimit = 100

const leaveMessage = "Has abandonado el gremio"

// GuildRepository defines the interface for guild storage. Every write also
// saves the acting hunter, including its guild reference, in one transaction.
type GuildRepository interface {
	GetByID(ctx context.Context, id string) (*model.Guild, error)
	GetByName(ctx context.Context, name string) (*model.Guild, error)
	List(ctx context.Context, limit int) ([]*model.Guild, error)
	ListTopByTotalLevel(ctx context.Context, limit int) ([]*model.Guild, error)
	Create(ctx context.Context, g *model.Guild, leader *model.Hunter) error
	AddMember(ctx context.Context, g *model.Guild, h *model.Hunter) error
	RemoveMember(ctx context.Context, g *model.Guild, h *model.Hunter) error
	Disband(ctx context.Context, g *model.Guild, leader *model.Hunter) error
}

// GuildService handles guild membership
type GuildService struct {
	guildRepo  GuildRepository
	hunterRepo HunterRepository
	catalog    *catalog.Catalog
	locks      *HunterLocks
	events     EventRecorder
}

// GuildServiceConfig holds configuration for the guild service
type GuildServiceConfig struct {
	GuildRepo  GuildRepository
	HunterRepo HunterRepository
	Catalog    *catalog.Catalog
	Locks      *HunterLocks
	Events     EventRecorder
}

// NewGuildService creates a new guild service
func NewGuildService(cfg GuildServiceConfig) *GuildService {
	s := &GuildService{
		guildRepo:  cfg.GuildRepo,
		hunterRepo: cfg.HunterRepo,
		catalog:    cfg.Catalog,
		locks:      cfg.Locks,
		events:     recorderOrNop(cfg.Events),
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.locks == nil {
		s.locks = NewHunterLocks()
	}
	return s
}

// GuildResult is returned by create and join
type GuildResult struct {
	Guild                *model.Guild          `json:"guild"`
	AchievementsUnlocked []catalog.Achievement `json:"achievements_unlocked"`
	Message              string                `json:"message"`
}

// LeaveResult is returned by leave
type LeaveResult struct {
	GuildID   string `json:"guild_id"`
	Disbanded bool   `json:"disbanded"`
	Message   string `json:"message"`
}

// Create founds a guild led by the hunter
func (s *GuildService) Create(ctx context.Context, hunterID, name, description string) (*GuildResult, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := validateGuildInput(name, description); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	if h.InGuild() {
		return nil, ErrAlreadyInGuild
	}

	existing, err := s.guildRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGuildNameExists
	}

	g := &model.Guild{
		Name:        name,
		Description: description,
		LeaderID:    h.ID,
		LeaderName:  h.HunterName,
		Members:     []string{h.ID},
		MemberCount: 1,
		TotalLevel:  h.Level,
	}
	achievements := unlockAchievements(h, ActionContext{GuildCreated: true}, s.catalog)

	if err := s.guildRepo.Create(ctx, g, h); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrGuildNameExists
		}
		return nil, err
	}

	s.events.GuildChanged(GuildActionCreate)
	s.events.AchievementsUnlocked(len(achievements))
	slog.Info("guild created", slog.String("guild_id", g.ID), slog.String("leader_id", h.ID))

	return &GuildResult{
		Guild:                g,
		AchievementsUnlocked: achievements,
		Message:              fmt.Sprintf("Gremio '%s' creado", g.Name),
	}, nil
}

// Join adds the hunter to a guild
func (s *GuildService) Join(ctx context.Context, hunterID, guildID string) (*GuildResult, error) {
	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	if h.InGuild() {
		return nil, ErrAlreadyInGuild
	}

	unlockGuild := s.locks.Lock(guildID)
	defer unlockGuild()

	g, err := s.guildRepo.GetByID(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGuildNotFound
	}

	h.GuildID = &g.ID
	achievements := unlockAchievements(h, ActionContext{GuildJoined: true}, s.catalog)

	if err := s.guildRepo.AddMember(ctx, g, h); err != nil {
		return nil, err
	}

	g.Members = append(g.Members, h.ID)
	g.MemberCount++
	g.TotalLevel += h.Level

	s.events.GuildChanged(GuildActionJoin)
	s.events.AchievementsUnlocked(len(achievements))
	slog.Info("guild joined", slog.String("guild_id", g.ID), slog.String("hunter_id", h.ID))

	return &GuildResult{
		Guild:                g,
		AchievementsUnlocked: achievements,
		Message:              fmt.Sprintf("Te has unido al gremio '%s'", g.Name),
	}, nil
}

// Leave removes the hunter from its guild. When the leader leaves the guild
// is disbanded and every member's reference is cleared.
func (s *GuildService) Leave(ctx context.Context, hunterID string) (*LeaveResult, error) {
	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	if !h.InGuild() {
		return nil, ErrNotInGuild
	}
	guildID := *h.GuildID

	unlockGuild := s.locks.Lock(guildID)
	defer unlockGuild()

	g, err := s.guildRepo.GetByID(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGuildNotFound
	}

	h.GuildID = nil
	if g.IsLeader(h.ID) {
		if err := s.guildRepo.Disband(ctx, g, h); err != nil {
			return nil, err
		}
		s.events.GuildChanged(GuildActionDisband)
		slog.Info("guild disbanded", slog.String("guild_id", g.ID), slog.Int("members", g.MemberCount))
		return &LeaveResult{GuildID: g.ID, Disbanded: true, Message: leaveMessage}, nil
	}

	if err := s.guildRepo.RemoveMember(ctx, g, h); err != nil {
		return nil, err
	}
	s.events.GuildChanged(GuildActionLeave)
	slog.Info("guild left", slog.String("guild_id", g.ID), slog.String("hunter_id", h.ID))
	return &LeaveResult{GuildID: g.ID, Message: leaveMessage}, nil
}

// List returns up to 100 guilds in creation order
func (s *GuildService) List(ctx context.Context) ([]*model.Guild, error) {
	return s.guildRepo.List(ctx, GuildListLimit)
}

// Get returns a guild with its members' public info
func (s *GuildService) Get(ctx context.Context, guildID string) (*model.GuildDetails, error) {
	g, err := s.guildRepo.GetByID(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGuildNotFound
	}

	members, err := s.hunterRepo.ListByGuild(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	info := make([]model.GuildMember, 0, len(members))
	for _, m := range members {
		info = append(info, model.GuildMember{
			ID:         m.ID,
			HunterName: m.HunterName,
			Level:      m.Level,
			Rank:       m.Rank,
		})
	}
	return &model.GuildDetails{Guild: *g, MembersInfo: info}, nil
}

func validateGuildInput(name, description string) error {
	if name == "" {
		return ErrGuildNameRequired
	}
	n := utf8.RuneCountInString(name)
	if n < model.MinGuildNameLength {
		return ErrGuildNameTooShort
	}
	if n > model.MaxGuildNameLength {
		return ErrGuildNameTooLong
	}
	if utf8.RuneCountInString(description) > model.MaxGuildDescriptionLength {
		return ErrGuildDescTooLong
	}
	return nil
}
