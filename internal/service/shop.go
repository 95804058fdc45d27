package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/progression"
)

// ShopService handles the item catalog and purchases
type ShopService struct {
	hunterRepo HunterRepository
	catalog    *catalog.Catalog
	locks      *HunterLocks
	events     EventRecorder
}

// ShopServiceConfig holds configuration for the shop service
type ShopServiceConfig struct {
	HunterRepo HunterRepository
	Catalog    *catalog.Catalog
	Locks      *HunterLocks
	Events     EventRecorder
}

// NewShopService creates a new shop service
func NewShopService(cfg ShopServiceConfig) *ShopService {
	s := &ShopService{
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

// PurchaseResult summarizes a purchase
type PurchaseResult struct {
	Item                 catalog.ShopItem      `json:"item"`
	GoldLeft             int                   `json:"gold_left"`
	LevelUp              bool                  `json:"level_up"`
	NewLevel             int                   `json:"new_level"`
	StatPointsGained     int                   `json:"stat_points_gained"`
	AchievementsUnlocked []catalog.Achievement `json:"achievements_unlocked"`
	Message              string                `json:"message"`
}

// Items returns every item for sale. The caller must be a known hunter.
func (s *ShopService) Items(ctx context.Context, hunterID string) ([]catalog.ShopItem, error) {
	if _, err := loadHunter(ctx, s.hunterRepo, hunterID); err != nil {
		return nil, err
	}
	return s.catalog.ShopItems(), nil
}

// Buy deducts the price and applies the item's effect
func (s *ShopService) Buy(ctx context.Context, hunterID, itemID string) (*PurchaseResult, error) {
	item, ok := s.catalog.ShopItem(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	unlock := s.locks.Lock(hunterID)
	defer unlock()

	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}
	if h.Gold < item.Price {
		return nil, &InsufficientError{
			Resource: "gold",
			Required: item.Price,
			Current:  h.Gold,
			Err:      ErrInsufficientGold,
		}
	}

	h.Gold -= item.Price
	prevLevel := h.Level

	effect := item.Effect
	lu := progression.ApplyExperience(h.Level, h.Experience, effect.Exp)
	h.Level = lu.Level
	h.Experience = lu.Experience
	h.StatPoints += lu.StatPoints()
	h.Rank = progression.RankFor(h.Level)
	h.Gold += effect.Gold
	h.StreakShields += effect.StreakShield
	if effect.Title != "" {
		h.Title = effect.Title
	}
	if effect.Stat != "" {
		h.Stats.Add(effect.Stat, effect.Value)
	}

	achievements := unlockAchievements(h, ActionContext{}, s.catalog)

	if err := s.hunterRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	s.events.ItemPurchased(item.ID)
	s.events.AchievementsUnlocked(len(achievements))
	slog.Info("item purchased",
		slog.String("hunter_id", h.ID),
		slog.String("item_id", item.ID),
		slog.Int("price", item.Price),
	)

	return &PurchaseResult{
		Item:                 *item,
		GoldLeft:             h.Gold,
		LevelUp:              h.Level > prevLevel,
		NewLevel:             h.Level,
		StatPointsGained:     lu.StatPoints(),
		AchievementsUnlocked: achievements,
		Message:              fmt.Sprintf("Has comprado %s", item.Name),
	}, nil
}
