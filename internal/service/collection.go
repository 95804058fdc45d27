package service

import (
	"context"

	"github.com/forgo/ascend/api/internal/catalog"
)

// CollectionService lists catalog collectibles against a hunter's holdings
type CollectionService struct {
	hunterRepo HunterRepository
	catalog    *catalog.Catalog
}

// NewCollectionService creates a new collection service
func NewCollectionService(hunterRepo HunterRepository, cat *catalog.Catalog) *CollectionService {
	if cat == nil {
		cat = catalog.Default()
	}
	return &CollectionService{hunterRepo: hunterRepo, catalog: cat}
}

// OwnedShadow is a catalog shadow with the hunter's ownership flag
type OwnedShadow struct {
	catalog.Shadow
	Owned bool `json:"owned"`
}

// UnlockedAchievement is a catalog achievement with the hunter's unlock flag
type UnlockedAchievement struct {
	catalog.Achievement
	Unlocked bool `json:"unlocked"`
}

// Shadows lists every shadow and whether the hunter owns it
func (s *CollectionService) Shadows(ctx context.Context, hunterID string) ([]OwnedShadow, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	all := s.catalog.Shadows()
	out := make([]OwnedShadow, 0, len(all))
	for _, sh := range all {
		out = append(out, OwnedShadow{Shadow: sh, Owned: h.OwnsShadow(sh.ID)})
	}
	return out, nil
}

// Achievements lists every achievement and whether the hunter unlocked it
func (s *CollectionService) Achievements(ctx context.Context, hunterID string) ([]UnlockedAchievement, error) {
	h, err := loadHunter(ctx, s.hunterRepo, hunterID)
	if err != nil {
		return nil, err
	}

	all := s.catalog.Achievements()
	out := make([]UnlockedAchievement, 0, len(all))
	for _, a := range all {
		out = append(out, UnlockedAchievement{Achievement: a, Unlocked: h.HasAchievement(a.ID)})
	}
	return out, nil
}
