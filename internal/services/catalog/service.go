package catalog

import (
	"context"
	"encoding/json"
	"os"

	"github.com/minewars/sessiontrack/internal/dependencies/clock"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/storage"
)

// Service provides icon/achievement catalog lookups and owns the
// achievement grant ledger. Catalog entries are static reference data;
// only grants are created at runtime.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new catalog Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// File is the on-disk catalog seed format
type File struct {
	Icons        []*model.Icon        `json:"icons"`
	Achievements []*model.Achievement `json:"achievements"`
}

// LoadFromFile seeds icons and achievements from a JSON catalog file
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	return s.Load(ctx, file)
}

// Load seeds the catalog from an in-memory definition (useful for testing)
func (s *Service) Load(ctx context.Context, file File) error {
	for _, icon := range file.Icons {
		if err := s.storage.SaveIcon(ctx, icon); err != nil {
			return err
		}
	}
	for _, achievement := range file.Achievements {
		if err := s.storage.SaveAchievement(ctx, achievement); err != nil {
			return err
		}
	}
	return nil
}

// Icon looks up a catalog icon by id
func (s *Service) Icon(ctx context.Context, id int64) (*model.Icon, error) {
	return s.storage.GetIcon(ctx, id)
}

// Icons returns the full icon catalog
func (s *Service) Icons(ctx context.Context) ([]*model.Icon, error) {
	return s.storage.ListIcons(ctx)
}

// Achievement looks up a catalog achievement by id
func (s *Service) Achievement(ctx context.Context, id int64) (*model.Achievement, error) {
	return s.storage.GetAchievement(ctx, id)
}

// Achievements returns the full achievement catalog
func (s *Service) Achievements(ctx context.Context) ([]*model.Achievement, error) {
	return s.storage.ListAchievements(ctx)
}

// GrantAchievement records an achievement for a player. Both the player and
// the achievement must exist, and a pair is granted at most once.
func (s *Service) GrantAchievement(ctx context.Context, username model.Username, achievementID int64) (*model.AchievementGrant, error) {
	if _, err := s.storage.GetPlayer(ctx, username); err != nil {
		return nil, err
	}
	if _, err := s.storage.GetAchievement(ctx, achievementID); err != nil {
		return nil, err
	}

	grant := &model.AchievementGrant{
		Username:      username,
		AchievementID: achievementID,
		GrantedAt:     s.clock.Now(),
	}
	if err := s.storage.CreateGrant(ctx, grant); err != nil {
		return nil, err
	}
	return grant, nil
}

// PlayerAchievements returns the achievements granted to a player.
// An empty list is a valid result for a player with no grants.
func (s *Service) PlayerAchievements(ctx context.Context, username model.Username) ([]*model.Achievement, error) {
	if _, err := s.storage.GetPlayer(ctx, username); err != nil {
		return nil, err
	}

	grants, err := s.storage.GrantsForPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	achievements := make([]*model.Achievement, 0, len(grants))
	for _, grant := range grants {
		achievement, err := s.storage.GetAchievement(ctx, grant.AchievementID)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}
	return achievements, nil
}
