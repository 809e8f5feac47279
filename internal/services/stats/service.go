package stats

import (
	"context"

	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/catalog"
	"github.com/minewars/sessiontrack/internal/storage"
)

// Service aggregates per-player statistics from the grant ledger and match
// participations
type Service struct {
	storage storage.Storage
	catalog *catalog.Service
}

// New creates a new stats Service
func New(storage storage.Storage, catalog *catalog.Service) *Service {
	return &Service{
		storage: storage,
		catalog: catalog,
	}
}

// PlayerStats returns a player's granted achievements plus win/loss counts
// over every match they participated in. Unresolved participations (matches
// not yet ended) count toward neither total.
func (s *Service) PlayerStats(ctx context.Context, username model.Username) (*model.PlayerStats, error) {
	achievements, err := s.catalog.PlayerAchievements(ctx, username)
	if err != nil {
		return nil, err
	}

	matches, err := s.storage.MatchesForPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	result := &model.PlayerStats{
		Username:     username,
		Achievements: achievements,
	}
	for _, match := range matches {
		p := match.GetParticipant(username)
		if p == nil {
			continue
		}
		switch p.Result {
		case model.ResultWin:
			result.Wins++
		case model.ResultLose:
			result.Losses++
		}
	}
	return result, nil
}
