package storage

import (
	"context"

	"github.com/minewars/sessiontrack/internal/model"
)

// Storage defines the interface for data persistence.
//
// Check-then-act invariants on a match (capacity, duplicate membership,
// role exclusivity, terminal status) are enforced inside UpdateMatch, which
// implementations must execute atomically with respect to other match
// mutations. Username, match id, and grant uniqueness are likewise enforced
// by the implementation.
type Storage interface {
	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, username model.Username) (*model.Player, error)

	// Match operations
	CreateMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	MatchExists(ctx context.Context, id model.MatchID) (bool, error)

	// UpdateMatch applies fn to the stored match as a single atomic
	// read-modify-write. When fn returns an error the match is left
	// unchanged and the error is returned verbatim.
	UpdateMatch(ctx context.Context, id model.MatchID, fn func(*model.Match) error) (*model.Match, error)

	// MatchesForPlayer returns every match the player participates in
	MatchesForPlayer(ctx context.Context, username model.Username) ([]*model.Match, error)

	// Catalog operations
	SaveIcon(ctx context.Context, icon *model.Icon) error
	GetIcon(ctx context.Context, id int64) (*model.Icon, error)
	ListIcons(ctx context.Context) ([]*model.Icon, error)
	SaveAchievement(ctx context.Context, achievement *model.Achievement) error
	GetAchievement(ctx context.Context, id int64) (*model.Achievement, error)
	ListAchievements(ctx context.Context) ([]*model.Achievement, error)

	// Achievement grant operations
	CreateGrant(ctx context.Context, grant *model.AchievementGrant) error
	GrantsForPlayer(ctx context.Context, username model.Username) ([]*model.AchievementGrant, error)
}
