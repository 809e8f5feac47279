package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players      map[model.Username]*model.Player
	matches      map[model.MatchID]*model.Match
	playerIndex  map[model.Username]map[model.MatchID]struct{}
	icons        map[int64]*model.Icon
	achievements map[int64]*model.Achievement
	grants       map[grantKey]*model.AchievementGrant
}

type grantKey struct {
	username      model.Username
	achievementID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:      make(map[model.Username]*model.Player),
		matches:      make(map[model.MatchID]*model.Match),
		playerIndex:  make(map[model.Username]map[model.MatchID]struct{}),
		icons:        make(map[int64]*model.Icon),
		achievements: make(map[int64]*model.Achievement),
		grants:       make(map[grantKey]*model.AchievementGrant),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.Username]; ok {
		return model.ErrUsernameExists
	}
	s.players[player.Username] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

// Match operations

func (s *Storage) CreateMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; ok {
		return model.ErrMatchExists
	}
	s.matches[match.ID] = match
	s.indexParticipants(match)
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) MatchExists(ctx context.Context, id model.MatchID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.matches[id]
	return ok, nil
}

func (s *Storage) UpdateMatch(ctx context.Context, id model.MatchID, fn func(*model.Match) error) (*model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}

	// Mutate a copy so a failing fn leaves the stored match untouched
	updated := *match
	updated.Participants = make([]model.Participant, len(match.Participants))
	copy(updated.Participants, match.Participants)

	if err := fn(&updated); err != nil {
		return nil, err
	}

	s.matches[id] = &updated
	s.indexParticipants(&updated)
	return &updated, nil
}

func (s *Storage) MatchesForPlayer(ctx context.Context, username model.Username) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.playerIndex[username]
	matches := make([]*model.Match, 0, len(ids))
	for id := range ids {
		if match, ok := s.matches[id]; ok {
			matches = append(matches, match)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// indexParticipants records username -> match id entries. Caller holds the lock.
func (s *Storage) indexParticipants(match *model.Match) {
	for i := range match.Participants {
		username := match.Participants[i].Username
		if s.playerIndex[username] == nil {
			s.playerIndex[username] = make(map[model.MatchID]struct{})
		}
		s.playerIndex[username][match.ID] = struct{}{}
	}
}

// Catalog operations

func (s *Storage) SaveIcon(ctx context.Context, icon *model.Icon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icons[icon.ID] = icon
	return nil
}

func (s *Storage) GetIcon(ctx context.Context, id int64) (*model.Icon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	icon, ok := s.icons[id]
	if !ok {
		return nil, model.ErrIconNotFound
	}
	return icon, nil
}

func (s *Storage) ListIcons(ctx context.Context) ([]*model.Icon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	icons := make([]*model.Icon, 0, len(s.icons))
	for _, icon := range s.icons {
		icons = append(icons, icon)
	}
	sort.Slice(icons, func(i, j int) bool { return icons[i].ID < icons[j].ID })
	return icons, nil
}

func (s *Storage) SaveAchievement(ctx context.Context, achievement *model.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements[achievement.ID] = achievement
	return nil
}

func (s *Storage) GetAchievement(ctx context.Context, id int64) (*model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	achievement, ok := s.achievements[id]
	if !ok {
		return nil, model.ErrAchievementNotFound
	}
	return achievement, nil
}

func (s *Storage) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	achievements := make([]*model.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		achievements = append(achievements, a)
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].ID < achievements[j].ID })
	return achievements, nil
}

// Achievement grant operations

func (s *Storage) CreateGrant(ctx context.Context, grant *model.AchievementGrant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := grantKey{username: grant.Username, achievementID: grant.AchievementID}
	if _, ok := s.grants[key]; ok {
		return model.ErrAchievementGranted
	}
	s.grants[key] = grant
	return nil
}

func (s *Storage) GrantsForPlayer(ctx context.Context, username model.Username) ([]*model.AchievementGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var grants []*model.AchievementGrant
	for key, grant := range s.grants {
		if key.username == username {
			grants = append(grants, grant)
		}
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].AchievementID < grants[j].AchievementID })
	return grants, nil
}
