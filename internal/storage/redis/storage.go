package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/storage"
)

// updateMatchRetries bounds the optimistic retry loop when concurrent
// mutations invalidate a watched match key
const updateMatchRetries = 8

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, playerKey(player.Username), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUsernameExists
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Match operations

func (s *Storage) CreateMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, matchKey(match.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrMatchExists
	}
	return s.indexParticipants(ctx, match)
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) MatchExists(ctx context.Context, id model.MatchID) (bool, error) {
	n, err := s.client.Exists(ctx, matchKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateMatch runs fn under an optimistic WATCH/MULTI/EXEC transaction so
// check-then-act sequences (capacity, role exclusivity, terminal status)
// cannot interleave with concurrent mutations of the same match.
func (s *Storage) UpdateMatch(ctx context.Context, id model.MatchID, fn func(*model.Match) error) (*model.Match, error) {
	key := matchKey(id)

	var updated *model.Match
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrMatchNotFound
			}
			return err
		}

		var match model.Match
		if err := json.Unmarshal(data, &match); err != nil {
			return err
		}

		if err := fn(&match); err != nil {
			return err
		}

		out, err := json.Marshal(&match)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			for i := range match.Participants {
				pipe.SAdd(ctx, playerMatchesKey(match.Participants[i].Username), string(match.ID))
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = &match
		return nil
	}

	for i := 0; i < updateMatchRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, redis.TxFailedErr
}

func (s *Storage) MatchesForPlayer(ctx context.Context, username model.Username) ([]*model.Match, error) {
	ids, err := s.client.SMembers(ctx, playerMatchesKey(username)).Result()
	if err != nil {
		return nil, err
	}

	matches := make([]*model.Match, 0, len(ids))
	for _, id := range ids {
		match, err := s.GetMatch(ctx, model.MatchID(id))
		if err != nil {
			if errors.Is(err, model.ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, match)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// indexParticipants adds username -> match id index entries
func (s *Storage) indexParticipants(ctx context.Context, match *model.Match) error {
	if len(match.Participants) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for i := range match.Participants {
		pipe.SAdd(ctx, playerMatchesKey(match.Participants[i].Username), string(match.ID))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Catalog operations

func (s *Storage) SaveIcon(ctx context.Context, icon *model.Icon) error {
	data, err := json.Marshal(icon)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, iconKey(icon.ID), data, 0)
	pipe.SAdd(ctx, iconsIndexKey(), strconv.FormatInt(icon.ID, 10))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetIcon(ctx context.Context, id int64) (*model.Icon, error) {
	data, err := s.client.Get(ctx, iconKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrIconNotFound
		}
		return nil, err
	}

	var icon model.Icon
	if err := json.Unmarshal(data, &icon); err != nil {
		return nil, err
	}
	return &icon, nil
}

func (s *Storage) ListIcons(ctx context.Context) ([]*model.Icon, error) {
	ids, err := s.client.SMembers(ctx, iconsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	icons := make([]*model.Icon, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		icon, err := s.GetIcon(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrIconNotFound) {
				continue
			}
			return nil, err
		}
		icons = append(icons, icon)
	}
	sort.Slice(icons, func(i, j int) bool { return icons[i].ID < icons[j].ID })
	return icons, nil
}

func (s *Storage) SaveAchievement(ctx context.Context, achievement *model.Achievement) error {
	data, err := json.Marshal(achievement)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, achievementKey(achievement.ID), data, 0)
	pipe.SAdd(ctx, achievementsIndexKey(), strconv.FormatInt(achievement.ID, 10))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAchievement(ctx context.Context, id int64) (*model.Achievement, error) {
	data, err := s.client.Get(ctx, achievementKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAchievementNotFound
		}
		return nil, err
	}

	var achievement model.Achievement
	if err := json.Unmarshal(data, &achievement); err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (s *Storage) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	ids, err := s.client.SMembers(ctx, achievementsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	achievements := make([]*model.Achievement, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		achievement, err := s.GetAchievement(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrAchievementNotFound) {
				continue
			}
			return nil, err
		}
		achievements = append(achievements, achievement)
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].ID < achievements[j].ID })
	return achievements, nil
}

// Achievement grant operations

func (s *Storage) CreateGrant(ctx context.Context, grant *model.AchievementGrant) error {
	data, err := json.Marshal(grant)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, grantKey(grant.Username, grant.AchievementID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAchievementGranted
	}
	return s.client.SAdd(ctx, playerGrantsKey(grant.Username), strconv.FormatInt(grant.AchievementID, 10)).Err()
}

func (s *Storage) GrantsForPlayer(ctx context.Context, username model.Username) ([]*model.AchievementGrant, error) {
	ids, err := s.client.SMembers(ctx, playerGrantsKey(username)).Result()
	if err != nil {
		return nil, err
	}

	grants := make([]*model.AchievementGrant, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		data, err := s.client.Get(ctx, grantKey(username, id)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var grant model.AchievementGrant
		if err := json.Unmarshal(data, &grant); err != nil {
			return nil, err
		}
		grants = append(grants, &grant)
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].AchievementID < grants[j].AchievementID })
	return grants, nil
}
