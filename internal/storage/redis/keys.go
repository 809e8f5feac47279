package redis

import (
	"fmt"

	"github.com/minewars/sessiontrack/internal/model"
)

// Key prefix for all session-tracker data
const keyPrefix = "mwtrack"

// playerKey returns the Redis key for a Player
func playerKey(username model.Username) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, username)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// playerMatchesKey returns the Redis key for the SET of match ids a player is in
func playerMatchesKey(username model.Username) string {
	return fmt.Sprintf("%s:idx:player_matches:%s", keyPrefix, username)
}

// iconKey returns the Redis key for an Icon
func iconKey(id int64) string {
	return fmt.Sprintf("%s:icon:%d", keyPrefix, id)
}

// iconsIndexKey returns the Redis key for the SET of all icon ids
func iconsIndexKey() string {
	return fmt.Sprintf("%s:idx:icons", keyPrefix)
}

// achievementKey returns the Redis key for an Achievement
func achievementKey(id int64) string {
	return fmt.Sprintf("%s:achievement:%d", keyPrefix, id)
}

// achievementsIndexKey returns the Redis key for the SET of all achievement ids
func achievementsIndexKey() string {
	return fmt.Sprintf("%s:idx:achievements", keyPrefix)
}

// grantKey returns the Redis key for an AchievementGrant
func grantKey(username model.Username, achievementID int64) string {
	return fmt.Sprintf("%s:grant:%s:%d", keyPrefix, username, achievementID)
}

// playerGrantsKey returns the Redis key for the SET of achievement ids granted to a player
func playerGrantsKey(username model.Username) string {
	return fmt.Sprintf("%s:idx:player_grants:%s", keyPrefix, username)
}
