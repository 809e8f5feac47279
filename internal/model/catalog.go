package model

import "time"

// Icon is static catalog data referenced by player profiles
type Icon struct {
	ID   int64
	Name string
}

// Achievement is static catalog data
type Achievement struct {
	ID          int64
	Name        string
	Description string
}

// AchievementGrant pairs a player with an achievement.
// At most one grant exists per pair.
type AchievementGrant struct {
	Username      Username
	AchievementID int64
	GrantedAt     time.Time
}
