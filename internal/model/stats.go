package model

// PlayerStats aggregates a player's achievements and match outcomes
type PlayerStats struct {
	Username     Username
	Achievements []*Achievement
	Wins         int
	Losses       int
}
