package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrUsernameExists = errors.New("username already exists")

	// Match errors
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchExists   = errors.New("match already exists")
	ErrMatchFinished = errors.New("match is already finished")
	ErrPassRequired  = errors.New("game pass is required for a private match")
	ErrInvalidPass   = errors.New("invalid game pass")
	ErrInvalidTeam   = errors.New("invalid team")

	// Roster errors
	ErrAlreadyInMatch = errors.New("player is already in this match")
	ErrMatchFull      = errors.New("a maximum of 6 players are allowed")
	ErrNotInMatch     = errors.New("player is not part of this match")
	ErrEmptyRoster    = errors.New("no players in this match")

	// Role assignment errors
	ErrInvalidRound = errors.New("invalid round number")
	ErrInvalidRole  = errors.New("invalid role")
	ErrRoleTaken    = errors.New("role is already assigned to another player in this team for this round")

	// Outcome errors
	ErrInvalidResult = errors.New("invalid result")

	// Catalog errors
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrAchievementGranted  = errors.New("player already has this achievement")
	ErrIconNotFound        = errors.New("icon not found")
)
