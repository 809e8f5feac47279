package model

import "time"

// Username uniquely identifies a player across the system.
// It is fixed at registration and never changes.
type Username string

// Gender is an optional demographic field on a player profile
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Player represents a registered account
type Player struct {
	Username Username
	Name     string
	Surname  string

	// Optional demographic fields, zero-valued when unset
	Gender    Gender
	BirthDate string // YYYY-MM-DD
	Age       int
	Address   string
	Email     string

	// PasswordHash is a bcrypt hash; the cleartext is never stored
	PasswordHash string

	// IconID references a catalog icon, 0 when unset
	IconID int64

	CreatedAt time.Time
}
