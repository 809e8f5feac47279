package model

import "time"

// MatchID is an opaque caller-facing match identifier
type MatchID string

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusStarted    MatchStatus = "STARTED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusFinished   MatchStatus = "FINISHED"
)

// Visibility controls whether joining a match requires a game pass
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// Team is one of the two sides of a match
type Team string

const (
	Team1 Team = "TEAM1"
	Team2 Team = "TEAM2"
)

// Valid reports whether t is a known team literal
func (t Team) Valid() bool {
	return t == Team1 || t == Team2
}

// Other returns the opposing team
func (t Team) Other() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

// Role is a per-round job a participant can hold
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleMiner   Role = "MINER"
	RoleWarrior Role = "WARRIOR"
)

// Valid reports whether r is a known role literal
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleMiner || r == RoleWarrior
}

// Result is the final outcome recorded on a participant
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLose Result = "LOSE"
)

// Valid reports whether r is a known result literal
func (r Result) Valid() bool {
	return r == ResultWin || r == ResultLose
}

// Opposite returns the complementary result
func (r Result) Opposite() Result {
	if r == ResultWin {
		return ResultLose
	}
	return ResultWin
}

// RoundCount is the number of role slots per participant
const RoundCount = 3

// ValidRound reports whether round is one of the playable round slots
func ValidRound(round int) bool {
	return round >= 1 && round <= RoundCount
}

// Participant is a player's membership in a match.
// Team is fixed at join time; role slots fill one round at a time;
// Result stays empty until the match is resolved.
type Participant struct {
	Username Username
	Team     Team
	Roles    [RoundCount]Role // indexed by round-1, "" when unset
	Result   Result           // "" until the match ends
	JoinedAt time.Time
}

// Role returns the role held in the given round, or "" when unset
func (p *Participant) Role(round int) Role {
	return p.Roles[round-1]
}

// SetRole records the role for the given round, overwriting any prior value
func (p *Participant) SetRole(round int, role Role) {
	p.Roles[round-1] = role
}

// Match is a game session and its roster.
// The roster is embedded so every match-level invariant (capacity,
// membership, role exclusivity, outcome coverage) can be checked and
// updated in a single storage mutation.
type Match struct {
	ID         MatchID
	Status     MatchStatus
	Visibility Visibility

	// PassHash is a bcrypt hash of the game pass, set iff Visibility is PRIVATE
	PassHash string `json:",omitempty"`

	// Participants in join order
	Participants []Participant

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetParticipant returns the roster entry for the given player, or nil
func (m *Match) GetParticipant(username Username) *Participant {
	for i := range m.Participants {
		if m.Participants[i].Username == username {
			return &m.Participants[i]
		}
	}
	return nil
}

// RoleTaken reports whether another participant on the given team already
// holds the role in the given round slot
func (m *Match) RoleTaken(team Team, round int, role Role, except Username) bool {
	for i := range m.Participants {
		p := &m.Participants[i]
		if p.Username == except || p.Team != team {
			continue
		}
		if p.Role(round) == role {
			return true
		}
	}
	return false
}
