package response

import (
	"github.com/minewars/sessiontrack/internal/model"
)

// Player represents a player in API responses. The credential hash is never
// included.
type Player struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Surname   string `json:"surname,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"b_date,omitempty"`
	Age       int    `json:"age,omitempty"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	IconID    int64  `json:"icon_id,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Username:  string(p.Username),
		Name:      p.Name,
		Surname:   p.Surname,
		Gender:    string(p.Gender),
		BirthDate: p.BirthDate,
		Age:       p.Age,
		Address:   p.Address,
		Email:     p.Email,
		IconID:    p.IconID,
	}
}

// RoleSet is the three round role slots of a participant
type RoleSet struct {
	Role1 string `json:"role1,omitempty"`
	Role2 string `json:"role2,omitempty"`
	Role3 string `json:"role3,omitempty"`
}

// Participant represents a roster entry in API responses
type Participant struct {
	Username  string  `json:"username"`
	MatchID   string  `json:"match_id"`
	Team      string  `json:"team"`
	Roles     RoleSet `json:"roles"`
	WinOrLose string  `json:"win_or_lose,omitempty"`
}

// ParticipantFromModel converts a model.Participant
func ParticipantFromModel(matchID model.MatchID, p *model.Participant) Participant {
	return Participant{
		Username: string(p.Username),
		MatchID:  string(matchID),
		Team:     string(p.Team),
		Roles: RoleSet{
			Role1: string(p.Roles[0]),
			Role2: string(p.Roles[1]),
			Role3: string(p.Roles[2]),
		},
		WinOrLose: string(p.Result),
	}
}

// Match represents a match summary in API responses. The game pass is never
// echoed back.
type Match struct {
	MatchID      string        `json:"match_id"`
	Status       string        `json:"status"`
	Visibility   string        `json:"game_type"`
	Participants []Participant `json:"players,omitempty"`
}

// MatchFromModel converts a model.Match
func MatchFromModel(m *model.Match) Match {
	participants := make([]Participant, len(m.Participants))
	for i := range m.Participants {
		participants[i] = ParticipantFromModel(m.ID, &m.Participants[i])
	}
	return Match{
		MatchID:      string(m.ID),
		Status:       string(m.Status),
		Visibility:   string(m.Visibility),
		Participants: participants,
	}
}

// Achievement represents a catalog achievement
type Achievement struct {
	ID          int64  `json:"achieve_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AchievementFromModel converts a model.Achievement
func AchievementFromModel(a *model.Achievement) Achievement {
	return Achievement{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
	}
}

// AchievementsFromModel converts a slice of achievements
func AchievementsFromModel(achievements []*model.Achievement) []Achievement {
	out := make([]Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = AchievementFromModel(a)
	}
	return out
}

// Icon represents a catalog icon
type Icon struct {
	ID   int64  `json:"icon_id"`
	Name string `json:"icon_name"`
}

// IconFromModel converts a model.Icon
func IconFromModel(icon *model.Icon) Icon {
	return Icon{
		ID:   icon.ID,
		Name: icon.Name,
	}
}

// WinLoss holds aggregate outcome counts
type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// PlayerStats is the response for the stats endpoint
type PlayerStats struct {
	Username     string        `json:"username"`
	Achievements []Achievement `json:"achievements"`
	Stats        WinLoss       `json:"stats"`
}

// PlayerStatsFromModel converts a model.PlayerStats
func PlayerStatsFromModel(s *model.PlayerStats) PlayerStats {
	return PlayerStats{
		Username:     string(s.Username),
		Achievements: AchievementsFromModel(s.Achievements),
		Stats: WinLoss{
			Wins:   s.Wins,
			Losses: s.Losses,
		},
	}
}

// Message is a simple human-readable confirmation
type Message struct {
	Message string `json:"message"`
}
