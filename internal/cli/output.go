package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Match:
		o.printMatch(v)
	case Participant:
		o.printParticipant(v)
	case []Participant:
		o.printParticipants(v)
	case Achievement:
		o.printAchievement(v)
	case []Achievement:
		o.printAchievements(v)
	case Icon:
		o.printIcon(v)
	case []Icon:
		o.printIcons(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case HealthResult:
		o.printHealthResult(v)
	case MessageResult:
		fmt.Println(v.Message)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// RoleSet response type
type RoleSet struct {
	Role1 string `json:"role1,omitempty"`
	Role2 string `json:"role2,omitempty"`
	Role3 string `json:"role3,omitempty"`
}

// Participant response type
type Participant struct {
	Username  string  `json:"username"`
	MatchID   string  `json:"match_id"`
	Team      string  `json:"team"`
	Roles     RoleSet `json:"roles"`
	WinOrLose string  `json:"win_or_lose,omitempty"`
}

// Match response type
type Match struct {
	MatchID    string        `json:"match_id"`
	Status     string        `json:"status"`
	Visibility string        `json:"game_type"`
	Players    []Participant `json:"players,omitempty"`
}

// Achievement response type
type Achievement struct {
	ID          int64  `json:"achieve_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Icon response type
type Icon struct {
	ID   int64  `json:"icon_id"`
	Name string `json:"icon_name"`
}

// WinLoss response type
type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// PlayerStats response type
type PlayerStats struct {
	Username     string        `json:"username"`
	Achievements []Achievement `json:"achievements"`
	Stats        WinLoss       `json:"stats"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// MessageResult response type
type MessageResult struct {
	Message string `json:"message"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.Username)
	if p.Surname != "" {
		fmt.Printf("Name: %s %s\n", p.Name, p.Surname)
	} else {
		fmt.Printf("Name: %s\n", p.Name)
	}
	if p.Email != "" {
		fmt.Printf("Email: %s\n", p.Email)
	}
	if p.BirthDate != "" {
		fmt.Printf("Born: %s\n", p.BirthDate)
	}
	if p.IconID != 0 {
		fmt.Printf("Icon: %d\n", p.IconID)
	}
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.MatchID)
	fmt.Printf("Status: %s\n", m.Status)
	fmt.Printf("Type: %s\n", m.Visibility)
	if len(m.Players) > 0 {
		fmt.Printf("Players (%d):\n", len(m.Players))
		for _, p := range m.Players {
			fmt.Printf("  - %s (%s)%s\n", p.Username, p.Team, formatRoles(p.Roles))
		}
	}
}

func formatRoles(r RoleSet) string {
	roles := ""
	for i, role := range []string{r.Role1, r.Role2, r.Role3} {
		if role != "" {
			roles += fmt.Sprintf(" r%d=%s", i+1, role)
		}
	}
	return roles
}

func (o *Output) printParticipant(p Participant) {
	fmt.Printf("Player: %s\n", p.Username)
	fmt.Printf("Match: %s\n", p.MatchID)
	fmt.Printf("Team: %s\n", p.Team)
	if roles := formatRoles(p.Roles); roles != "" {
		fmt.Printf("Roles:%s\n", roles)
	}
	if p.WinOrLose != "" {
		fmt.Printf("Result: %s\n", p.WinOrLose)
	}
}

func (o *Output) printParticipants(participants []Participant) {
	fmt.Printf("Players (%d):\n", len(participants))
	for _, p := range participants {
		result := ""
		if p.WinOrLose != "" {
			result = " " + p.WinOrLose
		}
		fmt.Printf("  - %s (%s)%s%s\n", p.Username, p.Team, formatRoles(p.Roles), result)
	}
}

func (o *Output) printAchievement(a Achievement) {
	fmt.Printf("Achievement %d: %s\n", a.ID, a.Name)
	if a.Description != "" {
		fmt.Printf("  %s\n", a.Description)
	}
}

func (o *Output) printAchievements(achievements []Achievement) {
	fmt.Printf("Achievements (%d):\n", len(achievements))
	for _, a := range achievements {
		fmt.Printf("  %d: %s\n", a.ID, a.Name)
	}
}

func (o *Output) printIcon(icon Icon) {
	fmt.Printf("Icon %d: %s\n", icon.ID, icon.Name)
}

func (o *Output) printIcons(icons []Icon) {
	fmt.Printf("Icons (%d):\n", len(icons))
	for _, icon := range icons {
		fmt.Printf("  %d: %s\n", icon.ID, icon.Name)
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Player: %s\n", s.Username)
	fmt.Printf("Wins: %d\n", s.Stats.Wins)
	fmt.Printf("Losses: %d\n", s.Stats.Losses)
	fmt.Printf("Achievements (%d):\n", len(s.Achievements))
	for _, a := range s.Achievements {
		fmt.Printf("  %d: %s\n", a.ID, a.Name)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
