package request

// RegisterPlayerRequest is the request body for registering a player
type RegisterPlayerRequest struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Surname   string `json:"surname,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"b_date,omitempty"`
	Age       int    `json:"age,omitempty"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password"`
	IconID    int64  `json:"icon_id,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateMatchRequest is the request body for creating a match.
// MatchID is optional: when empty the server generates an identifier.
// GamePass is optional: supplying one makes the match PRIVATE.
type CreateMatchRequest struct {
	MatchID  string `json:"match_id,omitempty"`
	GamePass string `json:"game_pass,omitempty"`
}

// AddPlayerToMatchRequest is the request body for joining a match
type AddPlayerToMatchRequest struct {
	Username string `json:"username"`
	MatchID  string `json:"match_id"`
	Team     string `json:"team"`
	GamePass string `json:"game_pass,omitempty"`
}

// ChangePlayerRoleRequest is the request body for assigning a round role
type ChangePlayerRoleRequest struct {
	Username string `json:"username"`
	MatchID  string `json:"match_id"`
	Round    int    `json:"round"`
	Role     string `json:"role"`
}

// EndGameRequest is the request body for resolving a match
type EndGameRequest struct {
	MatchID string `json:"match_id"`
	Team    string `json:"team"`
	Result  string `json:"win_or_lose"`
}

// AddPlayerAchievementRequest is the request body for granting an achievement
type AddPlayerAchievementRequest struct {
	Username      string `json:"username"`
	AchievementID int64  `json:"achievement_id"`
}
