package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/identity"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeMatchNotFound       = "MATCH_NOT_FOUND"
	CodeMatchExists         = "MATCH_EXISTS"
	CodeMatchFinished       = "MATCH_FINISHED"
	CodeGamePassRequired    = "GAME_PASS_REQUIRED"
	CodeInvalidGamePass     = "INVALID_GAME_PASS"
	CodeAlreadyInMatch      = "ALREADY_IN_MATCH"
	CodeMatchFull           = "MATCH_FULL"
	CodeNotInMatch          = "NOT_IN_MATCH"
	CodeEmptyRoster         = "EMPTY_ROSTER"
	CodeInvalidRound        = "INVALID_ROUND"
	CodeInvalidRole         = "INVALID_ROLE"
	CodeInvalidTeam         = "INVALID_TEAM"
	CodeInvalidResult       = "INVALID_RESULT"
	CodeRoleTaken           = "ROLE_TAKEN"
	CodeAchievementNotFound = "ACHIEVEMENT_NOT_FOUND"
	CodeAlreadyGranted      = "ACHIEVEMENT_ALREADY_GRANTED"
	CodeIconNotFound        = "ICON_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists. Please choose a different username."}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrMatchExists):
		return &httpError{http.StatusConflict, APIError{CodeMatchExists, "Match already exists"}}
	case errors.Is(err, model.ErrMatchFinished):
		return &httpError{http.StatusConflict, APIError{CodeMatchFinished, "Match is already finished"}}
	case errors.Is(err, model.ErrPassRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeGamePassRequired, "Game pass is required for a private match"}}
	case errors.Is(err, model.ErrInvalidPass):
		return &httpError{http.StatusForbidden, APIError{CodeInvalidGamePass, "Invalid game pass"}}
	case errors.Is(err, model.ErrAlreadyInMatch):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInMatch, "Player already added to this match"}}
	case errors.Is(err, model.ErrMatchFull):
		return &httpError{http.StatusConflict, APIError{CodeMatchFull, "A maximum of 6 players are allowed in one match"}}
	case errors.Is(err, model.ErrNotInMatch):
		return &httpError{http.StatusNotFound, APIError{CodeNotInMatch, "Player not part of this match"}}
	case errors.Is(err, model.ErrEmptyRoster):
		return &httpError{http.StatusNotFound, APIError{CodeEmptyRoster, "No players found for this match"}}
	case errors.Is(err, model.ErrInvalidRound):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRound, "Invalid round number. Must be 1, 2, or 3."}}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRole, "Role must be MANAGER, MINER, or WARRIOR"}}
	case errors.Is(err, model.ErrInvalidTeam):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTeam, "Team must be TEAM1 or TEAM2"}}
	case errors.Is(err, model.ErrInvalidResult):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidResult, "Result must be WIN or LOSE"}}
	case errors.Is(err, model.ErrRoleTaken):
		return &httpError{http.StatusConflict, APIError{CodeRoleTaken, "Role is already assigned to another player in this team for this round"}}
	case errors.Is(err, model.ErrAchievementNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAchievementNotFound, "Achievement not found"}}
	case errors.Is(err, model.ErrAchievementGranted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyGranted, "Player already has this achievement"}}
	case errors.Is(err, model.ErrIconNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeIconNotFound, "Icon not found"}}

	// Map identity errors
	case errors.Is(err, identity.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
