package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minewars/sessiontrack/internal/api/request"
	"github.com/minewars/sessiontrack/internal/api/response"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/match"
)

// MatchHandler handles match lifecycle endpoints
type MatchHandler struct {
	matchController *match.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchController *match.Controller) *MatchHandler {
	return &MatchHandler{
		matchController: matchController,
	}
}

// Create handles POST /games/CreateMatch
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body: public match with a generated identifier
		req = request.CreateMatchRequest{}
	}

	m, err := h.matchController.CreateMatch(r.Context(), model.MatchID(req.MatchID), req.GamePass)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// Get handles GET /games/GetMatch?match_id=
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		WriteError(w, NewInvalidRequestError("match_id is required"))
		return
	}

	m, err := h.matchController.GetMatch(r.Context(), model.MatchID(matchID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// AddPlayer handles POST /games/AddPlayerToMatch
func (h *MatchHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerToMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.MatchID == "" {
		WriteError(w, NewInvalidRequestError("match_id is required"))
		return
	}

	participant, err := h.matchController.AddParticipant(
		r.Context(),
		model.MatchID(req.MatchID),
		model.Username(req.Username),
		model.Team(req.Team),
		req.GamePass,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantFromModel(model.MatchID(req.MatchID), participant))
}

// Players handles GET /games/GetMatchPlayers?match_id=
func (h *MatchHandler) Players(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		WriteError(w, NewInvalidRequestError("match_id is required"))
		return
	}

	participants, err := h.matchController.Participants(r.Context(), model.MatchID(matchID))
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Participant, len(participants))
	for i := range participants {
		out[i] = response.ParticipantFromModel(model.MatchID(matchID), &participants[i])
	}
	response.JSON(w, http.StatusOK, out)
}

// ChangeRole handles PUT /games/ChangePlayerRole
func (h *MatchHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePlayerRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.MatchID == "" {
		WriteError(w, NewInvalidRequestError("match_id is required"))
		return
	}

	participant, err := h.matchController.AssignRole(
		r.Context(),
		model.MatchID(req.MatchID),
		model.Username(req.Username),
		req.Round,
		model.Role(req.Role),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantFromModel(model.MatchID(req.MatchID), participant))
}

// End handles PUT /games/EndGame
func (h *MatchHandler) End(w http.ResponseWriter, r *http.Request) {
	var req request.EndGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.MatchID == "" {
		WriteError(w, NewInvalidRequestError("match_id is required"))
		return
	}

	m, err := h.matchController.EndMatch(
		r.Context(),
		model.MatchID(req.MatchID),
		model.Team(req.Team),
		model.Result(req.Result),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{
		Message: fmt.Sprintf("Match %s ended. Team %s set to %s.", m.ID, req.Team, req.Result),
	})
}
