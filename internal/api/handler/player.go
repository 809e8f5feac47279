package handler

import (
	"encoding/json"
	"net/http"

	"github.com/minewars/sessiontrack/internal/api/request"
	"github.com/minewars/sessiontrack/internal/api/response"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/identity"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	identityService *identity.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(identityService *identity.Service) *PlayerHandler {
	return &PlayerHandler{
		identityService: identityService,
	}
}

// Register handles POST /players/RegisterPlayer
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}
	gender := model.Gender(req.Gender)
	if gender != "" && gender != model.GenderMale && gender != model.GenderFemale {
		WriteError(w, NewInvalidRequestError("gender must be Male or Female"))
		return
	}

	player, err := h.identityService.Register(r.Context(), identity.RegisterInput{
		Username:  model.Username(req.Username),
		Name:      req.Name,
		Surname:   req.Surname,
		Gender:    gender,
		BirthDate: req.BirthDate,
		Age:       req.Age,
		Address:   req.Address,
		Email:     req.Email,
		Password:  req.Password,
		IconID:    req.IconID,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Login handles POST /players/LoginPlayer
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	player, err := h.identityService.Login(r.Context(), model.Username(req.Username), req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Get handles GET /players/GetPlayer?username=
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	player, err := h.identityService.Player(r.Context(), model.Username(username))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
