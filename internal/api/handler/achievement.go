package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/minewars/sessiontrack/internal/api/request"
	"github.com/minewars/sessiontrack/internal/api/response"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/catalog"
)

// AchievementHandler handles achievement catalog and grant endpoints
type AchievementHandler struct {
	catalogService *catalog.Service
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(catalogService *catalog.Service) *AchievementHandler {
	return &AchievementHandler{
		catalogService: catalogService,
	}
}

// Grant handles POST /achievements/AddPlayerAchievement
func (h *AchievementHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.AchievementID == 0 {
		WriteError(w, NewInvalidRequestError("achievement_id is required"))
		return
	}

	_, err := h.catalogService.GrantAchievement(r.Context(), model.Username(req.Username), req.AchievementID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "Achievement added to player successfully"})
}

// PlayerAchievements handles GET /achievements/GetPlayerAchievements?username=
func (h *AchievementHandler) PlayerAchievements(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	achievements, err := h.catalogService.PlayerAchievements(r.Context(), model.Username(username))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AchievementsFromModel(achievements))
}

// Catalog handles GET /achievements/GetAllAchievements?id=
func (h *AchievementHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			WriteError(w, NewInvalidRequestError("id must be an integer"))
			return
		}
		achievement, err := h.catalogService.Achievement(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, []response.Achievement{response.AchievementFromModel(achievement)})
		return
	}

	achievements, err := h.catalogService.Achievements(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AchievementsFromModel(achievements))
}
