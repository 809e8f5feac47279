package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/minewars/sessiontrack/internal/api/response"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/stats"
)

// StatsHandler handles aggregate statistics endpoints
type StatsHandler struct {
	statsService *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// PlayerStats handles GET /stats/GetPlayerStats/{username}
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	playerStats, err := h.statsService.PlayerStats(r.Context(), model.Username(username))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(playerStats))
}
