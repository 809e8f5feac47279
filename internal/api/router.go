package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/minewars/sessiontrack/internal/api/handler"
	"github.com/minewars/sessiontrack/internal/api/middleware"
	"github.com/minewars/sessiontrack/internal/services/catalog"
	"github.com/minewars/sessiontrack/internal/services/identity"
	"github.com/minewars/sessiontrack/internal/services/match"
	"github.com/minewars/sessiontrack/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	IdentityService *identity.Service
	MatchController *match.Controller
	CatalogService  *catalog.Service
	StatsService    *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.IdentityService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController)
	achievementHandler := handler.NewAchievementHandler(cfg.CatalogService)
	iconHandler := handler.NewIconHandler(cfg.CatalogService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Player registry routes
	players := r.PathPrefix("/players").Subrouter()
	players.HandleFunc("/RegisterPlayer", playerHandler.Register).Methods(http.MethodPost)
	players.HandleFunc("/LoginPlayer", playerHandler.Login).Methods(http.MethodPost)
	players.HandleFunc("/GetPlayer", playerHandler.Get).Methods(http.MethodGet)

	// Match lifecycle routes
	games := r.PathPrefix("/games").Subrouter()
	games.HandleFunc("/CreateMatch", matchHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/GetMatch", matchHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/AddPlayerToMatch", matchHandler.AddPlayer).Methods(http.MethodPost)
	games.HandleFunc("/GetMatchPlayers", matchHandler.Players).Methods(http.MethodGet)
	games.HandleFunc("/ChangePlayerRole", matchHandler.ChangeRole).Methods(http.MethodPut)
	games.HandleFunc("/EndGame", matchHandler.End).Methods(http.MethodPut)

	// Achievement routes
	achievements := r.PathPrefix("/achievements").Subrouter()
	achievements.HandleFunc("/AddPlayerAchievement", achievementHandler.Grant).Methods(http.MethodPost)
	achievements.HandleFunc("/GetPlayerAchievements", achievementHandler.PlayerAchievements).Methods(http.MethodGet)
	achievements.HandleFunc("/GetAllAchievements", achievementHandler.Catalog).Methods(http.MethodGet)

	// Icon routes
	icons := r.PathPrefix("/icons").Subrouter()
	icons.HandleFunc("/GetIcon", iconHandler.Get).Methods(http.MethodGet)

	// Stats routes
	statsRoutes := r.PathPrefix("/stats").Subrouter()
	statsRoutes.HandleFunc("/GetPlayerStats/{username}", statsHandler.PlayerStats).Methods(http.MethodGet)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
