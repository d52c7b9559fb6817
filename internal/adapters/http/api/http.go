// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	app "github.com/hoopsight/hoopsight/internal/app"
	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Compare(ctx context.Context, lineup1, lineup2 types.Lineup) (model.Comparison, error)
	PredictAndLog(ctx context.Context, lineup1, lineup2 types.Lineup, team1Home bool, req app.LogRequest) (model.Outcome, model.Comparison, model.PredictionRecord, error)
	Predictions(ctx context.Context) ([]model.PredictionRecord, error)
	Reconcile(ctx context.Context) (model.ReconcileReport, error)
	Stats(ctx context.Context) (model.AccuracyStats, error)
	Players(ctx context.Context) []types.Player
	SearchPlayers(ctx context.Context, q string) []types.Player
	PlayerByName(ctx context.Context, name string) (types.Player, bool)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	predictHandler *PredictHandler
	playersHandler *PlayersHandler
	teamsHandler   *TeamsHandler
	historyHandler *HistoryHandler
	statsHandler   *StatsHandler
	checkHandler   *CheckHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		predictHandler: NewPredictHandler(deps),
		playersHandler: NewPlayersHandler(deps),
		teamsHandler:   NewTeamsHandler(deps),
		historyHandler: NewHistoryHandler(deps),
		statsHandler:   NewStatsHandler(deps),
		checkHandler:   NewCheckHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/predict", MetricsMiddleware(s.predictHandler.HandlePredict, "predict"))
	mux.HandleFunc("/api/compare", MetricsMiddleware(s.predictHandler.HandleCompare, "compare"))
	mux.HandleFunc("/api/players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("/api/players/search", MetricsMiddleware(s.playersHandler.HandleSearch, "players_search"))
	mux.HandleFunc("/api/player/", MetricsMiddleware(s.playersHandler.HandleGet, "player"))
	mux.HandleFunc("/api/teams", MetricsMiddleware(s.teamsHandler.HandleTeams, "teams"))
	mux.HandleFunc("/api/predictions-history", MetricsMiddleware(s.historyHandler.HandleHistory, "history"))
	mux.HandleFunc("/api/prediction-stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/check", MetricsMiddleware(s.checkHandler.HandleCheck, "check"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
