// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	app "github.com/hoopsight/hoopsight/internal/app"
	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/synergy"
	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// predictRequest mirrors the request body for POST /api/predict and
// POST /api/compare.
type predictRequest struct {
	Team1Lineup []string `json:"team1_lineup"`
	Team2Lineup []string `json:"team2_lineup"`
	Team1Name   string   `json:"team1_name"`
	Team2Name   string   `json:"team2_name"`
	Team1Home   *bool    `json:"team1_home"`
	GameDate    string   `json:"game_date"`
}

func (r predictRequest) lineups() (types.Lineup, types.Lineup, error) {
	l1 := types.Lineup(r.Team1Lineup)
	l2 := types.Lineup(r.Team2Lineup)
	if err := l1.Validate(); err != nil {
		return nil, nil, err
	}
	if err := l2.Validate(); err != nil {
		return nil, nil, err
	}
	return l1, l2, nil
}

// home defaults to team 1 hosting, matching the upstream request shape.
func (r predictRequest) home() bool {
	if r.Team1Home == nil {
		return true
	}
	return *r.Team1Home
}

type predictResponse struct {
	Success    bool                   `json:"success"`
	Outcome    model.Outcome          `json:"outcome"`
	Comparison model.Comparison       `json:"comparison"`
	Prediction model.PredictionRecord `json:"prediction"`
}

// PredictHandler handles prediction and comparison requests.
type PredictHandler struct {
	deps Dependencies
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps Dependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredict handles POST /api/predict: predicts the matchup and
// logs the prediction for later reconciliation.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	const op = "api.predict"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, err))
		return
	}
	l1, l2, err := req.lineups()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, err))
		return
	}

	logReq := app.LogRequest{
		Team1:     teamOrDefault(req.Team1Name, "Team 1"),
		Team2:     teamOrDefault(req.Team2Name, "Team 2"),
		Team1Name: req.Team1Name,
		Team2Name: req.Team2Name,
		GameDate:  req.GameDate,
	}
	outcome, cmp, rec, err := h.deps.PredictAndLog(r.Context(), l1, l2, req.home(), logReq)
	if err != nil {
		writePredictError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, predictResponse{
		Success:    true,
		Outcome:    outcome,
		Comparison: cmp,
		Prediction: rec,
	})
}

// HandleCompare handles POST /api/compare: the comparison alone, with
// no prediction and no side effects.
func (h *PredictHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, err))
		return
	}
	l1, l2, err := req.lineups()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, err))
		return
	}
	cmp, err := h.deps.Compare(r.Context(), l1, l2)
	if err != nil {
		writePredictError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// writePredictError maps domain failures onto HTTP statuses: unknown
// players are the caller's mistake, everything else is ours.
func writePredictError(w http.ResponseWriter, op string, err error) {
	var missing *synergy.MissingPlayersError
	if errors.As(err, &missing) {
		writeError(w, http.StatusNotFound, "player_not_found", err)
		return
	}
	if errors.Is(err, types.ErrLineupSize) || errors.Is(err, types.ErrDuplicatePlayer) {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, ErrInternal, err))
}

// teamOrDefault keeps the upstream behavior of labeling unnamed sides;
// the service canonicalizes whatever we pass.
func teamOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}
