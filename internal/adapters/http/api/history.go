// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/hoopsight/hoopsight/internal/domain/model"
)

type historyResponse struct {
	Success     bool                     `json:"success"`
	Count       int                      `json:"count"`
	Predictions []model.PredictionRecord `json:"predictions"`
}

// HistoryHandler serves the full prediction history.
type HistoryHandler struct {
	deps Dependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps Dependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleHistory handles GET /api/predictions-history.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	const op = "api.history"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	recs, err := h.deps.Predictions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{
		Success:     true,
		Count:       len(recs),
		Predictions: recs,
	})
}
