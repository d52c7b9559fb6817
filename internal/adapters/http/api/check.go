// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// CheckHandler triggers reconciliation against yesterday's results.
type CheckHandler struct {
	deps Dependencies
}

// NewCheckHandler creates a new check handler.
func NewCheckHandler(deps Dependencies) *CheckHandler {
	return &CheckHandler{deps: deps}
}

// HandleCheck handles POST /api/check: settles pending predictions
// against yesterday's final scores and returns the run report.
func (h *CheckHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	const op = "api.check"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	report, err := h.deps.Reconcile(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
