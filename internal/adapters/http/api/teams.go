// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"sort"
)

type teamSummary struct {
	Abbreviation string `json:"abbreviation"`
	PlayerCount  int    `json:"player_count"`
}

type teamsResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Teams   []teamSummary `json:"teams"`
}

// TeamsHandler serves the team directory derived from the catalog.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleTeams handles GET /api/teams: every team in the catalog with
// its player count, sorted by abbreviation.
func (h *TeamsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	counts := make(map[string]int)
	for _, p := range h.deps.Players(r.Context()) {
		counts[p.Team]++
	}
	teams := make([]teamSummary, 0, len(counts))
	for abbr, n := range counts {
		teams = append(teams, teamSummary{Abbreviation: abbr, PlayerCount: n})
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Abbreviation < teams[j].Abbreviation
	})
	writeJSON(w, http.StatusOK, teamsResponse{
		Success: true,
		Count:   len(teams),
		Teams:   teams,
	})
}
