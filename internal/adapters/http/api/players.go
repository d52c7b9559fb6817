// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"math"
	"net/http"
	"strings"

	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// playerSummary is the trimmed list shape for player endpoints.
type playerSummary struct {
	Name string     `json:"name"`
	Team string     `json:"team"`
	Pts  float64    `json:"pts"`
	Type types.Role `json:"type"`
}

type playersResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Players []playerSummary `json:"players"`
}

type playerDetailResponse struct {
	Success bool         `json:"success"`
	Player  playerDetail `json:"player"`
}

type playerDetail struct {
	Name  string     `json:"name"`
	Team  string     `json:"team"`
	Type  types.Role `json:"type"`
	Stats struct {
		Pts     float64 `json:"pts"`
		Reb     float64 `json:"reb"`
		Ast     float64 `json:"ast"`
		FgPct   float64 `json:"fg_pct"`
		Fg3Pct  float64 `json:"fg3_pct"`
		Minutes float64 `json:"minutes"`
	} `json:"stats"`
}

// PlayersHandler handles catalog read requests.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleList handles GET /api/players: every player, best scorers first.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	players := h.deps.Players(r.Context())
	writeJSON(w, http.StatusOK, playersResponse{
		Success: true,
		Count:   len(players),
		Players: summarize(players),
	})
}

// HandleSearch handles GET /api/players/search?q=<name fragment>.
func (h *PlayersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.players_search"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, nil))
		return
	}
	matches := h.deps.SearchPlayers(r.Context(), q)
	writeJSON(w, http.StatusOK, playersResponse{
		Success: true,
		Count:   len(matches),
		Players: summarize(matches),
	})
}

// HandleGet handles GET /api/player/{name}.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/player/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, nil))
		return
	}
	p, ok := h.deps.PlayerByName(r.Context(), name)
	if !ok {
		writeError(w, http.StatusNotFound, "player_not_found", wrap(op, ErrNotFound, nil))
		return
	}

	var detail playerDetail
	detail.Name = p.Name
	detail.Team = p.Team
	detail.Type = p.Role
	detail.Stats.Pts = round1(p.Stats.Points)
	detail.Stats.Reb = round1(p.Stats.Rebounds)
	detail.Stats.Ast = round1(p.Stats.Assists)
	detail.Stats.FgPct = round1(p.Stats.FieldGoalPct * 100)
	detail.Stats.Fg3Pct = round1(p.Stats.ThreePointPct * 100)
	detail.Stats.Minutes = round1(p.Stats.Minutes)
	writeJSON(w, http.StatusOK, playerDetailResponse{Success: true, Player: detail})
}

func summarize(players []types.Player) []playerSummary {
	out := make([]playerSummary, 0, len(players))
	for _, p := range players {
		out = append(out, playerSummary{
			Name: p.Name,
			Team: p.Team,
			Pts:  round1(p.Stats.Points),
			Type: p.Role,
		})
	}
	return out
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
