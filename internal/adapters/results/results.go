// Package results fetches completed game scores from the upstream
// scoreboard API and maps them into domain results. The upstream is a
// black box: an empty day and a transient failure both end up as an
// empty result set at the service layer.
package results

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/teams"
)

// Source retrieves final scores for one calendar date (YYYY-MM-DD).
type Source interface {
	FinalScores(ctx context.Context, date string) ([]model.GameResult, error)
}

// Defaults for the HTTP client.
const (
	defaultBaseURL = "https://api.balldontlie.io/v1"
	defaultTimeout = 10 * time.Second
	perPage        = 100
	statusFinal    = "Final"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAPIKey sets the upstream API key sent as a bearer token.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// Client is the HTTP implementation of Source.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a results client for the given base URL; an empty
// baseURL selects the public API.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wire types for the upstream games endpoint.
type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}

// FinalScores returns every finished game on date. Unfinished games are
// skipped; an empty slice means no completed games that day.
func (c *Client) FinalScores(ctx context.Context, date string) ([]model.GameResult, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("results: invalid date %q: %w", date, err)
	}

	out := make([]model.GameResult, 0)
	page := 1
	for {
		payload, err := c.fetchPage(ctx, date, page)
		if err != nil {
			return nil, err
		}
		for _, g := range payload.Data {
			if g.Status != statusFinal {
				continue
			}
			out = append(out, mapGame(date, g))
		}
		if payload.Meta.TotalPages == 0 || page >= payload.Meta.TotalPages {
			break
		}
		page++
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, date string, page int) (*gamesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("dates[]", date)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("results: fetch %s page %d: %w", date, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("results: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload gamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("results: decode response: %w", err)
	}
	return &payload, nil
}

// mapGame converts a wire game to a domain result. Home team is listed
// first; the winner is reported as a canonical team code.
func mapGame(date string, g gameResponse) model.GameResult {
	home := teams.Canonical(g.HomeTeam.Abbreviation)
	away := teams.Canonical(g.VisitorTeam.Abbreviation)
	winner := home
	if g.VisitorTeamScore > g.HomeTeamScore {
		winner = away
	}
	return model.GameResult{
		Date:   date,
		Team1:  home,
		Team2:  away,
		Score:  fmt.Sprintf("%d-%d", g.HomeTeamScore, g.VisitorTeamScore),
		Winner: winner,
	}
}
