// Package config defines service configuration structures and loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir holds the prediction history and stats files.
	DataDir string `koanf:"data_dir"`

	// RosterPath points at the player catalog JSON dataset.
	RosterPath string `koanf:"roster_path"`

	// ResultsBaseURL overrides the external score API endpoint.
	ResultsBaseURL string `koanf:"results_base_url"`

	// ResultsAPIKey authenticates against the score API when set.
	ResultsAPIKey string `koanf:"results_api_key"`

	// ResultsTimeoutMS bounds a single score-source HTTP call.
	ResultsTimeoutMS int `koanf:"results_timeout_ms"`

	// MaxSearchResults caps GET /api/players/search responses.
	MaxSearchResults int `koanf:"max_search_results"`

	// HomeCourtBonus is the flat point bonus for the home side.
	HomeCourtBonus float64 `koanf:"home_court_bonus"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8090",
		DataDir:          "data",
		RosterPath:       "nba_players_2024-25.json",
		ResultsBaseURL:   "",
		ResultsTimeoutMS: 10_000,
		MaxSearchResults: 10,
		HomeCourtBonus:   3.5,
	}
}
