package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HOOPSIGHT_CONFIG is set
//  3. env (prefix HOOPSIGHT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HOOPSIGHT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
		}
	}

	// Env keys like HOOPSIGHT_DATA_DIR map to data_dir (flat keys,
	// underscores preserved to match the koanf struct tags).
	envProvider := env.Provider("HOOPSIGHT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "hoopsight_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataDir == "":
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	case c.RosterPath == "":
		return fmt.Errorf("%w: roster_path must not be empty", ErrInvalidConfig)
	case c.ResultsTimeoutMS <= 0:
		return fmt.Errorf("%w: results_timeout_ms must be positive", ErrInvalidConfig)
	case c.MaxSearchResults <= 0:
		return fmt.Errorf("%w: max_search_results must be positive", ErrInvalidConfig)
	case c.HomeCourtBonus < 0:
		return fmt.Errorf("%w: home_court_bonus must not be negative", ErrInvalidConfig)
	}
	return nil
}
