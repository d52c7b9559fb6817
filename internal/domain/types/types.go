// Package types contains common domain types used across the application.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// LineupSize is the number of players in an on-court unit.
const LineupSize = 5

// Role classifies a player's primary function on the floor.
type Role string

// Closed set of player roles. Anything else in source data maps to
// RoleUnclassified.
const (
	RoleScorer       Role = "SCORER"
	RoleShooter      Role = "SHOOTER"
	RolePlaymaker    Role = "PLAYMAKER"
	RoleBig          Role = "BIG"
	RoleWing         Role = "WING"
	RoleUnclassified Role = "UNCLASSIFIED"
)

// ParseRole maps a raw role tag to the closed Role set.
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleScorer:
		return RoleScorer
	case RoleShooter:
		return RoleShooter
	case RolePlaymaker:
		return RolePlaymaker
	case RoleBig:
		return RoleBig
	case RoleWing:
		return RoleWing
	default:
		return RoleUnclassified
	}
}

// StatLine is a player's per-game averages plus derived metrics.
// Every field defaults to 0 when absent from the source dataset; all
// synergy and prediction formulas treat 0 as "no contribution".
type StatLine struct {
	Points        float64 `json:"pts"`
	FieldGoalPct  float64 `json:"fg_pct"`
	ThreePointPct float64 `json:"fg3_pct"`
	FreeThrowPct  float64 `json:"ft_pct"`
	Rebounds      float64 `json:"reb"`
	Assists       float64 `json:"ast"`
	Steals        float64 `json:"stl"`
	Blocks        float64 `json:"blk"`
	Turnovers     float64 `json:"tov"`
	Minutes       float64 `json:"min"`

	// Derived metrics produced by the offline collector.
	ThreePointThreat float64 `json:"three_point_threat"`
	PlaymakingScore  float64 `json:"playmaking_score"`
	DefenseScore     float64 `json:"defense_score"`
	AssistRatio      float64 `json:"ast_ratio"`
	UsageRate        float64 `json:"usage_rate"`
	ScoringVolume    float64 `json:"scoring_volume"`
}

// Player is an immutable catalog entry: identity, team, role, and stats.
type Player struct {
	Name  string   `json:"name"`
	Team  string   `json:"team"`
	Role  Role     `json:"type"`
	Stats StatLine `json:"stats"`
}

// Lineup is an ordered set of exactly five distinct player names.
type Lineup []string

// ErrLineupSize reports a lineup that is not exactly five names.
var ErrLineupSize = errors.New("lineup must contain exactly 5 players")

// ErrDuplicatePlayer reports a repeated name within one lineup.
var ErrDuplicatePlayer = errors.New("duplicate player in lineup")

// Validate enforces the lineup invariants: five names, no duplicates,
// no blank entries.
func (l Lineup) Validate() error {
	if len(l) != LineupSize {
		return fmt.Errorf("%w: got %d", ErrLineupSize, len(l))
	}
	seen := make(map[string]struct{}, LineupSize)
	for _, name := range l {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: got blank name", ErrLineupSize)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
