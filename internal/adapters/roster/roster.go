// Package roster loads the player catalog from its JSON dataset and
// serves read-only lookups. The catalog is built once at process start
// and never mutated afterwards, so reads need no locking.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// rawPlayer mirrors one dataset entry: a role tag plus a loosely keyed
// stat bag. Unknown stat keys are ignored; missing ones default to 0.
type rawPlayer struct {
	Team  string             `json:"team"`
	Type  string             `json:"type"`
	Stats map[string]float64 `json:"stats"`
}

// Catalog is the immutable player index.
type Catalog struct {
	byName map[string]types.Player
	byPts  []types.Player // sorted by points descending
}

// Load reads the catalog dataset from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	var raw map[string]rawPlayer
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	players := make([]types.Player, 0, len(raw))
	for name, rp := range raw {
		players = append(players, types.Player{
			Name:  name,
			Team:  rp.Team,
			Role:  types.ParseRole(rp.Type),
			Stats: statLine(rp.Stats),
		})
	}
	return FromPlayers(players), nil
}

// FromPlayers builds a catalog from already-parsed players.
func FromPlayers(players []types.Player) *Catalog {
	c := &Catalog{
		byName: make(map[string]types.Player, len(players)),
		byPts:  make([]types.Player, 0, len(players)),
	}
	for _, p := range players {
		c.byName[p.Name] = p
		c.byPts = append(c.byPts, p)
	}
	sort.Slice(c.byPts, func(i, j int) bool {
		if c.byPts[i].Stats.Points != c.byPts[j].Stats.Points {
			return c.byPts[i].Stats.Points > c.byPts[j].Stats.Points
		}
		return c.byPts[i].Name < c.byPts[j].Name
	})
	return c
}

// Player resolves a name to its catalog entry.
func (c *Catalog) Player(name string) (types.Player, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// All returns every player sorted by scoring average descending.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) All() []types.Player {
	return c.byPts
}

// Search returns up to limit players whose name contains q
// (case-insensitive), sorted by scoring average descending.
func (c *Catalog) Search(q string, limit int) []types.Player {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || limit <= 0 {
		return nil
	}
	var matches []types.Player
	for _, p := range c.byPts {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matches = append(matches, p)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// Len returns the number of players in the catalog.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// Stat keys used by the offline collector's dataset.
const (
	keyPTS              = "PTS"
	keyFGPct            = "FG_PCT"
	keyFG3Pct           = "FG3_PCT"
	keyFTPct            = "FT_PCT"
	keyREB              = "REB"
	keyAST              = "AST"
	keySTL              = "STL"
	keyBLK              = "BLK"
	keyTOV              = "TOV"
	keyMIN              = "MIN"
	keyThreePointThreat = "THREE_POINT_THREAT"
	keyPlaymakingScore  = "PLAYMAKING_SCORE"
	keyDefenseScore     = "DEFENSE_SCORE"
	keyAstRatio         = "AST_RATIO"
	keyUsageRate        = "USAGE_RATE"
	keyScoringVolume    = "SCORING_VOLUME"
)

func statLine(m map[string]float64) types.StatLine {
	return types.StatLine{
		Points:           m[keyPTS],
		FieldGoalPct:     m[keyFGPct],
		ThreePointPct:    m[keyFG3Pct],
		FreeThrowPct:     m[keyFTPct],
		Rebounds:         m[keyREB],
		Assists:          m[keyAST],
		Steals:           m[keySTL],
		Blocks:           m[keyBLK],
		Turnovers:        m[keyTOV],
		Minutes:          m[keyMIN],
		ThreePointThreat: m[keyThreePointThreat],
		PlaymakingScore:  m[keyPlaymakingScore],
		DefenseScore:     m[keyDefenseScore],
		AssistRatio:      m[keyAstRatio],
		UsageRate:        m[keyUsageRate],
		ScoringVolume:    m[keyScoringVolume],
	}
}
