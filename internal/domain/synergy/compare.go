package synergy

import (
	"fmt"
	"strings"

	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// Catalog resolves player names to stat records. Implementations must be
// safe for concurrent reads.
type Catalog interface {
	Player(name string) (types.Player, bool)
}

// MissingPlayersError reports names from one side that did not resolve
// in the catalog. Side is 1 or 2.
type MissingPlayersError struct {
	Side  int
	Names []string
}

func (e *MissingPlayersError) Error() string {
	return fmt.Sprintf("players not found in team %d: %s", e.Side, strings.Join(e.Names, ", "))
}

// Compare resolves both lineups against the catalog and produces the
// paired comparison. It fails with a MissingPlayersError naming every
// unresolved name on the first side that has one; team 1 is reported
// before team 2.
func Compare(catalog Catalog, lineup1, lineup2 types.Lineup) (model.Comparison, error) {
	if err := lineup1.Validate(); err != nil {
		return model.Comparison{}, fmt.Errorf("team 1: %w", err)
	}
	if err := lineup2.Validate(); err != nil {
		return model.Comparison{}, fmt.Errorf("team 2: %w", err)
	}

	players1, err := resolve(catalog, lineup1, 1)
	if err != nil {
		return model.Comparison{}, err
	}
	players2, err := resolve(catalog, lineup2, 2)
	if err != nil {
		return model.Comparison{}, err
	}

	return model.Comparison{
		Team1: model.TeamComparison{
			Lineup:    lineup1,
			Stats:     TeamStats(players1),
			Synergies: Profile(players1),
		},
		Team2: model.TeamComparison{
			Lineup:    lineup2,
			Stats:     TeamStats(players2),
			Synergies: Profile(players2),
		},
	}, nil
}

func resolve(catalog Catalog, lineup types.Lineup, side int) ([]types.Player, error) {
	players := make([]types.Player, 0, len(lineup))
	var missing []string
	for _, name := range lineup {
		p, ok := catalog.Player(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		players = append(players, p)
	}
	if len(missing) > 0 {
		return nil, &MissingPlayersError{Side: side, Names: missing}
	}
	return players, nil
}
