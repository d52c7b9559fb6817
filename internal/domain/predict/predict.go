// Package predict converts a lineup comparison plus a home-court flag
// into a predicted final score, win probabilities, and a confidence.
// Purely numeric; deterministic given its inputs.
package predict

import (
	"math"

	"github.com/hoopsight/hoopsight/internal/domain/model"
)

// Tunable model constants.
const (
	synergyDivisor    = 500.0 // synergy total -> score multiplier
	efficiencyBase    = 0.9
	efficiencyWeight  = 0.2
	defaultHomeBonus  = 3.5 // flat home-court points
	defenseDivisor    = 100.0
	defenseWeight     = 0.1
	scoreDiffWeight   = 2.0
	synergyDiffWeight = 10.0
	sigmoidScale      = 10.0
)

// Option applies a configuration option to the Predictor.
type Option func(*Predictor)

// WithHomeCourtBonus overrides the flat home-court point bonus.
func WithHomeCourtBonus(points float64) Option {
	return func(p *Predictor) {
		if points >= 0 {
			p.homeBonus = points
		}
	}
}

// Predictor computes game outcomes from lineup comparisons.
type Predictor struct {
	homeBonus float64
}

// New creates a Predictor with default model constants.
func New(opts ...Option) *Predictor {
	p := &Predictor{homeBonus: defaultHomeBonus}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict produces the outcome for a comparison. team1Home marks which
// side receives the home-court bonus.
//
// The winner is the side with the higher predicted score; the win
// probabilities come from a logistic over the combined score and
// synergy advantage, and confidence is the larger of the two.
func (p *Predictor) Predict(cmp model.Comparison, team1Home bool) model.Outcome {
	pts1 := projectPoints(cmp.Team1)
	pts2 := projectPoints(cmp.Team2)

	if team1Home {
		pts1 += p.homeBonus
	} else {
		pts2 += p.homeBonus
	}

	// Each side loses a slice of its projection to the opponent's defense.
	pts1 *= 1 - (cmp.Team2.Synergies.Defense/defenseDivisor)*defenseWeight
	pts2 *= 1 - (cmp.Team1.Synergies.Defense/defenseDivisor)*defenseWeight

	scoreDiff := pts1 - pts2
	synergyDiff := cmp.Team1.Synergies.Total - cmp.Team2.Synergies.Total
	advantage := scoreDiff*scoreDiffWeight + synergyDiff/synergyDiffWeight

	prob1 := sigmoid(advantage / sigmoidScale)
	prob2 := 1 - prob1

	winner := 1
	if pts2 > pts1 {
		winner = 2
	}

	return model.Outcome{
		Team1Score:   int(math.Round(pts1)),
		Team2Score:   int(math.Round(pts2)),
		Team1WinProb: prob1,
		Team2WinProb: prob2,
		Winner:       winner,
		Confidence:   math.Max(prob1, prob2),
	}
}

// projectPoints scales a team's summed scoring average by its synergy
// multiplier and shooting efficiency.
func projectPoints(tc model.TeamComparison) float64 {
	synergyMult := 1 + tc.Synergies.Total/synergyDivisor
	efficiency := efficiencyBase + tc.Stats.FieldGoalPct*efficiencyWeight
	return tc.Stats.Points * synergyMult * efficiency
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
