// Package synergy turns a five-player lineup into a team strength
// profile: aggregate stats plus seven heuristic synergy sub-scores.
// Everything in this package is pure and deterministic.
package synergy

import (
	"math"

	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// Thresholds and bonuses for the sub-score formulas.
const (
	threeThreatFloor  = 2.0  // minimum three-point-threat to count as a spacer
	spacingBonusThree = 1.15 // exactly 3 qualifying shooters
	spacingBonusFour  = 1.25 // 4 or more

	scorerSynergyStep = 0.1 // playmaking boost per scorer/shooter

	strongRebounderRPG = 6.0
	reboundBonusTwo    = 1.2
	reboundBonusThree  = 1.35 // replaces, does not compound with, the 1.2

	rimProtectorBLK   = 1.5
	rimProtectBonus   = 1.15
	wingVersatility   = 1.1
	ballDominantUsage = 0.3
	ballMovementBonus = 1.1

	sizePerBig     = 5.0
	twinTowerBonus = 1.3

	balanceScale = 50.0
)

// Profile computes all seven synergy sub-scores for a lineup and their
// unweighted sum.
func Profile(lineup []types.Player) model.SynergyProfile {
	p := model.SynergyProfile{
		Spacing:      spacing(lineup),
		Playmaking:   playmaking(lineup),
		Rebounding:   rebounding(lineup),
		Defense:      defense(lineup),
		BallMovement: ballMovement(lineup),
		Size:         size(lineup),
		Balance:      balance(lineup),
	}
	p.Total = p.Spacing + p.Playmaking + p.Rebounding + p.Defense +
		p.BallMovement + p.Size + p.Balance
	return p
}

// spacing rewards lineups with several credible three-point shooters.
func spacing(lineup []types.Player) float64 {
	threats := 0
	total := 0.0
	for _, p := range lineup {
		if p.Stats.ThreePointThreat > threeThreatFloor {
			threats++
			total += p.Stats.ThreePointThreat
		}
	}
	switch {
	case threats >= 4:
		return total * spacingBonusFour
	case threats == 3:
		return total * spacingBonusThree
	default:
		return total
	}
}

// playmaking sums playmaker scores, amplified when scorers are on the
// floor to benefit from them.
func playmaking(lineup []types.Player) float64 {
	score := 0.0
	playmakers := 0
	scorers := 0
	for _, p := range lineup {
		switch p.Role {
		case types.RolePlaymaker:
			playmakers++
			score += p.Stats.PlaymakingScore
		case types.RoleScorer, types.RoleShooter:
			scorers++
		}
	}
	if playmakers == 0 {
		return 0
	}
	if scorers > 0 {
		return score * (1 + float64(scorers)*scorerSynergyStep)
	}
	return score
}

// rebounding sums boards with a bonus for multiple strong rebounders.
func rebounding(lineup []types.Player) float64 {
	total := 0.0
	strong := 0
	for _, p := range lineup {
		total += p.Stats.Rebounds
		if p.Stats.Rebounds > strongRebounderRPG {
			strong++
		}
	}
	switch {
	case strong >= 3:
		return total * reboundBonusThree
	case strong >= 2:
		return total * reboundBonusTwo
	default:
		return total
	}
}

// defense combines individual defense scores with rim protection and
// wing versatility bonuses; the two bonuses stack multiplicatively.
func defense(lineup []types.Player) float64 {
	score := 0.0
	wings := 0
	bestBigBlocks := -1.0
	hasBig := false
	for _, p := range lineup {
		score += p.Stats.DefenseScore
		switch p.Role {
		case types.RoleBig:
			hasBig = true
			if p.Stats.Blocks > bestBigBlocks {
				bestBigBlocks = p.Stats.Blocks
			}
		case types.RoleWing:
			wings++
		}
	}
	if hasBig && bestBigBlocks >= rimProtectorBLK {
		score *= rimProtectBonus
	}
	if wings >= 2 {
		score *= wingVersatility
	}
	return score
}

// ballMovement scales team assists by the average assist ratio, with a
// bonus when at most one player dominates the ball.
func ballMovement(lineup []types.Player) float64 {
	assists := 0.0
	ratioSum := 0.0
	highUsage := 0
	for _, p := range lineup {
		assists += p.Stats.Assists
		ratioSum += p.Stats.AssistRatio
		if p.Stats.UsageRate > ballDominantUsage {
			highUsage++
		}
	}
	score := assists * (1 + ratioSum/float64(len(lineup)))
	if highUsage <= 1 {
		score *= ballMovementBonus
	}
	return score
}

// size scores interior presence from the number of bigs.
func size(lineup []types.Player) float64 {
	bigs := 0
	for _, p := range lineup {
		if p.Role == types.RoleBig {
			bigs++
		}
	}
	score := float64(bigs) * sizePerBig
	if bigs >= 2 {
		score *= twinTowerBonus
	}
	return score
}

// balance rewards even scoring distribution: 50 / (1 + stddev of the
// five scoring volumes). Population standard deviation.
func balance(lineup []types.Player) float64 {
	n := float64(len(lineup))
	mean := 0.0
	for _, p := range lineup {
		mean += p.Stats.ScoringVolume
	}
	mean /= n
	variance := 0.0
	for _, p := range lineup {
		d := p.Stats.ScoringVolume - mean
		variance += d * d
	}
	variance /= n
	return balanceScale / (1 + math.Sqrt(variance))
}

// TeamStats aggregates raw per-player averages into one team line.
// Counting stats are plain sums. Shooting percentages are means over
// players with a strictly positive percentage; a player with 0 has no
// data and is excluded rather than dragging the mean down. When nobody
// has data the mean is 0.
func TeamStats(lineup []types.Player) model.TeamStats {
	var ts model.TeamStats
	fgSum, fgN := 0.0, 0
	fg3Sum, fg3N := 0.0, 0
	for _, p := range lineup {
		ts.Points += p.Stats.Points
		ts.Rebounds += p.Stats.Rebounds
		ts.Assists += p.Stats.Assists
		ts.Turnovers += p.Stats.Turnovers
		ts.Steals += p.Stats.Steals
		ts.Blocks += p.Stats.Blocks
		if p.Stats.FieldGoalPct > 0 {
			fgSum += p.Stats.FieldGoalPct
			fgN++
		}
		if p.Stats.ThreePointPct > 0 {
			fg3Sum += p.Stats.ThreePointPct
			fg3N++
		}
	}
	if fgN > 0 {
		ts.FieldGoalPct = fgSum / float64(fgN)
	}
	if fg3N > 0 {
		ts.ThreePointPct = fg3Sum / float64(fg3N)
	}
	return ts
}
