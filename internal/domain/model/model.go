// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"

	"github.com/hoopsight/hoopsight/internal/domain/types"
)

// TeamStats aggregates five players' averages into one team line.
// Sums for counting stats; shooting percentages are means over players
// with a non-zero percentage (0 when no player has data).
type TeamStats struct {
	Points        float64 `json:"pts"`
	FieldGoalPct  float64 `json:"fg_pct"`
	ThreePointPct float64 `json:"fg3_pct"`
	Rebounds      float64 `json:"reb"`
	Assists       float64 `json:"ast"`
	Turnovers     float64 `json:"tov"`
	Steals        float64 `json:"stl"`
	Blocks        float64 `json:"blk"`
}

// SynergyProfile holds the seven lineup synergy sub-scores plus their sum.
type SynergyProfile struct {
	Spacing      float64 `json:"spacing"`
	Playmaking   float64 `json:"playmaking"`
	Rebounding   float64 `json:"rebounding"`
	Defense      float64 `json:"defense"`
	BallMovement float64 `json:"ball_movement"`
	Size         float64 `json:"size"`
	Balance      float64 `json:"balance"`
	Total        float64 `json:"total"`
}

// TeamComparison is one side of a lineup matchup.
type TeamComparison struct {
	Lineup    types.Lineup   `json:"lineup"`
	Stats     TeamStats      `json:"stats"`
	Synergies SynergyProfile `json:"synergies"`
}

// Comparison pairs both sides of a matchup. Transient; rebuilt per request.
type Comparison struct {
	Team1 TeamComparison `json:"team1"`
	Team2 TeamComparison `json:"team2"`
}

// Outcome is the predictor's verdict for one matchup.
type Outcome struct {
	Team1Score   int     `json:"team1_score"`
	Team2Score   int     `json:"team2_score"`
	Team1WinProb float64 `json:"team1_win_prob"`
	Team2WinProb float64 `json:"team2_win_prob"`
	Winner       int     `json:"winner"` // 1 or 2, by higher predicted score
	Confidence   float64 `json:"confidence"`
}

// ActualResult is a completed game's outcome attached to a prediction.
type ActualResult struct {
	Winner string `json:"winner"`
	Score  string `json:"score"`
}

// PredictionRecord is the persisted form of one logged prediction.
// Created unchecked; mutated exactly once when reconciled; never deleted.
// JSON tags match the on-disk history file format.
type PredictionRecord struct {
	ID              string        `json:"id"`
	Date            string        `json:"date"` // YYYY-MM-DD game date
	Team1           string        `json:"team1"`
	Team2           string        `json:"team2"`
	Team1Name       string        `json:"team1_name"`
	Team2Name       string        `json:"team2_name"`
	PredictedWinner string        `json:"predicted_winner"`
	PredictedScore  string        `json:"predicted_score"` // formatted "A-B"
	Confidence      float64       `json:"confidence"`
	Timestamp       time.Time     `json:"timestamp"`
	ActualResult    *ActualResult `json:"actual_result"`
	WasCorrect      *bool         `json:"was_correct"`
	Checked         bool          `json:"checked"`
}

// PredictionID derives the record id from the matchup and game date.
// Not globally unique by construction; the store enforces idempotent
// logging per id instead.
func PredictionID(team1, team2, date string) string {
	return fmt.Sprintf("%s_vs_%s_%s", team1, team2, date)
}

// GameResult is a completed game as returned by the external score source.
type GameResult struct {
	Date   string `json:"date"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score  string `json:"score"` // final score "A-B", team1 first
	Winner string `json:"winner"`
}

// DayAccuracy is one calendar day's reconciled accuracy.
type DayAccuracy struct {
	Date     string  `json:"date"`
	Accuracy float64 `json:"accuracy"` // percent, 1 decimal
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
}

// AccuracyStats is fully derived from checked prediction records and
// regenerated wholesale on every aggregator run.
type AccuracyStats struct {
	TotalPredictions   int           `json:"total_predictions"`
	CorrectPredictions int           `json:"correct_predictions"`
	Accuracy           float64       `json:"accuracy"` // percent, 2 decimals
	Last7Days          []DayAccuracy `json:"last_7_days"`
	BestDay            *DayAccuracy  `json:"best_day"`
	WorstDay           *DayAccuracy  `json:"worst_day"`
}

// ReconcileReport summarizes one reconciliation run.
type ReconcileReport struct {
	Checked int `json:"checked_count"`
	Correct int `json:"correct_count"`
}
