// Package stats recomputes the running accuracy report from the full
// prediction history. The report is derived state: every run rebuilds
// it from scratch and the result overwrites whatever was stored before.
package stats

import (
	"math"
	"sort"

	"github.com/hoopsight/hoopsight/internal/domain/model"
)

// windowDays is the length of the rolling accuracy window.
const windowDays = 7

// Aggregate computes global accuracy, the rolling 7-day series, and the
// best/worst day from all checked records. Unchecked records are
// ignored. With zero checked records it returns the zero-valued report.
func Aggregate(records []model.PredictionRecord) model.AccuracyStats {
	var out model.AccuracyStats

	type dayCount struct {
		correct int
		total   int
	}
	byDate := make(map[string]*dayCount)

	for _, r := range records {
		if !r.Checked {
			continue
		}
		out.TotalPredictions++
		dc := byDate[r.Date]
		if dc == nil {
			dc = &dayCount{}
			byDate[r.Date] = dc
		}
		dc.total++
		if r.WasCorrect != nil && *r.WasCorrect {
			out.CorrectPredictions++
			dc.correct++
		}
	}

	if out.TotalPredictions > 0 {
		out.Accuracy = round2(float64(out.CorrectPredictions) / float64(out.TotalPredictions) * 100)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Most recent first; ISO dates sort lexicographically.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > windowDays {
		dates = dates[:windowDays]
	}

	for _, d := range dates {
		dc := byDate[d]
		out.Last7Days = append(out.Last7Days, model.DayAccuracy{
			Date:     d,
			Accuracy: round1(float64(dc.correct) / float64(dc.total) * 100),
			Correct:  dc.correct,
			Total:    dc.total,
		})
	}

	// First occurrence wins ties, scanning most-recent-first.
	for i := range out.Last7Days {
		day := out.Last7Days[i]
		if out.BestDay == nil || day.Accuracy > out.BestDay.Accuracy {
			best := day
			out.BestDay = &best
		}
		if out.WorstDay == nil || day.Accuracy < out.WorstDay.Accuracy {
			worst := day
			out.WorstDay = &worst
		}
	}

	return out
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
