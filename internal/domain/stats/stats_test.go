package stats_test

import (
	"fmt"
	"testing"

	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func checked(date string, correct bool) model.PredictionRecord {
	c := correct
	return model.PredictionRecord{
		ID:         fmt.Sprintf("%s_%v", date, correct),
		Date:       date,
		Checked:    true,
		WasCorrect: &c,
	}
}

func TestAggregate(t *testing.T) {
	Convey("Given no records", t, func() {
		Convey("Then the report is zero-valued", func() {
			out := stats.Aggregate(nil)
			So(out.TotalPredictions, ShouldEqual, 0)
			So(out.Accuracy, ShouldEqual, 0)
			So(out.Last7Days, ShouldBeEmpty)
			So(out.BestDay, ShouldBeNil)
			So(out.WorstDay, ShouldBeNil)
		})
	})

	Convey("Given only unchecked records", t, func() {
		records := []model.PredictionRecord{
			{ID: "p1", Date: "2025-01-10"},
			{ID: "p2", Date: "2025-01-11"},
		}

		Convey("Then they are ignored entirely", func() {
			out := stats.Aggregate(records)
			So(out.TotalPredictions, ShouldEqual, 0)
			So(out.Last7Days, ShouldBeEmpty)
		})
	})

	Convey("Given a mixed three-day history", t, func() {
		records := []model.PredictionRecord{
			checked("2025-01-01", false),
			checked("2025-01-01", false),
			checked("2025-01-02", true),
			checked("2025-01-02", false),
			checked("2025-01-02", false),
			checked("2025-01-03", true),
			checked("2025-01-03", true),
			{ID: "pending", Date: "2025-01-03"},
		}
		out := stats.Aggregate(records)

		Convey("Then the global accuracy rounds to two decimals", func() {
			So(out.TotalPredictions, ShouldEqual, 7)
			So(out.CorrectPredictions, ShouldEqual, 3)
			So(out.Accuracy, ShouldEqual, 42.86)
		})

		Convey("Then the daily series runs most recent first", func() {
			So(out.Last7Days, ShouldHaveLength, 3)
			So(out.Last7Days[0], ShouldResemble, model.DayAccuracy{
				Date: "2025-01-03", Accuracy: 100.0, Correct: 2, Total: 2,
			})
			So(out.Last7Days[1], ShouldResemble, model.DayAccuracy{
				Date: "2025-01-02", Accuracy: 33.3, Correct: 1, Total: 3,
			})
			So(out.Last7Days[2], ShouldResemble, model.DayAccuracy{
				Date: "2025-01-01", Accuracy: 0.0, Correct: 0, Total: 2,
			})
		})

		Convey("Then best and worst days are picked from the window", func() {
			So(out.BestDay, ShouldNotBeNil)
			So(out.BestDay.Date, ShouldEqual, "2025-01-03")
			So(out.WorstDay, ShouldNotBeNil)
			So(out.WorstDay.Date, ShouldEqual, "2025-01-01")
		})
	})

	Convey("Given more than seven distinct days", t, func() {
		var records []model.PredictionRecord
		for d := 1; d <= 10; d++ {
			records = append(records, checked(fmt.Sprintf("2025-01-%02d", d), d%2 == 0))
		}
		out := stats.Aggregate(records)

		Convey("Then the window keeps the seven most recent days", func() {
			So(out.Last7Days, ShouldHaveLength, 7)
			So(out.Last7Days[0].Date, ShouldEqual, "2025-01-10")
			So(out.Last7Days[6].Date, ShouldEqual, "2025-01-04")
		})

		Convey("Then global accuracy still covers all ten days", func() {
			So(out.TotalPredictions, ShouldEqual, 10)
			So(out.CorrectPredictions, ShouldEqual, 5)
			So(out.Accuracy, ShouldEqual, 50.0)
		})
	})

	Convey("Given tied daily accuracies", t, func() {
		records := []model.PredictionRecord{
			checked("2025-02-01", true),
			checked("2025-02-02", true),
			checked("2025-02-03", false),
			checked("2025-02-04", false),
		}
		out := stats.Aggregate(records)

		Convey("Then the first occurrence in the series wins", func() {
			So(out.BestDay.Date, ShouldEqual, "2025-02-02")
			So(out.WorstDay.Date, ShouldEqual, "2025-02-04")
		})
	})
}
