package service_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/hoopsight/hoopsight/internal/adapters/repository"
	"github.com/hoopsight/hoopsight/internal/adapters/roster"
	app "github.com/hoopsight/hoopsight/internal/app"
	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/types"
	"github.com/hoopsight/hoopsight/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	_ = logger.SetLevelString("error")
	os.Exit(m.Run())
}

// fixedClock pins "now" so that reconciliation always targets
// yesterday = 2025-01-15.
func fixedClock() time.Time {
	return time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC)
}

type stubSource struct {
	games   []model.GameResult
	err     error
	gotDate string
}

func (s *stubSource) FinalScores(ctx context.Context, date string) ([]model.GameResult, error) {
	s.gotDate = date
	if s.err != nil {
		return nil, s.err
	}
	return s.games, nil
}

func testCatalog() *roster.Catalog {
	names := []string{
		"L1", "L2", "L3", "L4", "L5",
		"G1", "G2", "G3", "G4", "G5",
	}
	players := make([]types.Player, 0, len(names))
	for i, n := range names {
		players = append(players, types.Player{
			Name: n,
			Role: types.RoleScorer,
			Stats: types.StatLine{
				Points:       float64(30 - i),
				FieldGoalPct: 0.45,
				Rebounds:     5,
			},
		})
	}
	return roster.FromPlayers(players)
}

func newService(t *testing.T, opts ...app.Option) (*app.Service, *stubSource) {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	source := &stubSource{}
	base := []app.Option{
		app.WithCatalog(testCatalog()),
		app.WithStore(store),
		app.WithResultSource(source),
		app.WithClock(fixedClock),
	}
	return app.New(append(base, opts...)...), source
}

func TestLogPrediction(t *testing.T) {
	ctx := context.Background()

	Convey("Given a configured service", t, func() {
		svc, _ := newService(t)

		Convey("When a prediction is logged with team nicknames", func() {
			rec, err := svc.LogPrediction(ctx, app.LogRequest{
				Team1:           "Lakers",
				Team2:           "Warriors",
				PredictedWinner: "Lakers",
				PredictedScore:  "115-110",
				Confidence:      0.64,
				GameDate:        "2025-01-15",
			})

			Convey("Then teams are canonicalized and the id is derived", func() {
				So(err, ShouldBeNil)
				So(rec.ID, ShouldEqual, "LAL_vs_GSW_2025-01-15")
				So(rec.Team1, ShouldEqual, "LAL")
				So(rec.Team2, ShouldEqual, "GSW")
				So(rec.PredictedWinner, ShouldEqual, "LAL")
				So(rec.Checked, ShouldBeFalse)
			})

			Convey("Then display names fall back to the raw input", func() {
				So(rec.Team1Name, ShouldEqual, "Lakers")
				So(rec.Team2Name, ShouldEqual, "Warriors")
			})
		})

		Convey("When the game date is omitted", func() {
			rec, err := svc.LogPrediction(ctx, app.LogRequest{
				Team1: "BOS", Team2: "MIA", PredictedWinner: "BOS",
			})

			Convey("Then today's date is used", func() {
				So(err, ShouldBeNil)
				So(rec.Date, ShouldEqual, "2025-01-16")
				So(rec.Timestamp.Equal(fixedClock()), ShouldBeTrue)
			})
		})

		Convey("When the game date is malformed", func() {
			_, err := svc.LogPrediction(ctx, app.LogRequest{
				Team1: "BOS", Team2: "MIA", GameDate: "15/01/2025",
			})

			Convey("Then logging is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid game date")
			})
		})

		Convey("When the same matchup is logged twice on one day", func() {
			req := app.LogRequest{
				Team1: "LAL", Team2: "GSW", PredictedWinner: "LAL",
				Confidence: 0.6, GameDate: "2025-01-15",
			}
			_, err := svc.LogPrediction(ctx, req)
			So(err, ShouldBeNil)
			req.Confidence = 0.8
			_, err = svc.LogPrediction(ctx, req)
			So(err, ShouldBeNil)

			Convey("Then one record remains with the newer values", func() {
				recs, err := svc.Predictions(ctx)
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Confidence, ShouldAlmostEqual, 0.8)
			})
		})
	})

	Convey("Given a service without a store", t, func() {
		svc := app.New(app.WithClock(fixedClock), app.WithLogger(logger.Get()))

		Convey("Then logging reports the missing dependency", func() {
			_, err := svc.LogPrediction(ctx, app.LogRequest{Team1: "BOS", Team2: "MIA"})
			So(errors.Is(err, app.ErrNotConfigured), ShouldBeTrue)
		})
	})
}

func TestPredictAndLog(t *testing.T) {
	ctx := context.Background()
	lineup1 := types.Lineup{"L1", "L2", "L3", "L4", "L5"}
	lineup2 := types.Lineup{"G1", "G2", "G3", "G4", "G5"}

	Convey("Given a configured service", t, func() {
		svc, _ := newService(t)

		Convey("When a matchup is predicted and logged", func() {
			outcome, cmp, rec, err := svc.PredictAndLog(ctx, lineup1, lineup2, true, app.LogRequest{
				Team1: "LAL", Team2: "GSW", GameDate: "2025-01-15",
			})

			Convey("Then the record reflects the predicted outcome", func() {
				So(err, ShouldBeNil)
				So(outcome.Winner, ShouldBeIn, 1, 2)
				So(cmp.Team1.Synergies.Total, ShouldBeGreaterThan, 0)
				So(rec.PredictedScore, ShouldNotBeEmpty)
				So(rec.Confidence, ShouldAlmostEqual, outcome.Confidence)
				if outcome.Winner == 1 {
					So(rec.PredictedWinner, ShouldEqual, "LAL")
				} else {
					So(rec.PredictedWinner, ShouldEqual, "GSW")
				}
			})

			Convey("Then the record is persisted unchecked", func() {
				recs, err := svc.Predictions(ctx)
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Checked, ShouldBeFalse)
			})
		})

		Convey("When a lineup names an unknown player", func() {
			bad := types.Lineup{"L1", "L2", "L3", "L4", "Nobody"}
			_, _, _, err := svc.PredictAndLog(ctx, bad, lineup2, true, app.LogRequest{
				Team1: "LAL", Team2: "GSW",
			})

			Convey("Then nothing is logged", func() {
				So(err, ShouldNotBeNil)
				recs, err2 := svc.Predictions(ctx)
				So(err2, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})
	})
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	log := func(svc *app.Service, team1, team2, winner string) {
		_, err := svc.LogPrediction(ctx, app.LogRequest{
			Team1: team1, Team2: team2, PredictedWinner: winner,
			PredictedScore: "110-105", Confidence: 0.6, GameDate: "2025-01-15",
		})
		So(err, ShouldBeNil)
	}

	Convey("Given predictions for yesterday's games", t, func() {
		svc, source := newService(t)
		log(svc, "LAL", "GSW", "LAL")
		log(svc, "BOS", "MIA", "MIA")
		source.games = []model.GameResult{
			{Date: "2025-01-15", Team1: "LAL", Team2: "GSW", Winner: "LAL", Score: "120-110"},
			{Date: "2025-01-15", Team1: "MIA", Team2: "BOS", Winner: "BOS", Score: "95-99"},
		}

		Convey("When reconciliation runs", func() {
			report, err := svc.Reconcile(ctx)

			Convey("Then it targets yesterday", func() {
				So(err, ShouldBeNil)
				So(source.gotDate, ShouldEqual, "2025-01-15")
			})

			Convey("Then both predictions settle, matching pairs in either order", func() {
				So(report, ShouldResemble, model.ReconcileReport{Checked: 2, Correct: 1})

				recs, err := svc.Predictions(ctx)
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 2)
				for _, r := range recs {
					So(r.Checked, ShouldBeTrue)
					So(r.ActualResult, ShouldNotBeNil)
					So(r.WasCorrect, ShouldNotBeNil)
				}
				So(*recs[0].WasCorrect, ShouldBeTrue)
				So(*recs[1].WasCorrect, ShouldBeFalse)
				So(recs[1].ActualResult.Winner, ShouldEqual, "BOS")
			})

			Convey("Then the accuracy report is rebuilt and persisted", func() {
				st, err := svc.Stats(ctx)
				So(err, ShouldBeNil)
				So(st.TotalPredictions, ShouldEqual, 2)
				So(st.CorrectPredictions, ShouldEqual, 1)
				So(st.Accuracy, ShouldEqual, 50.0)
				So(st.Last7Days, ShouldHaveLength, 1)
				So(st.Last7Days[0].Date, ShouldEqual, "2025-01-15")
			})

			Convey("Then a second run settles nothing", func() {
				again, err := svc.Reconcile(ctx)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, model.ReconcileReport{})
			})
		})
	})

	Convey("Given a prediction with no matching game", t, func() {
		svc, source := newService(t)
		log(svc, "DEN", "OKC", "DEN")
		source.games = []model.GameResult{
			{Date: "2025-01-15", Team1: "LAL", Team2: "GSW", Winner: "LAL", Score: "120-110"},
		}

		Convey("Then it stays unchecked", func() {
			report, err := svc.Reconcile(ctx)
			So(err, ShouldBeNil)
			So(report, ShouldResemble, model.ReconcileReport{})

			recs, err := svc.Predictions(ctx)
			So(err, ShouldBeNil)
			So(recs[0].Checked, ShouldBeFalse)
		})
	})

	Convey("Given an unavailable score source", t, func() {
		svc, source := newService(t)
		log(svc, "LAL", "GSW", "LAL")
		source.err = errors.New("upstream down")

		Convey("Then reconciliation is a no-op, not an error", func() {
			report, err := svc.Reconcile(ctx)
			So(err, ShouldBeNil)
			So(report, ShouldResemble, model.ReconcileReport{})
		})
	})

	Convey("Given an empty slate", t, func() {
		svc, source := newService(t)
		source.games = nil

		Convey("Then reconciliation reports zero checked", func() {
			report, err := svc.Reconcile(ctx)
			So(err, ShouldBeNil)
			So(report, ShouldResemble, model.ReconcileReport{})
		})
	})
}

func TestPlayerQueries(t *testing.T) {
	ctx := context.Background()

	Convey("Given a configured service", t, func() {
		svc, _ := newService(t, app.WithMaxSearchResults(3))

		Convey("Then Players returns the catalog ranked by points", func() {
			all := svc.Players(ctx)
			So(all, ShouldHaveLength, 10)
			So(all[0].Name, ShouldEqual, "L1")
		})

		Convey("Then SearchPlayers honors the configured cap", func() {
			So(svc.SearchPlayers(ctx, "G"), ShouldHaveLength, 3)
		})

		Convey("Then PlayerByName resolves exact names only", func() {
			p, ok := svc.PlayerByName(ctx, "L3")
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "L3")

			_, ok = svc.PlayerByName(ctx, "l3")
			So(ok, ShouldBeFalse)
		})
	})
}
