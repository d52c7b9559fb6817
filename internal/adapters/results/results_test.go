package results_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/hoopsight/hoopsight/internal/adapters/results"
	. "github.com/smartystreets/goconvey/convey"
)

type wireTeam struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
}

type wireGame struct {
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	HomeTeam         wireTeam `json:"home_team"`
	VisitorTeam      wireTeam `json:"visitor_team"`
	HomeTeamScore    int      `json:"home_team_score"`
	VisitorTeamScore int      `json:"visitor_team_score"`
}

type wirePage struct {
	Data []wireGame `json:"data"`
	Meta struct {
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
}

func page(totalPages int, games ...wireGame) wirePage {
	p := wirePage{Data: games}
	p.Meta.TotalPages = totalPages
	return p
}

func finalGame(home, away string, homeScore, awayScore int) wireGame {
	return wireGame{
		Date:             "2025-01-15",
		Status:           "Final",
		HomeTeam:         wireTeam{Abbreviation: home},
		VisitorTeam:      wireTeam{Abbreviation: away},
		HomeTeamScore:    homeScore,
		VisitorTeamScore: awayScore,
	}
}

func TestFinalScores(t *testing.T) {
	ctx := context.Background()

	Convey("Given an upstream with one page of games", t, func() {
		var gotAuth, gotDate string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotDate = r.URL.Query().Get("dates[]")
			inProgress := finalGame("BOS", "MIA", 60, 55)
			inProgress.Status = "3rd Qtr"
			_ = json.NewEncoder(w).Encode(page(1,
				finalGame("LAL", "GSW", 120, 110),
				finalGame("DEN", "OKC", 100, 104),
				inProgress,
			))
		}))
		defer srv.Close()

		client := results.NewClient(srv.URL, results.WithAPIKey("secret"))

		Convey("When final scores are fetched", func() {
			games, err := client.FinalScores(ctx, "2025-01-15")

			Convey("Then only finished games come back", func() {
				So(err, ShouldBeNil)
				So(games, ShouldHaveLength, 2)
			})

			Convey("Then the home side is listed first and the winner is canonical", func() {
				So(games[0].Team1, ShouldEqual, "LAL")
				So(games[0].Team2, ShouldEqual, "GSW")
				So(games[0].Winner, ShouldEqual, "LAL")
				So(games[0].Score, ShouldEqual, "120-110")

				So(games[1].Winner, ShouldEqual, "OKC")
				So(games[1].Score, ShouldEqual, "100-104")
			})

			Convey("Then the request carries the date and bearer token", func() {
				So(gotDate, ShouldEqual, "2025-01-15")
				So(gotAuth, ShouldEqual, "Bearer secret")
			})
		})
	})

	Convey("Given a paginated upstream", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, _ := strconv.Atoi(r.URL.Query().Get("page"))
			switch p {
			case 1:
				_ = json.NewEncoder(w).Encode(page(2, finalGame("LAL", "GSW", 120, 110)))
			default:
				_ = json.NewEncoder(w).Encode(page(2, finalGame("BOS", "MIA", 99, 95)))
			}
		}))
		defer srv.Close()

		Convey("Then every page is drained", func() {
			games, err := results.NewClient(srv.URL).FinalScores(ctx, "2025-01-15")
			So(err, ShouldBeNil)
			So(games, ShouldHaveLength, 2)
			So(games[1].Team1, ShouldEqual, "BOS")
		})
	})

	Convey("Given an upstream with no games", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(page(0))
		}))
		defer srv.Close()

		Convey("Then the result is empty, not an error", func() {
			games, err := results.NewClient(srv.URL).FinalScores(ctx, "2025-01-15")
			So(err, ShouldBeNil)
			So(games, ShouldBeEmpty)
		})
	})

	Convey("Given an upstream failure", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		Convey("Then the status and body surface in the error", func() {
			_, err := results.NewClient(srv.URL).FinalScores(ctx, "2025-01-15")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "429")
			So(err.Error(), ShouldContainSubstring, "rate limited")
		})
	})

	Convey("Given a malformed date", t, func() {
		Convey("Then the request is rejected before any call", func() {
			_, err := results.NewClient("http://127.0.0.1:0").FinalScores(ctx, "01/15/2025")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid date")
		})
	})
}
