package teams_test

import (
	"testing"

	"github.com/hoopsight/hoopsight/internal/domain/teams"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given the canonical reference table", t, func() {
		Convey("Then tricodes resolve to themselves", func() {
			code, ok := teams.Normalize("LAL")
			So(ok, ShouldBeTrue)
			So(code, ShouldEqual, "LAL")
		})

		Convey("Then nicknames, cities, and full names all resolve", func() {
			for _, ref := range []string{"Lakers", "Los Angeles", "Los Angeles Lakers"} {
				code, ok := teams.Normalize(ref)
				So(ok, ShouldBeTrue)
				So(code, ShouldEqual, "LAL")
			}
		})

		Convey("Then lookup ignores case and surrounding whitespace", func() {
			code, ok := teams.Normalize("  golden state warriors ")
			So(ok, ShouldBeTrue)
			So(code, ShouldEqual, "GSW")
		})

		Convey("Then legacy tricodes map through the alias table", func() {
			for alias, want := range map[string]string{
				"PHO": "PHX", "BRK": "BKN", "GS": "GSW", "UTAH": "UTA", "WSH": "WAS",
			} {
				code, ok := teams.Normalize(alias)
				So(ok, ShouldBeTrue)
				So(code, ShouldEqual, want)
			}
		})

		Convey("Then the two Los Angeles franchises stay distinct", func() {
			lac, _ := teams.Normalize("Clippers")
			lal, _ := teams.Normalize("Lakers")
			So(lac, ShouldEqual, "LAC")
			So(lal, ShouldEqual, "LAL")

			full, ok := teams.Normalize("Los Angeles Clippers")
			So(ok, ShouldBeTrue)
			So(full, ShouldEqual, "LAC")
		})

		Convey("Then unknown references fail the lookup", func() {
			_, ok := teams.Normalize("Harlem Globetrotters")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCanonicalAndSame(t *testing.T) {
	Convey("Given mixed team references", t, func() {
		Convey("Then Canonical falls back to the uppercased input", func() {
			So(teams.Canonical("Celtics"), ShouldEqual, "BOS")
			So(teams.Canonical("  scrimmage squad "), ShouldEqual, "SCRIMMAGE SQUAD")
		})

		Convey("Then Same matches across spellings", func() {
			So(teams.Same("Boston", "Celtics"), ShouldBeTrue)
			So(teams.Same("BOS", "Boston Celtics"), ShouldBeTrue)
			So(teams.Same("BOS", "MIA"), ShouldBeFalse)
		})

		Convey("Then unknown labels still compare equal to themselves", func() {
			So(teams.Same("Team 1", "team 1"), ShouldBeTrue)
			So(teams.Same("Team 1", "Team 2"), ShouldBeFalse)
		})
	})
}
