// Package teams maps every way a team gets referenced (tricode, full
// name, city, nickname) onto one canonical three-letter code so that
// winner comparisons never depend on which spelling a source used.
package teams

import "strings"

type team struct {
	code     string
	city     string
	nickname string
}

// The 30 NBA franchises. Codes follow the league tricodes.
var franchises = []team{
	{"ATL", "Atlanta", "Hawks"},
	{"BOS", "Boston", "Celtics"},
	{"BKN", "Brooklyn", "Nets"},
	{"CHA", "Charlotte", "Hornets"},
	{"CHI", "Chicago", "Bulls"},
	{"CLE", "Cleveland", "Cavaliers"},
	{"DAL", "Dallas", "Mavericks"},
	{"DEN", "Denver", "Nuggets"},
	{"DET", "Detroit", "Pistons"},
	{"GSW", "Golden State", "Warriors"},
	{"HOU", "Houston", "Rockets"},
	{"IND", "Indiana", "Pacers"},
	{"LAC", "LA", "Clippers"},
	{"LAL", "Los Angeles", "Lakers"},
	{"MEM", "Memphis", "Grizzlies"},
	{"MIA", "Miami", "Heat"},
	{"MIL", "Milwaukee", "Bucks"},
	{"MIN", "Minnesota", "Timberwolves"},
	{"NOP", "New Orleans", "Pelicans"},
	{"NYK", "New York", "Knicks"},
	{"OKC", "Oklahoma City", "Thunder"},
	{"ORL", "Orlando", "Magic"},
	{"PHI", "Philadelphia", "76ers"},
	{"PHX", "Phoenix", "Suns"},
	{"POR", "Portland", "Trail Blazers"},
	{"SAC", "Sacramento", "Kings"},
	{"SAS", "San Antonio", "Spurs"},
	{"TOR", "Toronto", "Raptors"},
	{"UTA", "Utah", "Jazz"},
	{"WAS", "Washington", "Wizards"},
}

// Secondary spellings seen in upstream feeds.
var aliases = map[string]string{
	"LOS ANGELES CLIPPERS": "LAC",
	"PHO":                  "PHX",
	"BRK":                  "BKN",
	"NY":                   "NYK",
	"SA":                   "SAS",
	"GS":                   "GSW",
	"NO":                   "NOP",
	"UTAH":                 "UTA",
	"WSH":                  "WAS",
}

var index = buildIndex()

func buildIndex() map[string]string {
	m := make(map[string]string, len(franchises)*4)
	for _, t := range franchises {
		m[t.code] = t.code
		m[strings.ToUpper(t.nickname)] = t.code
		m[strings.ToUpper(t.city)] = t.code
		m[strings.ToUpper(t.city+" "+t.nickname)] = t.code
	}
	for alias, code := range aliases {
		m[alias] = code
	}
	return m
}

// Normalize resolves any team reference to its canonical code.
// The second return is false when the reference is unknown.
func Normalize(ref string) (string, bool) {
	code, ok := index[strings.ToUpper(strings.TrimSpace(ref))]
	return code, ok
}

// Canonical returns the canonical code for ref, or the trimmed
// uppercased input when the reference is unknown. Unknown references
// still compare equal to themselves, which keeps reconciliation working
// for exhibition or synthetic team labels.
func Canonical(ref string) string {
	if code, ok := Normalize(ref); ok {
		return code
	}
	return strings.ToUpper(strings.TrimSpace(ref))
}

// Same reports whether two team references name the same franchise
// after canonicalization.
func Same(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
