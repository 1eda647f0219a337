package competition

import "sort"

// AreaRef is the country slice of a competition as the upstream embeds it.
type AreaRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

// Competition is a league or tournament. Area always references a
// country-level area.
type Competition struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	Emblem string  `json:"emblem"`
	Area   AreaRef `json:"area"`
}

// FeaturedNames is the curated home-view shortlist, in display order.
var FeaturedNames = []string{
	"UEFA Champions League",
	"Premier League",
	"Serie A",
	"Primera Division",
	"Ligue 1",
	"European Championship",
	"Championship",
	"Eredivisie",
	"Primeira Liga",
	"Copa Libertadores",
	"Campeonato Brasileiro Série A",
}

var featuredRank = func() map[string]int {
	m := make(map[string]int, len(FeaturedNames))
	for i, name := range FeaturedNames {
		m[name] = i
	}
	return m
}()

// Knockout tournaments whose detail view opens on standings because a flat
// match list is useless mid-bracket.
var tournamentNames = map[string]struct{}{
	"Copa Libertadores":     {},
	"UEFA Champions League": {},
	"European Championship": {},
}

var nationalTeamNames = map[string]struct{}{
	"European Championship":            {},
	"FIFA World Cup":                   {},
	"Copa America":                     {},
	"Africa Cup":                       {},
	"UEFA Nations League":              {},
	"WC Qualification CAF":             {},
	"WC Qualification AFC":             {},
	"WC Qualification UEFA":            {},
	"WC Qualification OFC":             {},
	"WC Qualification CONMEBOL":        {},
	"WC Qualification CONCACAF":        {},
	"FIFA Women's World Cup":           {},
	"UEFA Women's Euro":                {},
	"Summer Olympics":                  {},
	"European Championship Qualifiers": {},
}

// Featured picks the shortlist competitions out of the full index, in
// shortlist order.
func Featured(all []Competition) []Competition {
	out := make([]Competition, 0, len(FeaturedNames))
	for _, c := range all {
		if _, ok := featuredRank[c.Name]; ok {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return featuredRank[out[i].Name] < featuredRank[out[j].Name]
	})
	return out
}

// IsTournament reports whether the competition's default detail tab should
// be standings instead of matches.
func IsTournament(name string) bool {
	_, ok := tournamentNames[name]
	return ok
}

// IsNationalTeamCompetition reports whether squads belong to national sides,
// for which per-club drill-down does not apply.
func IsNationalTeamCompetition(name string) bool {
	_, ok := nationalTeamNames[name]
	return ok
}

// AreaIDs collects the distinct country ids that carry at least one indexed
// competition.
func AreaIDs(all []Competition) map[int64]struct{} {
	out := make(map[int64]struct{}, len(all))
	for _, c := range all {
		out[c.Area.ID] = struct{}{}
	}
	return out
}
