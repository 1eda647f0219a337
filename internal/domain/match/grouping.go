package match

import "sort"

// Sections splits a match list into the three display buckets, each ordered
// by kickoff.
type Sections struct {
	Live     []Match `json:"live"`
	Upcoming []Match `json:"upcoming"`
	Finished []Match `json:"finished"`
}

func SplitSections(matches []Match) Sections {
	var s Sections
	for _, m := range matches {
		switch {
		case m.Status.InPlay():
			s.Live = append(s.Live, m)
		case m.Status == StatusUpcoming:
			s.Upcoming = append(s.Upcoming, m)
		default:
			s.Finished = append(s.Finished, m)
		}
	}
	byKickoff(s.Live)
	byKickoff(s.Upcoming)
	byKickoff(s.Finished)
	return s
}

func byKickoff(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})
}

// CountryGroup is a day view bucket: one country, its leagues in display
// order, each league's matches.
type CountryGroup struct {
	Country string        `json:"country"`
	Flag    string        `json:"flag,omitempty"`
	Leagues []LeagueGroup `json:"leagues"`
}

type LeagueGroup struct {
	League  string  `json:"league"`
	Matches []Match `json:"matches"`
}

// Big-five-plus ordering for the day view; everything else alphabetical.
var countryDisplayOrder = []string{
	"Spain", "France", "England", "Germany", "Italy", "Netherlands", "Portugal", "Brazil",
}

// England gets its top two flights pinned above the rest.
var englandLeagueOrder = []string{"Premier League", "Championship"}

// GroupByCountry arranges a day's matches by country then league for
// rendering. Matches without an area land under International.
func GroupByCountry(matches []Match) []CountryGroup {
	type bucket struct {
		flag    string
		leagues map[string][]Match
	}
	buckets := make(map[string]*bucket)

	for _, m := range matches {
		country := "International"
		flag := ""
		if m.Area != nil {
			country = m.Area.Name
			flag = m.Area.Flag
		}
		b, ok := buckets[country]
		if !ok {
			b = &bucket{flag: flag, leagues: make(map[string][]Match)}
			buckets[country] = b
		}
		b.leagues[m.League] = append(b.leagues[m.League], m)
	}

	countries := make([]string, 0, len(buckets))
	for name := range buckets {
		countries = append(countries, name)
	}
	sort.Slice(countries, func(i, j int) bool {
		ri, rj := listRank(countryDisplayOrder, countries[i]), listRank(countryDisplayOrder, countries[j])
		if ri != rj {
			return ri < rj
		}
		return countries[i] < countries[j]
	})

	out := make([]CountryGroup, 0, len(countries))
	for _, country := range countries {
		b := buckets[country]

		leagues := make([]string, 0, len(b.leagues))
		for name := range b.leagues {
			leagues = append(leagues, name)
		}
		var pinned []string
		if country == "England" {
			pinned = englandLeagueOrder
		}
		sort.Slice(leagues, func(i, j int) bool {
			ri, rj := listRank(pinned, leagues[i]), listRank(pinned, leagues[j])
			if ri != rj {
				return ri < rj
			}
			return leagues[i] < leagues[j]
		})

		group := CountryGroup{Country: country, Flag: b.flag}
		for _, league := range leagues {
			group.Leagues = append(group.Leagues, LeagueGroup{
				League:  league,
				Matches: b.leagues[league],
			})
		}
		out = append(out, group)
	}
	return out
}

func listRank(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return len(order)
}
