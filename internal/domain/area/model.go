package area

import "sort"

// WorldAreaID is the upstream taxonomy root every continent hangs off.
const WorldAreaID int64 = 2267

// Area is one node of the upstream region taxonomy: world, continent or
// country. Areas are immutable once fetched.
type Area struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Flag         string `json:"flag,omitempty"`
	ParentAreaID int64  `json:"parentAreaId,omitempty"`
	ParentArea   string `json:"parentArea,omitempty"`
	ChildAreas   []Area `json:"childAreas,omitempty"`
}

// Regions shown as drill-down entry points are a curated subset: the real
// confederations plus World, minus micro-associations the upstream lists as
// areas but that carry no leagues worth browsing.
var excludedRegionNames = map[string]struct{}{
	"N/C America":       {},
	"Oceania":           {},
	"Arameans Suryoye":  {},
	"Darfur":            {},
	"NF-Board":          {},
	"Occitania":         {},
	"Padania":           {},
	"Provence":          {},
	"Raetia":            {},
	"Sápmi":             {},
	"Southern Cameroon": {},
	"Tamil Eelam":       {},
	"Two Sicilies":      {},
	"West Indies":       {},
	"Africa":            {},
	"Asia":              {},
}

var regionOrder = []string{"Europe", "South America", "World"}

// TopCountryNames is the fixed home-view country shortlist, in display order.
var TopCountryNames = []string{
	"England", "France", "Germany", "Italy", "Netherlands", "Portugal", "Spain", "Brazil",
}

// Continents filters the flat area list down to the browsable region set and
// orders it for display.
func Continents(areas []Area) []Area {
	out := make([]Area, 0, 8)
	for _, a := range areas {
		if a.ParentAreaID != WorldAreaID && a.ID != WorldAreaID {
			continue
		}
		if _, excluded := excludedRegionNames[a.Name]; excluded {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := regionRank(out[i].Name), regionRank(out[j].Name)
		if ri != rj {
			return ri < rj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func regionRank(name string) int {
	for i, ordered := range regionOrder {
		if ordered == name {
			return i
		}
	}
	return len(regionOrder)
}

// TopCountries picks the shortlist countries out of the flat area list,
// preserving shortlist order.
func TopCountries(areas []Area) []Area {
	rank := make(map[string]int, len(TopCountryNames))
	for i, name := range TopCountryNames {
		rank[name] = i
	}

	out := make([]Area, 0, len(TopCountryNames))
	for _, a := range areas {
		if _, ok := rank[a.Name]; ok {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Name] < rank[out[j].Name]
	})
	return out
}

// Featured countries surfaced first inside a region drill-down, keyed by
// continent name. Continents without an entry render a flat list.
var featuredCountryNames = map[string][]string{
	"Europe":        {"England", "France", "Germany", "Italy", "Netherlands", "Portugal", "Spain"},
	"South America": {"Brazil", "Argentina"},
}

// SplitFeatured partitions a region's country list into the continent's
// curated shortlist, in shortlist order, and the rest.
func SplitFeatured(continentName string, countries []Area) (featured, rest []Area) {
	names := featuredCountryNames[continentName]
	if len(names) == 0 {
		return nil, countries
	}

	rank := make(map[string]int, len(names))
	for i, name := range names {
		rank[name] = i
	}

	rest = make([]Area, 0, len(countries))
	for _, c := range countries {
		if _, ok := rank[c.Name]; ok {
			featured = append(featured, c)
		} else {
			rest = append(rest, c)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return rank[featured[i].Name] < rank[featured[j].Name]
	})
	return featured, rest
}

// CountriesWithCompetitions keeps only child areas that actually carry at
// least one indexed competition, sorted by name.
func CountriesWithCompetitions(children []Area, competitionAreaIDs map[int64]struct{}) []Area {
	out := make([]Area, 0, len(children))
	for _, c := range children {
		if _, ok := competitionAreaIDs[c.ID]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindByID does a linear scan; area lists are small and fetched once.
func FindByID(areas []Area, id int64) (Area, bool) {
	for _, a := range areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}
