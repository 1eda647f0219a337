package usecase

import (
	"context"
	"sort"

	"github.com/scorehub/scorehub/internal/domain/area"
	"github.com/scorehub/scorehub/internal/domain/competition"
	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/domain/standing"
	"github.com/scorehub/scorehub/internal/domain/team"
	"github.com/scorehub/scorehub/internal/platform/cache"
)

// Snapshot is the read-only view of session state handed to the view layer.
// Only the slices relevant to the active view are populated.
type Snapshot struct {
	Navigation     NavigationState `json:"navigation"`
	ActiveView     View            `json:"activeView"`
	Loading        []string        `json:"loading,omitempty"`
	Error          string          `json:"error,omitempty"`
	Head2HeadError string          `json:"head2HeadError,omitempty"`
	SearchReady    bool            `json:"searchReady"`

	Continents   []area.Area               `json:"continents,omitempty"`
	TopCountries []area.Area               `json:"topCountries,omitempty"`
	Featured     []competition.Competition `json:"featuredCompetitions,omitempty"`

	FeaturedCountries []area.Area               `json:"featuredCountries,omitempty"`
	Countries         []area.Area               `json:"countries,omitempty"`
	Competitions      []competition.Competition `json:"competitions,omitempty"`
	SearchResults     []competition.Competition `json:"searchResults,omitempty"`

	Day         *DaySnapshot         `json:"day,omitempty"`
	Competition *CompetitionSnapshot `json:"competition,omitempty"`
	Match       *match.Match         `json:"match,omitempty"`
	Head2Head   *team.Head2Head      `json:"head2Head,omitempty"`
	Team        *TeamSnapshot        `json:"team,omitempty"`
	Player      *team.Person         `json:"player,omitempty"`
}

// DaySnapshot is the by-date view: the raw sections plus the country/league
// grouping the view renders.
type DaySnapshot struct {
	Date     string               `json:"date"`
	Sections match.Sections       `json:"sections"`
	Groups   []match.CountryGroup `json:"groups"`
}

type CompetitionSnapshot struct {
	Competition     competition.Competition `json:"competition"`
	Tab             CompetitionTab          `json:"tab"`
	IsTournament    bool                    `json:"isTournament"`
	IsNationalTeams bool                    `json:"isNationalTeams"`
	Matches         []match.Match           `json:"matches,omitempty"`
	Standings       []standing.Standing     `json:"standings,omitempty"`
	Teams           []team.CompetitionTeam  `json:"teams,omitempty"`
	Scorers         []standing.Scorer       `json:"scorers,omitempty"`
}

type TeamSnapshot struct {
	Detail  team.Detail   `json:"detail"`
	Matches []match.Match `json:"matches,omitempty"`
}

// Snapshot assembles the current view state. It is the only read path the
// interface layer uses.
func (s *Session) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Snapshot{
		Navigation:     s.nav,
		Error:          s.startupErr,
		Head2HeadError: s.h2hErr,
		SearchReady:    s.index.Ready(),
		Continents:     s.continents,
		TopCountries:   s.topCountries,
		Featured:       s.featured,
	}
	if out.Error == "" {
		out.Error = s.viewErr
	}
	out.ActiveView = s.nav.ActiveView(out.Error != "")

	if len(s.loading) > 0 {
		keys := make([]string, 0, len(s.loading))
		for key := range s.loading {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out.Loading = keys
	}

	switch out.ActiveView {
	case ViewError:
		// Nothing else renders.
	case ViewPlayer:
		if person, ok := cache.Lookup[team.Person](ctx, s.store, "person:"+formatID(s.nav.PlayerID)); ok {
			out.Player = &person
		}
	case ViewTeam:
		if detail, ok := cache.Lookup[team.Detail](ctx, s.store, "team:"+formatID(s.nav.TeamID)); ok {
			snapshot := TeamSnapshot{Detail: detail}
			if matches, ok := cache.Lookup[[]match.Match](ctx, s.store, "team-matches:"+formatID(s.nav.TeamID)); ok {
				snapshot.Matches = matches
			}
			out.Team = &snapshot
		}
	case ViewMatch:
		if s.currentMatch != nil {
			copied := *s.currentMatch
			out.Match = &copied
		}
		if h2h, ok := cache.Lookup[team.Head2Head](ctx, s.store, "h2h:"+formatID(s.nav.MatchID)); ok {
			out.Head2Head = &h2h
		}
	case ViewCompetition:
		comp := *s.nav.Competition
		snapshot := CompetitionSnapshot{
			Competition:     comp,
			Tab:             s.compTab,
			IsTournament:    competition.IsTournament(comp.Name),
			IsNationalTeams: competition.IsNationalTeamCompetition(comp.Name),
		}
		switch s.compTab {
		case TabMatches:
			snapshot.Matches, _ = cache.Lookup[[]match.Match](ctx, s.store, "competition-matches:"+formatID(comp.ID))
		case TabStandings:
			snapshot.Standings, _ = cache.Lookup[[]standing.Standing](ctx, s.store, "standings:"+formatID(comp.ID))
		case TabTeams:
			snapshot.Teams, _ = cache.Lookup[[]team.CompetitionTeam](ctx, s.store, "competition-teams:"+formatID(comp.ID))
		case TabScorers:
			snapshot.Scorers, _ = cache.Lookup[[]standing.Scorer](ctx, s.store, "scorers:"+formatID(comp.ID))
		}
		out.Competition = &snapshot
	case ViewSearch:
		out.SearchResults = s.index.Search(s.nav.Query)
	case ViewMatchesByDate:
		if matches, ok := cache.Lookup[[]match.Match](ctx, s.store, "day-matches:"+s.nav.Date); ok {
			out.Day = &DaySnapshot{
				Date:     s.nav.Date,
				Sections: match.SplitSections(matches),
				Groups:   match.GroupByCountry(matches),
			}
		}
	case ViewCountry:
		out.Competitions, _ = cache.Lookup[[]competition.Competition](ctx, s.store, "competitions:"+formatID(s.nav.CountryID))
	case ViewRegion:
		if countries, ok := cache.Lookup[[]area.Area](ctx, s.store, "countries:"+formatID(s.nav.ContinentID)); ok {
			continentName := ""
			if continent, found := area.FindByID(s.areas, s.nav.ContinentID); found {
				continentName = continent.Name
			}
			out.FeaturedCountries, out.Countries = area.SplitFeatured(continentName, countries)
		}
	case ViewHome:
		// Continents, top countries and featured are always populated.
	}

	return out
}
