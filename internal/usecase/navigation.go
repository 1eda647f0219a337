package usecase

import (
	"fmt"
	"time"

	"github.com/scorehub/scorehub/internal/domain/competition"
)

// View names the single leaf currently rendered. Exactly one view is active
// for any NavigationState.
type View string

const (
	ViewError         View = "error"
	ViewPlayer        View = "player"
	ViewTeam          View = "team"
	ViewMatch         View = "match"
	ViewCompetition   View = "competition"
	ViewSearch        View = "search"
	ViewMatchesByDate View = "matches_by_date"
	ViewCountry       View = "country"
	ViewHome          View = "home"
	ViewRegion        View = "region"
)

// NavigationState is the complete description of where the user is. It is a
// value type: every transition takes the old state and returns the new one,
// so transitions stay pure and testable without any I/O.
//
// ID fields use zero as "not selected"; upstream ids are always positive.
type NavigationState struct {
	ContinentID int64                    `json:"continentId,omitempty"`
	CountryID   int64                    `json:"countryId,omitempty"`
	Competition *competition.Competition `json:"competition,omitempty"`
	MatchID     int64                    `json:"matchId,omitempty"`
	TeamID      int64                    `json:"teamId,omitempty"`
	PlayerID    int64                    `json:"playerId,omitempty"`
	Query       string                   `json:"query,omitempty"`
	MatchesView bool                     `json:"matchesView"`
	// Date is the day-view date as YYYY-MM-DD.
	Date string `json:"date,omitempty"`
}

// ActiveView resolves the rendered leaf. The precedence is a fixed total
// order: error, player, team, match, competition, search, day view, country,
// home, region drill-down. First hit wins.
func (n NavigationState) ActiveView(hasError bool) View {
	switch {
	case hasError:
		return ViewError
	case n.PlayerID != 0:
		return ViewPlayer
	case n.TeamID != 0:
		return ViewTeam
	case n.MatchID != 0:
		return ViewMatch
	case n.Competition != nil:
		return ViewCompetition
	case n.Query != "":
		return ViewSearch
	case n.MatchesView:
		return ViewMatchesByDate
	case n.CountryID != 0:
		return ViewCountry
	case n.ContinentID == 0:
		return ViewHome
	default:
		return ViewRegion
	}
}

func (n NavigationState) clearDetails() NavigationState {
	n.Competition = nil
	n.MatchID = 0
	n.TeamID = 0
	n.PlayerID = 0
	return n
}

// SelectContinent enters a region drill-down at the continent level.
func (n NavigationState) SelectContinent(id int64) NavigationState {
	n = n.clearDetails()
	n.Query = ""
	n.ContinentID = id
	n.CountryID = 0
	n.MatchesView = false
	return n
}

// SelectTopCountry jumps straight to a country from the home shortcuts.
// The continent stays unset; back from the country list lands on Home.
func (n NavigationState) SelectTopCountry(id int64) NavigationState {
	n = n.clearDetails()
	n.Query = ""
	n.ContinentID = 0
	n.CountryID = id
	n.MatchesView = false
	return n
}

// SelectCountry drills one level deeper inside an already-selected continent.
func (n NavigationState) SelectCountry(id int64) NavigationState {
	n.CountryID = id
	return n
}

// SelectCompetition opens a competition from a country list or from search.
// continentID is the parent area of the competition's country, resolved by
// the caller; it back-fills the drill-down so Back lands on the right region
// level instead of Home.
func (n NavigationState) SelectCompetition(comp competition.Competition, continentID int64) NavigationState {
	n.Query = ""
	if continentID != 0 {
		n.ContinentID = continentID
	}
	n.CountryID = comp.Area.ID
	n.Competition = &comp
	return n
}

// SelectFeaturedCompetition opens a competition from the unfiltered home
// list. Region context is cleared on purpose so Back returns to Home.
func (n NavigationState) SelectFeaturedCompetition(comp competition.Competition) NavigationState {
	n = n.clearDetails()
	n.Query = ""
	n.ContinentID = 0
	n.CountryID = 0
	n.MatchesView = false
	n.Competition = &comp
	return n
}

func (n NavigationState) SelectMatch(id int64) NavigationState {
	n.MatchID = id
	return n
}

func (n NavigationState) SelectTeam(id int64) NavigationState {
	n.TeamID = id
	return n
}

func (n NavigationState) SelectPlayer(id int64) NavigationState {
	n.PlayerID = id
	return n
}

// SetQuery updates the search query. A non-empty query suppresses the region
// and competition navigation until cleared.
func (n NavigationState) SetQuery(query string) NavigationState {
	n.Query = query
	return n
}

// SelectMatches switches to the by-date view, defaulting to today.
func (n NavigationState) SelectMatches(now time.Time) NavigationState {
	n = n.clearDetails()
	n.Query = ""
	n.ContinentID = 0
	n.CountryID = 0
	n.MatchesView = true
	if n.Date == "" {
		n.Date = LocalDate(now)
	}
	return n
}

func (n NavigationState) SelectDate(date string) NavigationState {
	n.Date = date
	return n
}

// GoHome clears every selection and returns to the top-competitions view.
func (n NavigationState) GoHome() NavigationState {
	n = n.clearDetails()
	n.Query = ""
	n.ContinentID = 0
	n.CountryID = 0
	n.MatchesView = false
	return n
}

// Back pops exactly one level, mirroring the ActiveView precedence: the
// deepest active selection is cleared and nothing else moves.
func (n NavigationState) Back() NavigationState {
	switch {
	case n.PlayerID != 0:
		n.PlayerID = 0
	case n.TeamID != 0:
		n.TeamID = 0
	case n.MatchID != 0:
		n.MatchID = 0
	case n.Competition != nil:
		n.Competition = nil
		n.MatchID = 0
	case n.Query != "":
		n.Query = ""
	case n.MatchesView:
		n.MatchesView = false
	case n.CountryID != 0:
		n.CountryID = 0
	case n.ContinentID != 0:
		n.ContinentID = 0
	}
	return n
}

// LocalDate formats a wall-clock day as YYYY-MM-DD from local components.
// Truncating a UTC timestamp instead would shift the day near midnight in
// the user's timezone.
func LocalDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
