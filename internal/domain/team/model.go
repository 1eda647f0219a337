package team

import (
	"github.com/scorehub/scorehub/internal/domain/competition"
	"github.com/scorehub/scorehub/internal/domain/match"
)

// CompetitionTeam is the listing shape returned for a competition's clubs.
type CompetitionTeam struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName,omitempty"`
	TLA        string `json:"tla,omitempty"`
	Crest      string `json:"crest"`
	Address    string `json:"address,omitempty"`
	Website    string `json:"website,omitempty"`
	Founded    int    `json:"founded,omitempty"`
	ClubColors string `json:"clubColors,omitempty"`
	Venue      string `json:"venue,omitempty"`
}

type Coach struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

type SquadMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	ShirtNumber *int   `json:"shirtNumber"`
}

// Detail is the full on-demand team record.
type Detail struct {
	CompetitionTeam
	RunningCompetitions []competition.Competition `json:"runningCompetitions"`
	Coach               Coach                     `json:"coach"`
	Squad               []SquadMember             `json:"squad"`
}

// Person is a player detail record.
type Person struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FirstName   string  `json:"firstName,omitempty"`
	LastName    string  `json:"lastName,omitempty"`
	DateOfBirth string  `json:"dateOfBirth"`
	Nationality string  `json:"nationality"`
	Position    string  `json:"position"`
	ShirtNumber *int    `json:"shirtNumber"`
	CurrentTeam *Detail `json:"currentTeam,omitempty"`
}

// Head2Head aggregates the historical record between the two sides of a
// match, plus the matches themselves.
type Head2Head struct {
	Aggregates H2HAggregates `json:"aggregates"`
	Matches    []match.Match `json:"matches"`
}

type H2HAggregates struct {
	NumberOfMatches int     `json:"numberOfMatches"`
	TotalGoals      int     `json:"totalGoals"`
	HomeTeam        H2HTeam `json:"homeTeam"`
	AwayTeam        H2HTeam `json:"awayTeam"`
}

type H2HTeam struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
}
