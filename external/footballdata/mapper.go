package footballdata

import (
	"time"

	"github.com/scorehub/scorehub/internal/domain/area"
	"github.com/scorehub/scorehub/internal/domain/competition"
	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/domain/standing"
	"github.com/scorehub/scorehub/internal/domain/team"
)

// statusTable folds upstream status strings into the application set.
// Note the upstream spells CANCELED with one L.
var statusTable = map[string]match.Status{
	"SCHEDULED": match.StatusUpcoming,
	"TIMED":     match.StatusUpcoming,
	"IN_PLAY":   match.StatusLive,
	"PAUSED":    match.StatusHalfTime,
	"FINISHED":  match.StatusFullTime,
	"POSTPONED": match.StatusPostponed,
	"SUSPENDED": match.StatusSuspended,
	"CANCELED":  match.StatusCancelled,
}

func mapStatus(upstream string) match.Status {
	if mapped, ok := statusTable[upstream]; ok {
		return mapped
	}
	// Unknown upstream statuses render as not-started rather than failing
	// the whole payload.
	return match.StatusUpcoming
}

func mapMatch(m apiMatch) match.Match {
	status := mapStatus(m.Status)

	var homeScore, awayScore *int
	if m.Score != nil {
		homeScore, awayScore = selectScore(m.Score, status)
	}

	var homePens, awayPens *int
	if m.Score != nil && m.Score.Penalties != nil {
		homePens = m.Score.Penalties.Home
		awayPens = m.Score.Penalties.Away
	}

	out := match.Match{
		ID: m.ID,
		HomeTeam: match.TeamRef{
			ID:   m.HomeTeam.ID,
			Name: m.HomeTeam.Name,
			Logo: m.HomeTeam.Crest,
		},
		AwayTeam: match.TeamRef{
			ID:   m.AwayTeam.ID,
			Name: m.AwayTeam.Name,
			Logo: m.AwayTeam.Crest,
		},
		HomeScore:     homeScore,
		AwayScore:     awayScore,
		HomePenalties: homePens,
		AwayPenalties: awayPens,
		Status:        status,
		Minute:        m.Minute,
		Date:          parseUTCDate(m.UTCDate),
		League:        m.Competition.Name,
	}

	if m.Area != nil {
		out.Area = &match.AreaRef{
			ID:   m.Area.ID,
			Name: m.Area.Name,
			Flag: deref(m.Area.Flag),
		}
	}

	return out
}

// selectScore picks which score slice to surface. Full-time is authoritative
// for terminal and pre-match states; during play the upstream leaves it nil,
// so regular-time is used with half-time as the fallback.
func selectScore(score *apiScore, status match.Status) (*int, *int) {
	if status == match.StatusLive || status == match.StatusHalfTime {
		if score.RegularTime != nil && score.RegularTime.Home != nil {
			return score.RegularTime.Home, score.RegularTime.Away
		}
		if score.HalfTime != nil && score.HalfTime.Home != nil {
			return score.HalfTime.Home, score.HalfTime.Away
		}
		return nil, nil
	}
	if score.FullTime != nil {
		return score.FullTime.Home, score.FullTime.Away
	}
	return nil, nil
}

// inExtraTime reports whether the match is known to run beyond regulation.
func inExtraTime(m apiMatch) bool {
	if mapStatus(m.Status) == match.StatusExtraTime {
		return true
	}
	return m.Score != nil && (m.Score.Duration == "EXTRA_TIME" || m.Score.Duration == "PENALTY_SHOOTOUT")
}

// mapEvents merges goals and bookings into one timeline tagged with the
// owning team, sorted ascending by minute. Same-minute events keep their
// upstream relative order.
func mapEvents(m apiMatch) []match.Event {
	events := make([]match.Event, 0, len(m.Goals)+len(m.Bookings))

	for _, goal := range m.Goals {
		detail := ""
		if goal.Type == "PENALTY" {
			detail = "Penalty"
		}
		events = append(events, match.Event{
			Minute: goal.Minute,
			Type:   match.EventGoal,
			Player: goal.Scorer.Name,
			TeamID: goal.Team.ID,
			Detail: detail,
		})
	}

	for _, booking := range m.Bookings {
		eventType := match.EventRedCard
		if booking.Card == "YELLOW" {
			eventType = match.EventYellowCard
		}
		events = append(events, match.Event{
			Minute: booking.Minute,
			Type:   eventType,
			Player: booking.Player.Name,
			TeamID: booking.Team.ID,
		})
	}

	match.SortEvents(events)
	return events
}

func mapArea(a apiArea) area.Area {
	return area.Area{
		ID:           a.ID,
		Name:         a.Name,
		Code:         a.Code,
		Flag:         deref(a.Flag),
		ParentAreaID: derefInt64(a.ParentAreaID),
		ParentArea:   deref(a.ParentArea),
	}
}

func mapAreaDetail(a apiAreaDetail) area.Area {
	out := mapArea(a.apiArea)
	out.ChildAreas = make([]area.Area, 0, len(a.ChildAreas))
	for _, child := range a.ChildAreas {
		out.ChildAreas = append(out.ChildAreas, mapArea(child))
	}
	return out
}

// mapCompetitions drops competitions without an emblem: they are not
// display-ready, which is not an error.
func mapCompetitions(items []apiCompetition) []competition.Competition {
	out := make([]competition.Competition, 0, len(items))
	for _, item := range items {
		if item.Emblem == nil || *item.Emblem == "" {
			continue
		}
		out = append(out, mapCompetition(item))
	}
	return out
}

func mapCompetition(c apiCompetition) competition.Competition {
	return competition.Competition{
		ID:     c.ID,
		Name:   c.Name,
		Code:   c.Code,
		Emblem: deref(c.Emblem),
		Area: competition.AreaRef{
			ID:   c.Area.ID,
			Name: c.Area.Name,
			Flag: deref(c.Area.Flag),
		},
	}
}

func mapStanding(s apiStanding) standing.Standing {
	out := standing.Standing{
		Stage: s.Stage,
		Type:  s.Type,
		Group: deref(s.Group),
		Table: make([]standing.TableEntry, 0, len(s.Table)),
	}
	for _, row := range s.Table {
		out.Table = append(out.Table, standing.TableEntry{
			Position: row.Position,
			Team: standing.TeamRef{
				ID:    row.Team.ID,
				Name:  row.Team.Name,
				Crest: row.Team.Crest,
			},
			PlayedGames:    row.PlayedGames,
			Won:            row.Won,
			Draw:           row.Draw,
			Lost:           row.Lost,
			Points:         row.Points,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
		})
	}
	return out
}

func mapScorer(s apiScorer) standing.Scorer {
	return standing.Scorer{
		Player: standing.ScorerPlayer{
			ID:          s.Player.ID,
			Name:        s.Player.Name,
			Nationality: s.Player.Nationality,
		},
		Team: standing.TeamRef{
			ID:    s.Team.ID,
			Name:  s.Team.Name,
			Crest: s.Team.Crest,
		},
		Goals:     s.Goals,
		Assists:   s.Assists,
		Penalties: s.Penalties,
	}
}

func mapTeam(t apiTeam) team.CompetitionTeam {
	return team.CompetitionTeam{
		ID:         t.ID,
		Name:       t.Name,
		ShortName:  deref(t.ShortName),
		TLA:        deref(t.TLA),
		Crest:      t.Crest,
		Address:    deref(t.Address),
		Website:    deref(t.Website),
		Founded:    derefInt(t.Founded),
		ClubColors: deref(t.ClubColors),
		Venue:      deref(t.Venue),
	}
}

func mapTeamDetail(t apiTeamDetail) team.Detail {
	out := team.Detail{
		CompetitionTeam:     mapTeam(t.apiTeam),
		RunningCompetitions: make([]competition.Competition, 0, len(t.RunningCompetitions)),
		Squad:               make([]team.SquadMember, 0, len(t.Squad)),
	}
	for _, c := range t.RunningCompetitions {
		out.RunningCompetitions = append(out.RunningCompetitions, mapCompetition(c))
	}
	if t.Coach != nil {
		out.Coach = team.Coach{
			ID:          derefInt64(t.Coach.ID),
			Name:        deref(t.Coach.Name),
			Nationality: deref(t.Coach.Nationality),
		}
	}
	for _, member := range t.Squad {
		out.Squad = append(out.Squad, team.SquadMember{
			ID:          member.ID,
			Name:        member.Name,
			Position:    member.Position,
			DateOfBirth: member.DateOfBirth,
			Nationality: member.Nationality,
			ShirtNumber: member.ShirtNumber,
		})
	}
	return out
}

func mapPerson(p apiPerson) team.Person {
	out := team.Person{
		ID:          p.ID,
		Name:        p.Name,
		FirstName:   p.FirstName,
		LastName:    deref(p.LastName),
		DateOfBirth: p.DateOfBirth,
		Nationality: p.Nationality,
		Position:    p.Position,
		ShirtNumber: p.ShirtNumber,
	}
	if p.CurrentTeam != nil {
		detail := mapTeamDetail(*p.CurrentTeam)
		out.CurrentTeam = &detail
	}
	return out
}

func mapHead2Head(envelope head2HeadEnvelope) team.Head2Head {
	out := team.Head2Head{
		Matches: make([]match.Match, 0, len(envelope.Matches)),
	}
	if envelope.Aggregates != nil {
		out.Aggregates = team.H2HAggregates{
			NumberOfMatches: envelope.Aggregates.NumberOfMatches,
			TotalGoals:      envelope.Aggregates.TotalGoals,
			HomeTeam:        mapH2HSide(envelope.Aggregates.HomeTeam),
			AwayTeam:        mapH2HSide(envelope.Aggregates.AwayTeam),
		}
	}
	for _, m := range envelope.Matches {
		out.Matches = append(out.Matches, mapMatch(m))
	}
	return out
}

func mapH2HSide(side apiH2HSide) team.H2HTeam {
	return team.H2HTeam{
		ID:     side.ID,
		Name:   side.Name,
		Wins:   side.Wins,
		Draws:  side.Draws,
		Losses: side.Losses,
	}
}

func parseUTCDate(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func derefInt64(value *int64) int64 {
	if value == nil {
		return 0
	}
	return *value
}
