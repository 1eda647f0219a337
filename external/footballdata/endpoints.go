package footballdata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/scorehub/scorehub/internal/domain/area"
	"github.com/scorehub/scorehub/internal/domain/competition"
	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/domain/standing"
	"github.com/scorehub/scorehub/internal/domain/team"
)

// Areas fetches the flat upstream region taxonomy.
func (c *Client) Areas(ctx context.Context) ([]area.Area, error) {
	var envelope areasEnvelope
	if err := c.doJSON(ctx, "/areas", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch areas: %w", err)
	}

	out := make([]area.Area, 0, len(envelope.Areas))
	for _, item := range envelope.Areas {
		out = append(out, mapArea(item))
	}
	return out, nil
}

// Area fetches one area including its children.
func (c *Client) Area(ctx context.Context, id int64) (area.Area, error) {
	var detail apiAreaDetail
	if err := c.doJSON(ctx, "/areas/"+formatID(id), nil, &detail); err != nil {
		return area.Area{}, fmt.Errorf("fetch area id=%d: %w", id, err)
	}
	return mapAreaDetail(detail), nil
}

// AllCompetitions fetches the complete competition index used for search and
// the featured shortlist.
func (c *Client) AllCompetitions(ctx context.Context) ([]competition.Competition, error) {
	var envelope competitionsEnvelope
	if err := c.doJSON(ctx, "/competitions", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch competitions: %w", err)
	}
	return mapCompetitions(envelope.Competitions), nil
}

// Competitions fetches the competitions of one country-level area.
func (c *Client) Competitions(ctx context.Context, areaID int64) ([]competition.Competition, error) {
	query := url.Values{"areas": {formatID(areaID)}}
	var envelope competitionsEnvelope
	if err := c.doJSON(ctx, "/competitions", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch competitions area_id=%d: %w", areaID, err)
	}
	return mapCompetitions(envelope.Competitions), nil
}

// CompetitionMatches fetches the current-season match list of a competition.
func (c *Client) CompetitionMatches(ctx context.Context, competitionID int64) ([]match.Match, error) {
	query := url.Values{"competitions": {formatID(competitionID)}}
	var envelope matchesEnvelope
	if err := c.doJSON(ctx, "/matches", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches competition_id=%d: %w", competitionID, err)
	}
	return mapMatches(envelope.Matches), nil
}

// MatchesByDate fetches the worldwide match list for one YYYY-MM-DD day.
func (c *Client) MatchesByDate(ctx context.Context, date string) ([]match.Match, error) {
	query := url.Values{"date": {date}}
	var envelope matchesEnvelope
	if err := c.doJSON(ctx, "/matches", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches date=%s: %w", date, err)
	}
	return mapMatches(envelope.Matches), nil
}

// Match fetches one match with its full event timeline.
func (c *Client) Match(ctx context.Context, id int64) (match.Match, bool, error) {
	var detail apiMatch
	if err := c.doJSON(ctx, "/matches/"+formatID(id), nil, &detail); err != nil {
		return match.Match{}, false, fmt.Errorf("fetch match id=%d: %w", id, err)
	}

	out := mapMatch(detail)
	out.Events = mapEvents(detail)
	return out, inExtraTime(detail), nil
}

// Head2Head fetches the historical record between a match's two sides.
func (c *Client) Head2Head(ctx context.Context, matchID int64) (team.Head2Head, error) {
	var envelope head2HeadEnvelope
	if err := c.doJSON(ctx, "/matches/"+formatID(matchID)+"/head2head", nil, &envelope); err != nil {
		return team.Head2Head{}, fmt.Errorf("fetch head2head match_id=%d: %w", matchID, err)
	}
	return mapHead2Head(envelope), nil
}

// Standings fetches the tables of a competition. Cup competitions without
// tables 404 upstream; that maps to an empty result.
func (c *Client) Standings(ctx context.Context, competitionID int64) ([]standing.Standing, error) {
	var envelope standingsEnvelope
	if err := c.doJSON(ctx, "/competitions/"+formatID(competitionID)+"/standings", nil, &envelope); err != nil {
		if IsNotFound(err) {
			return []standing.Standing{}, nil
		}
		return nil, fmt.Errorf("fetch standings competition_id=%d: %w", competitionID, err)
	}

	out := make([]standing.Standing, 0, len(envelope.Standings))
	for _, item := range envelope.Standings {
		out = append(out, mapStanding(item))
	}
	return out, nil
}

// CompetitionTeams fetches a competition's clubs; a 404 maps to empty.
func (c *Client) CompetitionTeams(ctx context.Context, competitionID int64) ([]team.CompetitionTeam, error) {
	var envelope teamsEnvelope
	if err := c.doJSON(ctx, "/competitions/"+formatID(competitionID)+"/teams", nil, &envelope); err != nil {
		if IsNotFound(err) {
			return []team.CompetitionTeam{}, nil
		}
		return nil, fmt.Errorf("fetch teams competition_id=%d: %w", competitionID, err)
	}

	out := make([]team.CompetitionTeam, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		out = append(out, mapTeam(item))
	}
	return out, nil
}

// Scorers fetches a competition's top scorers; a 404 maps to empty.
func (c *Client) Scorers(ctx context.Context, competitionID int64) ([]standing.Scorer, error) {
	var envelope scorersEnvelope
	if err := c.doJSON(ctx, "/competitions/"+formatID(competitionID)+"/scorers", nil, &envelope); err != nil {
		if IsNotFound(err) {
			return []standing.Scorer{}, nil
		}
		return nil, fmt.Errorf("fetch scorers competition_id=%d: %w", competitionID, err)
	}

	out := make([]standing.Scorer, 0, len(envelope.Scorers))
	for _, item := range envelope.Scorers {
		out = append(out, mapScorer(item))
	}
	return out, nil
}

// Team fetches one club's full record including squad.
func (c *Client) Team(ctx context.Context, id int64) (team.Detail, error) {
	var detail apiTeamDetail
	if err := c.doJSON(ctx, "/teams/"+formatID(id), nil, &detail); err != nil {
		return team.Detail{}, fmt.Errorf("fetch team id=%d: %w", id, err)
	}
	return mapTeamDetail(detail), nil
}

// TeamMatches fetches one club's match list.
func (c *Client) TeamMatches(ctx context.Context, id int64) ([]match.Match, error) {
	var envelope matchesEnvelope
	if err := c.doJSON(ctx, "/teams/"+formatID(id)+"/matches", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch team matches id=%d: %w", id, err)
	}
	return mapMatches(envelope.Matches), nil
}

// Person fetches one player's record.
func (c *Client) Person(ctx context.Context, id int64) (team.Person, error) {
	var detail apiPerson
	if err := c.doJSON(ctx, "/persons/"+formatID(id), nil, &detail); err != nil {
		return team.Person{}, fmt.Errorf("fetch person id=%d: %w", id, err)
	}
	return mapPerson(detail), nil
}

func mapMatches(items []apiMatch) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, mapMatch(item))
	}
	return out
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
