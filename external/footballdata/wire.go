package footballdata

// Upstream JSON shapes, narrowed per endpoint before mapping. Fields the
// application never reads are omitted.

type areasEnvelope struct {
	Areas []apiArea `json:"areas"`
}

type apiArea struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Flag         *string `json:"flag"`
	ParentAreaID *int64  `json:"parentAreaId"`
	ParentArea   *string `json:"parentArea"`
}

type apiAreaDetail struct {
	apiArea
	ChildAreas []apiArea `json:"childAreas"`
}

type competitionsEnvelope struct {
	Competitions []apiCompetition `json:"competitions"`
}

type apiCompetition struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	Emblem *string `json:"emblem"`
	Area   struct {
		ID   int64   `json:"id"`
		Name string  `json:"name"`
		Flag *string `json:"flag"`
	} `json:"area"`
}

type matchesEnvelope struct {
	Matches []apiMatch `json:"matches"`
}

type apiScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type apiScore struct {
	Duration    string        `json:"duration"`
	FullTime    *apiScorePair `json:"fullTime"`
	HalfTime    *apiScorePair `json:"halfTime"`
	RegularTime *apiScorePair `json:"regularTime"`
	Penalties   *apiScorePair `json:"penalties"`
}

type apiMatchTeam struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

type apiGoal struct {
	Minute int `json:"minute"`
	Scorer struct {
		Name string `json:"name"`
	} `json:"scorer"`
	Team struct {
		ID int64 `json:"id"`
	} `json:"team"`
	Type string `json:"type"`
}

type apiBooking struct {
	Minute int `json:"minute"`
	Player struct {
		Name string `json:"name"`
	} `json:"player"`
	Team struct {
		ID int64 `json:"id"`
	} `json:"team"`
	Card string `json:"card"`
}

type apiMatch struct {
	ID          int64 `json:"id"`
	Competition struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Emblem string `json:"emblem"`
	} `json:"competition"`
	Area *struct {
		ID   int64   `json:"id"`
		Name string  `json:"name"`
		Flag *string `json:"flag"`
	} `json:"area"`
	UTCDate  string       `json:"utcDate"`
	Status   string       `json:"status"`
	Minute   *int         `json:"minute"`
	Score    *apiScore    `json:"score"`
	HomeTeam apiMatchTeam `json:"homeTeam"`
	AwayTeam apiMatchTeam `json:"awayTeam"`
	Goals    []apiGoal    `json:"goals"`
	Bookings []apiBooking `json:"bookings"`
}

type standingsEnvelope struct {
	Standings []apiStanding `json:"standings"`
}

type apiStanding struct {
	Stage string          `json:"stage"`
	Type  string          `json:"type"`
	Group *string         `json:"group"`
	Table []apiTableEntry `json:"table"`
}

type apiTableEntry struct {
	Position int `json:"position"`
	Team     struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Crest string `json:"crest"`
	} `json:"team"`
	PlayedGames    int `json:"playedGames"`
	Won            int `json:"won"`
	Draw           int `json:"draw"`
	Lost           int `json:"lost"`
	Points         int `json:"points"`
	GoalsFor       int `json:"goalsFor"`
	GoalsAgainst   int `json:"goalsAgainst"`
	GoalDifference int `json:"goalDifference"`
}

type teamsEnvelope struct {
	Teams []apiTeam `json:"teams"`
}

type apiTeam struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ShortName  *string `json:"shortName"`
	TLA        *string `json:"tla"`
	Crest      string  `json:"crest"`
	Address    *string `json:"address"`
	Website    *string `json:"website"`
	Founded    *int    `json:"founded"`
	ClubColors *string `json:"clubColors"`
	Venue      *string `json:"venue"`
}

type apiTeamDetail struct {
	apiTeam
	RunningCompetitions []apiCompetition `json:"runningCompetitions"`
	Coach               *apiCoach        `json:"coach"`
	Squad               []apiSquadMember `json:"squad"`
}

type apiCoach struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Nationality *string `json:"nationality"`
}

type apiSquadMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	ShirtNumber *int   `json:"shirtNumber"`
}

type scorersEnvelope struct {
	Scorers []apiScorer `json:"scorers"`
}

type apiScorer struct {
	Player struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Nationality string `json:"nationality"`
	} `json:"player"`
	Team struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Crest string `json:"crest"`
	} `json:"team"`
	Goals     int  `json:"goals"`
	Assists   *int `json:"assists"`
	Penalties *int `json:"penalties"`
}

type apiPerson struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	FirstName   string         `json:"firstName"`
	LastName    *string        `json:"lastName"`
	DateOfBirth string         `json:"dateOfBirth"`
	Nationality string         `json:"nationality"`
	Position    string         `json:"position"`
	ShirtNumber *int           `json:"shirtNumber"`
	CurrentTeam *apiTeamDetail `json:"currentTeam"`
}

type head2HeadEnvelope struct {
	Aggregates *apiH2HAggregates `json:"aggregates"`
	Matches    []apiMatch        `json:"matches"`
}

type apiH2HAggregates struct {
	NumberOfMatches int        `json:"numberOfMatches"`
	TotalGoals      int        `json:"totalGoals"`
	HomeTeam        apiH2HSide `json:"homeTeam"`
	AwayTeam        apiH2HSide `json:"awayTeam"`
}

type apiH2HSide struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}
