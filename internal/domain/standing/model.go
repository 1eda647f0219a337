package standing

// TeamRef is the ranked team slice of a table row.
type TeamRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

// TableEntry is one ranked row within a standings group.
type TableEntry struct {
	Position       int     `json:"position"`
	Team           TeamRef `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

// Standing is one table for one stage/group. League competitions carry a
// single TOTAL table; tournament group stages carry one per group.
type Standing struct {
	Stage string       `json:"stage"`
	Type  string       `json:"type"`
	Group string       `json:"group,omitempty"`
	Table []TableEntry `json:"table"`
}

// Scorer is a top-scorer row for a competition.
type Scorer struct {
	Player    ScorerPlayer `json:"player"`
	Team      TeamRef      `json:"team"`
	Goals     int          `json:"goals"`
	Assists   *int         `json:"assists"`
	Penalties *int         `json:"penalties"`
}

type ScorerPlayer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}
