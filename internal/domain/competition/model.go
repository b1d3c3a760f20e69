package competition

// Competition is a league or cup as exposed to the frontend.
type Competition struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Country     string `json:"country"`
	CountryFlag string `json:"countryFlag"`
	Type        string `json:"type"`
	Season      string `json:"season"`
	IsActive    bool   `json:"isActive"`
}

// TeamRef is the compact team shape embedded in standings, scorers and matches.
type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// StandingRow is one team line of a league table.
type StandingRow struct {
	Position       int      `json:"position"`
	Team           TeamRef  `json:"team"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
}

// StandingsCompetition is the competition header attached to a standings table.
type StandingsCompetition struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
	Season  int    `json:"season"`
}

// Standings is the first standings group of a competition season. Competition is nil
// when the upstream returned no standings at all.
type Standings struct {
	Competition *StandingsCompetition `json:"competition,omitempty"`
	Standings   []StandingRow         `json:"standings"`
}

// EmptyStandings is the soft-empty result returned when a season has no table yet.
func EmptyStandings() Standings {
	return Standings{Standings: []StandingRow{}}
}

// IsEmpty reports whether the table has no rows.
func (s Standings) IsEmpty() bool {
	return len(s.Standings) == 0
}

type ScorerPlayer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Nationality string `json:"nationality"`
}

// TopScorer is one entry of the goal-scorer ranking.
type TopScorer struct {
	Player  ScorerPlayer `json:"player"`
	Team    TeamRef      `json:"team"`
	Goals   int          `json:"goals"`
	Assists int          `json:"assists"`
	Matches int          `json:"matches"`
}

const (
	// TopScorerLimit is how many scorers are kept from the upstream ranking.
	TopScorerLimit = 10
	// UpcomingMatchLimit is the server-side fixture limit for upcoming matches.
	UpcomingMatchLimit = 10
	// DefaultFallbackSeason is used when the upstream omits the current season year.
	DefaultFallbackSeason = "2024"
)
