package competition

import "github.com/riskibarqy/infootball/internal/domain/fixture"

// Overview bundles everything the competition page renders.
type Overview struct {
	Competition     Competition     `json:"competition"`
	Season          string          `json:"season"`
	Standings       Standings       `json:"standings"`
	TopScorers      []TopScorer     `json:"topScorers"`
	UpcomingMatches []fixture.Match `json:"upcomingMatches"`
}
