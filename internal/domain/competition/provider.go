package competition

import "context"

// Provider reads competition data from the football data upstream.
type Provider interface {
	ListCompetitions(ctx context.Context, country string) ([]Competition, error)
	FindCompetitions(ctx context.Context, id string) ([]Competition, error)
	FetchStandings(ctx context.Context, leagueID, season string) (Standings, error)
	FetchTopScorers(ctx context.Context, leagueID, season string) ([]TopScorer, error)
}
