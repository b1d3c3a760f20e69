package apifootball

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/infootball/internal/domain/competition"
	"github.com/riskibarqy/infootball/internal/domain/fixture"
	"github.com/riskibarqy/infootball/internal/domain/transfer"
)

const (
	endpointLeagues    = "/leagues"
	endpointStandings  = "/standings"
	endpointTopScorers = "/players/topscorers"
	endpointFixtures   = "/fixtures"
	endpointTransfers  = "/transfers"
)

// ListCompetitions returns the current leagues, optionally filtered by country name.
func (c *Client) ListCompetitions(ctx context.Context, country string) ([]competition.Competition, error) {
	params := map[string]string{
		"current": "true",
		"type":    "league",
	}
	if country != "" {
		params["country"] = country
	}

	var items []leagueItem
	if err := c.Fetch(ctx, endpointLeagues, params, &items); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return reshapeAll(items, c.competitionRules), nil
}

// FindCompetitions looks a league up by id. An empty result means the id is unknown upstream.
func (c *Client) FindCompetitions(ctx context.Context, id string) ([]competition.Competition, error) {
	var items []leagueItem
	if err := c.Fetch(ctx, endpointLeagues, map[string]string{"id": id}, &items); err != nil {
		return nil, fmt.Errorf("find league id=%s: %w", id, err)
	}
	return reshapeAll(items, c.competitionRules), nil
}

// FetchStandings returns the first standings group of a league season, or empty standings
// when the upstream has none.
func (c *Client) FetchStandings(ctx context.Context, leagueID, season string) (competition.Standings, error) {
	var items []standingsItem
	params := map[string]string{"league": leagueID, "season": season}
	if err := c.Fetch(ctx, endpointStandings, params, &items); err != nil {
		return competition.Standings{}, fmt.Errorf("fetch standings league=%s season=%s: %w", leagueID, season, err)
	}
	return mapStandings(items), nil
}

// FetchTopScorers returns the full upstream scorer ranking in upstream order.
func (c *Client) FetchTopScorers(ctx context.Context, leagueID, season string) ([]competition.TopScorer, error) {
	var items []scorerItem
	params := map[string]string{"league": leagueID, "season": season}
	if err := c.Fetch(ctx, endpointTopScorers, params, &items); err != nil {
		return nil, fmt.Errorf("fetch top scorers league=%s season=%s: %w", leagueID, season, err)
	}
	return reshapeAll(items, scorerRules), nil
}

func (c *Client) FetchFixtures(ctx context.Context, query fixture.Query) ([]fixture.Match, error) {
	var items []fixtureItem
	if err := c.Fetch(ctx, endpointFixtures, query.Params(), &items); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	return reshapeAll(items, matchRules), nil
}

// FetchTeamTransfers returns every move of every player listed for the team. Fee is left for
// the caller to classify.
func (c *Client) FetchTeamTransfers(ctx context.Context, teamID int64) ([]transfer.FeedItem, error) {
	var items []transferItem
	params := map[string]string{"team": strconv.FormatInt(teamID, 10)}
	if err := c.Fetch(ctx, endpointTransfers, params, &items); err != nil {
		return nil, fmt.Errorf("fetch transfers team=%d: %w", teamID, err)
	}
	return flattenTransfers(items), nil
}
