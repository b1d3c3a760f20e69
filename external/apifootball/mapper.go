package apifootball

import (
	"github.com/riskibarqy/infootball/internal/domain/competition"
	"github.com/riskibarqy/infootball/internal/domain/fixture"
	"github.com/riskibarqy/infootball/internal/domain/transfer"
)

func competitionRules(fallbackSeason string) []fieldRule[leagueItem, competition.Competition] {
	return []fieldRule[leagueItem, competition.Competition]{
		{"id", func(s *leagueItem, d *competition.Competition) { d.ID = int64Or(orEmpty(s.League).ID, 0) }},
		{"name", func(s *leagueItem, d *competition.Competition) { d.Name = stringOr(orEmpty(s.League).Name, "") }},
		{"logo", func(s *leagueItem, d *competition.Competition) { d.Logo = stringOr(orEmpty(s.League).Logo, "") }},
		{"country", func(s *leagueItem, d *competition.Competition) { d.Country = stringOr(orEmpty(s.Country).Name, "") }},
		{"countryFlag", func(s *leagueItem, d *competition.Competition) { d.CountryFlag = stringOr(orEmpty(s.Country).Flag, "") }},
		{"type", func(s *leagueItem, d *competition.Competition) { d.Type = stringOr(orEmpty(s.League).Type, "") }},
		{"season", func(s *leagueItem, d *competition.Competition) {
			d.Season = yearOr(orEmpty(firstSeason(s.Seasons)).Year, fallbackSeason)
		}},
		{"isActive", func(s *leagueItem, d *competition.Competition) {
			d.IsActive = boolOr(orEmpty(firstSeason(s.Seasons)).Current, false)
		}},
	}
}

var teamRefRules = []fieldRule[teamInfo, competition.TeamRef]{
	{"id", func(s *teamInfo, d *competition.TeamRef) { d.ID = int64Or(s.ID, 0) }},
	{"name", func(s *teamInfo, d *competition.TeamRef) { d.Name = stringOr(s.Name, "") }},
	{"logo", func(s *teamInfo, d *competition.TeamRef) { d.Logo = stringOr(s.Logo, "") }},
}

var standingHeaderRules = []fieldRule[standingsLeague, competition.StandingsCompetition]{
	{"id", func(s *standingsLeague, d *competition.StandingsCompetition) { d.ID = int64Or(s.ID, 0) }},
	{"name", func(s *standingsLeague, d *competition.StandingsCompetition) { d.Name = stringOr(s.Name, "") }},
	{"logo", func(s *standingsLeague, d *competition.StandingsCompetition) { d.Logo = stringOr(s.Logo, "") }},
	{"country", func(s *standingsLeague, d *competition.StandingsCompetition) { d.Country = stringOr(s.Country, "") }},
	{"season", func(s *standingsLeague, d *competition.StandingsCompetition) { d.Season = intOr(s.Season, 0) }},
}

var standingRowRules = []fieldRule[standingRow, competition.StandingRow]{
	{"position", func(s *standingRow, d *competition.StandingRow) { d.Position = intOr(s.Rank, 0) }},
	{"team", func(s *standingRow, d *competition.StandingRow) { d.Team = reshape(s.Team, teamRefRules) }},
	{"played", func(s *standingRow, d *competition.StandingRow) { d.Played = intOr(orEmpty(s.All).Played, 0) }},
	{"won", func(s *standingRow, d *competition.StandingRow) { d.Won = intOr(orEmpty(s.All).Win, 0) }},
	{"drawn", func(s *standingRow, d *competition.StandingRow) { d.Drawn = intOr(orEmpty(s.All).Draw, 0) }},
	{"lost", func(s *standingRow, d *competition.StandingRow) { d.Lost = intOr(orEmpty(s.All).Lose, 0) }},
	{"goalsFor", func(s *standingRow, d *competition.StandingRow) {
		d.GoalsFor = intOr(orEmpty(orEmpty(s.All).Goals).For, 0)
	}},
	{"goalsAgainst", func(s *standingRow, d *competition.StandingRow) {
		d.GoalsAgainst = intOr(orEmpty(orEmpty(s.All).Goals).Against, 0)
	}},
	{"goalDifference", func(s *standingRow, d *competition.StandingRow) { d.GoalDifference = intOr(s.GoalsDiff, 0) }},
	{"points", func(s *standingRow, d *competition.StandingRow) { d.Points = intOr(s.Points, 0) }},
	{"form", func(s *standingRow, d *competition.StandingRow) { d.Form = splitChars(s.Form) }},
}

var scorerRules = []fieldRule[scorerItem, competition.TopScorer]{
	{"player", func(s *scorerItem, d *competition.TopScorer) {
		p := orEmpty(s.Player)
		d.Player = competition.ScorerPlayer{
			ID:          int64Or(p.ID, 0),
			Name:        stringOr(p.Name, ""),
			Photo:       stringOr(p.Photo, ""),
			Nationality: stringOr(p.Nationality, ""),
		}
	}},
	{"team", func(s *scorerItem, d *competition.TopScorer) {
		d.Team = reshape(orEmpty(firstStats(s.Statistics)).Team, teamRefRules)
	}},
	{"goals", func(s *scorerItem, d *competition.TopScorer) {
		d.Goals = intOr(orEmpty(orEmpty(firstStats(s.Statistics)).Goals).Total, 0)
	}},
	{"assists", func(s *scorerItem, d *competition.TopScorer) {
		d.Assists = intOr(orEmpty(orEmpty(firstStats(s.Statistics)).Goals).Assists, 0)
	}},
	{"matches", func(s *scorerItem, d *competition.TopScorer) {
		d.Matches = intOr(orEmpty(orEmpty(firstStats(s.Statistics)).Games).Appearences, 0)
	}},
}

var fixtureTeamRules = []fieldRule[teamInfo, fixture.Team]{
	{"id", func(s *teamInfo, d *fixture.Team) { d.ID = int64Or(s.ID, 0) }},
	{"name", func(s *teamInfo, d *fixture.Team) { d.Name = stringOr(s.Name, "") }},
	{"logo", func(s *teamInfo, d *fixture.Team) { d.Logo = stringOr(s.Logo, "") }},
}

var matchRules = []fieldRule[fixtureItem, fixture.Match]{
	{"id", func(s *fixtureItem, d *fixture.Match) { d.ID = int64Or(orEmpty(s.Fixture).ID, 0) }},
	{"date", func(s *fixtureItem, d *fixture.Match) { d.Date = stringOr(orEmpty(s.Fixture).Date, "") }},
	{"timestamp", func(s *fixtureItem, d *fixture.Match) { d.Timestamp = int64Or(orEmpty(s.Fixture).Timestamp, 0) }},
	{"venue", func(s *fixtureItem, d *fixture.Match) {
		venue := orEmpty(orEmpty(s.Fixture).Venue)
		d.Venue = fixture.Venue{
			Name: stringOr(venue.Name, fixture.DefaultVenueName),
			City: stringOr(venue.City, ""),
		}
	}},
	{"status", func(s *fixtureItem, d *fixture.Match) {
		status := orEmpty(orEmpty(s.Fixture).Status)
		d.Status = fixture.Status{
			Short: stringOr(status.Short, ""),
			Long:  stringOr(status.Long, ""),
		}
	}},
	// phase depends on status, so it must run after the status rule.
	{"phase", func(_ *fixtureItem, d *fixture.Match) { d.Phase = fixture.PhaseFromStatus(d.Status.Short) }},
	{"homeTeam", func(s *fixtureItem, d *fixture.Match) { d.HomeTeam = reshape(orEmpty(s.Teams).Home, fixtureTeamRules) }},
	{"awayTeam", func(s *fixtureItem, d *fixture.Match) { d.AwayTeam = reshape(orEmpty(s.Teams).Away, fixtureTeamRules) }},
	{"goals", func(s *fixtureItem, d *fixture.Match) {
		goals := orEmpty(s.Goals)
		d.Goals = fixture.Goals{Home: copyInt(goals.Home), Away: copyInt(goals.Away)}
	}},
}

// transferEntry pairs one move with the player it belongs to.
type transferEntry struct {
	player *transferPlayer
	move   *transferMove
}

var feedRules = []fieldRule[transferEntry, transfer.FeedItem]{
	{"id", func(s *transferEntry, d *transfer.FeedItem) {
		d.ID = transfer.FeedID(int64Or(orEmpty(s.player).ID, 0), stringOr(orEmpty(s.move).Date, ""))
	}},
	{"playerName", func(s *transferEntry, d *transfer.FeedItem) { d.PlayerName = stringOr(orEmpty(s.player).Name, "") }},
	{"playerPhoto", func(s *transferEntry, d *transfer.FeedItem) { d.PlayerPhoto = stringOr(orEmpty(s.player).Photo, "") }},
	{"fromTeam", func(s *transferEntry, d *transfer.FeedItem) {
		out := orEmpty(orEmpty(orEmpty(s.move).Teams).Out)
		d.FromTeam = stringOr(out.Name, "")
		d.FromTeamLogo = stringOr(out.Logo, "")
	}},
	{"toTeam", func(s *transferEntry, d *transfer.FeedItem) {
		in := orEmpty(orEmpty(orEmpty(s.move).Teams).In)
		d.ToTeam = stringOr(in.Name, "")
		d.ToTeamLogo = stringOr(in.Logo, "")
	}},
	{"transferDate", func(s *transferEntry, d *transfer.FeedItem) { d.TransferDate = stringOr(orEmpty(s.move).Date, "") }},
	{"transferType", func(s *transferEntry, d *transfer.FeedItem) {
		d.TransferType = stringOr(orEmpty(s.move).Type, transfer.DefaultType)
	}},
}

func mapStandings(items []standingsItem) competition.Standings {
	if len(items) == 0 {
		return competition.EmptyStandings()
	}

	league := orEmpty(items[0].League)
	header := reshape(league, standingHeaderRules)
	out := competition.Standings{
		Competition: &header,
		Standings:   []competition.StandingRow{},
	}
	// Only the first group is exposed; split tables keep their other groups upstream.
	if len(league.Standings) > 0 {
		out.Standings = reshapeAll(league.Standings[0], standingRowRules)
	}
	return out
}

// flattenTransfers expands every player's moves into feed items, leaving Fee unset.
func flattenTransfers(items []transferItem) []transfer.FeedItem {
	out := make([]transfer.FeedItem, 0, len(items))
	for i := range items {
		for j := range items[i].Transfers {
			entry := transferEntry{player: items[i].Player, move: &items[i].Transfers[j]}
			out = append(out, reshape(&entry, feedRules))
		}
	}
	return out
}
