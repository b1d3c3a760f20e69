package apifootball

import "encoding/json"

// envelope is the top-level shape every API-Football endpoint answers with.
// Only Response is handed to callers; the rest is read for diagnostics.
type envelope struct {
	Get        string          `json:"get"`
	Parameters any             `json:"parameters"`
	Errors     any             `json:"errors"`
	Results    int             `json:"results"`
	Paging     *paging         `json:"paging"`
	Response   json.RawMessage `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// /leagues

type leagueItem struct {
	League  *leagueInfo    `json:"league"`
	Country *countryInfo   `json:"country"`
	Seasons []leagueSeason `json:"seasons"`
}

type leagueInfo struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	Type *string `json:"type"`
	Logo *string `json:"logo"`
}

type countryInfo struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
	Flag *string `json:"flag"`
}

type leagueSeason struct {
	Year    *int    `json:"year"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Current *bool   `json:"current"`
}

// /standings

type standingsItem struct {
	League *standingsLeague `json:"league"`
}

type standingsLeague struct {
	ID        *int64          `json:"id"`
	Name      *string         `json:"name"`
	Country   *string         `json:"country"`
	Logo      *string         `json:"logo"`
	Flag      *string         `json:"flag"`
	Season    *int            `json:"season"`
	Standings [][]standingRow `json:"standings"`
}

type standingRow struct {
	Rank        *int           `json:"rank"`
	Team        *teamInfo      `json:"team"`
	Points      *int           `json:"points"`
	GoalsDiff   *int           `json:"goalsDiff"`
	Group       *string        `json:"group"`
	Form        *string        `json:"form"`
	Status      *string        `json:"status"`
	Description *string        `json:"description"`
	All         *standingTotal `json:"all"`
	Home        *standingTotal `json:"home"`
	Away        *standingTotal `json:"away"`
	Update      *string        `json:"update"`
}

type standingTotal struct {
	Played *int           `json:"played"`
	Win    *int           `json:"win"`
	Draw   *int           `json:"draw"`
	Lose   *int           `json:"lose"`
	Goals  *standingGoals `json:"goals"`
}

type standingGoals struct {
	For     *int `json:"for"`
	Against *int `json:"against"`
}

type teamInfo struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	Logo *string `json:"logo"`
}

// /players/topscorers

type scorerItem struct {
	Player     *scorerPlayer `json:"player"`
	Statistics []scorerStats `json:"statistics"`
}

type scorerPlayer struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Firstname   *string `json:"firstname"`
	Lastname    *string `json:"lastname"`
	Age         *int    `json:"age"`
	Nationality *string `json:"nationality"`
	Photo       *string `json:"photo"`
}

type scorerStats struct {
	Team  *teamInfo    `json:"team"`
	Games *scorerGames `json:"games"`
	Goals *scorerGoals `json:"goals"`
}

type scorerGames struct {
	// Appearences is spelled the way the upstream spells it.
	Appearences *int    `json:"appearences"`
	Minutes     *int    `json:"minutes"`
	Position    *string `json:"position"`
}

type scorerGoals struct {
	Total    *int `json:"total"`
	Conceded *int `json:"conceded"`
	Assists  *int `json:"assists"`
	Saves    *int `json:"saves"`
}

// /fixtures

type fixtureItem struct {
	Fixture *fixtureInfo  `json:"fixture"`
	Teams   *fixtureTeams `json:"teams"`
	Goals   *fixtureGoals `json:"goals"`
}

type fixtureInfo struct {
	ID        *int64         `json:"id"`
	Referee   *string        `json:"referee"`
	Timezone  *string        `json:"timezone"`
	Date      *string        `json:"date"`
	Timestamp *int64         `json:"timestamp"`
	Venue     *fixtureVenue  `json:"venue"`
	Status    *fixtureStatus `json:"status"`
}

type fixtureVenue struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	City *string `json:"city"`
}

type fixtureStatus struct {
	Long    *string `json:"long"`
	Short   *string `json:"short"`
	Elapsed *int    `json:"elapsed"`
}

type fixtureTeams struct {
	Home *teamInfo `json:"home"`
	Away *teamInfo `json:"away"`
}

type fixtureGoals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// /transfers

type transferItem struct {
	Player    *transferPlayer `json:"player"`
	Update    *string         `json:"update"`
	Transfers []transferMove  `json:"transfers"`
}

type transferPlayer struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Photo *string `json:"photo"`
}

type transferMove struct {
	Date  *string        `json:"date"`
	Type  *string        `json:"type"`
	Teams *transferTeams `json:"teams"`
}

type transferTeams struct {
	In  *teamInfo `json:"in"`
	Out *teamInfo `json:"out"`
}
