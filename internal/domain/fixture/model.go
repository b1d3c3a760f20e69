package fixture

import (
	"strconv"
	"strings"
)

// Phase groups upstream status codes into what the matches page displays.
type Phase string

const (
	PhaseScheduled Phase = "scheduled"
	PhaseLive      Phase = "live"
	PhaseFinished  Phase = "finished"
	PhaseCancelled Phase = "cancelled"
)

// DefaultVenueName is shown when the upstream has no venue for a fixture yet.
const DefaultVenueName = "Por definir"

type Venue struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type Status struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Goals holds the score; nil means the match has not produced a score yet.
type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Match is a normalized fixture.
type Match struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Venue     Venue  `json:"venue"`
	Status    Status `json:"status"`
	Phase     Phase  `json:"phase"`
	HomeTeam  Team   `json:"homeTeam"`
	AwayTeam  Team   `json:"awayTeam"`
	Goals     Goals  `json:"goals"`
}

// PhaseFromStatus maps an API-Football short status code to a Phase.
func PhaseFromStatus(short string) Phase {
	switch strings.ToUpper(strings.TrimSpace(short)) {
	case "1H", "HT", "2H", "ET", "BT", "P", "LIVE", "INT", "SUSP":
		return PhaseLive
	case "FT", "AET", "PEN":
		return PhaseFinished
	case "PST", "CANC", "ABD", "AWD", "WO":
		return PhaseCancelled
	default:
		return PhaseScheduled
	}
}

// Query selects fixtures. Set Live for in-play matches, Date for a single day, or
// LeagueID and Season (optionally Next) for a competition's schedule.
type Query struct {
	LeagueID string
	Season   string
	Next     int
	Live     bool
	Date     string
}

// Params renders the query as upstream query parameters.
func (q Query) Params() map[string]string {
	params := make(map[string]string, 4)
	if q.Live {
		params["live"] = "all"
	}
	if q.Date != "" {
		params["date"] = q.Date
	}
	if q.LeagueID != "" {
		params["league"] = q.LeagueID
	}
	if q.Season != "" {
		params["season"] = q.Season
	}
	if q.Next > 0 {
		params["next"] = strconv.Itoa(q.Next)
	}
	return params
}
