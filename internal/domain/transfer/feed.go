package transfer

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	FeeFree           = "Libre"
	FeeUnknown        = "N/A"
	DefaultLoanLabel  = "Préstamo"
	DefaultType       = "Fichaje"
	DefaultFeedLimit  = 50
	DefaultTeamsQuery = 5
)

// DefaultPopularTeams is the API-Football team allow-list used for the transfer feed.
var DefaultPopularTeams = []int64{
	541, // Real Madrid
	529, // Barcelona
	530, // Atletico Madrid
	50,  // Manchester City
	33,  // Manchester United
	40,  // Liverpool
	42,  // Arsenal
	47,  // Tottenham
	489, // AC Milan
	492, // Napoli
	496, // Juventus
	157, // Bayern Munich
	165, // Borussia Dortmund
	85,  // PSG
}

// FeedItem is a transfer built from upstream data; it is never persisted.
type FeedItem struct {
	ID           string `json:"id"`
	PlayerName   string `json:"playerName"`
	PlayerPhoto  string `json:"playerPhoto"`
	FromTeam     string `json:"fromTeam"`
	FromTeamLogo string `json:"fromTeamLogo"`
	ToTeam       string `json:"toTeam"`
	ToTeamLogo   string `json:"toTeamLogo"`
	TransferDate string `json:"transferDate"`
	TransferType string `json:"transferType"`
	Fee          string `json:"fee"`
}

// FeedID builds the composite "{playerId}-{date}" identifier.
func FeedID(playerID int64, date string) string {
	return fmt.Sprintf("%d-%s", playerID, date)
}

// ClassifyFee maps the upstream transfer type to the displayed fee label.
func ClassifyFee(rawType, loanLabel string) string {
	if strings.TrimSpace(loanLabel) == "" {
		loanLabel = DefaultLoanLabel
	}
	switch rawType {
	case "Free":
		return FeeFree
	case "Loan":
		return loanLabel
	default:
		return FeeUnknown
	}
}

var feedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseFeedDate parses the upstream transfer date. ok is false when no layout matches.
func ParseFeedDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range feedDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// SortFeedByDateDesc orders items most recent first. Items with unparseable dates go last,
// keeping their relative order.
func SortFeedByDateDesc(items []FeedItem) {
	type keyed struct {
		at time.Time
		ok bool
	}
	keys := make(map[int]keyed, len(items))
	idx := make([]int, len(items))
	for i := range items {
		at, ok := ParseFeedDate(items[i].TransferDate)
		keys[i] = keyed{at: at, ok: ok}
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		left, right := keys[idx[a]], keys[idx[b]]
		if left.ok != right.ok {
			return left.ok
		}
		return left.at.After(right.at)
	})

	sorted := make([]FeedItem, len(items))
	for i, from := range idx {
		sorted[i] = items[from]
	}
	copy(items, sorted)
}
