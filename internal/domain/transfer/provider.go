package transfer

import "context"

// FeedProvider returns the upstream transfer history of one team.
type FeedProvider interface {
	FetchTeamTransfers(ctx context.Context, teamID int64) ([]FeedItem, error)
}
