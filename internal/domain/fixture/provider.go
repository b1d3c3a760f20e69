package fixture

import "context"

type Provider interface {
	FetchFixtures(ctx context.Context, query Query) ([]Match, error)
}
