package transfer

import "context"

type Repository interface {
	Insert(ctx context.Context, record Record) error
	List(ctx context.Context, opts ListOptions) ([]Transfer, error)
	GetByID(ctx context.Context, id string) (Transfer, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Transfer, error)
	ListBySeason(ctx context.Context, season string) ([]Transfer, error)
	ListTopByFee(ctx context.Context, limit int) ([]Transfer, error)
	Update(ctx context.Context, id string, patch Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
