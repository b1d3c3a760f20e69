package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/infootball/internal/domain/transfer"
)

const (
	mbappeTransferID = "9a7e2c41-6b3d-4f85-a0d2-000000000001"
	bellinghamID     = playerIDPrefix + "000000129718"
	realMadridID     = teamIDPrefix + "000000000541"
	arsenalID        = teamIDPrefix + "000000000042"
)

func TestTransferRepository_ListOrdersByDateDesc(t *testing.T) {
	t.Parallel()

	repo := NewTransferRepository(DefaultSeed())
	got, err := repo.List(context.Background(), transfer.ListOptions{})
	if err != nil {
		t.Fatalf("list transfers: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 seeded transfers, got=%d", len(got))
	}
	if got[0].ID != mbappeTransferID {
		t.Fatalf("expected most recent transfer first, got=%s", got[0].ID)
	}
	if got[0].Player.Name != "Kylian Mbappé" || got[0].ToTeam.Name != "Real Madrid" {
		t.Fatalf("expected hydrated player and team, got=%+v", got[0])
	}

	page, err := repo.List(context.Background(), transfer.ListOptions{Limit: 2, Offset: 3})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected 1 item on last page, got=%d", len(page))
	}
}

func TestTransferRepository_ListBySeasonAndTop(t *testing.T) {
	t.Parallel()

	repo := NewTransferRepository(DefaultSeed())
	season, err := repo.ListBySeason(context.Background(), "2023")
	if err != nil {
		t.Fatalf("list by season: %v", err)
	}
	if len(season) != 3 || season[0].TransferFee != 103000000 || season[2].TransferFee != 50400000 {
		t.Fatalf("expected 2023 transfers by fee desc, got=%+v", season)
	}

	top, err := repo.ListTopByFee(context.Background(), 1)
	if err != nil {
		t.Fatalf("list top: %v", err)
	}
	if len(top) != 1 || top[0].Player.Name != "Jude Bellingham" {
		t.Fatalf("unexpected top transfer: %+v", top)
	}
}

func TestTransferRepository_InsertChecksReferences(t *testing.T) {
	t.Parallel()

	repo := NewTransferRepository(DefaultSeed())
	ctx := context.Background()
	base := transfer.Record{
		ID:           "7c0d3c55-0d4a-4d5e-9b0e-0a1b2c3d4e5f",
		PlayerID:     bellinghamID,
		FromTeamID:   realMadridID,
		ToTeamID:     arsenalID,
		TransferDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		TransferFee:  150000000,
		Season:       "2026",
	}

	unknown := base
	unknown.PlayerID = playerIDPrefix + "000000000001"
	if err := repo.Insert(ctx, unknown); !errors.Is(err, transfer.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}

	same := base
	same.ToTeamID = realMadridID
	if err := repo.Insert(ctx, same); !errors.Is(err, transfer.ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}

	if err := repo.Insert(ctx, base); err != nil {
		t.Fatalf("insert transfer: %v", err)
	}
	byPlayer, err := repo.ListByPlayer(ctx, bellinghamID)
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}
	if len(byPlayer) != 2 || byPlayer[0].ID != base.ID {
		t.Fatalf("expected new transfer first for player, got=%+v", byPlayer)
	}
}

func TestTransferRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	repo := NewTransferRepository(DefaultSeed())
	ctx := context.Background()
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	fee := 180000000.0
	updated, err := repo.Update(ctx, mbappeTransferID, transfer.Patch{TransferFee: &fee})
	if err != nil || !updated {
		t.Fatalf("update transfer: updated=%v err=%v", updated, err)
	}
	got, exists, err := repo.GetByID(ctx, mbappeTransferID)
	if err != nil || !exists {
		t.Fatalf("get transfer: exists=%v err=%v", exists, err)
	}
	if got.TransferFee != fee || !got.UpdatedAt.Equal(fixed) {
		t.Fatalf("expected patched fee and updated_at, got=%+v", got)
	}

	badTeam := teamIDPrefix + "000000000001"
	if _, err := repo.Update(ctx, mbappeTransferID, transfer.Patch{ToTeamID: &badTeam}); !errors.Is(err, transfer.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}

	updated, err = repo.Update(ctx, "missing", transfer.Patch{TransferFee: &fee})
	if err != nil || updated {
		t.Fatalf("expected missing transfer to report not updated, updated=%v err=%v", updated, err)
	}

	deleted, err := repo.Delete(ctx, mbappeTransferID)
	if err != nil || !deleted {
		t.Fatalf("delete transfer: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, mbappeTransferID)
	if err != nil || deleted {
		t.Fatalf("expected second delete to be a no-op, deleted=%v err=%v", deleted, err)
	}
}
