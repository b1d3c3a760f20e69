package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/infootball/internal/domain/transfer"
)

// TransferRepository keeps transfers in process memory. It enforces the same references
// and constraints as the postgres tables.
type TransferRepository struct {
	mu        sync.RWMutex
	players   map[string]transfer.Player
	teams     map[string]transfer.Team
	transfers map[string]storedTransfer
	now       func() time.Time
}

type storedTransfer struct {
	record    transfer.Record
	createdAt time.Time
	updatedAt time.Time
}

func NewTransferRepository(seed Seed) *TransferRepository {
	r := &TransferRepository{
		players:   make(map[string]transfer.Player, len(seed.Players)),
		teams:     make(map[string]transfer.Team, len(seed.Teams)),
		transfers: make(map[string]storedTransfer, len(seed.Transfers)),
		now:       time.Now,
	}
	for _, p := range seed.Players {
		r.players[p.ID] = p
	}
	for _, t := range seed.Teams {
		r.teams[t.ID] = t
	}

	createdAt := r.now().UTC()
	for _, record := range seed.Transfers {
		r.transfers[record.ID] = storedTransfer{record: record, createdAt: createdAt, updatedAt: createdAt}
	}
	return r
}

func (r *TransferRepository) Insert(_ context.Context, record transfer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transfers[record.ID]; exists {
		return fmt.Errorf("insert transfer: duplicate id %s", record.ID)
	}
	if err := r.checkRecord(record); err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}

	now := r.now().UTC()
	r.transfers[record.ID] = storedTransfer{record: record, createdAt: now, updatedAt: now}
	return nil
}

func (r *TransferRepository) List(_ context.Context, opts transfer.ListOptions) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.collect(func(transfer.Record) bool { return true })
	sortByDateDesc(items)
	return paginate(items, opts), nil
}

func (r *TransferRepository) GetByID(_ context.Context, transferID string) (transfer.Transfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.transfers[transferID]
	if !ok {
		return transfer.Transfer{}, false, nil
	}
	return r.hydrate(stored), true, nil
}

func (r *TransferRepository) ListByPlayer(_ context.Context, playerID string) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.collect(func(record transfer.Record) bool { return record.PlayerID == playerID })
	sortByDateDesc(items)
	return items, nil
}

func (r *TransferRepository) ListBySeason(_ context.Context, season string) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.collect(func(record transfer.Record) bool { return record.Season == season })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TransferFee != items[j].TransferFee {
			return items[i].TransferFee > items[j].TransferFee
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *TransferRepository) ListTopByFee(_ context.Context, limit int) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.collect(func(transfer.Record) bool { return true })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TransferFee != items[j].TransferFee {
			return items[i].TransferFee > items[j].TransferFee
		}
		if !items[i].TransferDate.Equal(items[j].TransferDate) {
			return items[i].TransferDate.After(items[j].TransferDate)
		}
		return items[i].ID < items[j].ID
	})
	return paginate(items, transfer.ListOptions{Limit: limit}), nil
}

func (r *TransferRepository) Update(_ context.Context, transferID string, patch transfer.Patch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.transfers[transferID]
	if !ok {
		return false, nil
	}

	record := stored.record
	if patch.PlayerID != nil {
		record.PlayerID = *patch.PlayerID
	}
	if patch.FromTeamID != nil {
		record.FromTeamID = *patch.FromTeamID
	}
	if patch.ToTeamID != nil {
		record.ToTeamID = *patch.ToTeamID
	}
	if patch.TransferDate != nil {
		record.TransferDate = *patch.TransferDate
	}
	if patch.TransferFee != nil {
		record.TransferFee = *patch.TransferFee
	}
	if patch.Season != nil {
		record.Season = *patch.Season
	}
	if err := r.checkRecord(record); err != nil {
		return false, fmt.Errorf("update transfer: %w", err)
	}

	stored.record = record
	stored.updatedAt = r.now().UTC()
	r.transfers[transferID] = stored
	return true, nil
}

func (r *TransferRepository) Delete(_ context.Context, transferID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transfers[transferID]; !ok {
		return false, nil
	}
	delete(r.transfers, transferID)
	return true, nil
}

func (r *TransferRepository) checkRecord(record transfer.Record) error {
	if _, ok := r.players[record.PlayerID]; !ok {
		return fmt.Errorf("%w: player=%s", transfer.ErrUnknownReference, record.PlayerID)
	}
	if _, ok := r.teams[record.FromTeamID]; !ok {
		return fmt.Errorf("%w: team=%s", transfer.ErrUnknownReference, record.FromTeamID)
	}
	if _, ok := r.teams[record.ToTeamID]; !ok {
		return fmt.Errorf("%w: team=%s", transfer.ErrUnknownReference, record.ToTeamID)
	}
	if record.FromTeamID == record.ToTeamID {
		return fmt.Errorf("%w: from and to team are the same", transfer.ErrConstraint)
	}
	if record.TransferFee < 0 {
		return fmt.Errorf("%w: negative transfer fee", transfer.ErrConstraint)
	}
	return nil
}

func (r *TransferRepository) collect(keep func(transfer.Record) bool) []transfer.Transfer {
	out := make([]transfer.Transfer, 0, len(r.transfers))
	for _, stored := range r.transfers {
		if keep(stored.record) {
			out = append(out, r.hydrate(stored))
		}
	}
	return out
}

func (r *TransferRepository) hydrate(stored storedTransfer) transfer.Transfer {
	record := stored.record
	return transfer.Transfer{
		ID:           record.ID,
		Player:       r.players[record.PlayerID],
		FromTeam:     r.teams[record.FromTeamID],
		ToTeam:       r.teams[record.ToTeamID],
		TransferDate: record.TransferDate,
		TransferFee:  record.TransferFee,
		Season:       record.Season,
		CreatedAt:    stored.createdAt,
		UpdatedAt:    stored.updatedAt,
	}
}

func sortByDateDesc(items []transfer.Transfer) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].TransferDate.Equal(items[j].TransferDate) {
			return items[i].TransferDate.After(items[j].TransferDate)
		}
		return items[i].ID < items[j].ID
	})
}

func paginate(items []transfer.Transfer, opts transfer.ListOptions) []transfer.Transfer {
	if opts.Offset >= len(items) {
		return []transfer.Transfer{}
	}
	items = items[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}
