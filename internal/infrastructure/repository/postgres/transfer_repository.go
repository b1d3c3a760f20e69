package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/infootball/internal/domain/transfer"
	"github.com/riskibarqy/infootball/internal/platform/id"
	qb "github.com/riskibarqy/infootball/internal/platform/querybuilder"
)

const transfersTable = "transfers"

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Insert(ctx context.Context, record transfer.Record) error {
	model := transferTableModel{
		ID:           record.ID,
		PlayerID:     record.PlayerID,
		FromTeamID:   record.FromTeamID,
		ToTeamID:     record.ToTeamID,
		TransferDate: record.TransferDate,
		TransferFee:  record.TransferFee,
		Season:       record.Season,
	}
	query, args, err := qb.InsertModel(transfersTable, model)
	if err != nil {
		return fmt.Errorf("build insert transfer query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return classifyWriteError("insert transfer", err)
	}
	return nil
}

func (r *TransferRepository) List(ctx context.Context, opts transfer.ListOptions) ([]transfer.Transfer, error) {
	query, args, err := selectTransfers().
		OrderBy("t.transfer_date DESC", "t.id").
		Limit(opts.Limit).
		Offset(opts.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfers query: %w", err)
	}
	return r.selectRows(ctx, "select transfers", query, args)
}

func (r *TransferRepository) GetByID(ctx context.Context, transferID string) (transfer.Transfer, bool, error) {
	if !id.IsValid(transferID) {
		return transfer.Transfer{}, false, nil
	}

	query, args, err := selectTransfers().
		Where(qb.Eq("t.id", transferID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return transfer.Transfer{}, false, fmt.Errorf("build get transfer query: %w", err)
	}

	var row transferRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return transfer.Transfer{}, false, nil
		}
		return transfer.Transfer{}, false, fmt.Errorf("get transfer: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TransferRepository) ListByPlayer(ctx context.Context, playerID string) ([]transfer.Transfer, error) {
	if !id.IsValid(playerID) {
		return []transfer.Transfer{}, nil
	}

	query, args, err := selectTransfers().
		Where(qb.Eq("t.player_id", playerID)).
		OrderBy("t.transfer_date DESC", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfers by player query: %w", err)
	}
	return r.selectRows(ctx, "select transfers by player", query, args)
}

func (r *TransferRepository) ListBySeason(ctx context.Context, season string) ([]transfer.Transfer, error) {
	query, args, err := selectTransfers().
		Where(qb.Eq("t.season", season)).
		OrderBy("t.transfer_fee DESC", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfers by season query: %w", err)
	}
	return r.selectRows(ctx, "select transfers by season", query, args)
}

func (r *TransferRepository) ListTopByFee(ctx context.Context, limit int) ([]transfer.Transfer, error) {
	query, args, err := selectTransfers().
		OrderBy("t.transfer_fee DESC", "t.transfer_date DESC", "t.id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select top transfers query: %w", err)
	}
	return r.selectRows(ctx, "select top transfers", query, args)
}

func (r *TransferRepository) Update(ctx context.Context, transferID string, patch transfer.Patch) (bool, error) {
	if !id.IsValid(transferID) {
		return false, nil
	}

	builder := qb.Update(transfersTable)
	if patch.PlayerID != nil {
		builder.Set("player_id", *patch.PlayerID)
	}
	if patch.FromTeamID != nil {
		builder.Set("from_team_id", *patch.FromTeamID)
	}
	if patch.ToTeamID != nil {
		builder.Set("to_team_id", *patch.ToTeamID)
	}
	if patch.TransferDate != nil {
		builder.Set("transfer_date", *patch.TransferDate)
	}
	if patch.TransferFee != nil {
		builder.Set("transfer_fee", *patch.TransferFee)
	}
	if patch.Season != nil {
		builder.Set("season", *patch.Season)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", transferID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update transfer query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, classifyWriteError("update transfer", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read updated transfer rows: %w", err)
	}
	return affected > 0, nil
}

func (r *TransferRepository) Delete(ctx context.Context, transferID string) (bool, error) {
	if !id.IsValid(transferID) {
		return false, nil
	}

	query, args, err := qb.DeleteFrom(transfersTable).
		Where(qb.Eq("id", transferID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete transfer query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete transfer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted transfer rows: %w", err)
	}
	return affected > 0, nil
}

func (r *TransferRepository) selectRows(ctx context.Context, op, query string, args []any) ([]transfer.Transfer, error) {
	var rows []transferRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]transfer.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func selectTransfers() *qb.SelectBuilder {
	return qb.Select(transferRowColumns...).
		From("transfers t").
		Join("players p", "p.id = t.player_id").
		Join("teams ft", "ft.id = t.from_team_id").
		Join("teams tt", "tt.id = t.to_team_id")
}

func classifyWriteError(op string, err error) error {
	switch {
	case isBadReference(err):
		return crerr.Wrapf(transfer.ErrUnknownReference, "%s: %v", op, err)
	case isCheckViolation(err):
		return crerr.Wrapf(transfer.ErrConstraint, "%s: %v", op, err)
	default:
		return crerr.Wrap(err, op)
	}
}

func (row transferRowModel) toDomain() transfer.Transfer {
	return transfer.Transfer{
		ID: row.ID,
		Player: transfer.Player{
			ID:          row.PlayerID,
			Name:        row.PlayerName,
			Photo:       nullString(row.PlayerPhoto),
			Position:    nullString(row.PlayerPosition),
			Nationality: nullString(row.PlayerNationality),
			Age:         nullInt(row.PlayerAge),
		},
		FromTeam: transfer.Team{
			ID:      row.FromTeamID,
			Name:    row.FromTeamName,
			Logo:    nullString(row.FromTeamLogo),
			Country: nullString(row.FromTeamCountry),
		},
		ToTeam: transfer.Team{
			ID:      row.ToTeamID,
			Name:    row.ToTeamName,
			Logo:    nullString(row.ToTeamLogo),
			Country: nullString(row.ToTeamCountry),
		},
		TransferDate: row.TransferDate,
		TransferFee:  row.TransferFee,
		Season:       row.Season,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
