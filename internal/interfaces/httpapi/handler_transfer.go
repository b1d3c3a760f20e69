package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/infootball/internal/domain/transfer"
	"github.com/riskibarqy/infootball/internal/usecase"
)

const transferDateLayout = "2006-01-02"

type createTransferRequest struct {
	PlayerID     string  `json:"playerId" validate:"required,uuid"`
	FromTeamID   string  `json:"fromTeamId" validate:"required,uuid,nefield=ToTeamID"`
	ToTeamID     string  `json:"toTeamId" validate:"required,uuid"`
	TransferDate string  `json:"transferDate" validate:"required"`
	TransferFee  float64 `json:"transferFee" validate:"gte=0"`
	Season       string  `json:"season" validate:"required,max=9"`
}

type updateTransferRequest struct {
	PlayerID     *string  `json:"playerId" validate:"omitempty,uuid"`
	FromTeamID   *string  `json:"fromTeamId" validate:"omitempty,uuid"`
	ToTeamID     *string  `json:"toTeamId" validate:"omitempty,uuid"`
	TransferDate *string  `json:"transferDate" validate:"omitempty"`
	TransferFee  *float64 `json:"transferFee" validate:"omitempty,gte=0"`
	Season       *string  `json:"season" validate:"omitempty,max=9"`
}

type listTransfersQuery struct {
	Limit  int `validate:"gte=0,lte=100"`
	Offset int `validate:"gte=0"`
}

type transferPlayerDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	Age         int    `json:"age"`
}

type transferTeamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
}

type transferDTO struct {
	ID           string            `json:"id"`
	Player       transferPlayerDTO `json:"player"`
	FromTeam     transferTeamDTO   `json:"fromTeam"`
	ToTeam       transferTeamDTO   `json:"toTeam"`
	TransferDate string            `json:"transferDate"`
	TransferFee  float64           `json:"transferFee"`
	Season       string            `json:"season"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
}

func (h *Handler) ListLatestTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLatestTransfers")
	defer span.End()

	items, err := h.transferService.Feed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build transfer feed failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTransfers")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, listTransfersQuery{Limit: limit, Offset: offset}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.transferService.List(ctx, transfer.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers failed", "limit", limit, "offset", offset, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transfersToDTO(items))
}

func (h *Handler) ListTopTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTopTransfers")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.transferService.ListTop(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top transfers failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transfersToDTO(items))
}

func (h *Handler) ListTransfersBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTransfersBySeason")
	defer span.End()

	season := r.PathValue("season")
	items, err := h.transferService.ListBySeason(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers by season failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transfersToDTO(items))
}

func (h *Handler) ListTransfersByPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTransfersByPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	items, err := h.transferService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers by player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transfersToDTO(items))
}

func (h *Handler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTransfer")
	defer span.End()

	transferID := r.PathValue("transferID")
	item, err := h.transferService.Get(ctx, transferID)
	if err != nil {
		h.logger.WarnContext(ctx, "get transfer failed", "transfer_id", transferID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateTransfer")
	defer span.End()

	var req createTransferRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	transferDate, err := parseTransferDate(req.TransferDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.transferService.Create(ctx, usecase.CreateTransferInput{
		PlayerID:     req.PlayerID,
		FromTeamID:   req.FromTeamID,
		ToTeamID:     req.ToTeamID,
		TransferDate: transferDate,
		TransferFee:  req.TransferFee,
		Season:       req.Season,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create transfer failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, transferToDTO(item))
}

func (h *Handler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateTransfer")
	defer span.End()

	transferID := r.PathValue("transferID")
	var req updateTransferRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateTransferInput{
		PlayerID:    req.PlayerID,
		FromTeamID:  req.FromTeamID,
		ToTeamID:    req.ToTeamID,
		TransferFee: req.TransferFee,
		Season:      req.Season,
	}
	if req.TransferDate != nil {
		transferDate, err := parseTransferDate(*req.TransferDate)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.TransferDate = &transferDate
	}

	item, err := h.transferService.Update(ctx, transferID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update transfer failed", "transfer_id", transferID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteTransfer")
	defer span.End()

	transferID := r.PathValue("transferID")
	if err := h.transferService.Delete(ctx, transferID); err != nil {
		h.logger.WarnContext(ctx, "delete transfer failed", "transfer_id", transferID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTransferDate accepts a calendar date or a full RFC3339 timestamp.
func parseTransferDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.Parse(transferDateLayout, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: transferDate must be YYYY-MM-DD or RFC3339, got %q", usecase.ErrInvalidInput, raw)
}

func transfersToDTO(items []transfer.Transfer) []transferDTO {
	out := make([]transferDTO, 0, len(items))
	for _, item := range items {
		out = append(out, transferToDTO(item))
	}
	return out
}

func transferToDTO(v transfer.Transfer) transferDTO {
	return transferDTO{
		ID: v.ID,
		Player: transferPlayerDTO{
			ID:          v.Player.ID,
			Name:        v.Player.Name,
			Photo:       v.Player.Photo,
			Position:    v.Player.Position,
			Nationality: v.Player.Nationality,
			Age:         v.Player.Age,
		},
		FromTeam:     teamToTransferDTO(v.FromTeam),
		ToTeam:       teamToTransferDTO(v.ToTeam),
		TransferDate: v.TransferDate.Format(transferDateLayout),
		TransferFee:  v.TransferFee,
		Season:       v.Season,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func teamToTransferDTO(v transfer.Team) transferTeamDTO {
	return transferTeamDTO{
		ID:      v.ID,
		Name:    v.Name,
		Logo:    v.Logo,
		Country: v.Country,
	}
}
