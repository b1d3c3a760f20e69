package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/infootball/internal/domain/transfer"
	"github.com/riskibarqy/infootball/internal/platform/id"
	"github.com/riskibarqy/infootball/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const maxTransferPageSize = 100

// TransferFeedConfig controls how the upstream transfer feed is assembled.
type TransferFeedConfig struct {
	TeamIDs    []int64
	QueryLimit int
	FeedLimit  int
	LoanLabel  string
}

func (c TransferFeedConfig) normalize() TransferFeedConfig {
	if c.TeamIDs == nil {
		c.TeamIDs = transfer.DefaultPopularTeams
	}
	if c.QueryLimit <= 0 {
		c.QueryLimit = transfer.DefaultTeamsQuery
	}
	if c.FeedLimit <= 0 {
		c.FeedLimit = transfer.DefaultFeedLimit
	}
	if strings.TrimSpace(c.LoanLabel) == "" {
		c.LoanLabel = transfer.DefaultLoanLabel
	}
	return c
}

type CreateTransferInput struct {
	PlayerID     string
	FromTeamID   string
	ToTeamID     string
	TransferDate time.Time
	TransferFee  float64
	Season       string
}

type UpdateTransferInput struct {
	PlayerID     *string
	FromTeamID   *string
	ToTeamID     *string
	TransferDate *time.Time
	TransferFee  *float64
	Season       *string
}

type TransferService struct {
	repo    transfer.Repository
	feed    transfer.FeedProvider
	idGen   id.Generator
	feedCfg TransferFeedConfig
	logger  *logging.Logger
}

func NewTransferService(
	repo transfer.Repository,
	feed transfer.FeedProvider,
	idGen id.Generator,
	feedCfg TransferFeedConfig,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	return &TransferService{
		repo:    repo,
		feed:    feed,
		idGen:   idGen,
		feedCfg: feedCfg.normalize(),
		logger:  logger,
	}
}

// Feed aggregates recent transfers of the configured popular teams. Teams are queried
// concurrently and a failing team contributes nothing instead of failing the feed.
func (s *TransferService) Feed(ctx context.Context) ([]transfer.FeedItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Feed")
	defer span.End()

	teams := s.feedCfg.TeamIDs
	if len(teams) > s.feedCfg.QueryLimit {
		teams = teams[:s.feedCfg.QueryLimit]
	}
	if len(teams) == 0 {
		return []transfer.FeedItem{}, nil
	}

	pool, err := ants.NewPool(len(teams))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	perTeam := make([][]transfer.FeedItem, len(teams))
	var workers sync.WaitGroup
	for i, teamID := range teams {
		i, teamID := i, teamID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, err := s.feed.FetchTeamTransfers(ctx, teamID)
			if err != nil {
				s.logger.WarnContext(ctx, "team transfers unavailable, skipping team", "team_id", teamID, "error", err)
				return
			}
			perTeam[i] = items
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit team transfers task failed, skipping team", "team_id", teamID, "error", err)
		}
	}
	workers.Wait()

	total := 0
	for _, items := range perTeam {
		total += len(items)
	}
	out := make([]transfer.FeedItem, 0, total)
	for _, items := range perTeam {
		for _, item := range items {
			if item.TransferType == "" {
				item.TransferType = transfer.DefaultType
			}
			item.Fee = transfer.ClassifyFee(item.TransferType, s.feedCfg.LoanLabel)
			out = append(out, item)
		}
	}

	transfer.SortFeedByDateDesc(out)
	if len(out) > s.feedCfg.FeedLimit {
		out = out[:s.feedCfg.FeedLimit]
	}
	return out, nil
}

func (s *TransferService) Create(ctx context.Context, input CreateTransferInput) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Create")
	defer span.End()

	record := transfer.Record{
		PlayerID:     strings.TrimSpace(input.PlayerID),
		FromTeamID:   strings.TrimSpace(input.FromTeamID),
		ToTeamID:     strings.TrimSpace(input.ToTeamID),
		TransferDate: input.TransferDate,
		TransferFee:  input.TransferFee,
		Season:       strings.TrimSpace(input.Season),
	}
	if err := validateTransferRecord(record); err != nil {
		return transfer.Transfer{}, err
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("generate transfer id: %w", err)
	}
	record.ID = newID

	if err := s.repo.Insert(ctx, record); err != nil {
		if isTransferInputError(err) {
			return transfer.Transfer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return transfer.Transfer{}, fmt.Errorf("insert transfer: %w", err)
	}

	return s.Get(ctx, record.ID)
}

// List returns persisted transfers, most recent first. A zero limit returns everything.
func (s *TransferService) List(ctx context.Context, opts transfer.ListOptions) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.List")
	defer span.End()

	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must be >= 0", ErrInvalidInput)
	}
	if opts.Limit > maxTransferPageSize {
		return nil, fmt.Errorf("%w: limit must be <= %d", ErrInvalidInput, maxTransferPageSize)
	}

	items, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return items, nil
}

func (s *TransferService) Get(ctx context.Context, transferID string) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Get", attribute.String("transfer.id", transferID))
	defer span.End()

	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, transferID)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	if !exists {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer=%s", ErrNotFound, transferID)
	}
	return item, nil
}

func (s *TransferService) ListByPlayer(ctx context.Context, playerID string) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ListByPlayer", attribute.String("player.id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	items, err := s.repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by player: %w", err)
	}
	return items, nil
}

// ListBySeason returns a season's transfers, most expensive first.
func (s *TransferService) ListBySeason(ctx context.Context, season string) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ListBySeason", attribute.String("transfer.season", season))
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	items, err := s.repo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list transfers by season: %w", err)
	}
	return items, nil
}

// ListTop returns the most expensive transfers. A zero limit means transfer.DefaultTopLimit.
func (s *TransferService) ListTop(ctx context.Context, limit int) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ListTop", attribute.Int("transfer.limit", limit))
	defer span.End()

	if limit == 0 {
		limit = transfer.DefaultTopLimit
	}
	if limit < 0 || limit > maxTransferPageSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxTransferPageSize)
	}

	items, err := s.repo.ListTopByFee(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top transfers: %w", err)
	}
	return items, nil
}

// Update applies a partial update and returns the reloaded transfer.
func (s *TransferService) Update(ctx context.Context, transferID string, input UpdateTransferInput) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Update", attribute.String("transfer.id", transferID))
	defer span.End()

	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer id is required", ErrInvalidInput)
	}

	patch, err := buildTransferPatch(input)
	if err != nil {
		return transfer.Transfer{}, err
	}
	if patch.IsEmpty() {
		return s.Get(ctx, transferID)
	}

	found, err := s.repo.Update(ctx, transferID, patch)
	if err != nil {
		if isTransferInputError(err) {
			return transfer.Transfer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return transfer.Transfer{}, fmt.Errorf("update transfer: %w", err)
	}
	if !found {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer=%s", ErrNotFound, transferID)
	}

	return s.Get(ctx, transferID)
}

func (s *TransferService) Delete(ctx context.Context, transferID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Delete", attribute.String("transfer.id", transferID))
	defer span.End()

	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		return fmt.Errorf("%w: transfer id is required", ErrInvalidInput)
	}

	found, err := s.repo.Delete(ctx, transferID)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: transfer=%s", ErrNotFound, transferID)
	}
	return nil
}

func validateTransferRecord(record transfer.Record) error {
	switch {
	case record.PlayerID == "":
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	case record.FromTeamID == "":
		return fmt.Errorf("%w: from team id is required", ErrInvalidInput)
	case record.ToTeamID == "":
		return fmt.Errorf("%w: to team id is required", ErrInvalidInput)
	case record.FromTeamID == record.ToTeamID:
		return fmt.Errorf("%w: from and to team must differ", ErrInvalidInput)
	case record.TransferDate.IsZero():
		return fmt.Errorf("%w: transfer date is required", ErrInvalidInput)
	case record.TransferFee < 0:
		return fmt.Errorf("%w: transfer fee must be >= 0", ErrInvalidInput)
	case record.Season == "":
		return fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	return nil
}

func buildTransferPatch(input UpdateTransferInput) (transfer.Patch, error) {
	patch := transfer.Patch{
		PlayerID:     trimmedPtr(input.PlayerID),
		FromTeamID:   trimmedPtr(input.FromTeamID),
		ToTeamID:     trimmedPtr(input.ToTeamID),
		TransferDate: input.TransferDate,
		TransferFee:  input.TransferFee,
		Season:       trimmedPtr(input.Season),
	}

	for name, value := range map[string]*string{
		"player id":    patch.PlayerID,
		"from team id": patch.FromTeamID,
		"to team id":   patch.ToTeamID,
		"season":       patch.Season,
	} {
		if value != nil && *value == "" {
			return transfer.Patch{}, fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, name)
		}
	}
	if patch.TransferDate != nil && patch.TransferDate.IsZero() {
		return transfer.Patch{}, fmt.Errorf("%w: transfer date cannot be empty", ErrInvalidInput)
	}
	if patch.TransferFee != nil && *patch.TransferFee < 0 {
		return transfer.Patch{}, fmt.Errorf("%w: transfer fee must be >= 0", ErrInvalidInput)
	}
	if patch.FromTeamID != nil && patch.ToTeamID != nil && *patch.FromTeamID == *patch.ToTeamID {
		return transfer.Patch{}, fmt.Errorf("%w: from and to team must differ", ErrInvalidInput)
	}
	return patch, nil
}

func isTransferInputError(err error) bool {
	return errors.Is(err, transfer.ErrUnknownReference) || errors.Is(err, transfer.ErrConstraint)
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := strings.TrimSpace(*v)
	return &out
}
