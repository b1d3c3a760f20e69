package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/infootball/internal/domain/fixture"
	"go.opentelemetry.io/otel/attribute"
)

const matchDateLayout = "2006-01-02"

type MatchService struct {
	fixtures fixture.Provider
}

func NewMatchService(fixtures fixture.Provider) *MatchService {
	return &MatchService{fixtures: fixtures}
}

// ListLive returns every match currently in play.
func (s *MatchService) ListLive(ctx context.Context) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListLive")
	defer span.End()

	matches, err := s.fixtures.FetchFixtures(ctx, fixture.Query{Live: true})
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	if matches == nil {
		matches = []fixture.Match{}
	}
	return matches, nil
}

// ListByDate returns the matches of one calendar day in YYYY-MM-DD form.
func (s *MatchService) ListByDate(ctx context.Context, date string) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByDate", attribute.String("match.date", date))
	defer span.End()

	date = strings.TrimSpace(date)
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(matchDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, date)
	}

	matches, err := s.fixtures.FetchFixtures(ctx, fixture.Query{Date: date})
	if err != nil {
		return nil, fmt.Errorf("list matches date=%s: %w", date, err)
	}
	if matches == nil {
		matches = []fixture.Match{}
	}
	return matches, nil
}
