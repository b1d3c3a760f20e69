package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/infootball/internal/domain/competition"
	"github.com/riskibarqy/infootball/internal/domain/fixture"
	"github.com/riskibarqy/infootball/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type CompetitionService struct {
	provider competition.Provider
	fixtures fixture.Provider
	logger   *logging.Logger
}

func NewCompetitionService(provider competition.Provider, fixtures fixture.Provider, logger *logging.Logger) *CompetitionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CompetitionService{
		provider: provider,
		fixtures: fixtures,
		logger:   logger,
	}
}

func (s *CompetitionService) List(ctx context.Context, country string) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	items, err := s.provider.ListCompetitions(ctx, strings.TrimSpace(country))
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *CompetitionService) Get(ctx context.Context, id string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get", attribute.String("competition.id", id))
	defer span.End()

	id, err := normalizeNumericID("competition id", id)
	if err != nil {
		return competition.Competition{}, err
	}

	items, err := s.provider.FindCompetitions(ctx, id)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if len(items) == 0 {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, id)
	}
	return items[0], nil
}

// GetStandings returns the league table. A season with no table yet yields empty standings,
// not an error.
func (s *CompetitionService) GetStandings(ctx context.Context, id, season string) (competition.Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetStandings", competitionAttrs(id, season)...)
	defer span.End()

	id, season, err := s.resolveSeason(ctx, id, season)
	if err != nil {
		return competition.Standings{}, err
	}
	return s.standings(ctx, id, season)
}

// GetTopScorers returns the first TopScorerLimit entries of the upstream ranking.
func (s *CompetitionService) GetTopScorers(ctx context.Context, id, season string) ([]competition.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetTopScorers", competitionAttrs(id, season)...)
	defer span.End()

	id, season, err := s.resolveSeason(ctx, id, season)
	if err != nil {
		return nil, err
	}
	return s.topScorers(ctx, id, season)
}

func (s *CompetitionService) GetUpcomingMatches(ctx context.Context, id, season string) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetUpcomingMatches", competitionAttrs(id, season)...)
	defer span.End()

	id, season, err := s.resolveSeason(ctx, id, season)
	if err != nil {
		return nil, err
	}
	return s.upcomingMatches(ctx, id, season)
}

// GetOverview loads everything the competition page shows. Competition and standings
// failures fail the call; scorers and matches fall back to empty lists.
func (s *CompetitionService) GetOverview(ctx context.Context, id, season string) (competition.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetOverview", competitionAttrs(id, season)...)
	defer span.End()

	id, err := normalizeNumericID("competition id", id)
	if err != nil {
		return competition.Overview{}, err
	}
	season, err = normalizeSeason(season)
	if err != nil {
		return competition.Overview{}, err
	}

	out := competition.Overview{
		TopScorers:      []competition.TopScorer{},
		UpcomingMatches: []fixture.Match{},
	}
	knownCompetition := false
	if season == "" {
		out.Competition, err = s.Get(ctx, id)
		if err != nil {
			return competition.Overview{}, err
		}
		season = out.Competition.Season
		knownCompetition = true
	}
	out.Season = season

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	if !knownCompetition {
		p.Go(func(ctx context.Context) error {
			item, err := s.Get(ctx, id)
			if err != nil {
				return err
			}
			out.Competition = item
			return nil
		})
	}
	p.Go(func(ctx context.Context) error {
		standings, err := s.standings(ctx, id, season)
		if err != nil {
			return err
		}
		out.Standings = standings
		return nil
	})
	p.Go(func(ctx context.Context) error {
		scorers, err := s.topScorers(ctx, id, season)
		if err != nil {
			s.logger.WarnContext(ctx, "overview top scorers unavailable", "competition_id", id, "season", season, "error", err)
			return nil
		}
		out.TopScorers = scorers
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.upcomingMatches(ctx, id, season)
		if err != nil {
			s.logger.WarnContext(ctx, "overview upcoming matches unavailable", "competition_id", id, "season", season, "error", err)
			return nil
		}
		out.UpcomingMatches = matches
		return nil
	})
	if err := p.Wait(); err != nil {
		return competition.Overview{}, fmt.Errorf("competition overview: %w", err)
	}

	return out, nil
}

// resolveSeason validates the inputs and, when season is empty, looks up the
// competition's current season. That costs one extra upstream call.
func (s *CompetitionService) resolveSeason(ctx context.Context, id, season string) (string, string, error) {
	id, err := normalizeNumericID("competition id", id)
	if err != nil {
		return "", "", err
	}
	season, err = normalizeSeason(season)
	if err != nil {
		return "", "", err
	}
	if season != "" {
		return id, season, nil
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	return id, item.Season, nil
}

func (s *CompetitionService) standings(ctx context.Context, id, season string) (competition.Standings, error) {
	standings, err := s.provider.FetchStandings(ctx, id, season)
	if err != nil {
		return competition.Standings{}, fmt.Errorf("get standings: %w", err)
	}
	if standings.IsEmpty() && standings.Competition == nil {
		return competition.EmptyStandings(), nil
	}
	if standings.Standings == nil {
		standings.Standings = []competition.StandingRow{}
	}
	return standings, nil
}

func (s *CompetitionService) topScorers(ctx context.Context, id, season string) ([]competition.TopScorer, error) {
	scorers, err := s.provider.FetchTopScorers(ctx, id, season)
	if err != nil {
		return nil, fmt.Errorf("get top scorers: %w", err)
	}
	if len(scorers) > competition.TopScorerLimit {
		scorers = scorers[:competition.TopScorerLimit]
	}
	if scorers == nil {
		scorers = []competition.TopScorer{}
	}
	return scorers, nil
}

func (s *CompetitionService) upcomingMatches(ctx context.Context, id, season string) ([]fixture.Match, error) {
	matches, err := s.fixtures.FetchFixtures(ctx, fixture.Query{
		LeagueID: id,
		Season:   season,
		Next:     competition.UpcomingMatchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("get upcoming matches: %w", err)
	}
	if matches == nil {
		matches = []fixture.Match{}
	}
	return matches, nil
}

func normalizeNumericID(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return "", fmt.Errorf("%w: %s must be a positive number, got %q", ErrInvalidInput, name, value)
	}
	return value, nil
}

// normalizeSeason accepts an empty season (resolved later) or a four digit year.
func normalizeSeason(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	year, err := strconv.Atoi(value)
	if err != nil || year < 1000 || year > 9999 {
		return "", fmt.Errorf("%w: season must be a four digit year, got %q", ErrInvalidInput, value)
	}
	return value, nil
}

func competitionAttrs(id, season string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("competition.id", id),
		attribute.String("competition.season", season),
	}
}
