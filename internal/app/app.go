package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/infootball/external/apifootball"
	"github.com/riskibarqy/infootball/internal/config"
	"github.com/riskibarqy/infootball/internal/domain/transfer"
	"github.com/riskibarqy/infootball/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/infootball/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/infootball/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/infootball/internal/platform/id"
	"github.com/riskibarqy/infootball/internal/platform/logging"
	"github.com/riskibarqy/infootball/internal/platform/resilience"
	"github.com/riskibarqy/infootball/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPServer wires the upstream client, the transfer store and the services behind the
// HTTP router. The returned cleanup releases the database handle, if any.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	transferRepo, cleanup, err := newTransferRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	client := apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.APIFootballTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:        cfg.APIFootballBaseURL,
		APIKey:         cfg.APIFootballKey,
		Timeout:        cfg.APIFootballTimeout,
		FallbackSeason: cfg.CompetitionFallbackSeason,
		Logger:         logger.With("component", "apifootball"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxRq,
		},
	})

	competitionSvc := usecase.NewCompetitionService(client, client, logger)
	matchSvc := usecase.NewMatchService(client)
	transferSvc := usecase.NewTransferService(
		transferRepo,
		client,
		idgen.NewRandomGenerator(),
		usecase.TransferFeedConfig{
			TeamIDs:    cfg.TransferTeamIDs,
			QueryLimit: cfg.TransferTeamQueryLimit,
			FeedLimit:  cfg.TransferFeedLimit,
			LoanLabel:  cfg.TransferLoanLabel,
		},
		logger,
	)

	handler := httpapi.NewHandler(competitionSvc, matchSvc, transferSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newTransferRepository(cfg config.Config, logger *logging.Logger) (transfer.Repository, func() error, error) {
	if cfg.TransferStore == config.TransferStoreMemory {
		logger.Info("transfer store ready", "store", config.TransferStoreMemory)
		return memory.NewTransferRepository(memory.DefaultSeed()), func() error { return nil }, nil
	}

	db, err := openDB(cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("transfer store ready",
		"store", config.TransferStorePostgres,
		"db", redactDBURL(cfg.DBURL),
	)

	return postgres.NewTransferRepository(db), db.Close, nil
}

func openDB(dbURL string) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}
