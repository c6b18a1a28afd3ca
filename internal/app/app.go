package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/touchlinehq/touchline/internal/config"
	"github.com/touchlinehq/touchline/internal/domain/match"
	"github.com/touchlinehq/touchline/internal/domain/team"
	"github.com/touchlinehq/touchline/internal/infrastructure/account/roster"
	"github.com/touchlinehq/touchline/internal/infrastructure/extraction"
	"github.com/touchlinehq/touchline/internal/infrastructure/jobqueue"
	cacherepo "github.com/touchlinehq/touchline/internal/infrastructure/repository/cache"
	"github.com/touchlinehq/touchline/internal/infrastructure/repository/memory"
	"github.com/touchlinehq/touchline/internal/infrastructure/repository/postgres"
	"github.com/touchlinehq/touchline/internal/interfaces/httpapi"
	"github.com/touchlinehq/touchline/internal/platform/cache"
	idgen "github.com/touchlinehq/touchline/internal/platform/id"
	"github.com/touchlinehq/touchline/internal/platform/logging"
	"github.com/touchlinehq/touchline/internal/platform/resilience"
	"github.com/touchlinehq/touchline/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	teamRepo, matchRepo, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var tokenCache *cache.Store
	if cfg.CacheEnabled {
		tokenCache = cache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, cache.NewStore(cfg.CacheTTL))
	}

	idGen := idgen.NewRandomGenerator()

	matchSvc := usecase.NewMatchService(matchRepo, teamRepo, idGen)
	teamSvc := usecase.NewTeamService(teamRepo, idGen)
	importSvc := usecase.NewImportService(matchSvc, cfg.ImportMaxWorkers)
	recomputeSvc := usecase.NewRecomputeService(matchRepo)

	var extractor usecase.StatsExtractor
	if cfg.ExtractionEnabled {
		extractor = extraction.NewClient(extraction.ClientConfig{
			BaseURL: cfg.ExtractionBaseURL,
			APIKey:  cfg.ExtractionAPIKey,
			Timeout: cfg.ExtractionTimeout,
			Logger:  logging.Default(),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ExtractionCircuitEnabled,
				FailureThreshold: cfg.ExtractionCircuitFailureCount,
				OpenTimeout:      cfg.ExtractionCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ExtractionCircuitHalfOpenMaxReq,
			},
		})
	}
	extractionSvc := usecase.NewExtractionService(extractor, matchSvc)

	rosterClient := roster.NewClient(
		&http.Client{Timeout: cfg.RosterTimeout},
		cfg.RosterBaseURL,
		cfg.RosterIntrospectPath,
		cfg.RosterAdminKey,
		tokenCache,
		logger,
	)

	handler := httpapi.NewHandler(teamSvc, matchSvc, importSvc, recomputeSvc, extractionSvc, logger)
	router := httpapi.NewRouter(
		handler,
		rosterClient,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// newRepositories selects the storage backend. DB_URL=memory runs the service
// on seeded in-memory repositories, which is how local dev and the handler
// tests run; anything else is treated as a postgres DSN.
func newRepositories(cfg config.Config, logger *slog.Logger) (team.Repository, match.Repository, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.DBURL), "memory") {
		logger.Info("using in-memory repositories")
		return memory.NewTeamRepository(memory.SeedTeams()), memory.NewMatchRepository(memory.SeedMatches()), nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))
	return postgres.NewTeamRepository(db), postgres.NewMatchRepository(db), nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// EnqueueRecomputeOnDeploy schedules one metric recompute per deployed
// version. The deduplication id pins the job to the service version, so
// repeated restarts of the same build do not refan the queue.
func EnqueueRecomputeOnDeploy(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if !cfg.QStashEnabled {
		return nil
	}

	publisher := jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
		BaseURL:          cfg.QStashBaseURL,
		Token:            cfg.QStashToken,
		TargetBaseURL:    cfg.QStashTargetBaseURL,
		Retries:          cfg.QStashRetries,
		InternalJobToken: cfg.InternalJobToken,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.QStashCircuitEnabled,
			FailureThreshold: cfg.QStashCircuitFailureCount,
			OpenTimeout:      cfg.QStashCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
		},
	}, logger)

	return publisher.Enqueue(ctx, "/v1/internal/jobs/recompute", nil, 0, "recompute-"+cfg.ServiceVersion)
}
