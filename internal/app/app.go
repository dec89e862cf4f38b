package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/config"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/id"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/metrics"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

// Container holds the wired services and the resources behind them.
type Container struct {
	Services httpapi.Services
	Registry *prometheus.Registry
	close    func() error
}

// Build opens the configured store and wires every service on top of it.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	uow, repos, closeFn, err := openStore(ctx, cfg, registry, logger)
	if err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(registry)
	}

	resolver := usecase.NewIdentityResolver(logger.Named("resolver"))

	return &Container{
		Services: httpapi.Services{
			Import:         usecase.NewImportService(uow, resolver, idgen.NewRandomGenerator(), cfg.DefaultTournamentType, m, logger.Named("import")),
			Matches:        usecase.NewMatchService(uow, repos.Matches, cfg.BatchMaxWorkers, m, logger.Named("matches")),
			Statistics:     usecase.NewStatisticsService(repos.Seasons, repos.Players, repos.Decks, repos.Statistics),
			Seasons:        usecase.NewSeasonService(repos.Seasons, logger),
			TournamentType: usecase.NewTournamentTypeService(repos.TournamentTypes, logger),
			Tournaments:    usecase.NewTournamentService(repos.Seasons, repos.TournamentTypes, repos.Tournaments, cfg.DefaultTournamentType, logger),
			Players:        usecase.NewPlayerService(repos.Players, logger),
			Decks:          usecase.NewDeckService(repos.Decks, logger),
		},
		Registry: registry,
		close:    closeFn,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.close == nil {
		return nil
	}
	return c.close()
}

func NewHTTPServer(cfg config.Config, c *Container, logger *logging.Logger) (*http.Server, error) {
	if c == nil {
		return nil, fmt.Errorf("app container cannot be nil")
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = metrics.Handler(c.Registry)
	}

	handler := httpapi.NewHandler(c.Services, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, metricsHandler)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

type unitOfWorkStore interface {
	store.UnitOfWork
	Repositories() store.Repositories
}

func openStore(ctx context.Context, cfg config.Config, registry prometheus.Registerer, logger *logging.Logger) (store.UnitOfWork, store.Repositories, func() error, error) {
	var s unitOfWorkStore
	closeFn := func() error { return nil }

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		s = memory.NewSeededStore()
	case config.StorageDriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, store.Repositories{}, nil, err
		}
		registry.MustRegister(collectors.NewDBStatsCollector(db.DB, dbNameFromURL(cfg.DBURL)))
		logger.Info("postgres connected", "db_name", dbNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
		s = postgres.NewStore(db)
		closeFn = db.Close
	default:
		return nil, store.Repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	repos := cache.Wrap(s.Repositories(), cache.Config{
		Enabled:      cfg.CacheEnabled,
		TTL:          cfg.CacheTTL,
		StatsCircuit: cfg.StatsCircuit,
	})
	return s, repos, closeFn, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbName := dbNameFromURL(cfg.DBURL)
	db, err := otelsqlx.Open("postgres", PostgresDSN(cfg),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbName))

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), db.Close())
	}

	return db, nil
}
