// Package app wires together all dependencies and runs the service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lookkg/lookkg/pkg/database"
	"github.com/lookkg/lookkg/pkg/health"
	pkgkafka "github.com/lookkg/lookkg/pkg/kafka"
	"github.com/lookkg/lookkg/pkg/tracing"

	"github.com/lookkg/lookkg/internal/config"
	"github.com/lookkg/lookkg/internal/event"
	"github.com/lookkg/lookkg/internal/graph"
	handler "github.com/lookkg/lookkg/internal/handler/http"
	"github.com/lookkg/lookkg/internal/service"
	"github.com/lookkg/lookkg/internal/store"
	filestore "github.com/lookkg/lookkg/internal/store/file"
	pgstore "github.com/lookkg/lookkg/internal/store/postgres"
	"github.com/lookkg/lookkg/migrations"
)

// App wires together all dependencies and runs the recommendation service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	pool            *pgxpool.Pool
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Tracing.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  "lookkg",
		OTLPEndpoint: cfg.TracingEndpoint,
		Enabled:      cfg.TracingEnabled,
		SampleRate:   cfg.TracingSampler,
		Environment:  cfg.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Catalog store backend.
	var (
		catalog store.Catalog
		pool    *pgxpool.Pool
	)
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		pgCfg := &database.PostgresConfig{
			Host:            cfg.PostgresHost,
			Port:            cfg.PostgresPort,
			User:            cfg.PostgresUser,
			Password:        cfg.PostgresPassword,
			DBName:          cfg.PostgresDB,
			SSLMode:         cfg.PostgresSSLMode,
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		}
		pool, err = database.NewPostgresPool(ctx, pgCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("init postgres pool: %w", err)
		}
		if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		database.RegisterPoolMetrics(pool, "lookkg")
		catalog = pgstore.New(pool)
		logger.Info("postgres catalog store initialized",
			slog.String("host", cfg.PostgresHost),
			slog.String("database", cfg.PostgresDB),
		)
	default:
		dir := cfg.ResolveDataDir()
		catalog, err = filestore.New(dir, logger)
		if err != nil {
			return nil, fmt.Errorf("init file store: %w", err)
		}
		logger.Info("file catalog store initialized", slog.String("dir", dir))
	}

	// Kafka producer, optional.
	var producer *pkgkafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	// Service layer over a fresh graph, populated from the catalog.
	svc := service.New(catalog, graph.New(), event.NewProducer(producer, logger), logger)
	stats, err := svc.RebuildGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("build initial graph: %w", err)
	}
	logger.Info("compatibility graph built",
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
	)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", func(ctx context.Context) error {
		_, err := catalog.LoadAll(ctx)
		return err
	})
	if pool != nil {
		healthHandler.Register("postgres", pool.Ping)
	}
	if producer != nil {
		healthHandler.Register("kafka", producer.Ping)
	}

	// HTTP server.
	router := handler.NewRouter(svc, healthHandler, logger)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		pool:            pool,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	if a.tracingShutdown != nil {
		if err := a.tracingShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	a.logger.Info("application stopped cleanly")
	return nil
}
