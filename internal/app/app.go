// Package app wires configuration, storage, caches, service clients and
// event handlers into a runnable synchronization service.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citywatch/storage-service/internal/adapter/memcache"
	"github.com/citywatch/storage-service/internal/adapter/postgres"
	operationrepo "github.com/citywatch/storage-service/internal/adapter/postgres/operation"
	remarkrepo "github.com/citywatch/storage-service/internal/adapter/postgres/remark"
	userrepo "github.com/citywatch/storage-service/internal/adapter/postgres/user"
	"github.com/citywatch/storage-service/internal/cache"
	"github.com/citywatch/storage-service/internal/config"
	"github.com/citywatch/storage-service/internal/event"
	"github.com/citywatch/storage-service/internal/handler"
	"github.com/citywatch/storage-service/internal/report"
	"github.com/citywatch/storage-service/internal/serviceclient"
)

// App holds the wired service. The Bus is exported so a transport consumer
// can feed events into the registered handlers.
type App struct {
	Bus    *event.MemoryBus
	Logger *slog.Logger

	pool *pgxpool.Pool
}

// New loads configuration and wires every component. The returned App is
// ready to receive events on its Bus.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting storage service",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: connect to database: %w", err)
	}

	backend, err := memcache.New(memcache.Config{
		Capacity:           cfg.Cache.Capacity,
		NumShards:          cfg.Cache.NumShards,
		TTL:                cfg.Cache.TTL,
		EvictionPercentage: cfg.Cache.EvictionPercentage,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("app: create cache: %w", err)
	}

	bus := event.NewMemoryBus()

	handler.RegisterAll(bus, handler.Deps{
		Logger:   logger,
		Reporter: report.NewSlogReporter(logger),

		Remarks:    remarkrepo.New(pool),
		Users:      userrepo.New(pool),
		Operations: operationrepo.New(pool),

		RemarkClient: serviceclient.NewRemarkClient(cfg.Services.RemarksURL, cfg.Services.Timeout, logger),
		UserClient:   serviceclient.NewUserClient(cfg.Services.UsersURL, cfg.Services.Timeout, logger),

		RemarkCache:  cache.NewRemarkCache(backend, cfg.Cache.LatestLimit),
		UserCache:    cache.NewUserCache(backend),
		AccountState: cache.NewAccountStateService(backend),
	})

	logger.Info("event handlers registered")

	return &App{Bus: bus, Logger: logger, pool: pool}, nil
}

// Run blocks until the context is cancelled, then drains in-flight event
// deliveries and releases resources.
func (a *App) Run(ctx context.Context) error {
	<-ctx.Done()

	a.Logger.Info("shutting down, draining in-flight events")
	a.Bus.Wait()
	a.pool.Close()
	a.Logger.Info("shutdown complete")
	return nil
}

// Run is the application entry point used by the service binary.
func Run(ctx context.Context) error {
	a, err := New(ctx)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
