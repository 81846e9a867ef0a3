package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CrossBot_Go/internal/bootstrap"
	"github.com/osse101/CrossBot_Go/internal/catalog"
	"github.com/osse101/CrossBot_Go/internal/concurrency"
	"github.com/osse101/CrossBot_Go/internal/config"
	"github.com/osse101/CrossBot_Go/internal/database"
	"github.com/osse101/CrossBot_Go/internal/ledger"
	"github.com/osse101/CrossBot_Go/internal/puzzle"
	"github.com/osse101/CrossBot_Go/internal/server"
	"github.com/osse101/CrossBot_Go/internal/settings"
	"github.com/osse101/CrossBot_Go/internal/worker"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, version)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, warning := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", warning)
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	locks := concurrency.NewLockManager()

	loader, err := catalog.NewLoader()
	if err != nil {
		dbPool.Close()
		return err
	}
	catalogService := catalog.NewService(repos.Item, loader, cfg.ItemsConfigPath, cfg.CatalogCacheTTL)
	if _, err := bootstrap.SyncItems(ctx, catalogService); err != nil {
		dbPool.Close()
		return err
	}

	settingsService := settings.NewService(repos.Settings, cfg.GameSettings())
	ledgerService := ledger.NewService(repos.User, catalogService, locks)
	puzzleService := puzzle.NewService(repos.Puzzle, catalogService, settingsService, puzzle.Options{
		Locks:    locks,
		Location: loc,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start(context.Background())

	components := bootstrap.ShutdownComponents{Pool: pool, DB: dbPool}
	if cfg.AnnounceCron != "" {
		announcer := worker.NewAnnounceWorker(puzzleService, pool, cfg.AnnounceCron, loc, nil)
		if err := announcer.Start(); err != nil {
			bootstrap.GracefulShutdown(context.Background(), components)
			return err
		}
		components.AnnounceWorker = announcer
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, server.Services{
		Puzzle:   puzzleService,
		Ledger:   ledgerService,
		Catalog:  catalogService,
		Settings: settingsService,
	})
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
	return err
}
