package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio/internal/config"
	"portfolio/internal/contextutil"
	"portfolio/internal/contributions"
	"portfolio/internal/http"
	"portfolio/internal/logging"
	"portfolio/internal/search"
	"portfolio/internal/service"
	"portfolio/internal/storage"
	"portfolio/internal/watcher"
)

const (
	shutdownTimeout = 10 * time.Second
	pruneInterval   = time.Hour
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	slog.Debug("Logging configured", "level", cfg.LogLevel, "format", cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		slog.Error("API server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = contextutil.WithLogger(ctx, logger)

	// Initialize database
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	contributionRepo := storage.NewContributionRepo(db)

	// GraphQL needs a token; without one every request goes to the scraper.
	var primary service.CalendarSource
	if cfg.GitHubToken != "" {
		primary = contributions.NewGraphQLClient(cfg.GitHubGraphQLURL, cfg.GitHubToken, &nethttp.Client{Timeout: 15 * time.Second})
		slog.Info("GitHub GraphQL enabled", "url", cfg.GitHubGraphQLURL)
	} else {
		slog.Info("GITHUB_TOKEN not set, using HTML scraping only")
	}
	scraper := contributions.NewScraper(cfg.GitHubBaseURL)

	contributionsService := service.NewContributionsService(primary, scraper, contributionRepo, service.ContributionsConfig{
		CacheSize:   cfg.ContributionsCacheSize,
		CacheTTL:    cfg.ContributionsCacheTTL,
		UpstreamRPS: cfg.UpstreamRPS,
	})

	// Load the search index; a missing file leaves an empty snapshot until
	// the builder writes one.
	index := search.NewIndex(cfg.IndexPath, nil)
	_ = index.Reload(ctx)
	if err := os.MkdirAll(filepath.Dir(cfg.IndexPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		ContributionsService: contributionsService,
		Index:                index,
		IndexPath:            cfg.IndexPath,
		DB:                   db,
	})

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("Shutting down API server")
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return watcher.New(cfg.IndexPath, index, 0).Run(gctx)
	})

	g.Go(func() error {
		return pruneCache(gctx, contributionRepo, cfg.ContributionsCacheTTL)
	})

	return g.Wait()
}

// pruneCache periodically drops cached calendars that can no longer be
// served.
func pruneCache(ctx context.Context, store storage.ContributionStore, ttl time.Duration) error {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := store.DeleteOlderThan(ctx, time.Now().Add(-ttl))
			if err != nil {
				slog.Warn("Failed to prune contributions cache", "error", err)
				continue
			}
			if n > 0 {
				slog.Debug("Pruned contributions cache", "rows", n)
			}
		}
	}
}
