package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/pixeldock/pixelctl/internal/simulator"
	"github.com/pixeldock/pixelctl/internal/xslog"
)

const shutdownTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := simulator.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	store, err := simulator.OpenStore(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open module store: %w", err)
	}
	defer func() { _ = store.Close() }()

	engine := simulator.NewEngine(store, cfg.TargetFPS)
	feeds := simulator.NewFeeds()
	srv := simulator.NewServer(cfg, store, engine, feeds, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return engine.Run(ctx)
	})

	g.Go(func() error {
		return feeds.Run(ctx)
	})

	g.Go(func() error {
		logger.InfoContext(ctx, "paneld listening",
			slog.String("addr", cfg.Addr),
			xslog.Version(),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.InfoContext(shutdownCtx, "shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
