package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/cinepass/cinebook/internal/booking"
	"github.com/cinepass/cinebook/internal/config"
	"github.com/cinepass/cinebook/internal/database"
	"github.com/cinepass/cinebook/internal/payment"
	"github.com/cinepass/cinebook/internal/quiz"
	"github.com/cinepass/cinebook/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	store, err := server.NewSQLiteStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	if err := server.SeedMovies(ctx, logger, store); err != nil {
		return fmt.Errorf("seeding movies: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Quiz generation ---
	var gen quiz.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		g, err := quiz.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return fmt.Errorf("configuring quiz generation: %w", err)
		}
		gen = g
		logger.Info("quiz generation enabled", "model", cfg.OpenAIModel)
	} else {
		logger.Warn("OPENAI_API_KEY not set, quiz endpoint serves the generic fallback")
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, server.Deps{
		Logger:   logger,
		DB:       db,
		Store:    store,
		Sessions: booking.NewRegistry(),
		Quiz:     quiz.NewService(gen, logger),
		Payments: payment.NewSimulated(cfg.PaymentLatency),
		SPADir:   cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
