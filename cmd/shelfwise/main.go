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

	"github.com/joho/godotenv"

	"shelfwise/internal/auth"
	"shelfwise/internal/config"
	"shelfwise/internal/db"
	"shelfwise/internal/logging"
	"shelfwise/internal/notify"
	"shelfwise/internal/recipes"
	claudechef "shelfwise/internal/recipes/claude"
	"shelfwise/internal/recipes/mealdb"
	"shelfwise/internal/store"
	"shelfwise/internal/web"
)

func main() {
	// Missing .env is fine; environment variables take over.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	userStore := store.NewUserStore(database)
	itemStore := store.NewItemStore(database)

	authSvc := auth.NewService(userStore, cfg.JWTSecret, cfg.TokenTTL)
	finder := newRecipeFinder(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.AMQPURL != "" {
		publisher, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("failed to connect to AMQP", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()

		worker := notify.NewWorker(itemStore, publisher, cfg.AlertInterval, cfg.AlertWindow, logger)
		go func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("expiry alert worker stopped", "error", err)
			}
		}()
		logger.Info("expiry alert worker started",
			"interval", cfg.AlertInterval, "window", cfg.AlertWindow)
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      web.NewServer(itemStore, authSvc, finder, logger),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting server", "addr", cfg.ListenAddr, "recipe_backend", cfg.RecipeBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("server stopped gracefully")
}

func newRecipeFinder(cfg *config.Config, logger *slog.Logger) recipes.Finder {
	switch cfg.RecipeBackend {
	case "claude":
		logger.Info("using Claude recipe backend", "model", cfg.ClaudeModel)
		return claudechef.NewSuggester(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		logger.Info("using TheMealDB recipe backend")
		return mealdb.NewClient(cfg.MealDBBaseURL)
	}
}
