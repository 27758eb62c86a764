// cmd/server/main.go
// This is the entry point for the Golf Companion API server.
// The cmd/ folder holds executables; internal/ holds the packages they are
// built from, which other modules cannot import.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/trentd187/golf-companion/internal/analysis"
	"github.com/trentd187/golf-companion/internal/config"
	"github.com/trentd187/golf-companion/internal/database"
	"github.com/trentd187/golf-companion/internal/handlers"
	"github.com/trentd187/golf-companion/internal/hub"
	"github.com/trentd187/golf-companion/internal/navigation"
	"github.com/trentd187/golf-companion/internal/scoring"
	"github.com/trentd187/golf-companion/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	// The hub fans change events out to every /changes subscriber.
	// "go changes.Run()" starts its loop in the background.
	changes := hub.New()
	go changes.Run()

	opts := []store.Option{
		store.WithNotifier(changes),
		store.WithLogger(log.With("component", "store")),
	}

	// The database is optional. With a DATABASE_URL, feedback is also written
	// to Postgres; without one it is only acknowledged.
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Error("connect to database", "err", err)
			os.Exit(1)
		}
		// Apply pending migrations on startup so the schema always matches the code.
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Error("run migrations", "err", err)
			os.Exit(1)
		}
		opts = append(opts, store.WithFeedbackSink(database.NewFeedbackRepository(db)))
		log.Info("feedback persistence enabled")
	}

	state := store.New(opts...)
	nav := navigation.NewManager(changes)
	runner := analysis.NewRunner(
		scoring.NewRandom(uint64(time.Now().UnixNano())),
		state,
		cfg.AnalysisDelay,
		log.With("component", "analysis"),
	)

	app := fiber.New(fiber.Config{
		AppName: "Golf Companion API",
	})

	// --- Global middleware ---
	// logger.New() logs method, path, status and duration for every request.
	app.Use(logger.New())
	// cors.New() allows any origin so the mobile app can call the API in development.
	app.Use(cors.New())

	// --- Public routes ---
	app.Get("/health", handlers.HealthCheck)

	// --- API routes ---
	handlers.RegisterRoutes(app.Group("/api/v1"), handlers.Deps{
		Store:    state,
		Nav:      nav,
		Analysis: runner,
		Hub:      changes,
	})

	// Shut down cleanly on Ctrl-C or SIGTERM from the container runtime.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		runner.Stop()
		// Stopping the hub closes every open /changes stream, so Fiber isn't
		// left waiting on connections that never finish by themselves.
		changes.Stop()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// newLogger writes JSON in production and readable text everywhere else.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
