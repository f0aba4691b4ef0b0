// Package main is the entry point for the todo API service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/todo-service/internal/adapters/http"
	"github.com/jsamuelsen/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/todo-service/internal/adapters/storage"
	"github.com/jsamuelsen/todo-service/internal/app"
	"github.com/jsamuelsen/todo-service/internal/platform/config"
	"github.com/jsamuelsen/todo-service/internal/platform/logging"
	"github.com/jsamuelsen/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store_driver", cfg.Store.Driver),
		logging.URI("store_uri", cfg.Store.URI),
	)

	// 3. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Connect to the store
	store, err := openStore(ctx, &cfg.Store)
	if err != nil {
		return err
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Store.ConnectTimeout)
		defer cancel()

		if closeErr := store.Close(closeCtx); closeErr != nil {
			logger.Error("store close error", slog.Any("error", closeErr))
		}
	}()

	// 5. Register readiness checks
	healthRegistry := ports.NewHealthRegistry(cfg.Store.PingTimeout)
	if err := healthRegistry.Register(store.Health); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 6. Application services
	todoService := app.NewTodoService(app.TodoServiceConfig{Repository: store.Todos, Logger: logger})
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{Repository: store.Quotes, Logger: logger})

	// 7. HTTP server and routes
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: cfg.Telemetry.ServiceName,
		CORSOrigins: cfg.CORS.Origins,
		Health:      handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		Todos:       handlers.NewTodoHandler(todoService),
		Quotes:      handlers.NewQuoteHandler(quoteService),
		Timeout:     http.DefaultRequestTimeout,
	})

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// profile selects the config overlay; APP_ENVIRONMENT defaults to local.
func profile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}

func openStore(ctx context.Context, cfg *config.StoreConfig) (*storage.Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	store, err := storage.Open(connectCtx, storage.Options{
		Driver:   cfg.Driver,
		URI:      cfg.URI,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to store: %w", err)
	}

	return store, nil
}

// serve runs the server until ctx is canceled or the listener fails, then
// drains in-flight requests within shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	g, gCtx := errgroup.WithContext(ctx)
	serverErr := server.Start()

	g.Go(func() error {
		if err, ok := <-serverErr; ok {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
