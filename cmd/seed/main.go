// Package main loads quotes from a JSON file into the store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/todo-service/internal/adapters/storage"
	"github.com/jsamuelsen/todo-service/internal/app"
	"github.com/jsamuelsen/todo-service/internal/platform/config"
	"github.com/jsamuelsen/todo-service/internal/platform/logging"
)

// errNoQuotes is returned for a seed file holding an empty array.
var errNoQuotes = errors.New("no quotes found in file")

func main() {
	cmd := &cli.Command{
		Name:   "seed",
		Usage:  "Insert quotes from a JSON file into the todo store",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON array of {text, author} objects",
				Value:   config.DefaultSeedFile,
				Sources: cli.EnvVars("SEED_FILE"),
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "Config profile overlay (configs/{profile}.yaml)",
				Value:   "local",
				Sources: cli.EnvVars("APP_ENVIRONMENT"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("profile"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "seed",
		Version: cfg.App.Version,
	})
	logging.SetDefault(logger)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Store.ConnectTimeout)
	defer cancel()

	store, err := storage.Open(connectCtx, storage.Options{
		Driver:   cfg.Store.Driver,
		URI:      cfg.Store.URI,
		Database: cfg.Store.Database,
	})
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}

	logger.Info("connected to store", logging.URI("store_uri", cfg.Store.URI))

	defer func() {
		if closeErr := store.Close(context.Background()); closeErr != nil {
			logger.Error("store close error", slog.Any("error", closeErr))
		}

		logger.Info("disconnected from store")
	}()

	service := app.NewQuoteService(app.QuoteServiceConfig{Repository: store.Quotes, Logger: logger})

	n, err := seed(ctx, service, cmd.String("file"))
	if err != nil {
		return err
	}

	logger.Info("inserted quotes", slog.Int("count", n))

	return nil
}

// seed reads path and inserts its quotes as one batch.
func seed(ctx context.Context, service *app.QuoteService, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading quotes file: %w", err)
	}

	inputs, err := dto.LoadQuoteFile(data)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(inputs) == 0 {
		return 0, fmt.Errorf("%s: %w", path, errNoQuotes)
	}

	quotes, err := service.CreateQuotes(ctx, inputs)
	if err != nil {
		return 0, fmt.Errorf("inserting quotes: %w", err)
	}

	return len(quotes), nil
}
