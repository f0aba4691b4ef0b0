// Package main is the terminal client for the todo API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen/todo-service/internal/adapters/clients"
	"github.com/jsamuelsen/todo-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/todo-service/internal/adapters/tui"
	"github.com/jsamuelsen/todo-service/internal/frontend"
	"github.com/jsamuelsen/todo-service/internal/platform/config"
	"github.com/jsamuelsen/todo-service/internal/platform/logging"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// healthTimeout bounds the health subcommand's API check.
const healthTimeout = 5 * time.Second

func main() {
	cmd := &cli.Command{
		Name:   "todo",
		Usage:  "Manage your todos from the terminal",
		Action: runTUI,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "Base URL of the todo API",
				Sources: cli.EnvVars(config.EnvAPIBaseURL),
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "Config profile overlay (configs/{profile}.yaml)",
				Value:   "local",
				Sources: cli.EnvVars("APP_ENVIRONMENT"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Print the quote of the day and all todos, then exit",
				Action: runList,
			},
			{
				Name:   "health",
				Usage:  "Check that the todo API is reachable and healthy",
				Action: runHealth,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The alternate screen owns stdout, so logs go to the rolling file only.
	ctrl, err := newController(cmd, io.Discard)
	if err != nil {
		return err
	}

	err = tui.Run(ctx, ctrl)
	if errors.Is(err, tui.ErrNotTTY) {
		return printList(ctx, ctrl, os.Stdout)
	}

	return err
}

func runList(ctx context.Context, cmd *cli.Command) error {
	ctrl, err := newController(cmd, os.Stderr)
	if err != nil {
		return err
	}

	return printList(ctx, ctrl, os.Stdout)
}

func runHealth(ctx context.Context, cmd *cli.Command) error {
	api, _, err := newAPI(cmd, os.Stderr)
	if err != nil {
		return err
	}

	return checkHealth(ctx, api, os.Stdout)
}

// checkHealth runs the API check through a health registry and prints one
// line per check. An unhealthy result is returned as an error.
func checkHealth(ctx context.Context, api ports.HealthChecker, w io.Writer) error {
	registry := ports.NewHealthRegistry(healthTimeout)
	if err := registry.Register(api); err != nil {
		return fmt.Errorf("registering health check: %w", err)
	}

	result := registry.CheckAll(ctx)

	for name, check := range result.Checks {
		line := fmt.Sprintf("%s: %s (%s)", name, check.Status, check.Duration.Round(time.Millisecond))
		if check.Message != "" {
			line += " " + check.Message
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if result.Status != ports.HealthStatusHealthy {
		return fmt.Errorf("todo API is %s", result.Status)
	}

	return nil
}

// printList loads once and renders the result without a cursor.
func printList(ctx context.Context, ctrl *frontend.Controller, w io.Writer) error {
	state := frontend.ReduceAll(frontend.State{}, frontend.LoadStarted{})
	state = frontend.ReduceAll(state, ctrl.Load(ctx)...)

	if err := tui.Render(w, state); err != nil {
		return fmt.Errorf("rendering todos: %w", err)
	}

	if state.Error != "" {
		return errors.New(state.Error)
	}

	return nil
}

func newController(cmd *cli.Command, logOut io.Writer) (*frontend.Controller, error) {
	api, logger, err := newAPI(cmd, logOut)
	if err != nil {
		return nil, err
	}

	return frontend.NewController(api, logger), nil
}

// newAPI loads the client config and builds the API adapter.
func newAPI(cmd *cli.Command, logOut io.Writer) (*acl.TodoAPIClient, *slog.Logger, error) {
	cfg, err := config.Load(cmd.String("profile"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if api := cmd.String("api"); api != "" {
		cfg.Client.BaseURL = api
	}

	if err := cfg.ValidateClient(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "todo",
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logOut)
	logging.SetDefault(logger)

	client, err := clients.New(&clients.Config{
		BaseURL:     cfg.Client.BaseURL,
		ServiceName: acl.ServiceName,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating api client: %w", err)
	}

	logger.Debug("using api", slog.String("base_url", cfg.Client.BaseURL))

	return acl.NewTodoAPIClient(acl.TodoAPIClientConfig{Client: client, Logger: logger}), logger, nil
}
