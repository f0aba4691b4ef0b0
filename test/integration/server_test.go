//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	apihttp "github.com/jsamuelsen/todo-service/internal/adapters/http"
	"github.com/jsamuelsen/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/todo-service/internal/adapters/storage"
	"github.com/jsamuelsen/todo-service/internal/app"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// startServer runs the full API over a fresh in-memory sqlite store.
// The returned func stops the server and closes the store.
func startServer() (*httptest.Server, func(), error) {
	gin.SetMode(gin.TestMode)

	ctx := context.Background()

	store, err := storage.Open(ctx, storage.Options{Driver: storage.DriverSQLite, URI: ":memory:"})
	if err != nil {
		return nil, nil, err
	}

	registry := ports.NewHealthRegistry(time.Second)
	if err := registry.Register(store.Health); err != nil {
		_ = store.Close(ctx)
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := gin.New()

	apihttp.SetupRouter(engine, apihttp.RouterConfig{
		Logger:      logger,
		ServiceName: "todo-service-integration",
		Health:      handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "")),
		Todos: handlers.NewTodoHandler(app.NewTodoService(app.TodoServiceConfig{
			Repository: store.Todos,
			Logger:     logger,
		})),
		Quotes: handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
			Repository: store.Quotes,
			Logger:     logger,
		})),
		Timeout: apihttp.DefaultRequestTimeout,
	})

	server := httptest.NewServer(engine)

	return server, func() {
		server.Close()
		_ = store.Close(ctx)
	}, nil
}
