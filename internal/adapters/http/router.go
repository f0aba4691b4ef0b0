package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/todo-service/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds every /api request.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains everything SetupRouter wires together.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	// CORSOrigins lists allowed browser origins; empty allows any.
	CORSOrigins []string

	Health *handlers.HealthHandler
	Todos  *handlers.TodoHandler
	Quotes *handlers.QuoteHandler

	Timeout time.Duration
}

// SetupRouter registers middleware and routes on engine.
// Middleware order, first to last:
//  1. Recovery
//  2. Request ID and context logger
//  3. CORS
//  4. OpenTelemetry tracing and metrics
//  5. Request logging (skips /-/ probes)
//
// Route groups:
//   - /-/   operational probes and metrics
//   - /api  the public JSON API, with a request deadline
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(cfg.Logger),
		middleware.CORS(cfg.CORSOrigins),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeNotFound, dto.MessageRouteNotFound))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.ErrorCodeBadRequest, "Method not allowed"))
	})

	if cfg.Health != nil {
		cfg.Health.RegisterProbeRoutes(engine.Group("/-"))
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.Health != nil {
		api.GET("/health", cfg.Health.Health)
	}

	if cfg.Todos != nil {
		cfg.Todos.RegisterTodoRoutes(api)
	}

	if cfg.Quotes != nil {
		cfg.Quotes.RegisterQuoteRoutes(api)
	}
}
