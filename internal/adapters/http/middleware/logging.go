package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/todo-service/internal/platform/logging"
	"github.com/jsamuelsen/todo-service/internal/platform/telemetry"
)

// probePrefix marks operational endpoints that are polled too often to log.
const probePrefix = "/-/"

// Logging logs one line per completed request at a level chosen by status.
// It also tags the context logger with the trace id when a span is active,
// so it must run after the telemetry middleware.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if id := telemetry.TraceID(ctx); id != "" {
			ctx = logging.WithTraceID(ctx, id)
			c.Request = c.Request.WithContext(ctx)
		}

		if strings.HasPrefix(c.Request.URL.Path, probePrefix) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo

		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			attrs = append(attrs, slog.String("error", errs.Last().Error()))
		}

		logging.FromContext(ctx).LogAttrs(ctx, level, "request completed", attrs...)
	}
}
