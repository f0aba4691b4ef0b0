// Package dto holds the JSON request and response shapes of the HTTP API
// and the single place where errors become HTTP responses.
package dto

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/platform/logging"
	"github.com/jsamuelsen/todo-service/internal/platform/telemetry"
)

// ErrorResponse is the envelope for every error the API returns.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
	TraceID string            `json:"traceId,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)

// Messages returned for missing records.
const (
	MessageTodoNotFound   = "Todo not found"
	MessageNoQuotesFound  = "No quotes found"
	MessageRouteNotFound  = "Route not found"
	MessageInvalidBody    = "Invalid JSON body"
	MessageInternalServer = "Internal server error"
)

// NewErrorResponse creates an error envelope.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// ErrorFor maps err to a status and envelope. internal replaces the message of
// any error that is not part of the domain taxonomy.
func ErrorFor(err error, internal string) (int, *ErrorResponse) {
	switch {
	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, MessageInvalidBody)

	case errors.Is(err, ErrValidation):
		resp := NewErrorResponse(ErrorCodeValidation, "Invalid request")
		resp.Details = ValidationErrors(err)

		return http.StatusBadRequest, resp

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, capitalize(validationMessage(err)))

		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Details = map[string]string{ve.Field: ve.Message}
		}

		return http.StatusBadRequest, resp

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, notFoundMessage(err))

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, internal)

	default:
		if internal == "" {
			internal = MessageInternalServer
		}

		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internal)
	}
}

// HandleError writes the envelope for err and aborts the request. Server-side
// failures are logged with the underlying error; the client only sees internal.
func HandleError(c *gin.Context, err error, internal string) {
	ctx := c.Request.Context()
	status, resp := ErrorFor(err, internal)
	resp.TraceID = telemetry.TraceID(ctx)

	if status >= http.StatusInternalServerError {
		logging.FromContext(ctx).ErrorContext(ctx, internal,
			slog.String("error", err.Error()),
			slog.Int("status", status),
		)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	return err.Error()
}

func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) && nf.Entity == domain.EntityQuote {
		return MessageNoQuotesFound
	}

	return MessageTodoNotFound
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
