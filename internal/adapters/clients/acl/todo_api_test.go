package acl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/todo-service/internal/adapters/clients"
	httpadapter "github.com/jsamuelsen/todo-service/internal/adapters/http"
	"github.com/jsamuelsen/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/todo-service/internal/adapters/storage"
	"github.com/jsamuelsen/todo-service/internal/app"
	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAPIClient(t *testing.T, baseURL string) *TodoAPIClient {
	t.Helper()

	client, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: ServiceName,
		Timeout:     5 * time.Second,
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	return NewTodoAPIClient(TodoAPIClientConfig{Client: client, Logger: discardLogger()})
}

// stubAPI serves a canned status and body for every request.
func stubAPI(t *testing.T, status int, body string) *TodoAPIClient {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return newAPIClient(t, server.URL+"/api")
}

// liveAPI runs the real router over an in-memory store.
func liveAPI(t *testing.T) *TodoAPIClient {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctx := context.Background()

	store, err := storage.Open(ctx, storage.Options{Driver: storage.DriverSQLite, URI: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	logger := discardLogger()
	engine := gin.New()

	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:      logger,
		ServiceName: "todo-service-test",
		Health:      handlers.NewHealthHandler(ports.NewHealthRegistry(time.Second), handlers.BuildInfo{}),
		Todos: handlers.NewTodoHandler(app.NewTodoService(app.TodoServiceConfig{
			Repository: store.Todos,
			Logger:     logger,
		})),
		Quotes: handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
			Repository: store.Quotes,
			Logger:     logger,
		})),
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return newAPIClient(t, server.URL+"/api")
}

func TestNewTodoAPIClient_PanicsWithoutClient(t *testing.T) {
	assert.PanicsWithValue(t, "TodoAPIClient: Client is required", func() {
		NewTodoAPIClient(TodoAPIClientConfig{})
	})
}

func TestTodoAPIClient_RoundTrip(t *testing.T) {
	api := liveAPI(t)
	ctx := context.Background()

	require.NoError(t, api.Check(ctx))

	todos, err := api.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	created, err := api.CreateTodo(ctx, "  buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Text)
	assert.False(t, created.Completed)

	done := true
	updated, err := api.UpdateTodo(ctx, created.ID, domain.TodoPatch{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Text)

	todos, err = api.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created.ID, todos[0].ID)

	require.NoError(t, api.DeleteTodo(ctx, created.ID))

	err = api.DeleteTodo(ctx, created.ID)
	require.True(t, domain.IsNotFound(err))

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, created.ID, nf.ID)
}

func TestTodoAPIClient_Validation(t *testing.T) {
	api := liveAPI(t)

	_, err := api.CreateTodo(context.Background(), "   ")

	require.True(t, domain.IsValidation(err))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Text is required", ve.Message)
}

func TestTodoAPIClient_RandomQuote_Empty(t *testing.T) {
	api := liveAPI(t)

	_, err := api.RandomQuote(context.Background())

	require.True(t, domain.IsNotFound(err))

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.EntityQuote, nf.Entity)
}

func TestTodoAPIClient_RandomQuote(t *testing.T) {
	api := stubAPI(t, http.StatusOK, `{"id":"q1","text":"Simplicity is prerequisite for reliability.","author":"Edsger Dijkstra"}`)

	quote, err := api.RandomQuote(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Simplicity is prerequisite for reliability.", quote.Text)
	assert.Equal(t, "Edsger Dijkstra", quote.Author)
}

func TestTodoAPIClient_ServerError(t *testing.T) {
	api := stubAPI(t, http.StatusInternalServerError, `{"message":"Failed to fetch todos","code":"INTERNAL_ERROR"}`)

	_, err := api.ListTodos(context.Background())

	require.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "Failed to fetch todos")
}

func TestTodoAPIClient_MalformedBody(t *testing.T) {
	api := stubAPI(t, http.StatusOK, `{"not":"an array"}`)

	_, err := api.ListTodos(context.Background())

	require.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "decoding response")
}

func TestTodoAPIClient_Unreachable(t *testing.T) {
	api := newAPIClient(t, "http://127.0.0.1:1/api")

	_, err := api.ListTodos(context.Background())

	require.True(t, domain.IsUnavailable(err))
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestTodoAPIClient_Canceled(t *testing.T) {
	api := stubAPI(t, http.StatusOK, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.ListTodos(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTodoAPIClient_UpdateSendsOnlySetFields(t *testing.T) {
	var body string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/todos/a%2Fb", r.URL.EscapedPath())

		_, _ = io.WriteString(w, `{"id":"a/b","text":"x","completed":true,"createdAt":"2026-01-02T03:04:05Z","updatedAt":"2026-01-02T03:04:05Z"}`)
	}))
	defer server.Close()

	api := newAPIClient(t, server.URL+"/api")
	done := true

	todo, err := api.UpdateTodo(context.Background(), "a/b", domain.TodoPatch{Completed: &done})
	require.NoError(t, err)

	assert.JSONEq(t, `{"completed":true}`, body)
	assert.Equal(t, "a/b", todo.ID)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(*testing.T, error)
	}{
		{
			name:   "success",
			status: http.StatusOK,
			check:  func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   `{"message":"Todo not found","code":"NOT_FOUND"}`,
			check: func(t *testing.T, err error) {
				var nf *domain.NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, domain.EntityTodo, nf.Entity)
				assert.Equal(t, "abc", nf.ID)
			},
		},
		{
			name:   "validation with field",
			status: http.StatusBadRequest,
			body:   `{"message":"Text cannot be empty","code":"VALIDATION_ERROR","details":{"text":"text cannot be empty"}}`,
			check: func(t *testing.T, err error) {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "text", ve.Field)
				assert.Equal(t, "Text cannot be empty", ve.Message)
			},
		},
		{
			name:   "bad request without body",
			status: http.StatusBadRequest,
			check: func(t *testing.T, err error) {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "HTTP 400", ve.Message)
			},
		},
		{
			name:   "service unavailable",
			status: http.StatusServiceUnavailable,
			body:   `{"message":"store down","code":"SERVICE_UNAVAILABLE"}`,
			check: func(t *testing.T, err error) {
				require.True(t, domain.IsUnavailable(err))
				assert.Contains(t, err.Error(), "store down")
			},
		},
		{
			name:   "unexpected status",
			status: http.StatusTeapot,
			body:   `not json`,
			check: func(t *testing.T, err error) {
				require.True(t, domain.IsUnavailable(err))
				assert.Contains(t, err.Error(), "HTTP 418")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			tt.check(t, MapHTTPError(resp, nil, ServiceName, domain.EntityTodo, "abc"))
		})
	}
}

func TestMapHTTPError_NoResponse(t *testing.T) {
	err := MapHTTPError(nil, errors.New("connection refused"), ServiceName, "", "")
	require.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "connection refused")

	assert.True(t, domain.IsUnavailable(MapHTTPError(nil, nil, ServiceName, "", "")))
}

func TestParseErrorResponse(t *testing.T) {
	assert.Nil(t, ParseErrorResponse(nil))
	assert.Nil(t, ParseErrorResponse(strings.NewReader("")))
	assert.Nil(t, ParseErrorResponse(strings.NewReader(`{}`)))
	assert.Nil(t, ParseErrorResponse(strings.NewReader(`<html>`)))

	resp := ParseErrorResponse(strings.NewReader(`{"message":"Route not found","code":"NOT_FOUND"}`))
	require.NotNil(t, resp)
	assert.Equal(t, "Route not found", resp.Message)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestDecodeResponse(t *testing.T) {
	_, err := DecodeResponse[map[string]any](nil)
	require.Error(t, err)

	got, err := DecodeResponse[map[string]string](io.NopCloser(strings.NewReader(`{"a":"b"}`)))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "b"}, *got)
}

func TestTranslateSlice(t *testing.T) {
	assert.Equal(t, []int{}, TranslateSlice(nil, func(s string) int { return len(s) }))
	assert.Equal(t, []int{1, 3}, TranslateSlice([]string{"a", "abc"}, func(s string) int { return len(s) }))
}
