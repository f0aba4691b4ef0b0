package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/todo-service/internal/adapters/clients"
	"github.com/jsamuelsen/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/platform/logging"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// ServiceName identifies the todo API in errors, logs, and health checks.
const ServiceName = "todo-api"

var (
	_ ports.TodoAPI       = (*TodoAPIClient)(nil)
	_ ports.HealthChecker = (*TodoAPIClient)(nil)
)

// TodoAPIClientConfig contains configuration for the todo API client.
type TodoAPIClientConfig struct {
	// Client is the HTTP client; its BaseURL points at the API root (".../api").
	Client *clients.Client

	Logger *slog.Logger
}

// TodoAPIClient implements ports.TodoAPI over HTTP.
type TodoAPIClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewTodoAPIClient creates a new todo API adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewTodoAPIClient(cfg TodoAPIClientConfig) *TodoAPIClient {
	if cfg.Client == nil {
		panic("TodoAPIClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoAPIClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, ServiceName),
		logger:      logger,
	}
}

// ListTodos fetches all todos, newest first.
func (c *TodoAPIClient) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	body, err := c.do(ctx, http.MethodGet, "/todos", nil, target{entity: domain.EntityTodo})
	if err != nil {
		return nil, err
	}

	resp, err := DecodeResponse[[]dto.TodoResponse](body)
	if err != nil {
		return nil, c.malformed(err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "fetched todos", slog.Int("count", len(*resp)))

	return TranslateSlice(*resp, dto.TodoResponse.ToDomain), nil
}

// CreateTodo creates a todo. The server trims and validates text.
func (c *TodoAPIClient) CreateTodo(ctx context.Context, text string) (*domain.Todo, error) {
	body, err := c.do(ctx, http.MethodPost, "/todos", dto.CreateTodoRequest{Text: text}, target{entity: domain.EntityTodo})
	if err != nil {
		return nil, err
	}

	return c.decodeTodo(body)
}

// UpdateTodo sends only the fields set in patch.
func (c *TodoAPIClient) UpdateTodo(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	req := dto.UpdateTodoRequest{Text: patch.Text, Completed: patch.Completed}

	body, err := c.do(ctx, http.MethodPatch, todoPath(id), req, target{domain.EntityTodo, id})
	if err != nil {
		return nil, err
	}

	return c.decodeTodo(body)
}

// DeleteTodo removes a todo.
func (c *TodoAPIClient) DeleteTodo(ctx context.Context, id string) error {
	body, err := c.do(ctx, http.MethodDelete, todoPath(id), nil, target{domain.EntityTodo, id})
	if err != nil {
		return err
	}

	if _, err := DecodeResponse[dto.DeleteTodoResponse](body); err != nil {
		return c.malformed(err)
	}

	return nil
}

// RandomQuote fetches a random quote. An empty collection yields domain.ErrNotFound.
func (c *TodoAPIClient) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	body, err := c.do(ctx, http.MethodGet, "/quotes/random", nil, target{entity: domain.EntityQuote})
	if err != nil {
		return nil, err
	}

	resp, err := DecodeResponse[dto.QuoteResponse](body)
	if err != nil {
		return nil, c.malformed(err)
	}

	quote := resp.ToDomain()

	return &quote, nil
}

// Name implements ports.HealthChecker.
func (c *TodoAPIClient) Name() string {
	return ServiceName
}

// Check calls GET /health.
func (c *TodoAPIClient) Check(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodGet, "/health", nil, target{})
	if err != nil {
		return err
	}

	resp, err := DecodeResponse[dto.HealthResponse](body)
	if err != nil {
		return c.malformed(err)
	}

	if resp.Status != "ok" {
		return domain.NewUnavailableError(ServiceName, fmt.Sprintf("status %q", resp.Status))
	}

	return nil
}

func (c *TodoAPIClient) decodeTodo(body io.ReadCloser) (*domain.Todo, error) {
	resp, err := DecodeResponse[dto.TodoResponse](body)
	if err != nil {
		return nil, c.malformed(err)
	}

	todo := resp.ToDomain()

	return &todo, nil
}

func (c *TodoAPIClient) malformed(err error) error {
	return domain.NewUnavailableError(c.ServiceName(), err.Error())
}

func todoPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}
