package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// TodoService orchestrates todo use cases. All text validation happens here,
// through the domain constructors, before anything reaches the repository.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// TodoServiceConfig contains configuration for the todo service.
type TodoServiceConfig struct {
	Repository ports.TodoRepository
	Logger     *slog.Logger
}

// NewTodoService creates a new todo service.
// Panics if no repository is provided; a nil logger falls back to slog.Default().
func NewTodoService(cfg TodoServiceConfig) *TodoService {
	if cfg.Repository == nil {
		panic("app: TodoService requires a repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// ListTodos returns all todos, newest first.
func (s *TodoService) ListTodos(ctx context.Context) (_ []domain.Todo, err error) {
	ctx, end := telemetry.StartOperation(ctx, "todo.list")
	defer func() { end(err) }()

	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	return todos, nil
}

// CreateTodo trims and validates text, then stores a new incomplete todo.
func (s *TodoService) CreateTodo(ctx context.Context, text string) (_ *domain.Todo, err error) {
	ctx, end := telemetry.StartOperation(ctx, "todo.create")
	defer func() { end(err) }()

	todo, err := domain.NewTodo(text)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	s.logger.InfoContext(ctx, "created todo", slog.String("todo_id", created.ID))

	return created, nil
}

// UpdateTodo normalizes the patch and applies it.
func (s *TodoService) UpdateTodo(ctx context.Context, id string, patch domain.TodoPatch) (_ *domain.Todo, err error) {
	ctx, end := telemetry.StartOperation(ctx, "todo.update")
	defer func() { end(err) }()

	normalized, err := patch.Normalize()
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, normalized)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("updating todo %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "updated todo",
		slog.String("todo_id", updated.ID),
		slog.Bool("completed", updated.Completed),
	)

	return updated, nil
}

// DeleteTodo removes a todo by id.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) (err error) {
	ctx, end := telemetry.StartOperation(ctx, "todo.delete")
	defer func() { end(err) }()

	err = s.repo.Delete(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}

		return fmt.Errorf("deleting todo %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "deleted todo", slog.String("todo_id", id))

	return nil
}
