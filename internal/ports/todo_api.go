package ports

import (
	"context"

	"github.com/jsamuelsen/todo-service/internal/domain"
)

// TodoAPI is the client-side view of the todo service.
// Adapters implement it over HTTP; the terminal client depends only on this port.
//
// Implementations must not retry. Every failure is returned to the caller once,
// mapped to a domain error where the status code allows it.
type TodoAPI interface {
	// ListTodos fetches all todos.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo creates a todo with the given text.
	CreateTodo(ctx context.Context, text string) (*domain.Todo, error)

	// UpdateTodo sends a partial update and returns the server's record.
	UpdateTodo(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error)

	// DeleteTodo removes a todo.
	DeleteTodo(ctx context.Context, id string) error

	// RandomQuote fetches the quote of the day.
	RandomQuote(ctx context.Context) (*domain.Quote, error)
}
