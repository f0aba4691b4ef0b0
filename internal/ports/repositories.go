// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never driver documents or rows
//   - Error returns use domain error types (ErrNotFound, ErrValidation, ErrUnavailable)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/todo-service/internal/domain"
)

// QuoteRepository persists quotes. Quotes are append-only.
type QuoteRepository interface {
	// Random returns one quote sampled uniformly from the collection.
	// Returns domain.ErrNotFound if the collection is empty.
	Random(ctx context.Context) (*domain.Quote, error)

	// Create inserts a single, already validated quote and returns the stored record.
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)

	// CreateMany inserts the batch in one store operation and returns the stored
	// records in input order.
	CreateMany(ctx context.Context, quotes []*domain.Quote) ([]*domain.Quote, error)
}

// TodoRepository persists todos.
type TodoRepository interface {
	// List returns every todo, newest first.
	List(ctx context.Context) ([]domain.Todo, error)

	// Create inserts an already validated todo and returns the stored record.
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)

	// Update applies a normalized patch and returns the record after the write.
	// Returns domain.ErrNotFound for unknown or malformed identifiers.
	Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error)

	// Delete removes a todo.
	// Returns domain.ErrNotFound for unknown or malformed identifiers.
	Delete(ctx context.Context, id string) error
}
