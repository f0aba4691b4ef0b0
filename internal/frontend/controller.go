package frontend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/todo-service/internal/app"
	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// Controller runs API calls and reports their outcome as Actions.
// It holds no view state; callers feed the returned actions to Reduce.
type Controller struct {
	api    ports.TodoAPI
	logger *slog.Logger
}

// NewController creates a controller. A nil logger falls back to slog.Default().
func NewController(api ports.TodoAPI, logger *slog.Logger) *Controller {
	if api == nil {
		panic("Controller: api is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{api: api, logger: logger.With(slog.String("component", "frontend"))}
}

// Load fetches todos and the quote concurrently. The two outcomes are
// independent: a quote failure is logged and otherwise ignored.
func (c *Controller) Load(ctx context.Context) []Action {
	todos, quote := app.Parallel2Partial(ctx, c.api.ListTodos, c.api.RandomQuote)

	actions := make([]Action, 0, 2)

	if todos.OK() {
		actions = append(actions, TodosLoaded{Todos: todos.Value})
	} else {
		c.logger.ErrorContext(ctx, "loading todos failed", slog.Any("error", todos.Err))
		actions = append(actions, TodosFailed{Err: todos.Err})
	}

	if quote.OK() {
		actions = append(actions, QuoteLoaded{Quote: quote.Value})
	} else {
		c.logger.WarnContext(ctx, "loading quote failed", slog.Any("error", quote.Err))
		actions = append(actions, QuoteFailed{Err: quote.Err})
	}

	return actions
}

// Add creates a todo from input. Blank input returns nil without calling the API.
func (c *Controller) Add(ctx context.Context, input string) Action {
	if Blank(input) {
		return nil
	}

	todo, err := c.api.CreateTodo(ctx, strings.TrimSpace(input))
	if err != nil {
		return c.failed(ctx, MessageAddFailed, err)
	}

	return TodoAdded{Todo: *todo}
}

// Toggle flips the completed flag of todo.
func (c *Controller) Toggle(ctx context.Context, todo domain.Todo) Action {
	completed := !todo.Completed

	updated, err := c.api.UpdateTodo(ctx, todo.ID, domain.TodoPatch{Completed: &completed})
	if err != nil {
		return c.failed(ctx, MessageUpdateFailed, err)
	}

	return TodoUpdated{Todo: *updated}
}

// SaveEdit sends the edit buffer as the new text. A nil edit or a blank
// buffer returns nil without calling the API.
func (c *Controller) SaveEdit(ctx context.Context, edit *Editing) Action {
	if edit == nil || Blank(edit.Buffer) {
		return nil
	}

	text := strings.TrimSpace(edit.Buffer)

	updated, err := c.api.UpdateTodo(ctx, edit.ID, domain.TodoPatch{Text: &text})
	if err != nil {
		return c.failed(ctx, MessageSaveFailed, err)
	}

	return TodoUpdated{Todo: *updated}
}

// Delete removes the todo with id.
func (c *Controller) Delete(ctx context.Context, id string) Action {
	if err := c.api.DeleteTodo(ctx, id); err != nil {
		return c.failed(ctx, MessageDeleteFailed, err)
	}

	return TodoDeleted{ID: id}
}

func (c *Controller) failed(ctx context.Context, message string, err error) Action {
	c.logger.ErrorContext(ctx, strings.ToLower(message), slog.Any("error", err))

	return MutationFailed{Message: message, Err: err}
}
