package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen/todo-service/internal/domain"
)

// MessageTodoDeleted is returned by a successful delete.
const MessageTodoDeleted = "Todo deleted"

// TodoResponse is the wire shape of a todo.
type TodoResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTodoResponse converts a domain todo.
func NewTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	}
}

// NewTodoResponses converts a list, never returning nil.
func NewTodoResponses(todos []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, NewTodoResponse(&todos[i]))
	}

	return out
}

// ToDomain converts a decoded todo back into the domain type.
func (r TodoResponse) ToDomain() domain.Todo {
	return domain.Todo{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest is the body of PATCH /todos/:id as sent by clients.
// The server decodes PATCH bodies with DecodeTodoPatch instead.
type UpdateTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TodoIDParam is the :id path parameter.
type TodoIDParam struct {
	ID string `uri:"id" validate:"required"`
}

// DeleteTodoResponse confirms a delete.
type DeleteTodoResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DecodeTodoPatch reads a PATCH body leniently: text counts only when it is a
// JSON string and completed only when it is a JSON boolean. Anything else,
// including null, is ignored rather than rejected.
func DecodeTodoPatch(body []byte) (domain.TodoPatch, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return domain.TodoPatch{}, fmt.Errorf("%w: body must be a JSON object", ErrBinding)
	}

	var patch domain.TodoPatch

	if raw, ok := fields["text"]; ok && isJSONString(raw) {
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			patch.Text = &text
		}
	}

	if raw, ok := fields["completed"]; ok {
		switch string(bytes.TrimSpace(raw)) {
		case "true":
			patch.Completed = ptr(true)
		case "false":
			patch.Completed = ptr(false)
		}
	}

	return patch, nil
}

func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

func ptr[T any](v T) *T {
	return &v
}
