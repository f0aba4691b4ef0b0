package domain

import "time"

// EntityTodo is the entity name used in todo errors.
const EntityTodo = "todo"

// Todo is a single task on the list.
type Todo struct {
	// ID is assigned by the store on creation.
	ID string

	// Text describes the task. Never empty after trimming.
	Text string

	// Completed defaults to false.
	Completed bool

	// CreatedAt and UpdatedAt are managed by the store.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTodo builds an incomplete todo ready for insertion.
func NewTodo(text string) (*Todo, error) {
	normalized, err := NormalizeText(text, "text is required")
	if err != nil {
		return nil, err
	}

	return &Todo{Text: normalized}, nil
}

// TodoPatch is a partial update. Nil fields are left untouched.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the patch carries no changes.
func (p TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.Completed == nil
}

// Normalize trims the text field and verifies the patch changes something.
// It returns a new patch; the receiver is not modified.
func (p TodoPatch) Normalize() (TodoPatch, error) {
	out := TodoPatch{Completed: p.Completed}

	if p.Text != nil {
		trimmed, err := NormalizeText(*p.Text, "text cannot be empty")
		if err != nil {
			return TodoPatch{}, err
		}

		out.Text = &trimmed
	}

	if out.IsEmpty() {
		return TodoPatch{}, NewValidationError("", "no valid fields to update")
	}

	return out, nil
}
