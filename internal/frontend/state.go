// Package frontend holds the client's view state and the transitions over it.
//
// State changes only through Reduce. The Controller performs API calls and
// reports their outcome as Actions; renderers (the terminal UI, the list
// command) read State and never mutate it.
package frontend

import (
	"slices"
	"strings"

	"github.com/jsamuelsen/todo-service/internal/domain"
)

// Messages shown to the user when a call fails.
const (
	MessageLoadFailed   = "Failed to load todos"
	MessageAddFailed    = "Failed to add todo"
	MessageUpdateFailed = "Failed to update todo"
	MessageDeleteFailed = "Failed to delete todo"
	MessageSaveFailed   = "Failed to save changes"
)

// Editing is the todo being edited and the unsaved text.
type Editing struct {
	ID     string
	Buffer string
}

// State is everything the client renders.
type State struct {
	// Todos in server order. Use Visible for display order.
	Todos []domain.Todo

	// Input is the new-todo buffer.
	Input string

	// Editing is non-nil while an edit is open.
	Editing *Editing

	// Error is the visible error message; empty when there is none.
	Error string

	LoadingTodos bool
	LoadingQuote bool

	Quote *domain.Quote
}

// Action is an event that changes State.
type Action interface {
	isAction()
}

type (
	// LoadStarted marks both fetches as in flight.
	LoadStarted struct{}

	// TodosLoaded replaces the collection with the server's list.
	TodosLoaded struct{ Todos []domain.Todo }

	// TodosFailed clears the collection and shows MessageLoadFailed.
	TodosFailed struct{ Err error }

	// QuoteLoaded sets the quote of the day.
	QuoteLoaded struct{ Quote *domain.Quote }

	// QuoteFailed ends the quote fetch. The failure is not shown.
	QuoteFailed struct{ Err error }

	// InputChanged sets the new-todo buffer.
	InputChanged struct{ Text string }

	// MutationStarted clears the visible error before a call.
	MutationStarted struct{}

	// TodoAdded prepends the server's record and clears the input.
	TodoAdded struct{ Todo domain.Todo }

	// TodoUpdated replaces the record with the same id and closes its edit.
	TodoUpdated struct{ Todo domain.Todo }

	// TodoDeleted removes the record with ID.
	TodoDeleted struct{ ID string }

	// MutationFailed shows Message and leaves the collection unchanged.
	MutationFailed struct {
		Message string
		Err     error
	}

	// EditStarted opens an edit seeded with the todo's text.
	EditStarted struct{ Todo domain.Todo }

	// EditChanged sets the edit buffer.
	EditChanged struct{ Text string }

	// EditCancelled closes the edit without saving.
	EditCancelled struct{}

	// ErrorDismissed hides the visible error.
	ErrorDismissed struct{}
)

func (LoadStarted) isAction()     {}
func (TodosLoaded) isAction()     {}
func (TodosFailed) isAction()     {}
func (QuoteLoaded) isAction()     {}
func (QuoteFailed) isAction()     {}
func (InputChanged) isAction()    {}
func (MutationStarted) isAction() {}
func (TodoAdded) isAction()       {}
func (TodoUpdated) isAction()     {}
func (TodoDeleted) isAction()     {}
func (MutationFailed) isAction()  {}
func (EditStarted) isAction()     {}
func (EditChanged) isAction()     {}
func (EditCancelled) isAction()   {}
func (ErrorDismissed) isAction()  {}

// Reduce returns the state that follows s after a. It never modifies s
// or the slices it references. Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoadStarted:
		s.LoadingTodos = true
		s.LoadingQuote = true
		s.Error = ""

	case TodosLoaded:
		s.Todos = slices.Clone(a.Todos)
		if s.Todos == nil {
			s.Todos = []domain.Todo{}
		}

		s.LoadingTodos = false

	case TodosFailed:
		s.Todos = []domain.Todo{}
		s.Error = MessageLoadFailed
		s.LoadingTodos = false

	case QuoteLoaded:
		s.Quote = a.Quote
		s.LoadingQuote = false

	case QuoteFailed:
		s.LoadingQuote = false

	case InputChanged:
		s.Input = a.Text

	case MutationStarted, ErrorDismissed:
		s.Error = ""

	case TodoAdded:
		s.Todos = append([]domain.Todo{a.Todo}, s.Todos...)
		s.Input = ""

	case TodoUpdated:
		s.Todos = slices.Clone(s.Todos)
		for i := range s.Todos {
			if s.Todos[i].ID == a.Todo.ID {
				s.Todos[i] = a.Todo
			}
		}

		if s.Editing != nil && s.Editing.ID == a.Todo.ID {
			s.Editing = nil
		}

	case TodoDeleted:
		s.Todos = slices.DeleteFunc(slices.Clone(s.Todos), func(t domain.Todo) bool {
			return t.ID == a.ID
		})

		if s.Editing != nil && s.Editing.ID == a.ID {
			s.Editing = nil
		}

	case MutationFailed:
		s.Error = a.Message

	case EditStarted:
		s.Editing = &Editing{ID: a.Todo.ID, Buffer: a.Todo.Text}

	case EditChanged:
		if s.Editing != nil {
			s.Editing = &Editing{ID: s.Editing.ID, Buffer: a.Text}
		}

	case EditCancelled:
		s.Editing = nil
	}

	return s
}

// ReduceAll applies actions in order.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}

	return s
}

// Visible returns the todos in display order. See SortForDisplay.
func (s State) Visible() []domain.Todo {
	return SortForDisplay(s.Todos)
}

// SortForDisplay orders incomplete todos before completed ones and, within
// each group, newest first. The input is not modified.
func SortForDisplay(todos []domain.Todo) []domain.Todo {
	out := slices.Clone(todos)

	slices.SortStableFunc(out, func(a, b domain.Todo) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}

			return -1
		}

		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}

// Blank reports whether text is empty after trimming.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}
