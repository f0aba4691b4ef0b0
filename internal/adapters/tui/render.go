// Package tui renders the client state in a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/frontend"
)

const (
	title        = "Todos"
	emptyMessage = "Nothing here yet. Add your first task!"
)

// Render writes a non-interactive snapshot of s: quote, error, and the list in display order.
func Render(w io.Writer, s frontend.State) error {
	var b strings.Builder

	writeQuote(&b, s)
	writeError(&b, s)
	writeTodos(&b, s, -1)

	_, err := io.WriteString(w, b.String())

	return err
}

func writeTitle(b *strings.Builder) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeQuote(b *strings.Builder, s frontend.State) {
	switch {
	case s.LoadingQuote:
		b.WriteString("Loading quote…\n\n")
	case s.Quote != nil:
		b.WriteString(formatQuote(s.Quote) + "\n\n")
	}
}

func writeError(b *strings.Builder, s frontend.State) {
	if s.Error != "" {
		b.WriteString("! " + s.Error + "\n\n")
	}
}

// writeTodos lists the visible todos; cursor < 0 hides the selection marker.
func writeTodos(b *strings.Builder, s frontend.State, cursor int) {
	if s.LoadingTodos {
		b.WriteString("  Loading...\n\n")
		return
	}

	visible := s.Visible()
	if len(visible) == 0 {
		b.WriteString("  " + emptyMessage + "\n\n")
		return
	}

	for i, todo := range visible {
		marker := " "
		if i == cursor {
			marker = ">"
		}

		b.WriteString(formatTodo(marker, todo) + "\n")
	}

	b.WriteString("\n")
}

func formatQuote(q *domain.Quote) string {
	line := fmt.Sprintf("“%s”", q.Text)
	if q.Author != "" {
		line += " — " + q.Author
	}

	return line
}

func formatTodo(marker string, t domain.Todo) string {
	check := " "
	if t.Completed {
		check = "x"
	}

	return fmt.Sprintf("%s [%s] %s", marker, check, t.Text)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
