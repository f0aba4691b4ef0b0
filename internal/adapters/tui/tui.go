package tui

import (
	"context"
	"errors"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen/todo-service/internal/frontend"
)

// ErrNotTTY is returned by Run when stdout is not a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// Run starts the interactive client and blocks until the user quits or ctx ends.
func Run(ctx context.Context, ctrl *frontend.Controller) error {
	if !IsTTY(os.Stdout) {
		return ErrNotTTY
	}

	program := tea.NewProgram(newModel(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()

	return err
}

type mode int

const (
	modeList mode = iota
	modeAdd
)

// actionsMsg carries controller results back into Update.
type actionsMsg []frontend.Action

type model struct {
	ctx      context.Context
	ctrl     *frontend.Controller
	state    frontend.State
	mode     mode
	cursor   int
	showHelp bool
}

func newModel(ctx context.Context, ctrl *frontend.Controller) *model {
	return &model{ctx: ctx, ctrl: ctrl}
}

func (m *model) Init() tea.Cmd {
	return m.load()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionsMsg:
		m.state = frontend.ReduceAll(m.state, msg...)
		m.clampCursor()

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch {
		case m.state.Editing != nil:
			return m, m.updateEdit(msg)
		case m.mode == modeAdd:
			return m, m.updateAdd(msg)
		default:
			return m, m.updateList(msg)
		}
	}

	return m, nil
}

func (m *model) updateList(msg tea.KeyMsg) tea.Cmd {
	visible := m.state.Visible()

	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "a", "n":
		m.mode = modeAdd
	case "r", "f5":
		return m.load()
	case "?", "h":
		m.showHelp = !m.showHelp
	case "esc":
		m.dispatch(frontend.ErrorDismissed{})
	case " ", "enter":
		if todo, ok := at(visible, m.cursor); ok {
			return m.mutate(func(ctx context.Context) frontend.Action { return m.ctrl.Toggle(ctx, todo) })
		}
	case "e":
		if todo, ok := at(visible, m.cursor); ok {
			m.dispatch(frontend.EditStarted{Todo: todo})
		}
	case "d", "x":
		if todo, ok := at(visible, m.cursor); ok {
			return m.mutate(func(ctx context.Context) frontend.Action { return m.ctrl.Delete(ctx, todo.ID) })
		}
	}

	return nil
}

func (m *model) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
	case tea.KeyEnter:
		m.mode = modeList
		if frontend.Blank(m.state.Input) {
			return nil
		}

		input := m.state.Input

		return m.mutate(func(ctx context.Context) frontend.Action { return m.ctrl.Add(ctx, input) })
	default:
		if text, ok := edit(m.state.Input, msg); ok {
			m.dispatch(frontend.InputChanged{Text: text})
		}
	}

	return nil
}

func (m *model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.dispatch(frontend.EditCancelled{})
	case tea.KeyEnter:
		if frontend.Blank(m.state.Editing.Buffer) {
			return nil
		}

		editing := *m.state.Editing

		return m.mutate(func(ctx context.Context) frontend.Action { return m.ctrl.SaveEdit(ctx, &editing) })
	default:
		if text, ok := edit(m.state.Editing.Buffer, msg); ok {
			m.dispatch(frontend.EditChanged{Text: text})
		}
	}

	return nil
}

func (m *model) View() string {
	var b strings.Builder

	writeTitle(&b)
	writeQuote(&b, m.state)
	writeError(&b, m.state)

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	writeTodos(&b, m.state, m.cursor)

	switch {
	case m.state.Editing != nil:
		b.WriteString("Edit: " + m.state.Editing.Buffer + "█\n")
		b.WriteString("enter save | esc cancel\n")
	case m.mode == modeAdd:
		b.WriteString("New: " + m.state.Input + "█\n")
		b.WriteString("enter add | esc back\n")
	default:
		b.WriteString("a add | space toggle | e edit | d delete | r reload | ? help | q quit\n")
	}

	return b.String()
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c      Quit\n")
	b.WriteString("  up/k, down/j   Move selection\n")
	b.WriteString("  a, n           Add a todo\n")
	b.WriteString("  space, enter   Toggle completed\n")
	b.WriteString("  e              Edit text\n")
	b.WriteString("  d, x           Delete\n")
	b.WriteString("  r, F5          Reload todos and quote\n")
	b.WriteString("  esc            Dismiss error\n")
	b.WriteString("  ?, h           Toggle this help screen\n\n")
}

func (m *model) dispatch(a frontend.Action) {
	m.state = frontend.Reduce(m.state, a)
}

func (m *model) load() tea.Cmd {
	m.dispatch(frontend.LoadStarted{})

	return func() tea.Msg {
		return actionsMsg(m.ctrl.Load(m.ctx))
	}
}

// mutate clears the visible error and runs fn off the UI loop.
func (m *model) mutate(fn func(context.Context) frontend.Action) tea.Cmd {
	m.dispatch(frontend.MutationStarted{})

	return func() tea.Msg {
		a := fn(m.ctx)
		if a == nil {
			return nil
		}

		return actionsMsg{a}
	}
}

func (m *model) clampCursor() {
	n := len(m.state.Todos)

	switch {
	case n == 0 || m.cursor < 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
}

func at[T any](items []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(items) {
		return zero, false
	}

	return items[i], true
}

// edit applies a text-editing key to buf.
func edit(buf string, msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return buf + string(msg.Runes), true
	case tea.KeySpace:
		return buf + " ", true
	case tea.KeyBackspace:
		if buf == "" {
			return buf, false
		}

		r := []rune(buf)

		return string(r[:len(r)-1]), true
	default:
		return buf, false
	}
}
