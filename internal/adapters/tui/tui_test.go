package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/frontend"
	"github.com/jsamuelsen/todo-service/internal/mocks"
)

var created = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func sampleTodo(id, text string, minutes int, completed bool) domain.Todo {
	at := created.Add(time.Duration(minutes) * time.Minute)

	return domain.Todo{ID: id, Text: text, Completed: completed, CreatedAt: at, UpdatedAt: at}
}

func newTestModel(t *testing.T) (*model, *mocks.MockTodoAPI) {
	t.Helper()

	api := mocks.NewMockTodoAPI(t)
	ctrl := frontend.NewController(api, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return newModel(context.Background(), ctrl), api
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()

	if cmd == nil {
		return
	}

	if msg := cmd(); msg != nil {
		m.Update(msg)
	}
}

func press(t *testing.T, m *model, keys ...tea.KeyMsg) {
	t.Helper()

	for _, k := range keys {
		_, cmd := m.Update(k)
		run(t, m, cmd)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func loaded(t *testing.T, todos ...domain.Todo) (*model, *mocks.MockTodoAPI) {
	t.Helper()

	m, api := newTestModel(t)
	api.EXPECT().ListTodos(mock.Anything).Return(todos, nil).Once()
	api.EXPECT().RandomQuote(mock.Anything).Return(&domain.Quote{Text: "Ship it.", Author: "Anon"}, nil).Once()

	run(t, m, m.Init())

	return m, api
}

func TestModel_InitLoads(t *testing.T) {
	m, _ := loaded(t, sampleTodo("1", "write tests", 0, false))

	view := m.View()
	assert.Contains(t, view, "“Ship it.” — Anon")
	assert.Contains(t, view, "> [ ] write tests")
	assert.False(t, m.state.LoadingTodos)
}

func TestModel_EmptyList(t *testing.T) {
	m, _ := loaded(t)

	assert.Contains(t, m.View(), emptyMessage)
}

func TestModel_LoadFailure(t *testing.T) {
	m, api := newTestModel(t)
	api.EXPECT().ListTodos(mock.Anything).Return(nil, errors.New("down"))
	api.EXPECT().RandomQuote(mock.Anything).Return(nil, errors.New("down"))

	run(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "! "+frontend.MessageLoadFailed)
	assert.Contains(t, view, emptyMessage)
	assert.NotContains(t, view, "Loading quote")
}

func TestModel_AddTodo(t *testing.T) {
	m, api := loaded(t)
	added := sampleTodo("2", "buy milk", 1, false)

	api.EXPECT().CreateTodo(mock.Anything, "buy milk").Return(&added, nil)

	press(t, m, runes("a"))
	assert.Contains(t, m.View(), "New: █")

	press(t, m, runes("buy"), key(tea.KeySpace), runes("milkk"), key(tea.KeyBackspace))
	assert.Equal(t, "buy milk", m.state.Input)

	press(t, m, key(tea.KeyEnter))

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.state.Input)
	assert.Contains(t, m.View(), "[ ] buy milk")
}

func TestModel_AddBlankSkipsAPI(t *testing.T) {
	m, _ := loaded(t)

	press(t, m, runes("a"), key(tea.KeySpace), key(tea.KeyEnter))

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.state.Todos)
}

func TestModel_ToggleMovesToBottom(t *testing.T) {
	older := sampleTodo("1", "older", 0, false)
	newer := sampleTodo("2", "newer", 1, false)
	m, api := loaded(t, newer, older)

	done := newer
	done.Completed = true
	api.EXPECT().UpdateTodo(mock.Anything, "2", mock.Anything).Return(&done, nil)

	press(t, m, key(tea.KeySpace))

	visible := m.state.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "1", visible[0].ID)
	assert.True(t, visible[1].Completed)
}

func TestModel_EditFlow(t *testing.T) {
	m, api := loaded(t, sampleTodo("1", "draft", 0, false))

	renamed := sampleTodo("1", "final", 0, false)
	api.EXPECT().UpdateTodo(mock.Anything, "1", mock.Anything).Return(&renamed, nil)

	press(t, m, runes("e"))
	require.NotNil(t, m.state.Editing)
	assert.Contains(t, m.View(), "Edit: draft█")

	for range len("draft") {
		press(t, m, key(tea.KeyBackspace))
	}

	press(t, m, runes("final"), key(tea.KeyEnter))

	assert.Nil(t, m.state.Editing)
	assert.Contains(t, m.View(), "[ ] final")
}

func TestModel_EditFailureKeepsEditOpen(t *testing.T) {
	m, api := loaded(t, sampleTodo("1", "draft", 0, false))
	api.EXPECT().UpdateTodo(mock.Anything, "1", mock.Anything).Return(nil, errors.New("boom"))

	press(t, m, runes("e"), runes("!"), key(tea.KeyEnter))

	require.NotNil(t, m.state.Editing)
	assert.Contains(t, m.View(), "! "+frontend.MessageSaveFailed)

	press(t, m, key(tea.KeyEsc))
	assert.Nil(t, m.state.Editing)
}

func TestModel_DeleteFailureKeepsRow(t *testing.T) {
	m, api := loaded(t, sampleTodo("1", "keep me", 0, false))
	api.EXPECT().DeleteTodo(mock.Anything, "1").Return(errors.New("boom"))

	press(t, m, runes("d"))

	assert.Len(t, m.state.Todos, 1)
	assert.Equal(t, frontend.MessageDeleteFailed, m.state.Error)

	press(t, m, key(tea.KeyEsc))
	assert.Empty(t, m.state.Error)
}

func TestModel_Delete(t *testing.T) {
	m, api := loaded(t, sampleTodo("1", "a", 0, false), sampleTodo("2", "b", 1, false))
	api.EXPECT().DeleteTodo(mock.Anything, "1").Return(nil)

	press(t, m, runes("j"), runes("j"))
	assert.Equal(t, 1, m.cursor)

	press(t, m, runes("x"))

	assert.Len(t, m.state.Todos, 1)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_Quit(t *testing.T) {
	m, _ := loaded(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m.mode = modeAdd
	_, cmd = m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Help(t *testing.T) {
	m, _ := loaded(t)

	press(t, m, runes("?"))
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	press(t, m, runes("?"))
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestRender(t *testing.T) {
	s := frontend.State{
		Todos: []domain.Todo{
			sampleTodo("1", "done thing", 2, true),
			sampleTodo("2", "open thing", 0, false),
		},
		Quote: &domain.Quote{Text: "Stay hungry."},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s))

	assert.Equal(t, "“Stay hungry.”\n\n  [ ] open thing\n  [x] done thing\n\n", buf.String())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
