package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/mocks"
)

func newTodoService(t *testing.T, setup func(*mocks.MockTodoRepository)) *TodoService {
	t.Helper()

	repo := mocks.NewMockTodoRepository(t)
	if setup != nil {
		setup(repo)
	}

	return NewTodoService(TodoServiceConfig{
		Repository: repo,
		Logger:     discardLogger(),
	})
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNewTodoService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewTodoService(TodoServiceConfig{})
	})
}

func TestTodoService_ListTodos(t *testing.T) {
	now := time.Now().UTC()
	stored := []domain.Todo{
		{ID: "2", Text: "newer", CreatedAt: now},
		{ID: "1", Text: "older", CreatedAt: now.Add(-time.Minute)},
	}

	svc := newTodoService(t, func(m *mocks.MockTodoRepository) {
		m.EXPECT().List(mock.Anything).Return(stored, nil)
	})

	todos, err := svc.ListTodos(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, todos)
}

func TestTodoService_ListTodos_StoreError(t *testing.T) {
	svc := newTodoService(t, func(m *mocks.MockTodoRepository) {
		m.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))
	})

	_, err := svc.ListTodos(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing todos")
}

func TestTodoService_CreateTodo(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		setupMock func(*mocks.MockTodoRepository)
		wantText  string
		errCheck  func(error) bool
	}{
		{
			name:  "trimmed text is stored",
			input: "  write tests  ",
			setupMock: func(m *mocks.MockTodoRepository) {
				m.EXPECT().Create(mock.Anything, &domain.Todo{Text: "write tests"}).
					Return(&domain.Todo{ID: "t-1", Text: "write tests"}, nil)
			},
			wantText: "write tests",
		},
		{
			name:     "empty text",
			input:    "",
			errCheck: domain.IsValidation,
		},
		{
			name:     "whitespace text",
			input:    " \t ",
			errCheck: domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTodoService(t, tt.setupMock)

			todo, err := svc.CreateTodo(context.Background(), tt.input)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, todo.Text)
			assert.False(t, todo.Completed)
		})
	}
}

func TestTodoService_UpdateTodo(t *testing.T) {
	tests := []struct {
		name      string
		patch     domain.TodoPatch
		setupMock func(*mocks.MockTodoRepository)
		errCheck  func(error) bool
	}{
		{
			name:  "normalized patch is forwarded",
			patch: domain.TodoPatch{Text: strPtr("  renamed ")},
			setupMock: func(m *mocks.MockTodoRepository) {
				m.EXPECT().Update(mock.Anything, "t-1", domain.TodoPatch{Text: strPtr("renamed")}).
					Return(&domain.Todo{ID: "t-1", Text: "renamed"}, nil)
			},
		},
		{
			name:  "toggle completed",
			patch: domain.TodoPatch{Completed: boolPtr(true)},
			setupMock: func(m *mocks.MockTodoRepository) {
				m.EXPECT().Update(mock.Anything, "t-1", domain.TodoPatch{Completed: boolPtr(true)}).
					Return(&domain.Todo{ID: "t-1", Text: "x", Completed: true}, nil)
			},
		},
		{
			name:     "empty patch",
			patch:    domain.TodoPatch{},
			errCheck: domain.IsValidation,
		},
		{
			name:     "blank text",
			patch:    domain.TodoPatch{Text: strPtr("  ")},
			errCheck: domain.IsValidation,
		},
		{
			name:  "unknown id",
			patch: domain.TodoPatch{Completed: boolPtr(false)},
			setupMock: func(m *mocks.MockTodoRepository) {
				m.EXPECT().Update(mock.Anything, "t-1", mock.Anything).
					Return(nil, domain.NewNotFoundError(domain.EntityTodo, "t-1"))
			},
			errCheck: domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTodoService(t, tt.setupMock)

			todo, err := svc.UpdateTodo(context.Background(), "t-1", tt.patch)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, todo)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "t-1", todo.ID)
		})
	}
}

func TestTodoService_DeleteTodo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newTodoService(t, func(m *mocks.MockTodoRepository) {
			m.EXPECT().Delete(mock.Anything, "t-1").Return(nil)
		})

		require.NoError(t, svc.DeleteTodo(context.Background(), "t-1"))
	})

	t.Run("not found passes through", func(t *testing.T) {
		svc := newTodoService(t, func(m *mocks.MockTodoRepository) {
			m.EXPECT().Delete(mock.Anything, "t-1").Return(domain.NewNotFoundError(domain.EntityTodo, "t-1"))
		})

		err := svc.DeleteTodo(context.Background(), "t-1")

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("store failure wrapped", func(t *testing.T) {
		svc := newTodoService(t, func(m *mocks.MockTodoRepository) {
			m.EXPECT().Delete(mock.Anything, "t-1").Return(errors.New("boom"))
		})

		err := svc.DeleteTodo(context.Background(), "t-1")

		require.Error(t, err)
		assert.Equal(t, "deleting todo t-1: boom", err.Error())
	})
}
