package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

const todoColumns = `id, text, completed, created_at, updated_at`

// TodoRepository stores todos in the todos table.
type TodoRepository struct {
	db *DB
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*domain.Todo, error) {
	var (
		t                domain.Todo
		completed        int64
		created, updated int64
	)

	if err := row.Scan(&t.ID, &t.Text, &completed, &created, &updated); err != nil {
		return nil, err
	}

	t.Completed = completed != 0
	t.CreatedAt = fromMillis(created)
	t.UpdatedAt = fromMillis(updated)

	return &t, nil
}

// List implements ports.TodoRepository. Rows created in the same millisecond
// fall back to insertion order, newest first.
func (r *TodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.db.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)

	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}

		todos = append(todos, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	return todos, nil
}

// Create implements ports.TodoRepository.
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	id := uuid.NewString()
	now := r.db.timestamp()

	row := r.db.db.QueryRowContext(ctx, `
		INSERT INTO todos (id, text, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+todoColumns,
		id, todo.Text, boolToInt(todo.Completed), now, now,
	)

	created, err := scanTodo(row)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	return created, nil
}

// Update implements ports.TodoRepository. Absent patch fields keep their
// stored values; updated_at always advances.
func (r *TodoRepository) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	var (
		text      sql.NullString
		completed sql.NullInt64
	)

	if patch.Text != nil {
		text = sql.NullString{String: *patch.Text, Valid: true}
	}

	if patch.Completed != nil {
		completed = sql.NullInt64{Int64: boolToInt(*patch.Completed), Valid: true}
	}

	row := r.db.db.QueryRowContext(ctx, `
		UPDATE todos
		SET text = COALESCE(?, text),
			completed = COALESCE(?, completed),
			updated_at = ?
		WHERE id = ?
		RETURNING `+todoColumns,
		text, completed, r.db.timestamp(), id,
	)

	updated, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityTodo, id)
		}

		return nil, fmt.Errorf("updating todo: %w", err)
	}

	return updated, nil
}

// Delete implements ports.TodoRepository.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	if n == 0 {
		return domain.NewNotFoundError(domain.EntityTodo, id)
	}

	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}

	return 0
}
