// Package sqlite implements the quote and todo repositories on an embedded
// SQLite database. It backs local development and tests; production uses mongo.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL CHECK (length(trim(text)) > 0),
	author TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL CHECK (length(trim(text)) > 0),
	completed INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todos_created_at ON todos(created_at);
`

// DB owns the connection pool shared by both repositories.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to dsn (a file path, a file: URI, or ":memory:") and applies the schema.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", dsn, err)
	}

	// One connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying sqlite schema: %w", err)
	}

	return &DB{db: db, now: time.Now}, nil
}

// Quotes returns the quote repository.
func (d *DB) Quotes() *QuoteRepository {
	return &QuoteRepository{db: d}
}

// Todos returns the todo repository.
func (d *DB) Todos() *TodoRepository {
	return &TodoRepository{db: d}
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string {
	return "sqlite"
}

// Check implements ports.HealthChecker.
func (d *DB) Check(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close releases the connection pool.
func (d *DB) Close(context.Context) error {
	return d.db.Close()
}

func (d *DB) timestamp() int64 {
	return d.now().UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
