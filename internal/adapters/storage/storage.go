// Package storage selects and opens the configured data store.
package storage

import (
	"context"
	"fmt"

	"github.com/jsamuelsen/todo-service/internal/adapters/storage/mongodb"
	"github.com/jsamuelsen/todo-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// Supported drivers.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Options selects a driver and its connection target.
type Options struct {
	Driver   string
	URI      string
	Database string
}

// Store bundles the repositories of one open connection.
type Store struct {
	Quotes ports.QuoteRepository
	Todos  ports.TodoRepository

	// Health reports connectivity for the readiness probe.
	Health ports.HealthChecker

	close func(context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// Open connects to the store named by opts.Driver.
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Driver {
	case DriverMongo, "":
		c, err := mongodb.Open(ctx, opts.URI, opts.Database)
		if err != nil {
			return nil, err
		}

		return &Store{Quotes: c.Quotes(), Todos: c.Todos(), Health: c, close: c.Close}, nil

	case DriverSQLite:
		db, err := sqlite.Open(ctx, opts.URI)
		if err != nil {
			return nil, err
		}

		return &Store{Quotes: db.Quotes(), Todos: db.Todos(), Health: db, close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
