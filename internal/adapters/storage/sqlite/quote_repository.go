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

// QuoteRepository stores quotes in the quotes table.
type QuoteRepository struct {
	db *DB
}

var _ ports.QuoteRepository = (*QuoteRepository)(nil)

// Random implements ports.QuoteRepository.
func (r *QuoteRepository) Random(ctx context.Context) (*domain.Quote, error) {
	row := r.db.db.QueryRowContext(ctx, `
		SELECT id, text, author, created_at, updated_at
		FROM quotes
		ORDER BY RANDOM()
		LIMIT 1`)

	var (
		q                domain.Quote
		created, updated int64
	)

	err := row.Scan(&q.ID, &q.Text, &q.Author, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityQuote, "")
		}

		return nil, fmt.Errorf("querying random quote: %w", err)
	}

	q.CreatedAt = fromMillis(created)
	q.UpdatedAt = fromMillis(updated)

	return &q, nil
}

// Create implements ports.QuoteRepository.
func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	created, err := insertQuote(ctx, r.db.db, quote, r.db.timestamp())
	if err != nil {
		return nil, err
	}

	return created, nil
}

// CreateMany implements ports.QuoteRepository. The batch runs in one
// transaction, so either every quote is stored or none is.
func (r *QuoteRepository) CreateMany(ctx context.Context, quotes []*domain.Quote) ([]*domain.Quote, error) {
	tx, err := r.db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning quote batch: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	now := r.db.timestamp()
	out := make([]*domain.Quote, 0, len(quotes))

	for _, q := range quotes {
		created, err := insertQuote(ctx, tx, q, now)
		if err != nil {
			return nil, err
		}

		out = append(out, created)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing quote batch: %w", err)
	}

	return out, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertQuote(ctx context.Context, db execer, q *domain.Quote, now int64) (*domain.Quote, error) {
	id := uuid.NewString()

	_, err := db.ExecContext(ctx, `
		INSERT INTO quotes (id, text, author, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, q.Text, q.Author, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting quote: %w", err)
	}

	return &domain.Quote{
		ID:        id,
		Text:      q.Text,
		Author:    q.Author,
		CreatedAt: fromMillis(now),
		UpdatedAt: fromMillis(now),
	}, nil
}
