// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if no repository is provided; a nil logger falls back to slog.Default().
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// GetRandomQuote samples one quote from the store.
// Returns domain.ErrNotFound when no quotes have been loaded.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (_ *domain.Quote, err error) {
	ctx, end := telemetry.StartOperation(ctx, "quote.random")
	defer func() { end(err) }()

	quote, err := s.repo.Random(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.InfoContext(ctx, "no quotes available")
			return nil, err
		}

		return nil, fmt.Errorf("sampling quote: %w", err)
	}

	s.logger.DebugContext(ctx, "sampled quote",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// CreateQuote validates and stores a single quote.
func (s *QuoteService) CreateQuote(ctx context.Context, in domain.QuoteInput) (_ *domain.Quote, err error) {
	ctx, end := telemetry.StartOperation(ctx, "quote.create")
	defer func() { end(err) }()

	quote, err := domain.NewQuote(in.Text, in.Author)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	s.logger.InfoContext(ctx, "created quote", slog.String("quote_id", created.ID))

	return created, nil
}

// CreateQuotes validates a whole batch before writing any of it, then stores it
// in one repository call. A single invalid item rejects the batch.
func (s *QuoteService) CreateQuotes(ctx context.Context, in []domain.QuoteInput) (_ []*domain.Quote, err error) {
	ctx, end := telemetry.StartOperation(ctx, "quote.create_batch")
	defer func() { end(err) }()

	quotes, err := domain.NewQuotes(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateMany(ctx, quotes)
	if err != nil {
		return nil, fmt.Errorf("creating %d quotes: %w", len(quotes), err)
	}

	s.logger.InfoContext(ctx, "created quotes", slog.Int("count", len(created)))

	return created, nil
}
