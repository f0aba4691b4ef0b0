package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// QuoteRepository stores quotes in the quotes collection.
type QuoteRepository struct {
	coll *mongo.Collection
}

var _ ports.QuoteRepository = (*QuoteRepository)(nil)

var samplePipeline = mongo.Pipeline{
	{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
}

// Random implements ports.QuoteRepository using a $sample stage.
func (r *QuoteRepository) Random(ctx context.Context) (*domain.Quote, error) {
	cursor, err := r.coll.Aggregate(ctx, samplePipeline)
	if err != nil {
		return nil, fmt.Errorf("sampling quotes: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("sampling quotes: %w", err)
		}

		return nil, domain.NewNotFoundError(domain.EntityQuote, "")
	}

	var doc quoteDocument
	if err := cursor.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding quote: %w", err)
	}

	return doc.toDomain(), nil
}

// Create implements ports.QuoteRepository.
func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	doc := newQuoteDocument(quote, now())

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("inserting quote: %w", err)
	}

	return doc.toDomain(), nil
}

// CreateMany implements ports.QuoteRepository with a single InsertMany.
func (r *QuoteRepository) CreateMany(ctx context.Context, quotes []*domain.Quote) ([]*domain.Quote, error) {
	docs, out := newQuoteDocuments(quotes, now())

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("inserting %d quotes: %w", len(docs), err)
	}

	return out, nil
}
