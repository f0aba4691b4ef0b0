package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen/todo-service/internal/domain"
)

type quoteDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Text      string             `bson:"text"`
	Author    string             `bson:"author,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newQuoteDocument(q *domain.Quote, now time.Time) quoteDocument {
	return quoteDocument{
		ID:        primitive.NewObjectID(),
		Text:      q.Text,
		Author:    q.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d quoteDocument) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:        d.ID.Hex(),
		Text:      d.Text,
		Author:    d.Author,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// newQuoteDocuments builds one InsertMany batch sharing a timestamp, along with
// the records it will store, in input order.
func newQuoteDocuments(quotes []*domain.Quote, now time.Time) ([]any, []*domain.Quote) {
	docs := make([]any, 0, len(quotes))
	out := make([]*domain.Quote, 0, len(quotes))

	for _, q := range quotes {
		doc := newQuoteDocument(q, now)
		docs = append(docs, doc)
		out = append(out, doc.toDomain())
	}

	return docs, out
}

type todoDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newTodoDocument(t *domain.Todo, now time.Time) todoDocument {
	return todoDocument{
		ID:        primitive.NewObjectID(),
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d todoDocument) toDomain() domain.Todo {
	return domain.Todo{
		ID:        d.ID.Hex(),
		Text:      d.Text,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// parseID converts a hex id. A malformed id can never match a document, so it
// is reported as not found rather than as a validation failure.
func parseID(entity, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewNotFoundError(entity, id)
	}

	return oid, nil
}

// todoUpdate builds the $set document for a normalized patch.
func todoUpdate(patch domain.TodoPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}

	if patch.Text != nil {
		set["text"] = *patch.Text
	}

	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	return bson.M{"$set": set}
}

// now truncates to the millisecond precision of BSON dates so returned records
// match what a later read yields.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
