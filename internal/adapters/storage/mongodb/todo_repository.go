package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/ports"
)

// TodoRepository stores todos in the todos collection.
type TodoRepository struct {
	coll *mongo.Collection
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

// newestFirst breaks createdAt ties by ObjectID, which grows with insertion order.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// List implements ports.TodoRepository.
func (r *TodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("finding todos: %w", err)
	}

	var docs []todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding todos: %w", err)
	}

	todos := make([]domain.Todo, 0, len(docs))
	for _, d := range docs {
		todos = append(todos, d.toDomain())
	}

	return todos, nil
}

// Create implements ports.TodoRepository.
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	doc := newTodoDocument(todo, now())

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	created := doc.toDomain()

	return &created, nil
}

// Update implements ports.TodoRepository and returns the document after the write.
func (r *TodoRepository) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	oid, err := parseID(domain.EntityTodo, id)
	if err != nil {
		return nil, err
	}

	var doc todoDocument

	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		todoUpdate(patch, now()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFoundError(domain.EntityTodo, id)
		}

		return nil, fmt.Errorf("updating todo: %w", err)
	}

	updated := doc.toDomain()

	return &updated, nil
}

// Delete implements ports.TodoRepository.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(domain.EntityTodo, id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	if res.DeletedCount == 0 {
		return domain.NewNotFoundError(domain.EntityTodo, id)
	}

	return nil
}
