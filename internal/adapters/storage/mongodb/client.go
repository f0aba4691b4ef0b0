// Package mongodb implements the quote and todo repositories on MongoDB.
// Documents use camelCase timestamps (createdAt, updatedAt) and ObjectID keys.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	// DefaultDatabase is used when neither the config nor the URI names one.
	DefaultDatabase = "todo"

	quotesCollection = "quotes"
	todosCollection  = "todos"
)

// Client owns the driver connection shared by both repositories.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to uri, verifies the primary is reachable, and ensures indexes.
// See ResolveDatabase for how the database is chosen.
func Open(ctx context.Context, uri, database string) (*Client, error) {
	database, err := ResolveDatabase(uri, database)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	c := &Client{client: client, db: client.Database(database)}

	if err := c.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return c, nil
}

func (c *Client) ensureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(todosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("creating todos index: %w", err)
	}

	return nil
}

// Quotes returns the quote repository.
func (c *Client) Quotes() *QuoteRepository {
	return &QuoteRepository{coll: c.db.Collection(quotesCollection)}
}

// Todos returns the todo repository.
func (c *Client) Todos() *TodoRepository {
	return &TodoRepository{coll: c.db.Collection(todosCollection)}
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return "mongo"
}

// Check implements ports.HealthChecker.
func (c *Client) Check(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the server.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongo: %w", err)
	}

	return nil
}

// ResolveDatabase picks the database for uri: an explicit override first, then
// the database named in the URI path, then DefaultDatabase.
func ResolveDatabase(uri, override string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("parsing mongo uri: %w", err)
	}

	switch {
	case override != "":
		return override, nil
	case cs.Database != "":
		return cs.Database, nil
	default:
		return DefaultDatabase, nil
	}
}
