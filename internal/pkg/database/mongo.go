package database

import (
	"context"
	"fmt"
	"time"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient holds a connected client and the configured database
type MongoClient struct {
	client   *mongo.Client
	database string
}

// NewMongoClient connects to MongoDB and verifies the primary is reachable
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoClient{client: client, database: config.Database}, nil
}

// Collection returns a handle to name in the configured database
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// Ping checks the connection
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
