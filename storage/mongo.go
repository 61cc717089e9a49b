package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSlot struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Mongo stores each slot as a single document keyed by _id in one
// collection.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongo connects to MongoDB and uses the "slots" collection of the
// given database.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Mongo{
		client:     client,
		collection: client.Database(database).Collection("slots"),
	}, nil
}

func (m *Mongo) Read(ctx context.Context, key string) (string, error) {
	var slot mongoSlot
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read slot %s: %w", key, err)
	}
	return slot.Value, nil
}

func (m *Mongo) Write(ctx context.Context, key, raw string) error {
	_, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": raw}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
