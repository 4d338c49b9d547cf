package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoSlots keeps one document per slot in a MongoDB collection
type MongoSlots struct {
	client     *mongo.Client
	Collection *mongo.Collection
}

// NewMongoSlots uses the "slots" collection of the given database
func NewMongoSlots(client *mongo.Client, database string) *MongoSlots {
	return &MongoSlots{
		client:     client,
		Collection: client.Database(database).Collection("slots"),
	}
}

func (m *MongoSlots) Load(ctx context.Context, key string, v any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc slotDocument
	err := m.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return true, decode(key, []byte(doc.Value), v)
}

func (m *MongoSlots) Save(ctx context.Context, key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := slotDocument{Key: key, Value: string(data), UpdatedAt: time.Now()}
	_, err = m.Collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

func (m *MongoSlots) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := m.Collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}

func (m *MongoSlots) Close() error {
	return m.client.Disconnect(context.TODO())
}
