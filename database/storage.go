package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The storage collection is a small key-value table holding the handful of
// documents the admin panel edits: the menu, the categories, the restaurant
// name and the notification credentials. Values are stored as JSON text so a
// corrupt document degrades to the caller's default instead of poisoning reads.

const (
	StorageKeyMenu           = "tableSwift_menu"
	StorageKeyCategories     = "tableSwift_categories"
	StorageKeyRestaurantName = "tableSwift_name"
	StorageKeyTelegram       = "tableSwift_telegram"
)

type storageDoc struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}

var storageCollection *mongo.Collection = OpenCollection(Client, "storage")

// LoadStorage decodes the value stored under key into out. It returns false
// when the key is absent or the stored value does not parse, in which case the
// caller keeps its default.
func LoadStorage(key string, out interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc storageDoc
	if err := storageCollection.FindOne(ctx, bson.M{"key": key}).Decode(&doc); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("storage load [%s]: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		log.Printf("storage load [%s]: corrupt value: %v", key, err)
		return false
	}
	return true
}

// SaveStorage writes value under key. Failures are logged and swallowed, a
// broken settings write must never fail the mutation that triggered it.
func SaveStorage(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage save [%s]: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	upsert := true
	_, err = storageCollection.UpdateOne(
		ctx,
		bson.M{"key": key},
		bson.D{{Key: "$set", Value: storageDoc{Key: key, Value: string(data)}}},
		&options.UpdateOptions{Upsert: &upsert},
	)
	if err != nil {
		log.Printf("storage save [%s]: %v", key, err)
	}
}
