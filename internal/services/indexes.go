package services

import (
	"context"

	"github.com/gnb-666/pgy-travel-back/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the listing queries rely on. Safe to call
// on every startup; MongoDB treats existing identical indexes as a no-op.
func EnsureIndexes(ctx context.Context) error {
	noteIndexes := []mongo.IndexModel{
		{
			// Public feed: state + deletion flag, newest first.
			Keys: bson.D{
				{Key: "state", Value: 1},
				{Key: "is_deleted", Value: 1},
				{Key: "publish_time", Value: -1},
			},
		},
		{
			// "My published" listing.
			Keys: bson.D{
				{Key: "author_id", Value: 1},
				{Key: "is_deleted", Value: 1},
			},
		},
	}
	if _, err := database.DB.Collection(notesCollection).Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return err
	}

	uniqueUsername := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.DB.Collection(usersCollection).Indexes().CreateOne(ctx, uniqueUsername); err != nil {
		return err
	}
	if _, err := database.DB.Collection(adminsCollection).Indexes().CreateOne(ctx, uniqueUsername); err != nil {
		return err
	}
	return nil
}
