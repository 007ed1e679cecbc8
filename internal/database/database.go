// Package database handles document-store connections and index bootstrap.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"amity/internal/config"
	"amity/internal/models"
	"amity/internal/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the global database handle.
var DB *mongo.Database

var client *mongo.Client

const connectTimeout = 10 * time.Second

// Connect opens a MongoDB connection using the provided configuration and
// returns the database handle. The connection is verified with a ping so
// callers fail fast when the store is unreachable.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName("amity")

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	observability.GlobalLogger.Info("MongoDB connected",
		slog.String("db", cfg.MongoDBName),
	)

	client = c
	DB = c.Database(cfg.MongoDBName)
	return DB, nil
}

// Open returns a database handle without verifying the connection. The
// driver dials lazily, so the handle suits callers that may never touch
// the store, such as dry-run seeding.
func Open(cfg *config.Config) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName("amity")

	c, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	client = c
	DB = c.Database(cfg.MongoDBName)
	return DB, nil
}

// Disconnect closes the underlying client connection.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := client.Disconnect(ctx)
	client = nil
	DB = nil
	return err
}

// EnsureIndexes creates the indexes the data-access layer queries against.
//
// Friendships deliberately get no unique index on the user pair: the layer
// is duplicate-tolerant and uniqueness is the concern of the confirmation
// flow upstream.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	friendshipIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_one_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_two_id", Value: 1}}},
		{Keys: bson.D{{Key: "date_created", Value: -1}}},
	}
	if _, err := db.Collection(models.FriendshipCollection).Indexes().CreateMany(ctx, friendshipIndexes); err != nil {
		return fmt.Errorf("create friendship indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(models.UserCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	return nil
}
