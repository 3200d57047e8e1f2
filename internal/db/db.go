package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection   = "users"
	ModulesCollection = "modulemasters"
)

type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &DB{client: client, database: client.Database(dbName)}, nil
}

func (d *DB) Users() *mongo.Collection {
	return d.database.Collection(UsersCollection)
}

func (d *DB) Modules() *mongo.Collection {
	return d.database.Collection(ModulesCollection)
}

func (d *DB) Close(ctx context.Context) {
	if d == nil || d.client == nil {
		return
	}
	_ = d.client.Disconnect(ctx)
}
