package database

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ItemsDatabase is set by Connect and handed out by DBConnect
var ItemsDatabase *mongo.Database

var ErrNotConnected = errors.New("database is not connected")

// ConnectFunc hands out a database handle for a single operation
type ConnectFunc func(ctx context.Context) (*mongo.Database, error)

// Connects to the mongo deployment at uri, pings the primary and makes dbName the database DBConnect returns.
// A nil logger means the standard logger.
func Connect(ctx context.Context, uri string, dbName string, logger *log.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	useClient(client, dbName, logger)

	return client, nil
}

// makes dbName on an already pinged client the database DBConnect returns
func useClient(client *mongo.Client, dbName string, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}

	ItemsDatabase = client.Database(dbName)

	logger.Printf("Successfully connected and pinged, using database %q.", dbName)
}

// DBConnect returns the database set up by Connect
func DBConnect(ctx context.Context) (*mongo.Database, error) {
	if ItemsDatabase == nil {
		return nil, ErrNotConnected
	}
	return ItemsDatabase, nil
}

// Ping checks that the connected deployment is still reachable
func Ping(ctx context.Context) error {
	db, err := DBConnect(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

func Disconnect(ctx context.Context) error {
	if ItemsDatabase == nil {
		return nil
	}
	err := ItemsDatabase.Client().Disconnect(ctx)
	ItemsDatabase = nil
	return err
}
