package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// ConnectDB dials MongoDB and pings the primary before returning the database handle.
func ConnectDB(ctx context.Context, uri, database string, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Info("Connected to MongoDB", zap.String("database", database))
	return client, client.Database(database), nil
}

// Hosts returns the host list of a connection string without credentials or
// options. An unparsable URI yields an empty string.
func Hosts(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return ""
	}
	return strings.Join(cs.Hosts, ",")
}
