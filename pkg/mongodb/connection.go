package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// NewConnection creates a client for uri. The driver dials lazily, so use Ping to
// check that the server is reachable.
func NewConnection(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("[mongodb] invalid url")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
}

func Ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return client.Ping(ctx, readpref.Primary())
}

func Close(client *mongo.Client, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Errorf("failed to disconnect from mongodb: %v", err)
	}
}
