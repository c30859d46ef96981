// Package mongo implements the record store interfaces on top of MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/ncinga/temi-event-backend/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	registrationsCollection = "registrations"
	feedbackCollection      = "feedback"

	connectTimeout = 10 * time.Second
)

// Client wraps the driver client and the application database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection. It does not ping: an
// unreachable store at boot must not prevent the process from serving the
// visitor-directory routes.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	return &Client{client: client, db: client.Database(cfg.Database)}, nil
}

// Ping verifies the store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close disconnects from the store.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the query indexes both collections rely on. Callers
// treat failure as best-effort at startup: it is logged and the service runs
// degraded rather than aborting boot.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	regIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := c.db.Collection(registrationsCollection).Indexes().CreateMany(ctx, regIndexes); err != nil {
		return fmt.Errorf("failed to create registration indexes: %w", err)
	}

	fbIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := c.db.Collection(feedbackCollection).Indexes().CreateMany(ctx, fbIndexes); err != nil {
		return fmt.Errorf("failed to create feedback indexes: %w", err)
	}
	return nil
}
