package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/ncinga/temi-event-backend/internal/store"
	"github.com/ncinga/temi-event-backend/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ store.RegistrationStore = (*registrationStore)(nil)

type registrationStore struct {
	coll *mongo.Collection
}

// NewRegistrationStore creates a registration store backed by the
// registrations collection.
func NewRegistrationStore(c *Client) store.RegistrationStore {
	return &registrationStore{coll: c.db.Collection(registrationsCollection)}
}

func (s *registrationStore) Insert(ctx context.Context, reg *types.Registration, source types.Source) (string, error) {
	reg.CreatedAt = time.Now().UTC()
	reg.Source = source

	res, err := s.coll.InsertOne(ctx, reg)
	if err != nil {
		return "", fmt.Errorf("failed to insert registration: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	reg.ID = id
	return id.Hex(), nil
}

func (s *registrationStore) ListByEvent(ctx context.Context, eventID string, limit int64) ([]types.Registration, error) {
	return s.list(ctx, bson.M{"event_id": eventID}, limit)
}

func (s *registrationStore) ListAll(ctx context.Context, limit int64) ([]types.Registration, error) {
	return s.list(ctx, bson.M{}, limit)
}

func (s *registrationStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}

// list runs a newest-first query. The limit applies after the sort, so a
// capped result keeps the most recent records.
func (s *registrationStore) list(ctx context.Context, filter bson.M, limit int64) ([]types.Registration, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []types.Registration
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode registrations: %w", err)
	}
	return rows, nil
}
