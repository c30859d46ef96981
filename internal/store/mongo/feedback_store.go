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

var _ store.FeedbackStore = (*feedbackStore)(nil)

type feedbackStore struct {
	coll *mongo.Collection
}

// NewFeedbackStore creates a feedback store backed by the feedback collection.
func NewFeedbackStore(c *Client) store.FeedbackStore {
	return &feedbackStore{coll: c.db.Collection(feedbackCollection)}
}

func (s *feedbackStore) Insert(ctx context.Context, fb *types.Feedback, source types.Source) (string, error) {
	fb.CreatedAt = time.Now().UTC()
	fb.Source = source

	res, err := s.coll.InsertOne(ctx, fb)
	if err != nil {
		return "", fmt.Errorf("failed to insert feedback: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	fb.ID = id
	return id.Hex(), nil
}

func (s *feedbackStore) ListByEvent(ctx context.Context, eventID string, limit int64) ([]types.Feedback, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []types.Feedback
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return rows, nil
}
