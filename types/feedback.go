package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a visitor feedback entry for one event.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   string             `bson:"event_id" json:"event_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Source    Source             `bson:"source" json:"source"`
}

// FeedbackCreate is the inbound payload for a feedback submission. Comment is
// always a string, also on the form path.
type FeedbackCreate struct {
	Rating  int    `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
}

// FeedbackResponse acknowledges a stored feedback entry.
type FeedbackResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}
