package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Source identifies which ingest path produced a record. It is assigned by
// the server and never taken from client input.
type Source string

const (
	SourceKiosk   Source = "kiosk"
	SourceQRPhone Source = "qr_phone"
)

// Registration is a visitor registration for one event. Records are
// append-only: once inserted they are never updated or deleted.
type Registration struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID     string             `bson:"event_id" json:"event_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Designation string             `bson:"designation" json:"designation"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	Source      Source             `bson:"source" json:"source"`
}

// RegistrationCreate is the inbound payload for a registration submission.
type RegistrationCreate struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Designation string `json:"designation" form:"designation"`
}

// VisitorExportRequest is the inbound payload for the single-visitor
// spreadsheet export. It is not persisted; the workbook is built straight
// from the payload and emailed.
type VisitorExportRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
}

// RegistrationResponse echoes the normalized record back to kiosk clients.
type RegistrationResponse struct {
	OK          bool      `json:"ok"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
	Source      Source    `json:"source"`
}
