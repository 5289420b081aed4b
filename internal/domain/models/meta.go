// internal/domain/models/meta.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the identity and timestamp fields shared by every
// document in the database. The store layer is the only writer of
// these fields; inbound payloads never set them directly.
//
// Field names are camelCase to match the existing database contents.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Stamp assigns a fresh identity and sets both timestamps.
// Called by the store on create, never on update.
func (m *Meta) Stamp(id primitive.ObjectID, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// ProtectedFields are stripped from every inbound update payload
// before it is persisted; updatedAt is then re-set by the store.
var ProtectedFields = []string{"_id", "createdAt", "updatedAt"}
