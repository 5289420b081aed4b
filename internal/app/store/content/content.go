// internal/app/store/content/content.go
package contentstore

import (
	"context"
	"time"

	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Stamper is satisfied by pointers to any model embedding models.Meta.
// It lets the stores assign identity and timestamps without knowing
// the concrete document type.
type Stamper[T any] interface {
	*T
	Stamp(id primitive.ObjectID, now time.Time)
}

// stripProtected removes identity and timestamp fields from an
// inbound update payload. The store is the sole writer of these;
// whatever a caller sends for them is discarded.
func stripProtected(fields bson.M) bson.M {
	for _, f := range models.ProtectedFields {
		delete(fields, f)
	}
	return fields
}

// byNewest sorts listings newest-first, matching what the site shows.
var byNewest = bson.D{{Key: "createdAt", Value: -1}}

/*─────────────────────────────────────────────────────────────────────────────*
| Singleton sections                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// Singleton wraps a collection that holds at most one document
// (hero, about, contact, target, footer, notification settings).
type Singleton[T any, P Stamper[T]] struct {
	c *mongo.Collection
}

// NewSingleton creates a singleton store over the named collection.
func NewSingleton[T any, P Stamper[T]](db *mongo.Database, collection string) *Singleton[T, P] {
	return &Singleton[T, P]{c: db.Collection(collection)}
}

// Get returns the section document. The second return value is false
// when the section has not been created yet; that is not an error.
func (s *Singleton[T, P]) Get(ctx context.Context) (T, bool, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, err
	}
	return doc, true, nil
}

// GetRaw returns the section document as plain nested maps, for the
// dotted-path field updater which works on untyped documents.
func (s *Singleton[T, P]) GetRaw(ctx context.Context) (map[string]any, bool, error) {
	var doc bson.D
	err := s.c.FindOne(ctx, bson.M{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return asMap(doc), true, nil
}

// asMap converts decoded BSON into plain maps and slices. The driver
// decodes embedded documents as bson.D, which path-based updates
// cannot walk.
func asMap(d bson.D) map[string]any {
	m := make(map[string]any, len(d))
	for _, e := range d {
		m[e.Key] = asValue(e.Value)
	}
	return m
}

func asValue(v any) any {
	switch t := v.(type) {
	case bson.D:
		return asMap(t)
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = asValue(e)
		}
		return out
	default:
		return v
	}
}

// Create stamps identity and timestamps, inserts the document and
// returns it as stored.
func (s *Singleton[T, P]) Create(ctx context.Context, doc T) (T, error) {
	P(&doc).Stamp(primitive.NewObjectID(), time.Now().UTC())
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Update merge-writes the given fields onto the document with the
// given identity. Identity and createdAt are stripped from the
// payload; updatedAt is always refreshed. A nonexistent id matches
// zero documents and is not an error.
func (s *Singleton[T, P]) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	set := stripProtected(fields)
	set["updatedAt"] = time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

/*─────────────────────────────────────────────────────────────────────────────*
| Archivable collections                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// Collection wraps a content collection whose documents carry an
// isActive flag (projects, events, partners, wards). Deleting from
// the admin panel only archives: documents are never removed here.
type Collection[T any, P Stamper[T]] struct {
	c *mongo.Collection
}

// NewCollection creates a collection store over the named collection.
func NewCollection[T any, P Stamper[T]](db *mongo.Database, collection string) *Collection[T, P] {
	return &Collection[T, P]{c: db.Collection(collection)}
}

// Active returns only publicly visible documents, newest first.
func (s *Collection[T, P]) Active(ctx context.Context) ([]T, error) {
	return s.find(ctx, bson.M{"isActive": true})
}

// All returns every document including archived ones, newest first.
// The admin panel partitions the result into active/archive itself.
func (s *Collection[T, P]) All(ctx context.Context) ([]T, error) {
	return s.find(ctx, bson.M{})
}

func (s *Collection[T, P]) find(ctx context.Context, filter bson.M) ([]T, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(byNewest))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Exists reports whether any document matches the filter.
func (s *Collection[T, P]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	err := s.c.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create stamps identity and timestamps, inserts the document and
// returns it as stored.
func (s *Collection[T, P]) Create(ctx context.Context, doc T) (T, error) {
	P(&doc).Stamp(primitive.NewObjectID(), time.Now().UTC())
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Update merge-writes the given fields, stripping identity/createdAt
// and refreshing updatedAt. A nonexistent id is a silent no-op; the
// admin routes have always reported success in that case.
func (s *Collection[T, P]) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	set := stripProtected(fields)
	set["updatedAt"] = time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Archive soft-deletes: flips isActive to false and refreshes
// updatedAt. The document stays listed by All and stays toggleable.
func (s *Collection[T, P]) Archive(ctx context.Context, id primitive.ObjectID) error {
	return s.Update(ctx, id, bson.M{"isActive": false})
}

// Activate restores an archived document.
func (s *Collection[T, P]) Activate(ctx context.Context, id primitive.ObjectID) error {
	return s.Update(ctx, id, bson.M{"isActive": true})
}
