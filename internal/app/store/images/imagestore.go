// internal/app/store/images/imagestore.go
package imagestore

import (
	"context"
	"time"

	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists image metadata. The binaries themselves live in
// file storage; the handlers coordinate removing both.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("images")}
}

// All returns every image record, newest first.
func (s *Store) All(ctx context.Context) ([]models.Image, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	imgs := []models.Image{}
	if err := cur.All(ctx, &imgs); err != nil {
		return nil, err
	}
	return imgs, nil
}

// Create stamps identity and timestamps, inserts the record and
// returns it as stored.
func (s *Store) Create(ctx context.Context, img models.Image) (models.Image, error) {
	img.Stamp(primitive.NewObjectID(), time.Now().UTC())
	if _, err := s.c.InsertOne(ctx, img); err != nil {
		return models.Image{}, err
	}
	return img, nil
}

// GetByID returns the image record, or found=false when none exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Image, bool, error) {
	var img models.Image
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&img)
	if err == mongo.ErrNoDocuments {
		return img, false, nil
	}
	if err != nil {
		return img, false, err
	}
	return img, true, nil
}

// UpdateMeta changes the editable metadata (title, description) and
// reports whether the record existed.
func (s *Store) UpdateMeta(ctx context.Context, id primitive.ObjectID, title, description string) (bool, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   time.Now().UTC(),
	}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the record permanently and reports whether one was
// actually deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
