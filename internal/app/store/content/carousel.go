// internal/app/store/content/carousel.go
package contentstore

import (
	"context"
	"errors"
	"sort"

	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAboutMissing is returned by carousel mutations when no about
// document exists yet; the carousel lives inside it.
var ErrAboutMissing = errors.New("about data not found")

// CarouselStore manages the photo carousel nested in the about
// section. Every mutation renumbers image order to dense ascending
// integers matching display order.
type CarouselStore struct {
	about *Singleton[models.AboutData, *models.AboutData]
}

// NewCarousel creates a carousel store over the about_data collection.
func NewCarousel(db *mongo.Database) *CarouselStore {
	return &CarouselStore{about: About(db)}
}

// Get returns the carousel, or nil when the about section has not
// been created yet (not an error: the admin panel shows an empty
// state for it).
func (s *CarouselStore) Get(ctx context.Context) (*models.Carousel, error) {
	about, found, err := s.about.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	c := about.Carousel
	return &c, nil
}

// Replace overwrites the whole carousel section, renumbering image
// order before persisting.
func (s *CarouselStore) Replace(ctx context.Context, carousel models.Carousel) error {
	about, found, err := s.about.Get(ctx)
	if err != nil {
		return err
	}
	if !found {
		return ErrAboutMissing
	}
	renumber(carousel.Images)
	return s.save(ctx, about.ID, carousel)
}

// AddImage appends a slide with a store-assigned identity and the
// next order value, and returns it as stored.
func (s *CarouselStore) AddImage(ctx context.Context, img models.CarouselImage) (models.CarouselImage, error) {
	about, found, err := s.about.Get(ctx)
	if err != nil {
		return models.CarouselImage{}, err
	}
	if !found {
		return models.CarouselImage{}, ErrAboutMissing
	}

	img.ID = primitive.NewObjectID().Hex()
	img.Order = len(about.Carousel.Images)

	carousel := about.Carousel
	carousel.Images = append(carousel.Images, img)
	renumber(carousel.Images)

	if err := s.save(ctx, about.ID, carousel); err != nil {
		return models.CarouselImage{}, err
	}
	return img, nil
}

// CarouselImagePatch is a partial update of one slide. Nil fields are
// left unchanged.
type CarouselImagePatch struct {
	URL         *string
	Alt         *string
	Title       *string
	Description *string
	Order       *int
}

// UpdateImage merges the patch into the slide with the given id and
// renumbers. An unknown id leaves the carousel unchanged; the admin
// route reports success either way, as it always has.
func (s *CarouselStore) UpdateImage(ctx context.Context, id string, patch CarouselImagePatch) error {
	about, found, err := s.about.Get(ctx)
	if err != nil {
		return err
	}
	if !found {
		return ErrAboutMissing
	}

	carousel := about.Carousel
	for i := range carousel.Images {
		if carousel.Images[i].ID != id {
			continue
		}
		img := &carousel.Images[i]
		if patch.URL != nil && *patch.URL != "" {
			img.URL = *patch.URL
		}
		if patch.Alt != nil && *patch.Alt != "" {
			img.Alt = *patch.Alt
		}
		if patch.Title != nil {
			img.Title = *patch.Title
		}
		if patch.Description != nil {
			img.Description = *patch.Description
		}
		if patch.Order != nil {
			img.Order = *patch.Order
		}
		break
	}
	renumber(carousel.Images)

	return s.save(ctx, about.ID, carousel)
}

// RemoveImage deletes the slide with the given id and renumbers the
// remainder.
func (s *CarouselStore) RemoveImage(ctx context.Context, id string) error {
	about, found, err := s.about.Get(ctx)
	if err != nil {
		return err
	}
	if !found {
		return ErrAboutMissing
	}

	carousel := about.Carousel
	kept := carousel.Images[:0:0]
	for _, img := range carousel.Images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	carousel.Images = kept
	renumber(carousel.Images)

	return s.save(ctx, about.ID, carousel)
}

func (s *CarouselStore) save(ctx context.Context, id primitive.ObjectID, carousel models.Carousel) error {
	return s.about.Update(ctx, id, bson.M{"carousel": carousel})
}

// renumber sorts slides by their current order (stable, so equal
// orders keep insertion sequence) and reassigns dense 0..n-1 values.
func renumber(images []models.CarouselImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Order < images[j].Order
	})
	for i := range images {
		images[i].Order = i
	}
}
