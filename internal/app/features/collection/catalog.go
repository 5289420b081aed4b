// internal/app/features/collection/catalog.go
package collection

import (
	"context"

	"github.com/dalemusser/waffle/pantry/text"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Typed constructors for the four archivable collections.

func NewProjects(db *mongo.Database, logger *zap.Logger) *Handler[models.Project, *models.Project] {
	return &Handler[models.Project, *models.Project]{
		Store: contentstore.Projects(db),
		Label: "projects",
		Log:   logger,
	}
}

func NewEvents(db *mongo.Database, logger *zap.Logger) *Handler[models.Event, *models.Event] {
	return &Handler[models.Event, *models.Event]{
		Store: contentstore.Events(db),
		Label: "events",
		Log:   logger,
	}
}

func NewWards(db *mongo.Database, logger *zap.Logger) *Handler[models.Ward, *models.Ward] {
	return &Handler[models.Ward, *models.Ward]{
		Store: contentstore.Wards(db),
		Label: "wards",
		Log:   logger,
	}
}

// NewPartners wires the duplicate-name guard: partner names are
// compared case-folded, and a create that collides with an existing
// name is refused.
func NewPartners(db *mongo.Database, logger *zap.Logger) *Handler[models.Partner, *models.Partner] {
	store := contentstore.Partners(db)
	return &Handler[models.Partner, *models.Partner]{
		Store: store,
		Label: "partners",
		Log:   logger,
		BeforeCreate: func(ctx context.Context, p *models.Partner) error {
			p.NameCI = text.Fold(p.Name)
			dup, err := store.Exists(ctx, bson.M{"nameCI": p.NameCI})
			if err != nil {
				return err
			}
			if dup {
				return &ConflictError{Message: "Partner o tej nazwie już istnieje"}
			}
			return nil
		},
		BeforeUpdate: func(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
			name, ok := fields["name"].(string)
			if !ok || name == "" {
				return nil
			}
			folded := text.Fold(name)
			dup, err := store.Exists(ctx, bson.M{"nameCI": folded, "_id": bson.M{"$ne": id}})
			if err != nil {
				return err
			}
			if dup {
				return &ConflictError{Message: "Partner o tej nazwie już istnieje"}
			}
			fields["nameCI"] = folded
			return nil
		},
	}
}
