// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the queries rely on. Mongo index
// creation is idempotent, so this runs on every boot.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	// Listings sort newest-first everywhere.
	byCreated := mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}
	for _, coll := range []string{"projects", "events", "partners", "wards", "contact_messages", "images"} {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, byCreated); err != nil {
			logger.Error("create createdAt index failed", zap.String("collection", coll), zap.Error(err))
			return err
		}
	}

	// Duplicate partner names are refused case-insensitively; the
	// unique index backs the handler-level check. Sparse so legacy
	// documents without nameCI don't collide on the missing key.
	nameCI := mongo.IndexModel{
		Keys:    bson.D{{Key: "nameCI", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}
	if _, err := db.Collection("partners").Indexes().CreateOne(ctx, nameCI); err != nil {
		logger.Error("create partners nameCI index failed", zap.Error(err))
		return err
	}

	logger.Info("database indexes ensured")
	return nil
}
