// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/system/blobstore"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
)

// ConnectDB establishes the MongoDB and blob storage connections.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	blobs, err := blobstore.New(ctx, blobstore.Config{
		Endpoint:  appCfg.BlobEndpoint,
		AccessKey: appCfg.BlobAccessKey,
		SecretKey: appCfg.BlobSecretKey,
		Bucket:    appCfg.BlobBucket,
		UseSSL:    appCfg.BlobUseSSL,
	})
	if err != nil {
		return DBDeps{}, fmt.Errorf("blob storage: %w", err)
	}
	logger.Info("connected to blob storage",
		zap.String("endpoint", appCfg.BlobEndpoint),
		zap.String("bucket", appCfg.BlobBucket))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Blobs:         blobs,
	}, nil
}

// EnsureSchema creates the indexes the stores rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	type indexSpec struct {
		collection string
		model      mongo.IndexModel
	}

	specs := []indexSpec{
		{"accounts", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"grocery_items", mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "purchase_date", Value: -1}},
		}},
		{"posts", mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		}},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateOne(ctx, s.model); err != nil {
			logger.Error("index create failed", zap.String("collection", s.collection), zap.Error(err))
			return fmt.Errorf("ensure index on %s: %w", s.collection, err)
		}
	}

	logger.Info("schema ensured", zap.Int("indexes", len(specs)))
	return nil
}
