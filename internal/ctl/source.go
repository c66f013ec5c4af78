package ctl

import (
	"context"
	"fmt"
	"os"

	"github.com/fedl/labsite/internal/app/content"
	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"github.com/fedl/labsite/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// readSnapshot returns the embedded content, or the export-format YAML file
// at path when one is given. It does not validate.
func readSnapshot(path string) (content.Snapshot, error) {
	if path == "" {
		return content.LoadEmbedded()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return content.Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return content.ParseSnapshot(b)
}

// openMongo connects and pings. The caller disconnects the client.
func openMongo(ctx context.Context, cfg *Config, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	if err := cfg.RequireMongo(); err != nil {
		return nil, nil, err
	}

	connCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "mongo connect")
	defer cancel()
	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, pingCancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "mongo ping")
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Debug("connected to MongoDB", zap.String("database", cfg.MongoDatabase))
	return client, client.Database(cfg.MongoDatabase), nil
}

// loadConfigured returns the snapshot the server would load with cfg.
func loadConfigured(ctx context.Context, cfg *Config, logger *zap.Logger) (content.Snapshot, error) {
	if cfg.ContentSource != SourceMongo {
		return content.LoadEmbedded()
	}

	client, db, err := openMongo(ctx, cfg, logger)
	if err != nil {
		return content.Snapshot{}, err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	loadCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "load content from mongo")
	defer cancel()
	return contentstore.New(db).Load(loadCtx)
}
