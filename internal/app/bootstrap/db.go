// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/fedl/labsite/internal/app/content"
	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"github.com/fedl/labsite/internal/app/system/indexes"
	"github.com/fedl/labsite/internal/app/system/ratelimit"
	"github.com/fedl/labsite/internal/app/system/timeouts"
	"github.com/fedl/labsite/internal/app/system/validators"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB opens the content backend and loads the content store.
//
// In embedded mode no database is opened; the YAML compiled into the binary
// is validated and loaded. In mongo mode the client is connected and pinged
// and the seeded collections are read. Either failure aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{ContentSource: appCfg.ContentSource}

	if appCfg.ContentSource != ContentMongo {
		store, err := content.LoadDefault()
		if err != nil {
			logger.Error("embedded content failed to load", zap.Error(err))
			return DBDeps{}, err
		}
		deps.Content = store
		deps.Limiter = apiLimiter(appCfg)
		return deps, nil
	}

	client, err := connectMongo(ctx, appCfg.MongoURI, logger)
	if err != nil {
		return DBDeps{}, err
	}
	db := client.Database(appCfg.MongoDatabase)

	loadCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "load content from mongo")
	defer cancel()

	snap, err := contentstore.New(db).Load(loadCtx)
	if err != nil {
		logger.Error("mongo content failed to load",
			zap.String("database", appCfg.MongoDatabase), zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("load content from %s: %w", appCfg.MongoDatabase, err)
	}

	store, err := content.New(snap)
	if err != nil {
		logger.Error("mongo content is invalid", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}

	deps.MongoClient = client
	deps.MongoDatabase = db
	deps.Content = store
	deps.Limiter = apiLimiter(appCfg)
	return deps, nil
}

// apiLimiter is the per-client limit shared by /go and /api, or nil when
// api_rate_limit is 0.
func apiLimiter(appCfg AppConfig) *ratelimit.Limiter {
	if appCfg.APIRateLimit <= 0 {
		return nil
	}
	return ratelimit.New(appCfg.APIRateLimit, time.Minute)
}

func connectMongo(ctx context.Context, uri string, logger *zap.Logger) (*mongo.Client, error) {
	connCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "mongo connect")
	defer cancel()

	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, pingCancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "mongo ping")
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureSchema attaches collection validators and sets up indexes on the
// content collections. There is nothing to do for embedded content.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	if err := validators.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
