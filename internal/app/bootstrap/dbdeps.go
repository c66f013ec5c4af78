// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// The Mongo fields are nil when content is embedded. Content is always set
// once ConnectDB returns. Limiter is nil when api_rate_limit is 0; it lives
// as long as the process and Shutdown stops it.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Content       *content.Store
	ContentSource string

	Limiter *ratelimit.Limiter
}
