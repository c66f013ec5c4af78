package testutil

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/fedl/labsite/internal/app/content"
	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	return WithChiURLParams(r, map[string]string{key: value})
}

// WithChiURLParams adds several chi URL parameters at once.
func WithChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var (
	contentOnce  sync.Once
	contentStore *content.Store
	contentErr   error
)

// Content returns the store built from the embedded content. It is built
// once per test binary; accessors hand out copies so sharing is safe.
func Content(t *testing.T) *content.Store {
	t.Helper()
	contentOnce.Do(func() {
		contentStore, contentErr = content.LoadDefault()
	})
	if contentErr != nil {
		t.Fatalf("load embedded content: %v", contentErr)
	}
	return contentStore
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// SeedEmbedded writes the embedded content into the test database and
// returns the snapshot that was written.
func (f *Fixtures) SeedEmbedded(ctx context.Context) content.Snapshot {
	f.t.Helper()

	snap, err := content.LoadEmbedded()
	if err != nil {
		f.t.Fatalf("load embedded content: %v", err)
	}
	if err := contentstore.New(f.db).Replace(ctx, snap); err != nil {
		f.t.Fatalf("seed content: %v", err)
	}
	return snap
}
