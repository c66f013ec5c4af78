// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called from EnsureSchema (mongo content source) and by
labsitectl seed. Each ensure* function is idempotent. Errors are aggregated
so every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureResearch(ctx, db); err != nil {
		problems = append(problems, contentstore.CollResearch+": "+err.Error())
	}
	if err := ensurePublications(ctx, db); err != nil {
		problems = append(problems, contentstore.CollPublications+": "+err.Error())
	}
	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, contentstore.CollMembers+": "+err.Error())
	}
	if err := ensureBoard(ctx, db); err != nil {
		problems = append(problems, contentstore.CollBoard+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// existingIndex is the part of a listIndexes entry that decides whether a
// named index still matches what we want.
type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique bool   `bson:"unique"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list indexes: %w", err)
	}
	defer cur.Close(ctx)

	var all []existingIndex
	if err := cur.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("decode indexes: %w", err)
	}
	out := make(map[string]existingIndex, len(all))
	for _, idx := range all {
		out[idx.Name] = idx
	}
	return out, nil
}

// sameSpec reports whether ex already has m's keys and uniqueness.
func sameSpec(ex existingIndex, m mongo.IndexModel) bool {
	unique := m.Options.Unique != nil && *m.Options.Unique
	return ex.Unique == unique && keySig(ex.Key) == keySig(m.Keys.(bson.D))
}

// ensureIndexSet creates every model on coll in one CreateMany. Every model
// carries a name; an index already holding that name with a different spec
// is dropped first so it can be rebuilt.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	start := time.Now()

	existing, err := listIndexes(ctx, coll)
	if err != nil {
		return err
	}
	for _, m := range models {
		name := *m.Options.Name
		ex, ok := existing[name]
		if !ok || sameSpec(ex, m) {
			continue
		}
		zap.L().Info("dropping index with outdated spec",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("had", keySig(ex.Key)),
			zap.String("want", keySig(m.Keys.(bson.D))))
		if _, err := coll.Indexes().DropOne(ctx, name); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	zap.L().Info("indexes ensured",
		zap.String("collection", coll.Name()),
		zap.Int("count", len(models)),
		zap.Duration("took", time.Since(start)))
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                              */
/* -------------------------------------------------------------------------- */

// Every content collection is read in full, sorted by ord.

func ensureResearch(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(contentstore.CollResearch)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "topic", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_research_topic"),
		},
		{
			Keys:    bson.D{{Key: "ord", Value: 1}},
			Options: options.Index().SetName("idx_research_ord"),
		},
	})
}

func ensurePublications(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(contentstore.CollPublications)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_periods_key"),
		},
		{
			Keys:    bson.D{{Key: "ord", Value: 1}},
			Options: options.Index().SetName("idx_periods_ord"),
		},
	})
}

func ensureMembers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(contentstore.CollMembers)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_members_id"),
		},
		{
			Keys:    bson.D{{Key: "ord", Value: 1}},
			Options: options.Index().SetName("idx_members_ord"),
		},
		// Category pages, in authored order
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "ord", Value: 1}},
			Options: options.Index().SetName("idx_members_category_ord"),
		},
	})
}

func ensureBoard(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(contentstore.CollBoard)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_board_id"),
		},
		{
			Keys:    bson.D{{Key: "ord", Value: 1}},
			Options: options.Index().SetName("idx_board_ord"),
		},
		// Notice / News / Gallery pipelines
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "ord", Value: 1}},
			Options: options.Index().SetName("idx_board_type_ord"),
		},
	})
}
