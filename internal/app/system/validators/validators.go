// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"github.com/fedl/labsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the content collections (if missing) and tries to attach
// JSON-Schema validators. On servers that don't support collMod/validators
// (e.g. some DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll, logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema, logger); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				logger.Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure(contentstore.CollSite, nil)
	ensure(contentstore.CollResearch, researchSchema())
	ensure(contentstore.CollPublications, periodsSchema())
	ensure(contentstore.CollMembers, membersSchema())
	ensure(contentstore.CollBoard, boardSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		logger.Debug("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return false, nil
		}
		logger.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	logger.Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M, logger *zap.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	logger.Debug("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func enum[T ~string](vals []T) bson.M {
	a := make(bson.A, 0, len(vals))
	for _, v := range vals {
		a = append(a, string(v))
	}
	return bson.M{"enum": a}
}

func researchSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"ord", "id", "topic", "title"},
			"properties": bson.M{
				"ord":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"id":       nonBlank,
				"topic":    enum(models.ResearchTopics),
				"title":    nonBlank,
				"sections": bson.M{"bsonType": "array"},
			},
		},
	}
}

func periodsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"ord", "key", "title", "years"},
			"properties": bson.M{
				"ord":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"key":      enum(models.PeriodKeys),
				"title":    nonBlank,
				"featured": bson.M{"bsonType": "bool"},
				"years": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"entries"},
						"properties": bson.M{
							"entries": bson.M{"bsonType": "array"},
						},
					},
				},
			},
		},
	}
}

func membersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"ord", "id", "name", "category"},
			"properties": bson.M{
				"ord":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"id":       nonBlank,
				"name":     nonBlank,
				"category": enum(models.MemberCategories),
				"email":    bson.M{"bsonType": "string"},
			},
		},
	}
}

func boardSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"ord", "id", "title", "date", "type"},
			"properties": bson.M{
				"ord":    bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"id":     nonBlank,
				"title":  nonBlank,
				"date":   bson.M{"bsonType": "string"},
				"type":   enum(models.BoardTypes),
				"images": bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"views":  bson.M{"bsonType": bson.A{"int", "long"}},
				"links": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"label", "url"},
					},
				},
			},
		},
	}
}
