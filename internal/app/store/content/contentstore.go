// internal/app/store/content/contentstore.go
package contentstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. Every list collection stores an "ord" field holding the
// authored position, since content order is significant and never sorted.
const (
	CollSite         = "site_settings"
	CollResearch     = "research_areas"
	CollPublications = "publication_periods"
	CollMembers      = "members"
	CollBoard        = "board_items"
)

const siteDocID = "site"

// ErrNoContent is returned by Load when the database has not been seeded.
var ErrNoContent = errors.New("content collections are empty; run labsitectl seed")

type siteDoc struct {
	ID      string                  `bson:"_id"`
	Site    models.SiteSettings     `bson:"site"`
	Profile models.ProfessorProfile `bson:"profile"`
}

type researchDoc struct {
	Ord                 int `bson:"ord"`
	models.ResearchArea `bson:",inline"`
}

type periodDoc struct {
	Ord                      int `bson:"ord"`
	models.PublicationPeriod `bson:",inline"`
}

type memberDoc struct {
	Ord           int `bson:"ord"`
	models.Member `bson:",inline"`
}

type boardDoc struct {
	Ord              int `bson:"ord"`
	models.BoardItem `bson:",inline"`
}

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func byOrd() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "ord", Value: 1}})
}

// Load reads every content collection back into a Snapshot in authored order.
func (s *Store) Load(ctx context.Context) (content.Snapshot, error) {
	var snap content.Snapshot

	var sd siteDoc
	err := s.db.Collection(CollSite).FindOne(ctx, bson.M{"_id": siteDocID}).Decode(&sd)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return content.Snapshot{}, ErrNoContent
	}
	if err != nil {
		return content.Snapshot{}, fmt.Errorf("load %s: %w", CollSite, err)
	}
	snap.Site = sd.Site
	snap.Profile = sd.Profile

	var research []researchDoc
	if err := s.findAll(ctx, CollResearch, &research); err != nil {
		return content.Snapshot{}, err
	}
	for _, d := range research {
		snap.Research = append(snap.Research, d.ResearchArea)
	}

	var periods []periodDoc
	if err := s.findAll(ctx, CollPublications, &periods); err != nil {
		return content.Snapshot{}, err
	}
	for _, d := range periods {
		snap.Publications = append(snap.Publications, d.PublicationPeriod)
	}

	var members []memberDoc
	if err := s.findAll(ctx, CollMembers, &members); err != nil {
		return content.Snapshot{}, err
	}
	for _, d := range members {
		snap.Members = append(snap.Members, d.Member)
	}

	var board []boardDoc
	if err := s.findAll(ctx, CollBoard, &board); err != nil {
		return content.Snapshot{}, err
	}
	for _, d := range board {
		snap.Board = append(snap.Board, d.BoardItem)
	}

	return snap, nil
}

func (s *Store) findAll(ctx context.Context, coll string, out interface{}) error {
	cur, err := s.db.Collection(coll).Find(ctx, bson.M{}, byOrd())
	if err != nil {
		return fmt.Errorf("load %s: %w", coll, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll, err)
	}
	return nil
}

// Replace validates snap and overwrites every content collection with it.
// It is an offline seeding operation; the web process never calls it.
func (s *Store) Replace(ctx context.Context, snap content.Snapshot) error {
	if err := content.Validate(snap); err != nil {
		return err
	}

	site := siteDoc{ID: siteDocID, Site: snap.Site, Profile: snap.Profile}
	_, err := s.db.Collection(CollSite).ReplaceOne(ctx, bson.M{"_id": siteDocID}, site,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace %s: %w", CollSite, err)
	}

	research := make([]interface{}, 0, len(snap.Research))
	for i, a := range snap.Research {
		research = append(research, researchDoc{Ord: i, ResearchArea: a})
	}
	periods := make([]interface{}, 0, len(snap.Publications))
	for i, p := range snap.Publications {
		periods = append(periods, periodDoc{Ord: i, PublicationPeriod: p})
	}
	members := make([]interface{}, 0, len(snap.Members))
	for i, m := range snap.Members {
		members = append(members, memberDoc{Ord: i, Member: m})
	}
	board := make([]interface{}, 0, len(snap.Board))
	for i, b := range snap.Board {
		board = append(board, boardDoc{Ord: i, BoardItem: b})
	}

	sets := []struct {
		coll string
		docs []interface{}
	}{
		{CollResearch, research},
		{CollPublications, periods},
		{CollMembers, members},
		{CollBoard, board},
	}
	for _, set := range sets {
		if err := s.replaceAll(ctx, set.coll, set.docs); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) replaceAll(ctx context.Context, coll string, docs []interface{}) error {
	c := s.db.Collection(coll)
	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", coll, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert %s: %w", coll, err)
	}
	return nil
}

// Count reports how many documents each content collection holds.
func (s *Store) Count(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, 4)
	for _, coll := range []string{CollResearch, CollPublications, CollMembers, CollBoard} {
		n, err := s.db.Collection(coll).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", coll, err)
		}
		out[coll] = n
	}
	return out, nil
}
