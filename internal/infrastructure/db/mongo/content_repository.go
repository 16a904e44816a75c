package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// ContentRepository persists the typed content collections (images, videos,
// poems, music). One repository serves all kinds; the kind picks the
// collection. ObjectIDs become hex strings at this boundary so nothing above
// it sees a binary id.
type ContentRepository struct {
	db *mongo.Database
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{db: db}
}

type mongoContent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Author      string             `bson:"author,omitempty"`
	Payload     string             `bson:"payload"`
	Target      string             `bson:"target,omitempty"`
	UploadedBy  string             `bson:"uploaded_by"`
	UploadedAt  time.Time          `bson:"uploaded_at"`
}

func (r *ContentRepository) coll(kind domain.ContentKind) *mongo.Collection {
	return r.db.Collection(kind.Collection())
}

// Insert persists a stamped item and returns the generated id as a hex string.
func (r *ContentRepository) Insert(ctx context.Context, item *domain.ContentItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoContent{
		Title:       item.Title,
		Description: item.Description,
		Author:      item.Author,
		Payload:     item.Payload,
		Target:      item.Target,
		UploadedBy:  item.UploadedBy,
		UploadedAt:  item.UploadedAt,
	}

	res, err := r.coll(item.Kind).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", item.Kind, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", item.Kind, res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns every record of the kind sorted by uploaded_at descending.
func (r *ContentRepository) List(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cur, err := r.coll(kind).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer cur.Close(ctx)

	items := []*domain.ContentItem{}
	for cur.Next(ctx) {
		var mc mongoContent
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("list %s: decode: %w", kind, err)
		}
		items = append(items, &domain.ContentItem{
			ID:          mc.ID.Hex(),
			Kind:        kind,
			Title:       mc.Title,
			Description: mc.Description,
			Author:      mc.Author,
			Payload:     mc.Payload,
			Target:      mc.Target,
			UploadedBy:  mc.UploadedBy,
			UploadedAt:  mc.UploadedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list %s: cursor: %w", kind, err)
	}
	return items, nil
}

// DeleteOwned deletes the record only when it exists and was uploaded by
// requester. Both conditions live in one DeleteOne filter, so the store
// checks and acts atomically; a zero delete count means "not found or not
// yours" without saying which.
func (r *ContentRepository) DeleteOwned(ctx context.Context, kind domain.ContentKind, id, requester string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContentNotFound
	}

	res, err := r.coll(kind).DeleteOne(ctx, bson.M{"_id": oid, "uploaded_by": requester})
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

// EnsureIndexes creates the uploaded_at sort index on every kind's collection.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, kind := range domain.Kinds {
		_, err := r.coll(kind).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "uploaded_at", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("ensure %s indexes: %w", kind, err)
		}
	}
	return nil
}
