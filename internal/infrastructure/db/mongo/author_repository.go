package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreekara/studio-api/internal/core/domain"
)

const authorCollection = "authors"

// AuthorRepository is the Mongo backing of the credential store. Lookups go
// through the unique username index: a single indexed query, never a scan
// over the collection.
type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(authorCollection)}
}

type mongoAuthor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// FindByUsername returns the author with the given username, or
// domain.ErrAuthorNotFound.
func (r *AuthorRepository) FindByUsername(ctx context.Context, username string) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAuthor
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	return &domain.Author{
		ID:           ma.ID.Hex(),
		Username:     ma.Username,
		PasswordHash: ma.PasswordHash,
		CreatedAt:    ma.CreatedAt.UTC(),
	}, nil
}

// Upsert inserts or replaces the credential record for author.Username.
// Only the seed tool calls this; the API never mutates authors.
func (r *AuthorRepository) Upsert(ctx context.Context, author *domain.Author) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"username":      author.Username,
		"password_hash": author.PasswordHash,
	}, "$setOnInsert": bson.M{
		"created_at": time.Now().UTC(),
	}}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"username": author.Username},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert author: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique username index.
func (r *AuthorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
