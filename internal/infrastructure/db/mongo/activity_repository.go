package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreekara/studio-api/internal/core/domain"
)

const activityCollection = "activity"

// ActivityRepository persists the per-author audit trail.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	Username   string    `bson:"username"`
	Action     string    `bson:"action"`
	Kind       string    `bson:"kind"`
	ContentID  string    `bson:"content_id"`
	Title      string    `bson:"title,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		Username:   entry.Username,
		Action:     string(entry.Action),
		Kind:       string(entry.Kind),
		ContentID:  entry.ContentID,
		Title:      entry.Title,
		OccurredAt: entry.OccurredAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByUsername returns up to limit entries for the author, newest first.
func (r *ActivityRepository) ListByUsername(ctx context.Context, username string, limit int) ([]*domain.ActivityEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	entries := []*domain.ActivityEntry{}
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("list activity: decode: %w", err)
		}
		entries = append(entries, &domain.ActivityEntry{
			Username:   ma.Username,
			Action:     domain.ActivityAction(ma.Action),
			Kind:       domain.ContentKind(ma.Kind),
			ContentID:  ma.ContentID,
			Title:      ma.Title,
			OccurredAt: ma.OccurredAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list activity: cursor: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates the username+occurred_at index backing ListByUsername.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}, {Key: "occurred_at", Value: -1}},
	})
	return err
}
