package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shreekara/studio-api/internal/core/domain"
)

const cacheTTL = 30 * time.Second

// ListCache caches public list responses per content kind for a short TTL.
// Key format: list:<kind>. Every method is best-effort: a Redis failure is
// logged and treated as a miss, never surfaced to the caller.
type ListCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client, log zerolog.Logger) *ListCache {
	return &ListCache{client: client, log: log}
}

// Get returns the cached list for the kind, or ok=false on miss or error.
func (c *ListCache) Get(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, bool) {
	raw, err := c.client.Get(ctx, c.key(kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("kind", string(kind)).Msg("list cache read failed")
		}
		return nil, false
	}

	var entries []cacheEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Msg("list cache entry corrupt, dropping")
		c.Invalidate(ctx, kind)
		return nil, false
	}

	items := make([]*domain.ContentItem, len(entries))
	for i, e := range entries {
		items[i] = &domain.ContentItem{
			ID:          e.ID,
			Kind:        kind,
			Title:       e.Title,
			Description: e.Description,
			Author:      e.Author,
			Payload:     e.Payload,
			Target:      e.Target,
			UploadedBy:  e.UploadedBy,
			UploadedAt:  e.UploadedAt,
		}
	}
	return items, true
}

// Set stores the list for the kind, expiring after cacheTTL.
func (c *ListCache) Set(ctx context.Context, kind domain.ContentKind, items []*domain.ContentItem) {
	raw, err := json.Marshal(cacheable(items))
	if err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Msg("list cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(kind), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Msg("list cache write failed")
	}
}

// Invalidate drops the kind's cache entry. Called after uploads and deletes
// so readers never see a deleted record for longer than one round-trip.
func (c *ListCache) Invalidate(ctx context.Context, kind domain.ContentKind) {
	if err := c.client.Del(ctx, c.key(kind)).Err(); err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Msg("list cache invalidate failed")
	}
}

func (c *ListCache) key(kind domain.ContentKind) string {
	return "list:" + string(kind)
}

// cacheEntry persists the fields the JSON tags on domain.ContentItem hide
// (payload) so a cache hit serves complete records.
type cacheEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	Payload     string    `json:"payload"`
	Target      string    `json:"target,omitempty"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func cacheable(items []*domain.ContentItem) []cacheEntry {
	out := make([]cacheEntry, len(items))
	for i, item := range items {
		out[i] = cacheEntry{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Author:      item.Author,
			Payload:     item.Payload,
			Target:      item.Target,
			UploadedBy:  item.UploadedBy,
			UploadedAt:  item.UploadedAt,
		}
	}
	return out
}
