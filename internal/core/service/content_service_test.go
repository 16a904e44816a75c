package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

// stubContentRepo keeps items per kind in insertion order and implements the
// conditional owner delete the Mongo repository performs.
type stubContentRepo struct {
	items  map[domain.ContentKind][]*domain.ContentItem
	nextID int
	err    error
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{items: make(map[domain.ContentKind][]*domain.ContentItem)}
}

func (r *stubContentRepo) Insert(_ context.Context, item *domain.ContentItem) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.nextID++
	clone := *item
	clone.ID = fmt.Sprintf("id-%d", r.nextID)
	r.items[item.Kind] = append([]*domain.ContentItem{&clone}, r.items[item.Kind]...)
	return clone.ID, nil
}

func (r *stubContentRepo) List(_ context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items[kind], nil
}

func (r *stubContentRepo) DeleteOwned(_ context.Context, kind domain.ContentKind, id, requester string) error {
	if r.err != nil {
		return r.err
	}
	for i, item := range r.items[kind] {
		if item.ID == id && item.UploadedBy == requester {
			r.items[kind] = append(r.items[kind][:i], r.items[kind][i+1:]...)
			return nil
		}
	}
	return domain.ErrContentNotFound
}

func TestContentService_Upload_StampsUploader(t *testing.T) {
	repo := newStubContentRepo()
	svc := NewContentService(repo, nil, 0, zerolog.Nop())

	id, err := svc.Upload(context.Background(), ports.UploadInput{
		Kind:    domain.KindPoem,
		Title:   "T",
		Author:  "A",
		Payload: "C",
	}, "admin")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	items, _ := repo.List(context.Background(), domain.KindPoem)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].UploadedBy != "admin" {
		t.Fatalf("expected uploaded_by admin, got %q", items[0].UploadedBy)
	}
	if items[0].UploadedAt.IsZero() {
		t.Fatalf("uploaded_at not stamped")
	}
}

func TestContentService_Upload_PayloadCap(t *testing.T) {
	repo := newStubContentRepo()
	svc := NewContentService(repo, nil, 8, zerolog.Nop())

	_, err := svc.Upload(context.Background(), ports.UploadInput{
		Kind:    domain.KindImage,
		Title:   "big",
		Payload: "123456789",
	}, "admin")
	if !errors.Is(err, domain.ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if items, _ := repo.List(context.Background(), domain.KindImage); len(items) != 0 {
		t.Fatalf("oversized payload was persisted")
	}
}

func TestContentService_Upload_StoreFailure(t *testing.T) {
	repo := newStubContentRepo()
	repo.err = errors.New("connection refused")
	svc := NewContentService(repo, nil, 0, zerolog.Nop())

	// Writes surface the failure: the client's action did not durably succeed.
	_, err := svc.Upload(context.Background(), ports.UploadInput{
		Kind:    domain.KindPoem,
		Title:   "T",
		Payload: "C",
	}, "admin")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestContentService_List_NewestFirst(t *testing.T) {
	repo := newStubContentRepo()
	svc := NewContentService(repo, nil, 0, zerolog.Nop())

	first, _ := svc.Upload(context.Background(), ports.UploadInput{Kind: domain.KindPoem, Title: "first", Payload: "x"}, "admin")
	second, _ := svc.Upload(context.Background(), ports.UploadInput{Kind: domain.KindPoem, Title: "second", Payload: "y"}, "admin")

	items, err := svc.List(context.Background(), domain.KindPoem)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != second || items[1].ID != first {
		t.Fatalf("expected most-recent-first ordering, got %s then %s", items[0].ID, items[1].ID)
	}
}

func TestContentService_List_DegradesToEmpty(t *testing.T) {
	repo := newStubContentRepo()
	repo.err = errors.New("connection refused")
	svc := NewContentService(repo, nil, 0, zerolog.Nop())

	items, err := svc.List(context.Background(), domain.KindImage)
	if err != nil {
		t.Fatalf("list must not fail when the store is down, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(items))
	}
}

func TestContentService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubContentRepo()
	svc := NewContentService(repo, nil, 0, zerolog.Nop())

	id, _ := svc.Upload(context.Background(), ports.UploadInput{Kind: domain.KindImage, Title: "t", Payload: "x"}, "userA")

	// Another author's delete reads exactly like a missing record.
	if err := svc.Delete(context.Background(), domain.KindImage, id, "userB"); !errors.Is(err, domain.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound for non-owner, got %v", err)
	}

	if err := svc.Delete(context.Background(), domain.KindImage, id, "userA"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	// Second delete of the same id: gone is gone.
	if err := svc.Delete(context.Background(), domain.KindImage, id, "userA"); !errors.Is(err, domain.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound on repeat delete, got %v", err)
	}
}

// stubListCache records cache traffic for the read-through tests.
type stubListCache struct {
	stored  map[domain.ContentKind][]*domain.ContentItem
	dropped []domain.ContentKind
}

func newStubListCache() *stubListCache {
	return &stubListCache{stored: make(map[domain.ContentKind][]*domain.ContentItem)}
}

func (c *stubListCache) Get(_ context.Context, kind domain.ContentKind) ([]*domain.ContentItem, bool) {
	items, ok := c.stored[kind]
	return items, ok
}

func (c *stubListCache) Set(_ context.Context, kind domain.ContentKind, items []*domain.ContentItem) {
	c.stored[kind] = items
}

func (c *stubListCache) Invalidate(_ context.Context, kind domain.ContentKind) {
	delete(c.stored, kind)
	c.dropped = append(c.dropped, kind)
}

func TestContentService_List_CacheReadThrough(t *testing.T) {
	repo := newStubContentRepo()
	cache := newStubListCache()
	svc := NewContentService(repo, cache, 0, zerolog.Nop())

	_, _ = svc.Upload(context.Background(), ports.UploadInput{Kind: domain.KindMusic, Title: "t", Payload: "x"}, "admin")

	// First list misses the cache and writes it back.
	if _, err := svc.List(context.Background(), domain.KindMusic); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, ok := cache.stored[domain.KindMusic]; !ok {
		t.Fatalf("expected cache write-back after miss")
	}

	// A store failure is invisible while the cache holds the kind.
	repo.err = errors.New("connection refused")
	items, err := svc.List(context.Background(), domain.KindMusic)
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected cached item, got %d", len(items))
	}
}

func TestContentService_Upload_InvalidatesCache(t *testing.T) {
	repo := newStubContentRepo()
	cache := newStubListCache()
	svc := NewContentService(repo, cache, 0, zerolog.Nop())

	cache.Set(context.Background(), domain.KindPoem, []*domain.ContentItem{})
	if _, err := svc.Upload(context.Background(), ports.UploadInput{Kind: domain.KindPoem, Title: "t", Payload: "x"}, "admin"); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if len(cache.dropped) == 0 || cache.dropped[0] != domain.KindPoem {
		t.Fatalf("expected poem cache invalidation, got %v", cache.dropped)
	}
}
