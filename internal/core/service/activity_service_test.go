package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shreekara/studio-api/internal/core/domain"
)

type stubActivityRepo struct {
	entries []*domain.ActivityEntry
}

func (r *stubActivityRepo) Insert(_ context.Context, entry *domain.ActivityEntry) error {
	clone := *entry
	r.entries = append([]*domain.ActivityEntry{&clone}, r.entries...)
	return nil
}

func (r *stubActivityRepo) ListByUsername(_ context.Context, username string, limit int) ([]*domain.ActivityEntry, error) {
	out := []*domain.ActivityEntry{}
	for _, e := range r.entries {
		if e.Username == username && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestActivityService_RecordAndRecent(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	now := time.Now().UTC()
	entries := []domain.ActivityEntry{
		{Username: "admin", Action: domain.ActionUpload, Kind: domain.KindPoem, ContentID: "p1", OccurredAt: now},
		{Username: "admin", Action: domain.ActionDelete, Kind: domain.KindPoem, ContentID: "p1", OccurredAt: now.Add(time.Second)},
		{Username: "editor", Action: domain.ActionUpload, Kind: domain.KindImage, ContentID: "i1", OccurredAt: now},
	}
	for _, e := range entries {
		if err := svc.Record(context.Background(), e); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	recent, err := svc.Recent(context.Background(), "admin")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries for admin, got %d", len(recent))
	}
	for _, e := range recent {
		if e.Username != "admin" {
			t.Fatalf("entry for %q leaked into admin's activity", e.Username)
		}
	}
}
