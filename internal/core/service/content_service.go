package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shreekara/studio-api/internal/api/metrics"
	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

// ListCache is the optional read-through cache for public list endpoints.
type ListCache interface {
	Get(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, bool)
	Set(ctx context.Context, kind domain.ContentKind, items []*domain.ContentItem)
	Invalidate(ctx context.Context, kind domain.ContentKind)
}

// ContentService implements upload, list, and owner-scoped delete over the
// typed content collections.
type ContentService struct {
	repo       ports.ContentRepository
	cache      ListCache // nil disables caching
	maxPayload int
	log        zerolog.Logger
}

// NewContentService builds a ContentService. maxPayload caps the length of
// the opaque payload string (base64 blob or poem text); values <= 0 fall
// back to 10 MiB.
func NewContentService(repo ports.ContentRepository, cache ListCache, maxPayload int, log zerolog.Logger) *ContentService {
	if maxPayload <= 0 {
		maxPayload = 10 << 20
	}
	return &ContentService{repo: repo, cache: cache, maxPayload: maxPayload, log: log}
}

// Upload stamps and persists a new record, returning its generated id.
func (s *ContentService) Upload(ctx context.Context, in ports.UploadInput, uploader string) (string, error) {
	if len(in.Payload) > s.maxPayload {
		return "", domain.ErrPayloadTooLarge
	}

	item := &domain.ContentItem{
		Kind:        in.Kind,
		Title:       in.Title,
		Description: in.Description,
		Author:      in.Author,
		Payload:     in.Payload,
		Target:      in.Target,
		UploadedBy:  uploader,
		UploadedAt:  time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.log.Error().Err(err).Str("kind", string(in.Kind)).Msg("content insert failed")
		return "", domain.ErrStoreUnavailable
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, in.Kind)
	}

	metrics.UploadsTotal.WithLabelValues(string(in.Kind)).Inc()
	s.log.Info().
		Str("kind", string(in.Kind)).
		Str("id", id).
		Str("uploaded_by", uploader).
		Msg("content uploaded")
	return id, nil
}

// List returns the kind's records newest first. A store failure degrades to
// an empty slice: public readers keep working while the store is down.
func (s *ContentService) List(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, kind); ok {
			return items, nil
		}
	}

	items, err := s.repo.List(ctx, kind)
	if err != nil {
		metrics.DegradedListsTotal.WithLabelValues(string(kind)).Inc()
		s.log.Warn().Err(err).Str("kind", string(kind)).Msg("list degraded to empty result")
		return []*domain.ContentItem{}, nil
	}

	if s.cache != nil {
		s.cache.Set(ctx, kind, items)
	}
	return items, nil
}

// Delete removes the record when requester owns it. The repository performs
// the existence+ownership check as one conditional delete, so there is no
// window between check and act.
func (s *ContentService) Delete(ctx context.Context, kind domain.ContentKind, id, requester string) error {
	if err := s.repo.DeleteOwned(ctx, kind, id, requester); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, kind)
	}

	metrics.DeletesTotal.WithLabelValues(string(kind)).Inc()
	s.log.Info().
		Str("kind", string(kind)).
		Str("id", id).
		Str("requested_by", requester).
		Msg("content deleted")
	return nil
}
